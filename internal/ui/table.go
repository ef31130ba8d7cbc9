package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/internal/timeutil"
)

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output project table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// ProjectTable summarises projects one per row, with a header and a final
// row carrying the grand total.
func ProjectTable(projects []models.Project) [][]string {
	data := [][]string{{"#", "Project", "Start date", "Days", "Total time"}}

	var total duration.Seconds

	for i, p := range projects {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			p.Name,
			timeutil.Stamp(p.StartDate),
			strconv.Itoa(len(p.HoursPerDay)),
			duration.Format(p.TotalTime),
		})

		total += p.TotalTime
	}

	data = append(data, []string{"", Highlight("Total"), "", "", Green(duration.Format(total))})

	return data
}
