package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/internal/timeutil"
	"github.com/werk-cli/werk/tracker"
)

func projectItems(p models.Project) pterm.LeveledList {
	list := pterm.LeveledList{
		{Level: 0, Text: Cyan(p.Name)},
		{Level: 1, Text: fmt.Sprintf("Start Date: %s", timeutil.Stamp(p.StartDate))},
		{Level: 1, Text: fmt.Sprintf("Total Time: %s", Green(duration.Format(p.TotalTime)))},
	}

	for _, d := range p.Days() {
		list = append(list, pterm.LeveledListItem{
			Level: 2,
			Text:  fmt.Sprintf("%s: %s", d.Day, duration.Format(d.Time)),
		})
	}

	return list
}

func renderTree(w io.Writer, list pterm.LeveledList) error {
	str, err := pterm.DefaultTree.
		WithRoot(putils.TreeFromLeveledList(list)).
		Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, str)

	return err
}

// RenderProjects prints each project with its start date, total time and
// per-day breakdown.
func RenderProjects(w io.Writer, projects []models.Project) error {
	var list pterm.LeveledList

	for _, p := range projects {
		list = append(list, projectItems(p)...)
	}

	return renderTree(w, list)
}

// RenderDay prints the time each project tracked on a day and their sum.
func RenderDay(w io.Writer, s tracker.DaySummary) error {
	list := pterm.LeveledList{
		{Level: 0, Text: Highlight(s.Day)},
	}

	for _, e := range s.Entries {
		list = append(list, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%s: %s", Cyan(e.Project), duration.Format(e.Time)),
		})
	}

	list = append(list, pterm.LeveledListItem{
		Level: 1,
		Text:  fmt.Sprintf("Total: %s", Green(duration.Format(s.Total))),
	})

	return renderTree(w, list)
}
