package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/tracker"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	pterm.DisableStyling()

	os.Exit(m.Run())
}

func sampleProject() models.Project {
	p := models.NewProject(
		"writing",
		time.Date(2024, time.January, 3, 8, 0, 0, 0, time.Local),
	)
	p.Fold("01/04/24", 125)
	p.Fold("01/03/24", 3600)

	return p.Clone()
}

func TestRenderProjects(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderProjects(&buf, []models.Project{sampleProject()}))

	out := buf.String()

	for _, want := range []string{
		"writing",
		"Start Date: 01/03/24 08:00:00",
		"Total Time: 01:02:05",
		"01/03/24: 01:00:00",
		"01/04/24: 00:02:05",
	} {
		assert.Contains(t, out, want)
	}

	// days are listed in calendar order
	assert.Less(t, strings.Index(out, "01/03/24: "), strings.Index(out, "01/04/24: "))
}

func TestRenderDay(t *testing.T) {
	var buf bytes.Buffer

	summary := tracker.DaySummary{
		Day: "01/05/24",
		Entries: []tracker.DayEntry{
			{Project: "task2", Time: 3585},
			{Project: "task10", Time: 30},
		},
		Total: 3615,
	}

	require.NoError(t, RenderDay(&buf, summary))

	out := buf.String()

	assert.Contains(t, out, "01/05/24")
	assert.Contains(t, out, "task2: 00:59:45")
	assert.Contains(t, out, "task10: 00:00:30")
	assert.Contains(t, out, "Total: 01:00:15")
}

func TestProjectTable(t *testing.T) {
	data := ProjectTable([]models.Project{sampleProject()})

	require.Len(t, data, 3)
	assert.Equal(t, []string{"1", "writing", "01/03/24 08:00:00", "2", "01:02:05"}, data[1])
	assert.Equal(t, "01:02:05", data[2][4])
}

func TestPrintNotice(t *testing.T) {
	var buf bytes.Buffer

	n := Notifier(&buf)
	n.Notify(tracker.Notice{Kind: tracker.Warning, Message: "Project is already paused."})
	n.Notify(tracker.Notice{Kind: tracker.Success, Message: "Stopped"})

	assert.Contains(t, buf.String(), "Project is already paused.")
	assert.Contains(t, buf.String(), "Stopped")
}
