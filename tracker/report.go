package tracker

import (
	"slices"

	"github.com/maruel/natural"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/models"
)

// DayEntry is the time one project tracked on a given day.
type DayEntry struct {
	Project string
	Time    duration.Seconds
}

// DaySummary lists every project with time on a day and their sum.
type DaySummary struct {
	Day     string
	Entries []DayEntry
	Total   duration.Seconds
}

// sortProjects orders projects by start date, then by natural name order.
func sortProjects(projects map[string]*models.Project) []*models.Project {
	sorted := make([]*models.Project, 0, len(projects))

	for _, p := range projects {
		sorted = append(sorted, p)
	}

	slices.SortFunc(sorted, func(a, b *models.Project) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}

		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return 0
	})

	return sorted
}

// ListAll returns copies of all projects ordered by start date.
func ListAll(projects map[string]*models.Project) []models.Project {
	sorted := sortProjects(projects)
	out := make([]models.Project, len(sorted))

	for i, p := range sorted {
		out[i] = p.Clone()
	}

	return out
}

// ListOne returns a copy of the project with exactly the given name.
func ListOne(projects map[string]*models.Project, name string) (models.Project, error) {
	p, ok := projects[name]
	if !ok {
		return models.Project{}, ErrProjectNotFound.Fmt(name)
	}

	return p.Clone(), nil
}

// DayInfo collects the time tracked on day by every project, ordered like
// ListAll, and carries the entries into a total.
func DayInfo(projects map[string]*models.Project, day string) (DaySummary, error) {
	summary := DaySummary{Day: day}

	for _, p := range sortProjects(projects) {
		secs, ok := p.HoursPerDay[day]
		if !ok {
			continue
		}

		summary.Entries = append(summary.Entries, DayEntry{
			Project: p.Name,
			Time:    secs,
		})

		summary.Total += secs
	}

	if len(summary.Entries) == 0 {
		return DaySummary{}, ErrDayNotFound.Fmt(day)
	}

	return summary, nil
}

// ListAll returns copies of all saved projects ordered by start date.
func (e *Engine) ListAll() []models.Project {
	e.mu.Lock()
	defer e.mu.Unlock()

	return ListAll(e.projects)
}

// ListOne returns a copy of the named project.
func (e *Engine) ListOne(name string) (models.Project, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return ListOne(e.projects, name)
}

// DayInfo summarises the time tracked on day.
func (e *Engine) DayInfo(day string) (DaySummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return DayInfo(e.projects, day)
}
