// Package report joins time entries to their projects, filters them by date
// range, and aggregates durations. All functions take the current time
// explicitly so filtering stays pure and testable.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/timetrack/internal/config"
	"github.com/julianstephens/timetrack/internal/models"
)

// Period selects the date range entries are filtered to. Ranges are
// evaluated against the entry date, not createdAt.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod validates a period string.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period: %s (expected today|week|month|all)", s)
}

// MissingProjectPolicy names what happens to entries whose project is absent
// from the supplied project list.
type MissingProjectPolicy string

// MissingProjectDrop silently excludes such entries. Projects deleted
// out-of-band or filtered out upstream are expected data drift, not an
// error.
const MissingProjectDrop MissingProjectPolicy = "drop"

// Entry is a time entry joined to its project.
type Entry struct {
	models.TimeEntry
	Project models.Project
}

// ProjectGroup is the entries of one project, in the order they appeared.
type ProjectGroup struct {
	Project models.Project
	Entries []Entry
}

// ProjectTotal is the summed duration of one project within a summary.
type ProjectTotal struct {
	Project models.Project
	Total   float64
	Entries int
}

// Summary is an aggregate report over a filtered set of entries.
type Summary struct {
	Period     Period
	Totals     []ProjectTotal
	GrandTotal float64
	EntryCount int
}

// Join resolves each entry's project by id. Under MissingProjectDrop,
// entries with no matching project are excluded.
func Join(entries []models.TimeEntry, projects []models.Project, policy MissingProjectPolicy) []Entry {
	byID := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	joined := make([]Entry, 0, len(entries))
	for _, e := range entries {
		project, ok := byID[e.ProjectID]
		if !ok && policy == MissingProjectDrop {
			continue
		}
		joined = append(joined, Entry{TimeEntry: e, Project: project})
	}
	return joined
}

// Filter keeps the entries whose date falls in the period around now.
// Entries with unparseable dates are excluded from ranged periods.
func Filter(entries []Entry, period Period, now time.Time) []Entry {
	switch period {
	case PeriodAll:
		return entries
	case PeriodToday:
		today := now.Format(config.DateFormat)
		filtered := make([]Entry, 0, len(entries))
		for _, e := range entries {
			if e.Date == today {
				filtered = append(filtered, e)
			}
		}
		return filtered
	case PeriodWeek:
		start, end := WeekBounds(now)
		return filterBetween(entries, start, end)
	case PeriodMonth:
		start, end := MonthBounds(now)
		return filterBetween(entries, start, end)
	}
	return entries
}

func filterBetween(entries []Entry, start, end time.Time) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		d, err := time.Parse(config.DateFormat, e.Date)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// WeekBounds returns the Monday and Sunday of now's week, at midnight UTC.
// The week starts on Monday; this is fixed, not user-toggleable.
func WeekBounds(now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // days since Monday
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last calendar day of now's month, at
// midnight UTC.
func MonthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// Group buckets joined entries by project, groups ordered by first
// occurrence, entries kept in their incoming order.
func Group(entries []Entry) []ProjectGroup {
	index := make(map[string]int)
	groups := make([]ProjectGroup, 0)
	for _, e := range entries {
		i, ok := index[e.Project.ID]
		if !ok {
			i = len(groups)
			index[e.Project.ID] = i
			groups = append(groups, ProjectGroup{Project: e.Project})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Summarize joins, filters, and sums durations per project. Totals are
// sorted by total duration descending. The grand total equals the direct
// sum over the filtered entries; grouping neither loses nor double-counts.
func Summarize(entries []models.TimeEntry, projects []models.Project, period Period, now time.Time) Summary {
	filtered := Filter(Join(entries, projects, MissingProjectDrop), period, now)

	var grandTotal float64
	for _, e := range filtered {
		grandTotal += e.Duration
	}

	totals := make([]ProjectTotal, 0)
	for _, g := range Group(filtered) {
		total := ProjectTotal{Project: g.Project, Entries: len(g.Entries)}
		for _, e := range g.Entries {
			total.Total += e.Duration
		}
		totals = append(totals, total)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	return Summary{
		Period:     period,
		Totals:     totals,
		GrandTotal: grandTotal,
		EntryCount: len(filtered),
	}
}
