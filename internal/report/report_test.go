package report

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/timetrack/internal/models"
)

var testProjects = []models.Project{
	{ID: "p1", Name: "Alpha", Color: "#3B82F6", CreatedAt: "2025-01-01T00:00:00Z"},
	{ID: "p2", Name: "Beta", Color: "#EF4444", CreatedAt: "2025-01-01T00:00:00Z"},
}

func entry(id, projectID, date string, hours float64) models.TimeEntry {
	return models.TimeEntry{
		ID:        id,
		ProjectID: projectID,
		Date:      date,
		Duration:  hours,
		CreatedAt: date + "T12:00:00Z",
	}
}

func TestJoinDropsMissingProjects(t *testing.T) {
	entries := []models.TimeEntry{
		entry("e1", "p1", "2025-06-01", 1),
		entry("e2", "ghost", "2025-06-01", 2),
		entry("e3", "p2", "2025-06-02", 3),
	}

	joined := Join(entries, testProjects, MissingProjectDrop)
	if len(joined) != 2 {
		t.Fatalf("Join() kept %d entries, want 2", len(joined))
	}
	for _, e := range joined {
		if e.ProjectID == "ghost" {
			t.Error("Join() kept an entry with a missing project")
		}
	}
	if joined[0].Project.Name != "Alpha" || joined[1].Project.Name != "Beta" {
		t.Errorf("Join() resolved projects incorrectly: %+v", joined)
	}
}

func TestFilterToday(t *testing.T) {
	// Fixed current date; createdAt must not influence the result
	now := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

	entries := Join([]models.TimeEntry{
		entry("e1", "p1", "2025-06-11", 1),
		entry("e2", "p1", "2025-06-10", 2),
		entry("e3", "p2", "2025-06-12", 3),
	}, testProjects, MissingProjectDrop)

	filtered := Filter(entries, PeriodToday, now)
	if len(filtered) != 1 || filtered[0].ID != "e1" {
		t.Errorf("Filter(today) = %+v, want only e1", filtered)
	}
}

func TestFilterWeek(t *testing.T) {
	// 2025-06-11 is a Wednesday; its week runs Mon 06-09 through Sun 06-15
	now := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

	entries := Join([]models.TimeEntry{
		entry("mon", "p1", "2025-06-09", 1),
		entry("sun", "p1", "2025-06-15", 1),
		entry("before", "p1", "2025-06-08", 1),
		entry("after", "p1", "2025-06-16", 1),
	}, testProjects, MissingProjectDrop)

	filtered := Filter(entries, PeriodWeek, now)
	var got []string
	for _, e := range filtered {
		got = append(got, e.ID)
	}
	want := []string{"mon", "sun"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(week) = %v, want %v", got, want)
	}
}

func TestFilterMonth(t *testing.T) {
	now := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

	entries := Join([]models.TimeEntry{
		entry("first", "p1", "2025-06-01", 1),
		entry("last", "p1", "2025-06-30", 1),
		entry("may", "p1", "2025-05-31", 1),
		entry("july", "p1", "2025-07-01", 1),
	}, testProjects, MissingProjectDrop)

	filtered := Filter(entries, PeriodMonth, now)
	var got []string
	for _, e := range filtered {
		got = append(got, e.ID)
	}
	want := []string{"first", "last"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(month) = %v, want %v", got, want)
	}
}

func TestFilterAll(t *testing.T) {
	now := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

	entries := Join([]models.TimeEntry{
		entry("e1", "p1", "2020-01-01", 1),
		entry("e2", "p1", "2030-12-31", 1),
	}, testProjects, MissingProjectDrop)

	if filtered := Filter(entries, PeriodAll, now); len(filtered) != 2 {
		t.Errorf("Filter(all) kept %d entries, want 2", len(filtered))
	}
}

func TestWeekBoundsOnSunday(t *testing.T) {
	// A Sunday still belongs to the week that started the previous Monday
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)

	start, end := WeekBounds(now)
	if got := start.Format("2006-01-02"); got != "2025-06-09" {
		t.Errorf("WeekBounds() start = %s, want 2025-06-09", got)
	}
	if got := end.Format("2006-01-02"); got != "2025-06-15" {
		t.Errorf("WeekBounds() end = %s, want 2025-06-15", got)
	}
}

func TestMonthBounds(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	start, end := MonthBounds(now)
	if got := start.Format("2006-01-02"); got != "2024-02-01" {
		t.Errorf("MonthBounds() start = %s, want 2024-02-01", got)
	}
	// 2024 is a leap year
	if got := end.Format("2006-01-02"); got != "2024-02-29" {
		t.Errorf("MonthBounds() end = %s, want 2024-02-29", got)
	}
}

func TestGroupInsertionOrder(t *testing.T) {
	entries := Join([]models.TimeEntry{
		entry("e1", "p2", "2025-06-01", 1),
		entry("e2", "p1", "2025-06-02", 2),
		entry("e3", "p2", "2025-06-03", 3),
	}, testProjects, MissingProjectDrop)

	groups := Group(entries)
	if len(groups) != 2 {
		t.Fatalf("Group() returned %d groups, want 2", len(groups))
	}
	if groups[0].Project.ID != "p2" || groups[1].Project.ID != "p1" {
		t.Errorf("Group() order = [%s %s], want first-occurrence order [p2 p1]",
			groups[0].Project.ID, groups[1].Project.ID)
	}
	if len(groups[0].Entries) != 2 || len(groups[1].Entries) != 1 {
		t.Errorf("Group() sizes = [%d %d], want [2 1]", len(groups[0].Entries), len(groups[1].Entries))
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

	entries := []models.TimeEntry{
		entry("e1", "p1", "2025-06-09", 1.5),
		entry("e2", "p2", "2025-06-10", 4),
		entry("e3", "p1", "2025-06-11", 1),
		entry("e4", "ghost", "2025-06-11", 10), // dropped: missing project
		entry("e5", "p1", "2025-05-01", 8),     // dropped: outside week
	}

	summary := Summarize(entries, testProjects, PeriodWeek, now)

	if summary.EntryCount != 3 {
		t.Errorf("Summarize() entry count = %d, want 3", summary.EntryCount)
	}
	if math.Abs(summary.GrandTotal-6.5) > 1e-9 {
		t.Errorf("Summarize() grand total = %v, want 6.5", summary.GrandTotal)
	}

	if len(summary.Totals) != 2 {
		t.Fatalf("Summarize() returned %d totals, want 2", len(summary.Totals))
	}
	// Sorted by total descending: Beta (4) before Alpha (2.5)
	if summary.Totals[0].Project.ID != "p2" || math.Abs(summary.Totals[0].Total-4) > 1e-9 {
		t.Errorf("Summarize() first total = %+v, want Beta with 4h", summary.Totals[0])
	}
	if summary.Totals[1].Project.ID != "p1" || math.Abs(summary.Totals[1].Total-2.5) > 1e-9 {
		t.Errorf("Summarize() second total = %+v, want Alpha with 2.5h", summary.Totals[1])
	}

	// Grand total must equal the sum across groups: no loss, no double counting
	var groupSum float64
	for _, pt := range summary.Totals {
		groupSum += pt.Total
	}
	if math.Abs(groupSum-summary.GrandTotal) > 1e-9 {
		t.Errorf("sum of group totals = %v, grand total = %v, want equal", groupSum, summary.GrandTotal)
	}
}
