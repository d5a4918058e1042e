package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/timetrack/internal/config"
	"github.com/julianstephens/timetrack/internal/duration"
	"github.com/julianstephens/timetrack/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	totalStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

type SummaryCmd struct {
	Period string `short:"p" help:"Summary period." enum:"week,month" default:"month"`
}

func (c *SummaryCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.ListEntries()
	if err != nil {
		return err
	}
	projects, err := ctx.Store.ListProjects(true)
	if err != nil {
		return err
	}

	now := time.Now()
	summary := report.Summarize(entries, projects, report.Period(c.Period), now)

	fmt.Println(titleStyle.Render(periodTitle(report.Period(c.Period), now)))
	fmt.Printf("%s | %s\n\n",
		totalStyle.Render("Total: "+duration.FormatDetailed(summary.GrandTotal)),
		dimStyle.Render(fmt.Sprintf("%d entries", summary.EntryCount)))

	if len(summary.Totals) == 0 {
		fmt.Println(dimStyle.Render("No time entries for this period"))
		return nil
	}

	nameWidth := 0
	for _, t := range summary.Totals {
		if len(t.Project.Name) > nameWidth {
			nameWidth = len(t.Project.Name)
		}
	}

	for _, t := range summary.Totals {
		fmt.Printf("  %s %-*s  %s\n",
			config.ColorEmoji(t.Project.Color),
			nameWidth, t.Project.Name,
			duration.FormatDetailed(t.Total))
	}

	return nil
}

func periodTitle(period report.Period, now time.Time) string {
	if period == report.PeriodWeek {
		start, end := report.WeekBounds(now)
		return fmt.Sprintf("This Week (%s - %s)", start.Format("Jan 2"), end.Format("Jan 2"))
	}
	return now.Format("January 2006")
}
