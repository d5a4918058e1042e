package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timetrack/internal/duration"
	"github.com/julianstephens/timetrack/internal/models"
	"github.com/julianstephens/timetrack/internal/report"
)

type EntryListCmd struct {
	Filter  string `short:"f" help:"Date filter." enum:"today,week,month,all" default:"today"`
	ShowIDs bool   `help:"Show entry IDs." name:"show-ids"`
}

func (c *EntryListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.ListEntries()
	if err != nil {
		return err
	}
	projects, err := ctx.Store.ListProjects(true)
	if err != nil {
		return err
	}

	period, err := report.ParsePeriod(c.Filter)
	if err != nil {
		return err
	}

	joined := report.Join(entries, projects, report.MissingProjectDrop)
	filtered := report.Filter(joined, period, time.Now())
	if len(filtered) == 0 {
		fmt.Printf("No entries for %s\n", c.Filter)
		return nil
	}

	for _, group := range report.Group(filtered) {
		fmt.Println(ProjectLabel(group.Project))
		for _, e := range group.Entries {
			idStr := ""
			if c.ShowIDs {
				idStr = fmt.Sprintf(" (ID: %s)", e.ID)
			}
			line := fmt.Sprintf("  %s  %s", e.Date, duration.FormatDetailed(e.Duration))
			if e.Comment != "" {
				line += "  " + e.Comment
			}
			fmt.Println(line + idStr)
		}
	}

	return nil
}

type EntryEditCmd struct {
	ID       string  `arg:"" help:"Entry ID."`
	Duration *string `help:"New duration (e.g. 2.5, 2h30)."`
	Date     *string `help:"New date (YYYY-MM-DD)."`
	Comment  *string `help:"New comment."`
	Project  *string `help:"New project name or ID."`
}

func (c *EntryEditCmd) Run(ctx *Context) error {
	var patch models.EntryPatch

	if c.Duration != nil {
		hours, ok := duration.Parse(*c.Duration)
		if !ok || hours <= 0 {
			return fmt.Errorf("invalid duration %q (expected e.g. 2.5, 2h30, 2:30)", *c.Duration)
		}
		patch.Duration = &hours
	}
	if c.Date != nil {
		if err := ValidateDate(*c.Date); err != nil {
			return err
		}
		patch.Date = c.Date
	}
	if c.Comment != nil {
		patch.Comment = c.Comment
	}
	if c.Project != nil {
		project, err := ctx.ResolveProject(*c.Project)
		if err != nil {
			return err
		}
		patch.ProjectID = &project.ID
	}

	if patch.Duration == nil && patch.Date == nil && patch.Comment == nil && patch.ProjectID == nil {
		return fmt.Errorf("nothing to update, pass at least one of --duration, --date, --comment, --project")
	}

	entry, err := ctx.Store.UpdateEntry(c.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated entry: %s %s\n", entry.Date, duration.FormatDetailed(entry.Duration))
	return nil
}

type EntryDeleteCmd struct {
	ID    string `arg:"" help:"Entry ID."`
	Force bool   `help:"Delete without confirmation."`
}

func (c *EntryDeleteCmd) Run(ctx *Context) error {
	if !c.Force {
		confirmed := false
		confirm := huh.NewConfirm().
			Title("Delete this time entry?").
			Value(&confirmed)
		if err := confirm.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := ctx.Store.DeleteEntry(c.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("entry not found: %s", c.ID)
	}

	fmt.Println("Entry deleted")
	return nil
}
