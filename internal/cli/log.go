package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timetrack/internal/duration"
	"github.com/julianstephens/timetrack/internal/logger"
	"github.com/julianstephens/timetrack/internal/models"
)

type LogCmd struct {
	Duration string `arg:"" optional:"" help:"Duration (e.g. 2.5, 2h30, 2:30, 30m). Omit for an interactive form."`
	Project  string `short:"p" help:"Project name or ID. Defaults to the last used project."`
	Date     string `short:"d" help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Comment  string `short:"m" help:"Comment for the entry."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if c.Duration == "" {
		return c.runForm(ctx)
	}

	hours, ok := duration.Parse(c.Duration)
	if !ok || hours <= 0 {
		return fmt.Errorf("invalid duration %q (expected e.g. 2.5, 2h30, 2:30, 30m)", c.Duration)
	}

	project, err := c.pickProject(ctx)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = Today()
	}
	if err := ValidateDate(date); err != nil {
		return err
	}

	entry, err := ctx.Store.CreateEntry(project.ID, date, hours, strings.TrimSpace(c.Comment))
	if err != nil {
		return err
	}

	logger.Debug("Logged time entry", "id", entry.ID, "project", project.Name, "hours", hours)
	fmt.Printf("Logged %s on %s (%s)\n", duration.Format(hours), project.Name, entry.Date)
	return nil
}

// pickProject resolves the --project flag, falling back to the most
// recently used project. Without either there is no sensible default, so
// the user is pointed at the flag or the interactive form.
func (c *LogCmd) pickProject(ctx *Context) (models.Project, error) {
	if c.Project != "" {
		return ctx.ResolveProject(c.Project)
	}

	last, ok, err := ctx.Store.LastUsedProject()
	if err != nil {
		return models.Project{}, err
	}
	if ok {
		return last, nil
	}

	projects, err := ctx.Store.ListProjects(false)
	if err != nil {
		return models.Project{}, err
	}
	if len(projects) == 0 {
		return models.Project{}, fmt.Errorf("no projects found, create one first with 'timetrack project add'")
	}
	return models.Project{}, fmt.Errorf("no recently used project to default to, pass --project or run 'timetrack log' without arguments for the interactive form")
}

func (c *LogCmd) runForm(ctx *Context) error {
	projects, err := ctx.Store.ListProjects(false)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return fmt.Errorf("no projects found, create one first with 'timetrack project add'")
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(ProjectLabel(p), p.ID))
	}

	projectID := projects[0].ID
	if last, ok, err := ctx.Store.LastUsedProject(); err == nil && ok && !last.Archived {
		projectID = last.ID
	}

	var durationInput string
	date := Today()
	var comment string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(options...).
				Value(&projectID),
			huh.NewInput().
				Title("Duration").
				Description("e.g. 2.5, 2h30, 2:30, 30m").
				Validate(func(s string) error {
					hours, ok := duration.Parse(s)
					if !ok || hours <= 0 {
						return fmt.Errorf("enter a valid duration (e.g. 2.5, 2h30, 2:30)")
					}
					return nil
				}).
				Value(&durationInput),
			huh.NewInput().
				Title("Date").
				Validate(ValidateDate).
				Value(&date),
			huh.NewInput().
				Title("Comment").
				Value(&comment),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	hours, ok := duration.Parse(durationInput)
	if !ok || hours <= 0 {
		return fmt.Errorf("invalid duration %q", durationInput)
	}

	entry, err := ctx.Store.CreateEntry(projectID, date, hours, strings.TrimSpace(comment))
	if err != nil {
		return err
	}

	project, err := ctx.Store.GetProject(projectID)
	name := "project"
	if err == nil {
		name = project.Name
	}

	logger.Debug("Logged time entry", "id", entry.ID, "project", name, "hours", hours)
	fmt.Printf("Logged %s on %s (%s)\n", duration.Format(hours), name, entry.Date)
	return nil
}
