package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/timetrack/internal/logger"
	"github.com/julianstephens/timetrack/internal/models"
)

type ProjectAddCmd struct {
	Name  string `arg:"" help:"Project name."`
	Color string `short:"c" help:"Project color (hex)." default:"${defaultColor}"`
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}

	project, err := ctx.Store.CreateProject(name, c.Color)
	if err != nil {
		return err
	}

	logger.Debug("Created project", "id", project.ID, "name", project.Name)
	fmt.Printf("Added project: %s (ID: %s)\n", ProjectLabel(project), project.ID)
	return nil
}

type ProjectListCmd struct {
	All     bool `short:"a" help:"Include archived projects."`
	ShowIDs bool `help:"Show project IDs." name:"show-ids"`
}

func (c *ProjectListCmd) Run(ctx *Context) error {
	projects, err := ctx.Store.ListProjects(c.All)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Println("Projects:")
	for _, p := range projects {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", p.ID)
		}
		archived := ""
		if p.Archived {
			archived = " [archived]"
		}
		fmt.Printf("  %s%s%s\n", ProjectLabel(p), archived, idStr)
	}
	return nil
}

type ProjectEditCmd struct {
	ID    string  `arg:"" help:"Project name or ID."`
	Name  *string `help:"New project name."`
	Color *string `help:"New project color (hex)."`
}

func (c *ProjectEditCmd) Run(ctx *Context) error {
	project, err := ctx.ResolveProject(c.ID)
	if err != nil {
		return err
	}

	var patch models.ProjectPatch
	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return fmt.Errorf("project name must not be empty")
		}
		patch.Name = &name
	}
	if c.Color != nil {
		patch.Color = c.Color
	}
	if patch.Name == nil && patch.Color == nil {
		return fmt.Errorf("nothing to update, pass --name or --color")
	}

	updated, err := ctx.Store.UpdateProject(project.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated project: %s\n", ProjectLabel(updated))
	return nil
}

type ProjectArchiveCmd struct {
	ID string `arg:"" help:"Project name or ID."`
}

func (c *ProjectArchiveCmd) Run(ctx *Context) error {
	return setArchived(ctx, c.ID, true)
}

type ProjectUnarchiveCmd struct {
	ID string `arg:"" help:"Project name or ID."`
}

func (c *ProjectUnarchiveCmd) Run(ctx *Context) error {
	return setArchived(ctx, c.ID, false)
}

// setArchived flips the archived flag. Archived projects disappear from the
// default listings but keep their historical entries.
func setArchived(ctx *Context, ref string, archived bool) error {
	project, err := ctx.ResolveProject(ref)
	if err != nil {
		return err
	}

	patch := models.ProjectPatch{Archived: &archived}
	updated, err := ctx.Store.UpdateProject(project.ID, patch)
	if err != nil {
		return err
	}

	verb := "Archived"
	if !archived {
		verb = "Unarchived"
	}
	fmt.Printf("%s project: %s\n", verb, updated.Name)
	return nil
}

type ProjectDeleteCmd struct {
	ID    string `arg:"" help:"Project name or ID."`
	Force bool   `help:"Delete without confirmation."`
}

func (c *ProjectDeleteCmd) Run(ctx *Context) error {
	project, err := ctx.ResolveProject(c.ID)
	if err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Delete project %q?", project.Name)).
			Description("All time entries for this project will be deleted too.").
			Value(&confirmed)
		if err := confirm.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := ctx.Store.DeleteProject(project.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("project not found: %s", c.ID)
	}

	logger.Debug("Deleted project", "id", project.ID, "name", project.Name)
	fmt.Printf("Deleted project %q and its entries\n", project.Name)
	return nil
}
