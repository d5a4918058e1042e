package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/timetrack/internal/config"
	"github.com/julianstephens/timetrack/internal/models"
	"github.com/julianstephens/timetrack/internal/storage"
)

type Context struct {
	Store storage.Store
}

// Today returns today's date in the standard YYYY-MM-DD format.
func Today() string {
	return time.Now().Format(config.DateFormat)
}

// ValidateDate checks a date string against the standard format.
func ValidateDate(date string) error {
	if _, err := time.Parse(config.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return nil
}

// ResolveProject finds a project by id or by case-insensitive name.
// Archived projects are matched too, so historical entries stay editable.
func (c *Context) ResolveProject(ref string) (models.Project, error) {
	projects, err := c.Store.ListProjects(true)
	if err != nil {
		return models.Project{}, err
	}

	for _, p := range projects {
		if p.ID == ref {
			return p, nil
		}
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("no project matches %q", ref)
}

// ProjectLabel renders a project as a colored dot plus its name.
func ProjectLabel(p models.Project) string {
	return config.ColorEmoji(p.Color) + " " + p.Name
}
