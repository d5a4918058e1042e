package storage

import "github.com/julianstephens/timetrack/internal/models"

// Store is the persistence contract consumed by the CLI. Every mutating
// operation reads the whole document, modifies it in memory, and rewrites
// the file.
type Store interface {
	// Document
	ReadData() (*models.TimeData, error)
	WriteData(data *models.TimeData) error

	// Projects
	ListProjects(includeArchived bool) ([]models.Project, error)
	GetProject(id string) (models.Project, error)
	CreateProject(name, color string) (models.Project, error)
	UpdateProject(id string, patch models.ProjectPatch) (models.Project, error)
	DeleteProject(id string) (bool, error)

	// Entries
	ListEntries() ([]models.TimeEntry, error)
	GetEntry(id string) (models.TimeEntry, error)
	CreateEntry(projectID, date string, duration float64, comment string) (models.TimeEntry, error)
	UpdateEntry(id string, patch models.EntryPatch) (models.TimeEntry, error)
	DeleteEntry(id string) (bool, error)

	// Helpers
	LastUsedProject() (models.Project, bool, error)

	// Utils
	GetDataPath() string
}
