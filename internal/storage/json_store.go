package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/timetrack/internal/models"
)

// ErrNotFound is returned when a project or entry id does not exist.
var ErrNotFound = errors.New("not found")

// JSONStore persists the whole document as indented JSON at a single path.
// It keeps no in-memory state: every operation re-reads the file, so a crash
// between read and write leaves the prior document intact.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Nothing guards the data file against concurrent external writers (a
//     second process, or a cloud-sync conflict). This is an accepted
//     limitation, not a guarantee.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store over the given data file path. The file is
// created on first read.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// ReadData loads and parses the document. A missing file is treated as
// first-run: an empty document is persisted and returned. Malformed content
// is a fatal parse error; silently discarding user data would be worse than
// failing loudly.
func (s *JSONStore) ReadData() (*models.TimeData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			data := models.NewTimeData()
			if err := s.WriteData(data); err != nil {
				return nil, err
			}
			return data, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	data := &models.TimeData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", s.path, err)
	}

	return data, nil
}

// WriteData serializes the full document and overwrites the file, creating
// parent directories if absent.
func (s *JSONStore) WriteData(data *models.TimeData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}

	return nil
}

// ListProjects returns all projects in storage order. Archived projects are
// filtered out unless includeArchived is set.
func (s *JSONStore) ListProjects(includeArchived bool) ([]models.Project, error) {
	data, err := s.ReadData()
	if err != nil {
		return nil, err
	}

	if includeArchived {
		return data.Projects, nil
	}

	projects := make([]models.Project, 0, len(data.Projects))
	for _, p := range data.Projects {
		if !p.Archived {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (s *JSONStore) GetProject(id string) (models.Project, error) {
	data, err := s.ReadData()
	if err != nil {
		return models.Project{}, err
	}

	for _, p := range data.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
}

// CreateProject appends a new project with a fresh id and persists the
// document. The color is stored as given; palette membership is not checked.
func (s *JSONStore) CreateProject(name, color string) (models.Project, error) {
	data, err := s.ReadData()
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		Archived:  false,
		CreatedAt: now(),
	}
	data.Projects = append(data.Projects, project)

	if err := s.WriteData(data); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// UpdateProject merges the patch into the stored project. ID and CreatedAt
// are immutable; the patch type cannot carry them.
func (s *JSONStore) UpdateProject(id string, patch models.ProjectPatch) (models.Project, error) {
	data, err := s.ReadData()
	if err != nil {
		return models.Project{}, err
	}

	for i := range data.Projects {
		if data.Projects[i].ID == id {
			patch.Apply(&data.Projects[i])
			if err := s.WriteData(data); err != nil {
				return models.Project{}, err
			}
			return data.Projects[i], nil
		}
	}
	return models.Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
}

// DeleteProject removes the project and every entry referencing it in the
// same document rewrite, so no orphaned entries can persist. Returns false
// without writing when the project does not exist.
func (s *JSONStore) DeleteProject(id string) (bool, error) {
	data, err := s.ReadData()
	if err != nil {
		return false, err
	}

	projects := data.Projects[:0]
	found := false
	for _, p := range data.Projects {
		if p.ID == id {
			found = true
			continue
		}
		projects = append(projects, p)
	}
	if !found {
		return false, nil
	}
	data.Projects = projects

	entries := data.Entries[:0]
	for _, e := range data.Entries {
		if e.ProjectID != id {
			entries = append(entries, e)
		}
	}
	data.Entries = entries

	if err := s.WriteData(data); err != nil {
		return false, err
	}
	return true, nil
}

// ListEntries returns all entries sorted by date descending, ties broken by
// createdAt descending: most recent work, most recently logged, first.
func (s *JSONStore) ListEntries() ([]models.TimeEntry, error) {
	data, err := s.ReadData()
	if err != nil {
		return nil, err
	}

	entries := data.Entries
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return createdAfter(entries[i].CreatedAt, entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *JSONStore) GetEntry(id string) (models.TimeEntry, error) {
	data, err := s.ReadData()
	if err != nil {
		return models.TimeEntry{}, err
	}

	for _, e := range data.Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.TimeEntry{}, fmt.Errorf("entry %s: %w", id, ErrNotFound)
}

// CreateEntry appends a new entry and persists the document. The projectID
// is not verified to exist; the report layer drops entries whose project is
// missing.
func (s *JSONStore) CreateEntry(projectID, date string, dur float64, comment string) (models.TimeEntry, error) {
	data, err := s.ReadData()
	if err != nil {
		return models.TimeEntry{}, err
	}

	entry := models.TimeEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Date:      date,
		Duration:  dur,
		Comment:   comment,
		CreatedAt: now(),
	}
	data.Entries = append(data.Entries, entry)

	if err := s.WriteData(data); err != nil {
		return models.TimeEntry{}, err
	}
	return entry, nil
}

func (s *JSONStore) UpdateEntry(id string, patch models.EntryPatch) (models.TimeEntry, error) {
	data, err := s.ReadData()
	if err != nil {
		return models.TimeEntry{}, err
	}

	for i := range data.Entries {
		if data.Entries[i].ID == id {
			patch.Apply(&data.Entries[i])
			if err := s.WriteData(data); err != nil {
				return models.TimeEntry{}, err
			}
			return data.Entries[i], nil
		}
	}
	return models.TimeEntry{}, fmt.Errorf("entry %s: %w", id, ErrNotFound)
}

// DeleteEntry removes the entry. Returns false without writing when the
// entry does not exist.
func (s *JSONStore) DeleteEntry(id string) (bool, error) {
	data, err := s.ReadData()
	if err != nil {
		return false, err
	}

	entries := data.Entries[:0]
	found := false
	for _, e := range data.Entries {
		if e.ID == id {
			found = true
			continue
		}
		entries = append(entries, e)
	}
	if !found {
		return false, nil
	}
	data.Entries = entries

	if err := s.WriteData(data); err != nil {
		return false, err
	}
	return true, nil
}

// LastUsedProject resolves the project of the most recently logged entry,
// by createdAt rather than entry date. The second return value is false when
// there are no entries or the referenced project no longer exists.
func (s *JSONStore) LastUsedProject() (models.Project, bool, error) {
	data, err := s.ReadData()
	if err != nil {
		return models.Project{}, false, err
	}
	if len(data.Entries) == 0 {
		return models.Project{}, false, nil
	}

	latest := data.Entries[0]
	for _, e := range data.Entries[1:] {
		if createdAfter(e.CreatedAt, latest.CreatedAt) {
			latest = e
		}
	}

	for _, p := range data.Projects {
		if p.ID == latest.ProjectID {
			return p, true, nil
		}
	}
	return models.Project{}, false, nil
}

// GetDataPath returns the path to the underlying data file.
func (s *JSONStore) GetDataPath() string {
	return s.path
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// createdAfter reports whether createdAt a is strictly later than b.
// RFC 3339 serializers trim trailing fractional zeros ("10:00:00.1Z" vs
// "10:00:00.12Z"), so the strings must be parsed, not compared directly.
// Unparseable values fall back to a string compare.
func createdAfter(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA != nil || errB != nil {
		return a > b
	}
	return ta.After(tb)
}
