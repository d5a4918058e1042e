package models

// Project is a named bucket that time entries are attributed to.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Archived  bool   `json:"archived"`
	CreatedAt string `json:"createdAt"` // RFC3339 timestamp
}

// ProjectPatch holds the mutable fields of a project. Nil fields are left
// untouched by an update. ID and CreatedAt are immutable and deliberately
// absent from the patch type.
type ProjectPatch struct {
	Name     *string
	Color    *string
	Archived *bool
}

// Apply merges the patch into the project.
func (p ProjectPatch) Apply(project *Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Color != nil {
		project.Color = *p.Color
	}
	if p.Archived != nil {
		project.Archived = *p.Archived
	}
}
