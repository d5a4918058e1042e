package models

// TimeEntry is one recorded block of work: a project, a date, a duration in
// decimal hours, and an optional comment. Date is the day the work applies
// to; CreatedAt is when the entry was logged and breaks ordering ties.
type TimeEntry struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Date      string  `json:"date"` // YYYY-MM-DD format
	Duration  float64 `json:"duration"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"` // RFC3339 timestamp
}

// EntryPatch holds the mutable fields of a time entry. Nil fields are left
// untouched by an update. ID and CreatedAt are immutable and deliberately
// absent from the patch type.
type EntryPatch struct {
	ProjectID *string
	Date      *string
	Duration  *float64
	Comment   *string
}

// Apply merges the patch into the entry.
func (p EntryPatch) Apply(entry *TimeEntry) {
	if p.ProjectID != nil {
		entry.ProjectID = *p.ProjectID
	}
	if p.Date != nil {
		entry.Date = *p.Date
	}
	if p.Duration != nil {
		entry.Duration = *p.Duration
	}
	if p.Comment != nil {
		entry.Comment = *p.Comment
	}
}
