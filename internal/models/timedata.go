package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// TimeData is the document root: the single persisted structure holding all
// projects and entries. Unknown top-level fields in the document survive a
// read/rewrite cycle untouched.
type TimeData struct {
	Projects []Project
	Entries  []TimeEntry

	extra map[string]json.RawMessage
}

// NewTimeData returns an empty document.
func NewTimeData() *TimeData {
	return &TimeData{
		Projects: []Project{},
		Entries:  []TimeEntry{},
	}
}

func (d *TimeData) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Projects = []Project{}
	d.Entries = []TimeEntry{}
	d.extra = nil

	if v, ok := raw["projects"]; ok {
		if err := json.Unmarshal(v, &d.Projects); err != nil {
			return err
		}
		delete(raw, "projects")
	}
	if v, ok := raw["entries"]; ok {
		if err := json.Unmarshal(v, &d.Entries); err != nil {
			return err
		}
		delete(raw, "entries")
	}
	if len(raw) > 0 {
		d.extra = raw
	}

	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Entries == nil {
		d.Entries = []TimeEntry{}
	}

	return nil
}

func (d TimeData) MarshalJSON() ([]byte, error) {
	projects := d.Projects
	if projects == nil {
		projects = []Project{}
	}
	entries := d.Entries
	if entries == nil {
		entries = []TimeEntry{}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString(`"projects":`)
	pb, err := json.Marshal(projects)
	if err != nil {
		return nil, err
	}
	buf.Write(pb)

	buf.WriteString(`,"entries":`)
	eb, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	buf.Write(eb)

	// Unknown fields are re-emitted in a stable order.
	keys := make([]string, 0, len(d.extra))
	for k := range d.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteByte(',')
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(d.extra[k])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
