package models

import "time"

// Record is one CSV data row keyed by header name. Empty or missing cells are nil.
type Record map[string]*string

// Get returns the trimmed cell value, or "" if the cell is null
func (r Record) Get(key string) string {
	if v, ok := r[key]; ok && v != nil {
		return *v
	}
	return ""
}

// RawRow is a validated track sample. Rows without a parsable timestamp or a
// navstatus never become a RawRow.
type RawRow struct {
	Timestamp string    `json:"timestamp"` // raw "date time" field
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	At        time.Time `json:"-"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Speed     *float64 `json:"speed"` // knots, nil when missing or negative

	NavStatus NavStatus `json:"navStatus"`

	ClosestPort *PortAnalysis `json:"closestPort,omitempty"`
	Fields      Record        `json:"fields,omitempty"` // original columns
}

// HasPosition reports whether both coordinates are present
func (r RawRow) HasPosition() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// FileContent is one named input file
type FileContent struct {
	Name    string
	Content string
}
