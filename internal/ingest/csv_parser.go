package ingest

import (
	"fmt"
	"strings"

	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// Default column names of the navigation logs
const (
	ColLatitude  = "00-lathr [deg]"
	ColLongitude = "01-lonhr [deg]"
	ColSpeed     = "04-speed [knots]"
	ColNavStatus = "06-navstatus [adim]"
	ColTime      = "time"
)

// Columns maps the logical fields to header names
type Columns struct {
	Latitude  string
	Longitude string
	Speed     string
	NavStatus string // falls back to the first header containing "navstatus"
	Time      string
}

// DefaultColumns returns the column names used by the recorder
func DefaultColumns() Columns {
	return Columns{
		Latitude:  ColLatitude,
		Longitude: ColLongitude,
		Speed:     ColSpeed,
		NavStatus: ColNavStatus,
		Time:      ColTime,
	}
}

// Table is one parsed CSV file
type Table struct {
	Headers   []string
	Records   []models.Record
	NavColumn string // header holding the navstatus
}

// Len returns the number of data rows
func (t Table) Len() int {
	return len(t.Records)
}

// ResolveDelimiter maps the selector to the actual separator.
// "" means comma; a literal `\t` or "tab" means a tab character.
func ResolveDelimiter(selector string) string {
	switch selector {
	case "":
		return ","
	case `\t`, "tab", "\t":
		return "\t"
	}
	return selector
}

// ParseCSV splits CSV text into records keyed by header. The header must have
// a column whose name contains "navstatus" (any case) and a column named
// exactly cols.Time; otherwise an empty Table is returned.
// Values are trimmed, and empty or missing cells become nil.
func ParseCSV(text, delimiter string, cols Columns) Table {
	normalized := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n"))
	if normalized == "" {
		return Table{}
	}

	lines := strings.Split(normalized, "\n")
	if len(lines) < 2 {
		return Table{}
	}

	delim := ResolveDelimiter(delimiter)
	headers := splitTrim(lines[0], delim)
	for i, h := range headers {
		if h == "" {
			headers[i] = fmt.Sprintf("column_%d", i)
		}
	}

	navColumn := resolveNavColumn(headers, cols.NavStatus)
	if navColumn == "" || !hasHeader(headers, cols.Time) {
		return Table{}
	}

	records := make([]models.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitTrim(line, delim)
		rec := make(models.Record, len(headers))
		for idx, header := range headers {
			if idx < len(values) && values[idx] != "" {
				v := values[idx]
				rec[header] = &v
			} else {
				rec[header] = nil
			}
		}
		records = append(records, rec)
	}

	return Table{Headers: headers, Records: records, NavColumn: navColumn}
}

func splitTrim(line, delim string) []string {
	parts := strings.Split(line, delim)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func hasHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}

func resolveNavColumn(headers []string, preferred string) string {
	first := ""
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), "navstatus") {
			first = h
			break
		}
	}
	if first == "" {
		return ""
	}
	if preferred != "" && hasHeader(headers, preferred) {
		return preferred
	}
	return first
}
