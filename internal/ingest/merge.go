package ingest

import (
	"sort"
	"time"

	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// entry is a record tagged with the navstatus column of its source file
type entry struct {
	rec       models.Record
	navColumn string
	raw       string
	at        time.Time
	parsed    bool
}

// mergeTables concatenates the tables in order and sorts the records by
// timestamp. Records whose timestamp cannot be parsed follow the parsed ones,
// ordered by their raw value.
func mergeTables(tables []Table, cols Columns) []entry {
	var parsed, unparsed []entry
	for _, t := range tables {
		for _, rec := range t.Records {
			raw := rec.Get(cols.Time)
			_, _, at, ok := ParseTimestamp(raw)
			e := entry{rec: rec, navColumn: t.NavColumn, raw: raw, at: at, parsed: ok}
			if ok {
				parsed = append(parsed, e)
			} else {
				unparsed = append(unparsed, e)
			}
		}
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].at.Before(parsed[j].at)
	})
	sort.SliceStable(unparsed, func(i, j int) bool {
		return unparsed[i].raw < unparsed[j].raw
	})

	entries := make([]entry, 0, len(parsed)+len(unparsed))
	entries = append(entries, parsed...)
	return append(entries, unparsed...)
}
