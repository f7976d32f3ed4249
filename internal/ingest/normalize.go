package ingest

import (
	"math"
	"strconv"

	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// Normalize turns a record into a typed row. Rows lacking a parsable
// timestamp or a navstatus are rejected here and nowhere else.
func Normalize(rec models.Record, navColumn string, cols Columns) (models.RawRow, bool) {
	nav, ok := models.ParseNavStatus(rec.Get(navColumn))
	if !ok {
		return models.RawRow{}, false
	}

	raw := rec.Get(cols.Time)
	date, clock, at, ok := ParseTimestamp(raw)
	if !ok {
		return models.RawRow{}, false
	}

	row := models.RawRow{
		Timestamp: raw,
		Date:      date,
		Time:      clock,
		At:        at,
		Latitude:  parseBounded(rec.Get(cols.Latitude), 90),
		Longitude: parseBounded(rec.Get(cols.Longitude), 180),
		Speed:     parseNumber(rec.Get(cols.Speed)),
		NavStatus: nav,
		Fields:    rec,
	}
	if row.Speed != nil && *row.Speed < 0 {
		row.Speed = nil
	}
	return row, true
}

func parseNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseBounded(s string, limit float64) *float64 {
	v := parseNumber(s)
	if v == nil || *v < -limit || *v > limit {
		return nil
	}
	return v
}
