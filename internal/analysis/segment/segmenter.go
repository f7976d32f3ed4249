package segment

import (
	"sort"
	"time"

	"github.com/jengzang/vessel-intervals-go/internal/models"
	"github.com/jengzang/vessel-intervals-go/internal/spatial"
)

// Default thresholds
const (
	DefaultGapThreshold    = 600 * time.Millisecond
	DefaultPortTagRadiusKm = 5.0
)

// PortLocator finds the nearest port within a radius
type PortLocator interface {
	NearestWithin(lat, lon *float64, maxKm float64) *models.PortAnalysis
}

// Options holds the segmentation thresholds
type Options struct {
	GapThreshold    time.Duration // <= 0 disables gap detection
	PortTagRadiusKm float64
}

// DefaultOptions returns the thresholds the logs were tuned for
func DefaultOptions() Options {
	return Options{
		GapThreshold:    DefaultGapThreshold,
		PortTagRadiusKm: DefaultPortTagRadiusKm,
	}
}

// Segment scans rows in chronological order and emits one interval per run of
// equal navstatus. A run closes when the status changes, when consecutive
// samples are further apart than the gap threshold, or at the end of the data.
// In every case the last row of the run is the closing boundary; the row that
// triggered the close opens the next run.
func Segment(rows []models.RawRow, locator PortLocator, opts Options) []models.Interval {
	rows = usable(rows)
	if len(rows) == 0 {
		return []models.Interval{}
	}

	var (
		intervals []models.Interval
		starts    []time.Time
		start     = 0
	)
	emit := func(end int, reason models.EndReason) {
		intervals = append(intervals, buildInterval(rows[start:end], reason, locator, opts))
		starts = append(starts, rows[start].At)
	}

	for i := 1; i < len(rows); i++ {
		if opts.GapThreshold > 0 && absDuration(rows[i].At.Sub(rows[i-1].At)) > opts.GapThreshold {
			emit(i, models.EndTimeGap)
			start = i
			continue
		}
		if !rows[i].NavStatus.Equal(rows[start].NavStatus) {
			emit(i, models.EndStatusChange)
			start = i
		}
	}
	emit(len(rows), models.EndOfData)

	// Already ordered for sorted input; keeps the guarantee for callers that
	// merged files without sorting.
	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return starts[order[a]].Before(starts[order[b]])
	})
	sorted := make([]models.Interval, len(intervals))
	for i, idx := range order {
		sorted[i] = intervals[idx]
	}
	return sorted
}

// usable drops rows that could not anchor an interval
func usable(rows []models.RawRow) []models.RawRow {
	for i := range rows {
		if rows[i].At.IsZero() || rows[i].NavStatus.Code == "" {
			out := make([]models.RawRow, 0, len(rows))
			for _, r := range rows {
				if !r.At.IsZero() && r.NavStatus.Code != "" {
					out = append(out, r)
				}
			}
			return out
		}
	}
	return rows
}

func buildInterval(run []models.RawRow, reason models.EndReason, locator PortLocator, opts Options) models.Interval {
	first, last := run[0], run[len(run)-1]
	seconds := TimeOfDaySeconds(first.Time, last.Time)

	interval := models.Interval{
		StartDate:       first.Date,
		StartTime:       first.Time,
		EndDate:         last.Date,
		EndTime:         last.Time,
		Duration:        FormatHMS(seconds),
		DurationSeconds: seconds,
		NavStatus:       first.NavStatus,
		AvgSpeed:        averageSpeed(run),
		SampleCount:     len(run),
		EndReason:       reason,
		StartLat:        copyFloat(first.Latitude),
		StartLon:        copyFloat(first.Longitude),
		EndLat:          copyFloat(last.Latitude),
		EndLon:          copyFloat(last.Longitude),
		Coordinates:     []models.CoordinatePoint{},
	}

	if locator != nil {
		interval.StartPort = locator.NearestWithin(first.Latitude, first.Longitude, opts.PortTagRadiusKm)
		interval.EndPort = locator.NearestWithin(last.Latitude, last.Longitude, opts.PortTagRadiusKm)
	}

	path := make([]spatial.Point, 0, len(run))
	for _, r := range run {
		if !r.HasPosition() || !spatial.ValidCoordinate(*r.Latitude, *r.Longitude) {
			continue
		}
		interval.Coordinates = append(interval.Coordinates, models.CoordinatePoint{
			Lat:       *r.Latitude,
			Lon:       *r.Longitude,
			Timestamp: r.Timestamp,
			Speed:     copyFloat(r.Speed),
			NavStatus: r.NavStatus,
		})
		path = append(path, spatial.Point{Lat: *r.Latitude, Lon: *r.Longitude})
	}
	interval.TotalDistance = spatial.Round2(spatial.PathLengthKm(path))

	return interval
}

// averageSpeed ignores missing and negative speeds; nil when none remain
func averageSpeed(run []models.RawRow) *float64 {
	sum, n := 0.0, 0
	for _, r := range run {
		if r.Speed == nil || *r.Speed < 0 {
			continue
		}
		sum += *r.Speed
		n++
	}
	if n == 0 {
		return nil
	}
	avg := spatial.Round2(sum / float64(n))
	return &avg
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
