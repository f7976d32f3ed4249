package stats

import "github.com/jengzang/vessel-intervals-go/internal/models"

// Summarize builds the batch counters. Row and file counts come from the
// ingest step and are passed through unchanged.
func Summarize(intervals []models.Interval, totalRows, validRows, filesProcessed int) models.Summary {
	s := models.Summary{
		TotalIntervals: len(intervals),
		TotalRows:      totalRows,
		ValidRows:      validRows,
		FilesProcessed: filesProcessed,
		StatusCounts:   make(map[string]int),
	}

	for _, iv := range intervals {
		s.StatusCounts[iv.NavStatus.Code]++
		s.TotalCoordinatePoints += len(iv.Coordinates)

		switch iv.NavStatus.Kind {
		case models.NavDocked:
			s.AnchoredIntervals++
		case models.NavManeuvering:
			s.ManeuveringIntervals++
		case models.NavTransit:
			s.TransitIntervals++
		}
	}

	return s
}
