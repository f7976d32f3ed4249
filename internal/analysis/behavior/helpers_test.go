package behavior

import (
	"fmt"

	"github.com/jengzang/vessel-intervals-go/internal/models"
)

func pa(name string, km float64) *models.PortAnalysis {
	return &models.PortAnalysis{Name: name, Distance: km}
}

func fp(v float64) *float64 { return &v }

// iv builds an interval starting at hh:00 lasting one hour
func iv(hour int, nav string, start, end *models.PortAnalysis) models.Interval {
	return models.Interval{
		StartDate:       "2024-01-01",
		StartTime:       fmt.Sprintf("%02d:00:00.0", hour),
		EndDate:         "2024-01-01",
		EndTime:         fmt.Sprintf("%02d:59:59.0", hour),
		Duration:        "00:59:59",
		DurationSeconds: 3599,
		NavStatus:       models.NewNavStatus(nav),
		SampleCount:     1,
		StartPort:       start,
		EndPort:         end,
	}
}
