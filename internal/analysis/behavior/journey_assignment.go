package behavior

import "github.com/jengzang/vessel-intervals-go/internal/models"

// Journey assignment defaults
const (
	DefaultDepartureRadiusKm = 3.0
	InitialJourneyIndex      = 0 // intervals before the first departure
)

// AssignJourneys sets JourneyIndex on every interval in one forward pass and
// returns the resulting journeys. The index is bumped by a docked interval
// whose start port lies within radiusKm, when it is the first interval or its
// port differs from the last departure port. The triggering interval already
// carries the new index.
func AssignJourneys(intervals []models.Interval, radiusKm float64) []models.Journey {
	journeys := []models.Journey{}
	current := InitialJourneyIndex
	lastPort := ""

	for i := range intervals {
		iv := &intervals[i]
		departed := false

		if iv.NavStatus.Kind == models.NavDocked && iv.StartPort != nil && iv.StartPort.Distance <= radiusKm {
			if i == 0 || iv.StartPort.Name != lastPort {
				current++
				lastPort = iv.StartPort.Name
				departed = true
			}
		}

		idx := current
		iv.JourneyIndex = &idx

		if len(journeys) == 0 || departed {
			j := models.Journey{Index: current, FirstInterval: i, LastInterval: i, IntervalCount: 1}
			if departed {
				j.StartPort = lastPort
			}
			journeys = append(journeys, j)
			continue
		}

		last := &journeys[len(journeys)-1]
		last.LastInterval = i
		last.IntervalCount++
	}

	return journeys
}
