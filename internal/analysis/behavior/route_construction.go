package behavior

import (
	"fmt"

	"github.com/jengzang/vessel-intervals-go/internal/analysis/segment"
	"github.com/jengzang/vessel-intervals-go/internal/models"
	"github.com/jengzang/vessel-intervals-go/internal/spatial"
)

// MinRouteIntervals is the smallest batch that can hold a route:
// departure, passage and arrival
const MinRouteIntervals = 3

const unknownPort = "Unknown"

// openRoute is the route under construction
type openRoute struct {
	origin    string
	intervals []models.Interval
}

// BuildRoutes scans the interval list for port-to-port excursions.
//
// A route opens on a docked interval whose start and end ports match and
// that follows a maneuvering or transit interval; any route still open is
// completed first. The open route closes after a docked interval at a single
// port other than its origin when the next interval gets underway again. A
// route left open at the end of the list is completed as incomplete.
func BuildRoutes(intervals []models.Interval) []models.Route {
	routes := []models.Route{}
	if len(intervals) < MinRouteIntervals {
		return routes
	}

	var current *openRoute
	for i, iv := range intervals {
		var prev, next *models.Interval
		if i > 0 {
			prev = &intervals[i-1]
		}
		if i+1 < len(intervals) {
			next = &intervals[i+1]
		}

		if iv.NavStatus.Kind == models.NavDocked && dockedAtOnePort(iv) && prev != nil && prev.NavStatus.IsUnderway() {
			if current != nil {
				routes = completeRoute(routes, current, models.RouteComplete)
			}
			current = &openRoute{origin: iv.StartPort.Name}
		}

		if current == nil {
			continue
		}
		current.intervals = append(current.intervals, iv)

		if iv.NavStatus.Kind == models.NavDocked && dockedAtOnePort(iv) && iv.StartPort.Name != current.origin &&
			next != nil && next.NavStatus.IsUnderway() {
			routes = completeRoute(routes, current, models.RouteComplete)
			current = nil
		}
	}

	if current != nil {
		routes = completeRoute(routes, current, models.RouteIncomplete)
	}

	return routes
}

func dockedAtOnePort(iv models.Interval) bool {
	return iv.StartPort != nil && iv.EndPort != nil && iv.StartPort.Name == iv.EndPort.Name
}

// completeRoute computes the route statistics; empty routes are dropped
func completeRoute(routes []models.Route, r *openRoute, routeType string) []models.Route {
	if len(r.intervals) == 0 {
		return routes
	}

	first := r.intervals[0]
	last := r.intervals[len(r.intervals)-1]

	origin := unknownPort
	if first.StartPort != nil {
		origin = first.StartPort.Name
	}

	// destination: the last end port that differs from the origin
	destination := origin
	for i := len(r.intervals) - 1; i >= 0; i-- {
		if p := r.intervals[i].EndPort; p != nil && p.Name != origin {
			destination = p.Name
			break
		}
	}

	var totalSeconds int64
	speedSum, speedCount := 0.0, 0
	for _, iv := range r.intervals {
		totalSeconds += iv.DurationSeconds
		if iv.AvgSpeed != nil && *iv.AvgSpeed > 0 {
			speedSum += *iv.AvgSpeed
			speedCount++
		}
	}

	var avgSpeed *float64
	if speedCount > 0 {
		v := spatial.Round2(speedSum / float64(speedCount))
		avgSpeed = &v
	}

	distance := 0.0
	if first.StartLat != nil && first.StartLon != nil && last.EndLat != nil && last.EndLon != nil {
		distance = spatial.Round2(spatial.DistanceKm(*first.StartLat, *first.StartLon, *last.EndLat, *last.EndLon))
	}

	return append(routes, models.Route{
		ID:            fmt.Sprintf("route_%d", len(routes)+1),
		StartPort:     origin,
		EndPort:       destination,
		StartTime:     first.StartStamp(),
		EndTime:       last.EndStamp(),
		TotalDuration: segment.FormatHMS(totalSeconds),
		TotalSeconds:  totalSeconds,
		AvgSpeed:      avgSpeed,
		Distance:      distance,
		Type:          routeType,
		Intervals:     r.intervals,
		Activities:    []models.Activity{},
	})
}
