// Package classify maps an interval's navstatus and endpoint ports to an
// activity label. Every consumer (interval tagging, routes, activity totals)
// goes through Classify.
package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// Thresholds are the classification radii in km. Docked and maneuvering
// comparisons are strict.
type Thresholds struct {
	DockedKm          float64
	ManeuveringKm     float64
	UndefinedBeyondKm float64
}

// DefaultThresholds returns 4 / 10 / 40 km
func DefaultThresholds() Thresholds {
	return Thresholds{
		DockedKm:          4,
		ManeuveringKm:     10,
		UndefinedBeyondKm: 40,
	}
}

// Classify labels one interval
func Classify(nav models.NavStatus, startPort, endPort *models.PortAnalysis, th Thresholds) models.Classification {
	if startPort == nil || endPort == nil {
		return undefined(models.ReasonNoPortData)
	}

	samePort := startPort.Name == endPort.Name

	switch {
	case nav.Kind == models.NavDocked && samePort &&
		startPort.Distance < th.DockedKm && endPort.Distance < th.DockedKm:
		return models.Classification{
			Type:  models.ActivityDocked,
			Port:  startPort.Name,
			Label: "Docked at " + startPort.Name,
		}

	case nav.Kind == models.NavManeuvering && samePort &&
		startPort.Distance < th.ManeuveringKm && endPort.Distance < th.ManeuveringKm:
		return models.Classification{
			Type:  models.ActivityManeuvering,
			Port:  startPort.Name,
			Label: "Maneuvering at " + startPort.Name,
		}

	case nav.Kind == models.NavTransit && !samePort:
		return models.Classification{
			Type:     models.ActivityTransit,
			FromPort: startPort.Name,
			ToPort:   endPort.Name,
			Label:    fmt.Sprintf("Transit %s → %s", startPort.Name, endPort.Name),
		}
	}

	if math.Max(startPort.Distance, endPort.Distance) > th.UndefinedBeyondKm {
		return undefined(fmt.Sprintf(models.ReasonFarFromPorts, th.UndefinedBeyondKm))
	}
	return undefined(models.ReasonConditionsNot)
}

// Locator returns the nearest port without any distance ceiling
type Locator interface {
	Nearest(lat, lon *float64) (models.PortAnalysis, bool)
}

// Interval classifies a segmented interval. The endpoint ports are looked up
// again without the tagging ceiling so the 10 km and 40 km radii stay
// reachable; with a nil locator the tagged StartPort/EndPort are used.
func Interval(iv models.Interval, loc Locator, th Thresholds) models.Classification {
	if loc == nil {
		return Classify(iv.NavStatus, iv.StartPort, iv.EndPort, th)
	}
	return Classify(iv.NavStatus, nearest(loc, iv.StartLat, iv.StartLon), nearest(loc, iv.EndLat, iv.EndLon), th)
}

func nearest(loc Locator, lat, lon *float64) *models.PortAnalysis {
	pa, ok := loc.Nearest(lat, lon)
	if !ok {
		return nil
	}
	return &pa
}

// ActivityID returns the grouping key of a classification, e.g.
// docked_tangermed or transit_ceuta_algeciras
func ActivityID(c models.Classification) string {
	switch c.Type {
	case models.ActivityDocked, models.ActivityManeuvering:
		return string(c.Type) + "_" + portKey(c.Port)
	case models.ActivityTransit:
		return string(c.Type) + "_" + portKey(c.FromPort) + "_" + portKey(c.ToPort)
	}
	return string(models.ActivityUndefined)
}

func undefined(reason string) models.Classification {
	return models.Classification{
		Type:   models.ActivityUndefined,
		Reason: reason,
		Label:  "Undefined",
	}
}

func portKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
