package stats

import (
	"sort"

	"github.com/jengzang/vessel-intervals-go/internal/analysis/classify"
	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// Activities groups intervals by activity id, summing duration and count.
// Intervals without port data on both ends are skipped. The result is sorted
// by total duration, longest first; ties keep first-seen order.
func Activities(intervals []models.Interval, loc classify.Locator, th classify.Thresholds) []models.Activity {
	activities := []models.Activity{}
	index := make(map[string]int)

	for _, iv := range intervals {
		c := classify.Interval(iv, loc, th)
		if c.Type == models.ActivityUndefined && c.Reason == models.ReasonNoPortData {
			continue
		}

		id := classify.ActivityID(c)
		pos, ok := index[id]
		if !ok {
			pos = len(activities)
			index[id] = pos
			activities = append(activities, models.Activity{
				ID:   id,
				Name: c.Label,
				Type: c.Type,
				Port: activityPort(c),
			})
		}
		activities[pos].Duration += iv.DurationSeconds
		activities[pos].Count++
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Duration > activities[j].Duration
	})
	return activities
}

func activityPort(c models.Classification) string {
	switch c.Type {
	case models.ActivityDocked, models.ActivityManeuvering:
		return c.Port
	case models.ActivityTransit:
		return c.FromPort + " → " + c.ToPort
	}
	return c.Reason
}
