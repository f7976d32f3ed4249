package models

// RouteType constants
const (
	RouteComplete   = "complete"
	RouteIncomplete = "incomplete"
)

// Route spans from a docked-at-port interval to the next docking at another port
type Route struct {
	ID        string `json:"id"`
	StartPort string `json:"startPort"`
	EndPort   string `json:"endPort"`
	StartTime string `json:"startTime"` // "date time"
	EndTime   string `json:"endTime"`

	TotalDuration string   `json:"totalDuration"` // HH:MM:SS, hours may exceed 24
	TotalSeconds  int64    `json:"totalSeconds"`
	AvgSpeed      *float64 `json:"avgSpeed"`
	Distance      float64  `json:"distance"` // straight line, km
	Type          string   `json:"type"`

	Intervals  []Interval `json:"intervals"`
	Activities []Activity `json:"activities"`
}
