package models

// EndReason tags why an interval was closed
type EndReason string

const (
	EndStatusChange EndReason = "status_change"
	EndTimeGap      EndReason = "time_gap"
	EndOfData       EndReason = "end_of_data"
)

// CoordinatePoint is one in-run sample with a valid position
type CoordinatePoint struct {
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timestamp string    `json:"timestamp"`
	Speed     *float64  `json:"speed"`
	NavStatus NavStatus `json:"navStatus"`
}

// Interval is a maximal run of samples sharing a navstatus, uninterrupted by a time gap
type Interval struct {
	// Temporal info
	StartDate       string `json:"startDate"`
	StartTime       string `json:"startTime"`
	EndDate         string `json:"endDate"`
	EndTime         string `json:"endTime"`
	Duration        string `json:"duration"`        // HH:MM:SS
	DurationSeconds int64  `json:"durationSeconds"` // same value as Duration

	NavStatus   NavStatus `json:"navStatus"`
	AvgSpeed    *float64  `json:"avgSpeed"`
	SampleCount int       `json:"sampleCount"`
	EndReason   EndReason `json:"endReason"`

	// Spatial info
	StartLat      *float64          `json:"startLat"`
	StartLon      *float64          `json:"startLon"`
	EndLat        *float64          `json:"endLat"`
	EndLon        *float64          `json:"endLon"`
	StartPort     *PortAnalysis     `json:"startPort"`
	EndPort       *PortAnalysis     `json:"endPort"`
	Coordinates   []CoordinatePoint `json:"coordinates"`
	TotalDistance float64           `json:"totalDistance"` // km along the in-run points

	// Assigned after segmentation
	JourneyIndex   *int            `json:"journeyIndex"`
	Classification *Classification `json:"classification,omitempty"`
}

// StartStamp returns "date time" of the first sample
func (i Interval) StartStamp() string {
	return i.StartDate + " " + i.StartTime
}

// EndStamp returns "date time" of the last sample
func (i Interval) EndStamp() string {
	return i.EndDate + " " + i.EndTime
}
