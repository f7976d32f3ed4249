package models

// Journey is a run of consecutive intervals sharing a journey index
type Journey struct {
	Index         int    `json:"index"`
	StartPort     string `json:"startPort,omitempty"` // empty before the first departure
	IntervalCount int    `json:"intervalCount"`
	FirstInterval int    `json:"firstInterval"` // position in the interval list
	LastInterval  int    `json:"lastInterval"`
}
