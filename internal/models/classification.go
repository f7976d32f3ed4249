package models

// ActivityType is the semantic label of an interval
type ActivityType string

const (
	ActivityDocked      ActivityType = "docked"
	ActivityManeuvering ActivityType = "maneuvering"
	ActivityTransit     ActivityType = "transit"
	ActivityUndefined   ActivityType = "undefined"
)

// Reasons attached to undefined classifications
const (
	ReasonNoPortData    = "no port data available"
	ReasonFarFromPorts  = "more than %g km from any port"
	ReasonConditionsNot = "conditions not met"
)

// Classification is the output of the classification rules
type Classification struct {
	Type     ActivityType `json:"type"`
	Port     string       `json:"port,omitempty"`     // docked / maneuvering
	FromPort string       `json:"fromPort,omitempty"` // transit
	ToPort   string       `json:"toPort,omitempty"`   // transit
	Reason   string       `json:"reason,omitempty"`   // undefined only
	Label    string       `json:"label"`
}
