package models

// Activity aggregates the classified intervals that share an activity id
type Activity struct {
	ID       string       `json:"id"` // docked_algeciras, transit_ceuta_tangermed, undefined...
	Name     string       `json:"name"`
	Type     ActivityType `json:"type"`
	Port     string       `json:"port"`
	Duration int64        `json:"duration"` // seconds
	Count    int          `json:"count"`
}
