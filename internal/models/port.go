package models

// Port is a named reference point used for nearest-port tagging
type Port struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// PortAnalysis is the result of a nearest-port lookup
type PortAnalysis struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"` // km, rounded to 2 decimals
}
