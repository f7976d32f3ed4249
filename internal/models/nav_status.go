package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NavKind is the semantic variant behind a raw navigation status code
type NavKind int

const (
	NavUnknown     NavKind = iota
	NavDocked              // 0.0 anchored / docked
	NavManeuvering         // 1.0
	NavTransit             // 2.0 navigating
)

// Canonical navstatus codes as they appear in the logs
const (
	NavCodeDocked      = "0.0"
	NavCodeManeuvering = "1.0"
	NavCodeTransit     = "2.0"
)

// String returns the lower-case name of the kind
func (k NavKind) String() string {
	switch k {
	case NavDocked:
		return "docked"
	case NavManeuvering:
		return "maneuvering"
	case NavTransit:
		return "transit"
	default:
		return "unknown"
	}
}

// NavStatus keeps the raw code for exact comparisons and display, plus its kind.
// Two statuses are equal only when their codes are byte-identical.
type NavStatus struct {
	Code string
	Kind NavKind
}

// ParseNavStatus trims the raw cell and resolves its kind.
// Returns false for an empty code.
func ParseNavStatus(raw string) (NavStatus, bool) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return NavStatus{}, false
	}
	return NavStatus{Code: code, Kind: navKindOf(code)}, true
}

// NewNavStatus builds a status from a code, ignoring validity
func NewNavStatus(code string) NavStatus {
	s, _ := ParseNavStatus(code)
	return s
}

func navKindOf(code string) NavKind {
	switch code {
	case NavCodeDocked:
		return NavDocked
	case NavCodeManeuvering:
		return NavManeuvering
	case NavCodeTransit:
		return NavTransit
	}

	// Tolerate "0", "1.00" and friends for the kind, the code stays as written
	v, err := strconv.ParseFloat(code, 64)
	if err != nil {
		return NavUnknown
	}
	switch v {
	case 0:
		return NavDocked
	case 1:
		return NavManeuvering
	case 2:
		return NavTransit
	}
	return NavUnknown
}

// Equal reports whether both statuses carry the same raw code
func (s NavStatus) Equal(other NavStatus) bool {
	return s.Code == other.Code
}

// IsUnderway reports whether the vessel is maneuvering or in transit
func (s NavStatus) IsUnderway() bool {
	return s.Kind == NavManeuvering || s.Kind == NavTransit
}

func (s NavStatus) String() string {
	return s.Code
}

// MarshalJSON encodes the status as its raw code
func (s NavStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Code)
}

// UnmarshalJSON decodes a raw code string
func (s *NavStatus) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*s = NewNavStatus(code)
	return nil
}
