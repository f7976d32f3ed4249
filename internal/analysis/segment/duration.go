package segment

import (
	"fmt"
	"time"
)

// Clock layouts accepted by the row parser. Fractional seconds are accepted
// after the seconds field.
var clockLayouts = []string{"15:04:05", "15:04"}

// TimeOfDaySeconds returns the whole seconds from startClock to endClock,
// two "HH:MM[:SS[.fff]]" strings. Dates are ignored: if the end clock is
// earlier than the start clock a single day is added. A run spanning more
// than 24h is therefore reported modulo one day. Unparsable input yields 0.
func TimeOfDaySeconds(startClock, endClock string) int64 {
	start, ok := parseClock(startClock)
	if !ok {
		return 0
	}
	end, ok := parseClock(endClock)
	if !ok {
		return 0
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return int64(end.Sub(start) / time.Second)
}

// FormatHMS renders seconds as HH:MM:SS. Hours are not capped at 24.
func FormatHMS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func parseClock(clock string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
