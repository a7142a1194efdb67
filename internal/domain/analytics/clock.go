package analytics

import (
	"math"
	"strconv"
	"strings"
)

// timeNotRecorded is the sentinel the device exports write when a sensor
// event is missing. An empty string means the same thing.
const timeNotRecorded = "N/A"

// HasClockTime reports whether a raw device value carries a real time.
func HasClockTime(value string) bool {
	return value != "" && value != timeNotRecorded
}

// ParseClockTime converts a raw "H:MM[:SS]" value into fractional hours.
// ok is false for the not-recorded sentinel; callers must check ok before
// treating a 0 as midnight. Malformed components come back as NaN rather
// than an error, matching the tolerance the rest of the engine has for
// garbage in device exports: NaN propagates and falls out of any
// strictly-positive filter downstream.
func ParseClockTime(value string) (hours float64, ok bool) {
	if !HasClockTime(value) {
		return 0, false
	}

	parts := strings.SplitN(value, ":", 3)
	h := clockComponent(parts[0])
	var m, s float64
	if len(parts) > 1 {
		m = clockComponent(parts[1])
	}
	if len(parts) > 2 {
		s = clockComponent(parts[2])
	}

	return h + m/60 + s/3600, true
}

func clockComponent(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
