package schedule

import (
	"fmt"
	"strconv"
)

// ClockMinutes parses a zero-padded 24h "HH:MM" token into minutes from
// midnight (e.g. "16:30" -> 990).
func ClockMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("invalid clock token %q", clock)
	}
	h, err := strconv.Atoi(clock[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock token %q", clock)
	}
	m, err := strconv.Atoi(clock[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock token %q", clock)
	}
	return h*60 + m, nil
}

// Duration returns the length in hours of the [start, end] wall-clock range.
// Callers guarantee end > start; a malformed endpoint contributes zero hours
// rather than failing, since it reflects bad upstream data the schedule
// views must survive.
func Duration(start, end string) float64 {
	s, err := ClockMinutes(start)
	if err != nil {
		return 0
	}
	e, err := ClockMinutes(end)
	if err != nil {
		return 0
	}
	return float64(e-s) / 60
}
