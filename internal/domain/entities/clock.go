package entities

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// ClockTime is a wall-clock time of day in minutes after midnight.
// 24:00 is representable so that a window may end exactly at midnight.
type ClockTime int

func ParseClock(s string) (ClockTime, error) {
	h, m, ok := splitClock(s)
	if !ok {
		return 0, NewValidationError("time", fmt.Sprintf("%q is not HH:MM", s))
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, NewValidationError("time", fmt.Sprintf("%q is out of range", s))
	}
	return ClockTime(h*60 + m), nil
}

// splitClock accepts exactly two digits, a colon and two digits.
func splitClock(s string) (h, m int, ok bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, false
		}
	}
	h, _ = strconv.Atoi(s[:2])
	m, _ = strconv.Atoi(s[3:])
	return h, m, true
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Add returns c shifted by hours, rounded to the nearest minute.
func (c ClockTime) Add(hours float64) ClockTime {
	return c + ClockTime(math.Round(hours*60))
}

// ClockFromTime returns the time-of-day of t in its own location.
func ClockFromTime(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError("date", fmt.Sprintf("%q is not YYYY-MM-DD", s))
	}
	return d, nil
}

// EndOf computes start+hours and rejects windows that spill past midnight.
func EndOf(start ClockTime, hours float64) (ClockTime, error) {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, NewValidationError("estimated_hours", "must be greater than zero")
	}
	end := start.Add(hours)
	if end > minutesPerDay {
		return 0, NewValidationError("estimated_hours", "window must end by 24:00")
	}
	if end == start {
		return 0, NewValidationError("estimated_hours", "window shorter than one minute")
	}
	return end, nil
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd ClockTime) bool {
	return aStart < bEnd && bStart < aEnd
}
