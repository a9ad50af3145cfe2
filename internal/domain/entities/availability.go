package entities

import "sort"

// Window is a half-open [Start,End) interval of a day.
type Window struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

func (w Window) Minutes() int {
	return int(w.End - w.Start)
}

// FreeWindows returns the unbooked parts of a technician's day: the shift plus
// approved extra availability, minus lunch, approved time off and every
// non-cancelled entry. Result is sorted and non-overlapping.
func FreeWindows(shift DaySchedule, overrides []AvailabilityEntry, entries []ScheduleEntry) []Window {
	var open []Window
	if start, end, err := shift.Window(); err == nil && shift.Enabled {
		open = append(open, Window{Start: start, End: end})
	}
	var blocked []Window
	if ls, le, ok := shift.Lunch(); ok {
		blocked = append(blocked, Window{Start: ls, End: le})
	}
	for _, o := range overrides {
		s, err1 := ParseClock(o.StartTime)
		e, err2 := ParseClock(o.EndTime)
		if err1 != nil || err2 != nil || e <= s {
			continue
		}
		if o.Available {
			open = append(open, Window{Start: s, End: e})
		} else {
			blocked = append(blocked, Window{Start: s, End: e})
		}
	}
	for _, e := range entries {
		if e.Status == ScheduleEntryStatusCancelled || e.DeletedAt != nil {
			continue
		}
		s, end, err := e.Window()
		if err != nil {
			continue
		}
		blocked = append(blocked, Window{Start: s, End: end})
	}
	return subtract(merge(open), merge(blocked))
}

// FreeMinutes sums the windows.
func FreeMinutes(ws []Window) int {
	total := 0
	for _, w := range ws {
		total += w.Minutes()
	}
	return total
}

// EarliestFit returns the first free start that fits hours, or after notBefore
// when set.
func EarliestFit(ws []Window, hours float64, notBefore ClockTime) (ClockTime, bool) {
	need := ClockTime(0).Add(hours)
	for _, w := range ws {
		start := max(w.Start, notBefore)
		if w.End-start >= need {
			return start, true
		}
	}
	return 0, false
}

func merge(ws []Window) []Window {
	if len(ws) == 0 {
		return nil
	}
	sorted := append([]Window(nil), ws...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	out := []Window{sorted[0]}
	for _, w := range sorted[1:] {
		last := &out[len(out)-1]
		if w.Start <= last.End {
			last.End = max(last.End, w.End)
			continue
		}
		out = append(out, w)
	}
	return out
}

func subtract(open, blocked []Window) []Window {
	var out []Window
	for _, o := range open {
		cur := []Window{o}
		for _, b := range blocked {
			var next []Window
			for _, c := range cur {
				if !Overlaps(c.Start, c.End, b.Start, b.End) {
					next = append(next, c)
					continue
				}
				if c.Start < b.Start {
					next = append(next, Window{Start: c.Start, End: b.Start})
				}
				if b.End < c.End {
					next = append(next, Window{Start: b.End, End: c.End})
				}
			}
			cur = next
		}
		out = append(out, cur...)
	}
	return out
}
