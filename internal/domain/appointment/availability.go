package appointment

import "time"

type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses half-open intervals: [a,b) and [c,d) overlap iff a < d && c < b.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

type Slot struct {
	Start           time.Time
	DurationMinutes int
	Available       bool
}

// SlotParams carries everything the calculator needs; it never touches storage.
type SlotParams struct {
	Window   Window
	Duration time.Duration
	Step     time.Duration
	Busy     []Interval
	// Candidates starting before NotBefore are reported unavailable.
	NotBefore time.Time
}

// ComputeSlots walks the working window at Step granularity and returns every
// candidate start whose full duration fits before closing, in chronological
// order. A candidate is available when it clears the lunch break, every busy
// interval and NotBefore.
func ComputeSlots(p SlotParams) []Slot {
	if p.Duration <= 0 || p.Step <= 0 || p.Window.Closed() {
		return []Slot{}
	}

	minutes := int(p.Duration / time.Minute)
	slots := []Slot{}

	for cur := p.Window.Open; !cur.Add(p.Duration).After(p.Window.Close); cur = cur.Add(p.Step) {
		candidate := Interval{Start: cur, End: cur.Add(p.Duration)}

		available := !cur.Before(p.NotBefore)
		if available && p.Window.HasBreak() && candidate.Overlaps(p.Window.Break) {
			available = false
		}
		if available && overlapsAny(candidate, p.Busy) {
			available = false
		}

		slots = append(slots, Slot{
			Start:           cur,
			DurationMinutes: minutes,
			Available:       available,
		})
	}

	return slots
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// FindConflict returns the first busy interval clashing with the candidate.
func FindConflict(candidate Interval, busy []Interval) (Interval, bool) {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return b, true
		}
	}
	return Interval{}, false
}
