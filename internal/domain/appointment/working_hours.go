package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Window is a barber's open-to-close range for one date, with an optional lunch break.
type Window struct {
	Open  time.Time
	Close time.Time
	Break Interval
}

func (w Window) Closed() bool {
	return !w.Close.After(w.Open)
}

func (w Window) HasBreak() bool {
	return w.Break.End.After(w.Break.Start)
}

// Contains reports whether [start,end) fits inside opening hours and clears the lunch break.
func (w Window) Contains(iv Interval) bool {
	if w.Closed() {
		return false
	}
	if iv.Start.Before(w.Open) || iv.End.After(w.Close) {
		return false
	}
	if w.HasBreak() && iv.Overlaps(w.Break) {
		return false
	}
	return true
}

// DefaultHours applies to any weekday the barber has not configured.
type DefaultHours struct {
	Open  string
	Close string
}

// ResolveWindow builds the working window of day. wh may be nil; an inactive
// row means the barber does not work that weekday.
func ResolveWindow(day time.Time, wh *models.WorkingHours, def DefaultHours) (Window, error) {
	open, close := def.Open, def.Close
	var lunchStart, lunchEnd string

	if wh != nil {
		if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
			return Window{}, nil
		}
		open, close = wh.StartTime, wh.EndTime
		lunchStart, lunchEnd = wh.LunchStart, wh.LunchEnd
	}

	var w Window
	var err error
	if w.Open, err = timezone.AtClock(day, open); err != nil {
		return Window{}, err
	}
	if w.Close, err = timezone.AtClock(day, close); err != nil {
		return Window{}, err
	}

	if lunchStart != "" && lunchEnd != "" {
		if w.Break.Start, err = timezone.AtClock(day, lunchStart); err != nil {
			return Window{}, err
		}
		if w.Break.End, err = timezone.AtClock(day, lunchEnd); err != nil {
			return Window{}, err
		}
	}

	return w, nil
}
