package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow     = errors.New("invalid work-hours window")
	ErrInvalidStep       = errors.New("invalid step duration")
	ErrSlotOutsideWindow = errors.New("slot start outside work hours")
	ErrSlotMisaligned    = errors.New("slot start not aligned to the grid")
)

// Slot is a derived value, regenerated fresh per call; it is never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Grid tiles a work day with fixed-width slots. With the default window
// 06:00-20:00 and 30-minute steps a day has 28 slots.
type Grid struct {
	startHour   int
	endHour     int
	stepMinutes int
	loc         *time.Location
}

func NewGrid(startHour, endHour, stepMinutes int, loc *time.Location) (Grid, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return Grid{}, ErrInvalidWindow
	}
	if stepMinutes <= 0 {
		return Grid{}, ErrInvalidStep
	}
	if loc == nil {
		loc = time.UTC
	}
	return Grid{
		startHour:   startHour,
		endHour:     endHour,
		stepMinutes: stepMinutes,
		loc:         loc,
	}, nil
}

func (g Grid) Location() *time.Location {
	return g.loc
}

func (g Grid) Step() time.Duration {
	return time.Duration(g.stepMinutes) * time.Minute
}

// SlotCount is the number of slots a full day yields, counting a trailing
// partial slot when the window is not evenly divisible by the step.
func (g Grid) SlotCount() int {
	windowMinutes := (g.endHour - g.startHour) * 60
	return (windowMinutes + g.stepMinutes - 1) / g.stepMinutes
}

// Slots generates the ordered slot sequence for the given day. Slots are
// contiguous, non-overlapping and exactly cover [startHour:00, endHour:00);
// a final partial slot is clamped to the window end.
func (g Grid) Slots(day time.Time) []Slot {
	day = day.In(g.loc)
	current := time.Date(day.Year(), day.Month(), day.Day(), g.startHour, 0, 0, 0, g.loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), g.endHour, 0, 0, 0, g.loc)

	slots := make([]Slot, 0, g.SlotCount())
	for current.Before(end) {
		slotEnd := current.Add(g.Step())
		if slotEnd.After(end) {
			slotEnd = end
		}
		slots = append(slots, Slot{Start: current, End: slotEnd})
		current = current.Add(g.Step())
	}
	return slots
}

// SlotAt resolves a requested start instant to its grid slot. The start must
// be aligned to a step boundary inside the work-hours window.
func (g Grid) SlotAt(start time.Time) (Slot, error) {
	start = start.In(g.loc)
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), g.startHour, 0, 0, 0, g.loc)
	dayEnd := time.Date(start.Year(), start.Month(), start.Day(), g.endHour, 0, 0, 0, g.loc)

	if start.Before(dayStart) || !start.Before(dayEnd) {
		return Slot{}, ErrSlotOutsideWindow
	}

	offset := start.Sub(dayStart)
	if offset%g.Step() != 0 {
		return Slot{}, ErrSlotMisaligned
	}

	end := start.Add(g.Step())
	if end.After(dayEnd) {
		end = dayEnd
	}
	return Slot{Start: start, End: end}, nil
}
