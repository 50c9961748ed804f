package schedule

import "time"

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextWorkDay returns the first weekday strictly after t.
func NextWorkDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for IsWeekend(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// StepWorkDay moves one day forward (dir > 0) or backward (dir < 0),
// continuing in the same direction past weekends.
func StepWorkDay(t time.Time, dir int) time.Time {
	if dir == 0 {
		return t
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	next := t.AddDate(0, 0, step)
	for IsWeekend(next) {
		next = next.AddDate(0, 0, step)
	}
	return next
}
