//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"reservation-portal/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, schedule.IsWeekend(day(2026, 9, 4)))  // Friday
	assert.True(t, schedule.IsWeekend(day(2026, 9, 5)))   // Saturday
	assert.True(t, schedule.IsWeekend(day(2026, 9, 6)))   // Sunday
	assert.False(t, schedule.IsWeekend(day(2026, 9, 7)))  // Monday
}

func TestNextWorkDay(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{name: "midweek", from: day(2026, 9, 8), want: day(2026, 9, 9)},
		{name: "friday skips the weekend", from: day(2026, 9, 4), want: day(2026, 9, 7)},
		{name: "saturday lands on monday", from: day(2026, 9, 5), want: day(2026, 9, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.NextWorkDay(tt.from))
		})
	}
}

func TestStepWorkDay(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		dir  int
		want time.Time
	}{
		{name: "forward midweek", from: day(2026, 9, 8), dir: 1, want: day(2026, 9, 9)},
		{name: "forward over weekend", from: day(2026, 9, 4), dir: 1, want: day(2026, 9, 7)},
		{name: "backward midweek", from: day(2026, 9, 9), dir: -1, want: day(2026, 9, 8)},
		{name: "backward over weekend", from: day(2026, 9, 7), dir: -1, want: day(2026, 9, 4)},
		{name: "zero direction is identity", from: day(2026, 9, 5), dir: 0, want: day(2026, 9, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.StepWorkDay(tt.from, tt.dir))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "pondelok 7. septembra 2026", schedule.FormatDate(day(2026, 9, 7)))
	assert.Equal(t, "sobota 5. septembra 2026", schedule.FormatDate(day(2026, 9, 5)))
	assert.Equal(t, "štvrtok 1. januára 2026", schedule.FormatDate(day(2026, 1, 1)))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "06:00", schedule.FormatTime(time.Date(2026, 9, 7, 6, 0, 0, 0, time.UTC)))
	assert.Equal(t, "19:30", schedule.FormatTime(time.Date(2026, 9, 7, 19, 30, 0, 0, time.UTC)))
}
