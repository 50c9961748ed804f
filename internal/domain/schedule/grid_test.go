//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"reservation-portal/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T) schedule.Grid {
	t.Helper()
	grid, err := schedule.NewGrid(6, 20, 30, time.UTC)
	require.NoError(t, err)
	return grid
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name        string
		startHour   int
		endHour     int
		stepMinutes int
		errIs       error
	}{
		{name: "default window", startHour: 6, endHour: 20, stepMinutes: 30},
		{name: "start after end", startHour: 20, endHour: 6, stepMinutes: 30, errIs: schedule.ErrInvalidWindow},
		{name: "start equals end", startHour: 8, endHour: 8, stepMinutes: 30, errIs: schedule.ErrInvalidWindow},
		{name: "negative start", startHour: -1, endHour: 20, stepMinutes: 30, errIs: schedule.ErrInvalidWindow},
		{name: "end past midnight", startHour: 6, endHour: 25, stepMinutes: 30, errIs: schedule.ErrInvalidWindow},
		{name: "zero step", startHour: 6, endHour: 20, stepMinutes: 0, errIs: schedule.ErrInvalidStep},
		{name: "negative step", startHour: 6, endHour: 20, stepMinutes: -15, errIs: schedule.ErrInvalidStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schedule.NewGrid(tt.startHour, tt.endHour, tt.stepMinutes, time.UTC)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGridSlots(t *testing.T) {
	grid := mustGrid(t)
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slots := grid.Slots(day)
	require.Len(t, slots, 28)
	assert.Equal(t, 28, grid.SlotCount())

	first := slots[0]
	assert.Equal(t, time.Date(2026, 9, 7, 6, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2026, 9, 7, 6, 30, 0, 0, time.UTC), first.End)

	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2026, 9, 7, 19, 30, 0, 0, time.UTC), last.Start)
	assert.Equal(t, time.Date(2026, 9, 7, 20, 0, 0, 0, time.UTC), last.End)

	// Contiguous and non-overlapping.
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].Start.Equal(slots[i-1].End), "gap before slot %d", i)
		assert.Equal(t, 30*time.Minute, slots[i].Duration())
	}
}

func TestGridSlotsPartialTail(t *testing.T) {
	grid, err := schedule.NewGrid(9, 10, 45, time.UTC)
	require.NoError(t, err)

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slots := grid.Slots(day)
	require.Len(t, slots, 2)
	assert.Equal(t, 2, grid.SlotCount())

	// The final slot is clamped to the window end.
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), slots[1].End)
	assert.Equal(t, 15*time.Minute, slots[1].Duration())
}

func TestGridSlotAt(t *testing.T) {
	grid := mustGrid(t)

	tests := []struct {
		name  string
		start time.Time
		errIs error
	}{
		{name: "window start", start: time.Date(2026, 9, 7, 6, 0, 0, 0, time.UTC)},
		{name: "aligned mid-day", start: time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC)},
		{name: "last slot", start: time.Date(2026, 9, 7, 19, 30, 0, 0, time.UTC)},
		{name: "before window", start: time.Date(2026, 9, 7, 5, 30, 0, 0, time.UTC), errIs: schedule.ErrSlotOutsideWindow},
		{name: "at window end", start: time.Date(2026, 9, 7, 20, 0, 0, 0, time.UTC), errIs: schedule.ErrSlotOutsideWindow},
		{name: "after window", start: time.Date(2026, 9, 7, 21, 0, 0, 0, time.UTC), errIs: schedule.ErrSlotOutsideWindow},
		{name: "misaligned quarter hour", start: time.Date(2026, 9, 7, 9, 15, 0, 0, time.UTC), errIs: schedule.ErrSlotMisaligned},
		{name: "misaligned seconds", start: time.Date(2026, 9, 7, 9, 0, 30, 0, time.UTC), errIs: schedule.ErrSlotMisaligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := grid.SlotAt(tt.start)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, slot.Start.Equal(tt.start))
			assert.Equal(t, 30*time.Minute, slot.Duration())
		})
	}
}
