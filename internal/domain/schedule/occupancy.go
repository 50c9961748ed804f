package schedule

import "reservation-portal/internal/domain/booking"

// DayOccupancy summarizes one room+day for the month-grid heat display.
type DayOccupancy struct {
	ConfirmedCount int
	PendingCount   int
	Percentage     int
}

// Summarize counts CONFIRMED and BLOCKED reservations as in-use and PENDING
// separately; REJECTED never contributes. The percentage is capped at 100.
func Summarize(reservations []*booking.Reservation, totalSlots int) DayOccupancy {
	var occ DayOccupancy
	for _, r := range reservations {
		switch {
		case r.Status().CountsAsOccupied():
			occ.ConfirmedCount++
		case r.Status() == booking.StatusPending:
			occ.PendingCount++
		}
	}

	if totalSlots > 0 {
		occ.Percentage = occ.ConfirmedCount * 100 / totalSlots
		if occ.Percentage > 100 {
			occ.Percentage = 100
		}
	}
	return occ
}
