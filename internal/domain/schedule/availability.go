package schedule

import (
	"sort"

	"reservation-portal/internal/domain/booking"
)

// AnnotatedSlot pairs a generated slot with the reservation occupying it, if
// any. At most one reservation matches under normal operation.
type AnnotatedSlot struct {
	Slot
	Reservation *booking.Reservation
}

// Occupies reports whether the reservation interval overlaps the slot:
// the slot start falls within [start, end) or the slot end falls within
// (start, end]. The double half-open check also flags slots when reservation
// boundaries are not perfectly slot-aligned.
func Occupies(r *booking.Reservation, s Slot) bool {
	startsInside := !s.Start.Before(r.Start()) && s.Start.Before(r.End())
	endsInside := s.End.After(r.Start()) && !s.End.After(r.End())
	return startsInside || endsInside
}

// Annotate maps each slot to the reservation occupying it. Should several
// reservations match one slot the earliest-starting one wins, keeping the
// result deterministic; overlapping reservations are not a supported state.
func Annotate(slots []Slot, reservations []*booking.Reservation) []AnnotatedSlot {
	ordered := make([]*booking.Reservation, len(reservations))
	copy(ordered, reservations)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start().Before(ordered[j].Start())
	})

	annotated := make([]AnnotatedSlot, len(slots))
	for i, s := range slots {
		annotated[i] = AnnotatedSlot{Slot: s}
		for _, r := range ordered {
			if Occupies(r, s) {
				annotated[i].Reservation = r
				break
			}
		}
	}
	return annotated
}
