package memstore

import (
	"errors"
	"sort"
	"sync"
	"time"

	"reservation-portal/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrDuplicateID         = errors.New("duplicate reservation id")
)

// Reservations is the session-scoped reservation collection. State lives in
// memory only; a restart starts from an empty agenda.
type Reservations struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]*booking.Reservation
	byRoomDay map[string][]*booking.Reservation
}

func NewReservations() *Reservations {
	return &Reservations{
		byID:      make(map[uuid.UUID]*booking.Reservation),
		byRoomDay: make(map[string][]*booking.Reservation),
	}
}

func roomDayKey(roomID string, day time.Time) string {
	return roomID + "|" + day.Format("2006-01-02")
}

func (s *Reservations) Add(r *booking.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID()]; exists {
		return ErrDuplicateID
	}
	key := roomDayKey(r.RoomID(), r.Start())
	s.byID[r.ID()] = r
	s.byRoomDay[key] = append(s.byRoomDay[key], r)
	return nil
}

func (s *Reservations) FindByID(id uuid.UUID) (*booking.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return r, nil
}

// ListRoomDay returns the room's reservations for the day ordered by start
// time. The returned slice is a copy, safe for the caller to keep.
func (s *Reservations) ListRoomDay(roomID string, day time.Time) []*booking.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byRoomDay[roomDayKey(roomID, day)]
	out := make([]*booking.Reservation, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start().Before(out[j].Start())
	})
	return out
}

func (s *Reservations) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return ErrReservationNotFound
	}
	delete(s.byID, id)

	key := roomDayKey(r.RoomID(), r.Start())
	stored := s.byRoomDay[key]
	for i, candidate := range stored {
		if candidate.ID() == id {
			s.byRoomDay[key] = append(stored[:i], stored[i+1:]...)
			break
		}
	}
	if len(s.byRoomDay[key]) == 0 {
		delete(s.byRoomDay, key)
	}
	return nil
}
