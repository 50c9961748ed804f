package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval = errors.New("start time must be before end time")
	ErrNotPending      = errors.New("reservation is not pending")
)

// Reservation covers exactly one slot; start and end come from the generated
// grid and are never edited afterwards. Status transitions are the only
// mutations, deletion happens at the collection level.
type Reservation struct {
	id        uuid.UUID
	roomID    string
	start     time.Time
	end       time.Time
	status    Status
	requester *Requester
	purpose   Purpose
	createdAt time.Time
	updatedAt time.Time
}

// NewRequest creates a user-path reservation: PENDING with the requester set.
func NewRequest(roomID string, start, end time.Time, requester Requester, purpose Purpose, now time.Time) (*Reservation, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}
	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		start:     start,
		end:       end,
		status:    StatusPending,
		requester: &requester,
		purpose:   purpose,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewBlock creates an admin-path reservation: BLOCKED with no requester.
func NewBlock(roomID string, start, end time.Time, now time.Time) (*Reservation, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}
	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		start:     start,
		end:       end,
		status:    StatusBlocked,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	roomID string,
	start, end time.Time,
	status Status,
	requester *Requester,
	purpose Purpose,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		start:     start,
		end:       end,
		status:    status,
		requester: requester,
		purpose:   purpose,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusConfirmed
	r.updatedAt = now
	return nil
}

func (r *Reservation) Reject(now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID    { return r.id }
func (r *Reservation) RoomID() string   { return r.roomID }
func (r *Reservation) Start() time.Time { return r.start }
func (r *Reservation) End() time.Time   { return r.end }
func (r *Reservation) Status() Status   { return r.status }

// Requester is nil exactly when the reservation was created by an admin.
func (r *Reservation) Requester() *Requester {
	return r.requester
}

func (r *Reservation) Purpose() Purpose     { return r.purpose }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
