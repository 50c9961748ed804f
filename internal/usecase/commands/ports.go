package commands

import (
	"context"
	"time"

	"reservation-portal/internal/domain/booking"
	"reservation-portal/internal/domain/room"
	"reservation-portal/internal/domain/session"

	"github.com/google/uuid"
)

// Write-side ports; the in-memory implementations live under internal/infra.

type ReservationStore interface {
	Add(r *booking.Reservation) error
	FindByID(id uuid.UUID) (*booking.Reservation, error)
	ListRoomDay(roomID string, day time.Time) []*booking.Reservation
	Delete(id uuid.UUID) error
}

type SessionStore interface {
	Put(sess *session.Session)
	Get(id uuid.UUID) (*session.Session, error)
}

type RoomDirectory interface {
	All() []room.Room
	FindByID(id string) (room.Room, error)
}

// CredentialChecker is injected so the admin gate is testable without real
// secrets; room.Registry is the production implementation.
type CredentialChecker interface {
	VerifySecret(roomID, candidate string) error
}

// Notifier delivers a fully rendered message; the core awaits completion
// before mutating the reservation collection.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

type SessionTokenIssuer interface {
	GenerateSessionToken(sessionID uuid.UUID) (string, error)
}
