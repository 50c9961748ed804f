package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"reservation-portal/internal/domain/booking"
	"reservation-portal/internal/domain/schedule"
	"reservation-portal/internal/domain/session"
	"reservation-portal/internal/pkg/clock"
	"reservation-portal/internal/pkg/config"
	"reservation-portal/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound         = errs.New("room not found")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrValidation           = errs.New("validation failed")
	ErrPurposeRequired      = errs.New("purpose text is required")
	ErrInvalidSlot          = errs.New("invalid slot start")
	ErrSlotInPast           = errs.New("slot is in the past")
	ErrSlotTaken            = errs.New("slot already occupied")
	ErrNotPending           = errs.New("reservation is not pending")
	ErrNotRoomAdmin         = errs.New("not an authenticated admin for this room")
	ErrNotificationInFlight = errs.New("notification in progress")
)

type RequestReservationInput struct {
	RoomID    string
	Start     time.Time
	FirstName string
	LastName  string
	Email     string
	Purpose   string
}

// MutationResult reports the reservation a lifecycle operation produced or
// changed and whether its notification actually went out. A failed notify is
// a warning, never a rollback.
type MutationResult struct {
	Reservation      *booking.Reservation
	NotificationSent bool
}

type BookingCommands interface {
	RequestReservation(ctx context.Context, in RequestReservationInput) (*MutationResult, error)
	BlockSlot(ctx context.Context, sess *session.Session, roomID string, start time.Time) (*booking.Reservation, error)
	Approve(ctx context.Context, sess *session.Session, id uuid.UUID) (*MutationResult, error)
	Reject(ctx context.Context, sess *session.Session, id uuid.UUID) (*MutationResult, error)
	Delete(ctx context.Context, sess *session.Session, id uuid.UUID, confirmed bool) (bool, error)
	Sending() bool
}

type bookingCommandsImpl struct {
	store    ReservationStore
	rooms    RoomDirectory
	notifier Notifier
	grid     schedule.Grid
	clock    clock.Clock
	cfg      config.BookingConfig
	timeout  time.Duration

	// mu serializes lifecycle mutations; sending is the UI-facing busy flag,
	// true for the whole window between starting a notification and the
	// corresponding collection mutation.
	mu      sync.Mutex
	sending atomic.Bool
}

func NewBookingCommands(
	store ReservationStore,
	rooms RoomDirectory,
	notifier Notifier,
	grid schedule.Grid,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		store:    store,
		rooms:    rooms,
		notifier: notifier,
		grid:     grid,
		clock:    clk,
		cfg:      cfg.Booking,
		timeout:  cfg.Notifier.Timeout,
	}
}

func (u *bookingCommandsImpl) Sending() bool {
	return u.sending.Load()
}

func (u *bookingCommandsImpl) RequestReservation(ctx context.Context, in RequestReservationInput) (*MutationResult, error) {
	targetRoom, err := u.rooms.FindByID(in.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	slot, err := u.grid.SlotAt(in.Start)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	if slot.Start.Before(u.clock.Now()) {
		return nil, ErrSlotInPast
	}

	requester, err := booking.NewRequester(in.FirstName, in.LastName, in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	purpose := booking.NewPurpose(in.Purpose)
	if u.cfg.RequirePurpose && purpose.IsEmpty() {
		return nil, errs.Mark(ErrPurposeRequired, ErrValidation)
	}

	if !u.mu.TryLock() {
		return nil, ErrNotificationInFlight
	}
	defer u.mu.Unlock()

	if u.slotOccupied(in.RoomID, slot) {
		return nil, ErrSlotTaken
	}

	res, err := booking.NewRequest(in.RoomID, slot.Start, slot.End, requester, purpose, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	u.sending.Store(true)
	defer u.sending.Store(false)

	subject := fmt.Sprintf("Nová žiadosť o rezerváciu: %s", targetRoom.Name())
	body := fmt.Sprintf("Užívateľ %s (%s) žiada o rezerváciu na %s o %s.",
		requester.FullName(), requester.Email(),
		schedule.FormatDate(slot.Start), schedule.FormatTime(slot.Start))
	sent := u.send(ctx, u.cfg.AdminEmail, subject, body)

	if err := u.store.Add(res); err != nil {
		return nil, errs.Wrap(err, "storing reservation request")
	}

	return &MutationResult{Reservation: res, NotificationSent: sent}, nil
}

func (u *bookingCommandsImpl) BlockSlot(ctx context.Context, sess *session.Session, roomID string, start time.Time) (*booking.Reservation, error) {
	if _, err := u.rooms.FindByID(roomID); err != nil {
		return nil, ErrRoomNotFound
	}
	if sess == nil || !sess.HasRoom(roomID) {
		return nil, ErrNotRoomAdmin
	}

	slot, err := u.grid.SlotAt(start)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.slotOccupied(roomID, slot) {
		return nil, ErrSlotTaken
	}

	res, err := booking.NewBlock(roomID, slot.Start, slot.End, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if err := u.store.Add(res); err != nil {
		return nil, errs.Wrap(err, "storing admin block")
	}

	slog.InfoContext(ctx, "slot blocked by admin", "room_id", roomID, "start", slot.Start)
	return res, nil
}

func (u *bookingCommandsImpl) Approve(ctx context.Context, sess *session.Session, id uuid.UUID) (*MutationResult, error) {
	return u.resolve(ctx, sess, id, true)
}

func (u *bookingCommandsImpl) Reject(ctx context.Context, sess *session.Session, id uuid.UUID) (*MutationResult, error) {
	return u.resolve(ctx, sess, id, false)
}

// resolve drives the PENDING -> CONFIRMED/REJECTED transition: permission
// check, requester notification, then the status mutation. The notification
// completes before any state changes so the admin never sees "sent" without
// the matching status.
func (u *bookingCommandsImpl) resolve(ctx context.Context, sess *session.Session, id uuid.UUID, approve bool) (*MutationResult, error) {
	res, err := u.store.FindByID(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	if sess == nil || !sess.HasRoom(res.RoomID()) {
		return nil, ErrNotRoomAdmin
	}
	if res.Status() != booking.StatusPending {
		return nil, ErrNotPending
	}

	targetRoom, err := u.rooms.FindByID(res.RoomID())
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if !u.mu.TryLock() {
		return nil, ErrNotificationInFlight
	}
	defer u.mu.Unlock()

	// Re-check under the lock: the collection may have changed while the
	// permission check ran.
	if res.Status() != booking.StatusPending {
		return nil, ErrNotPending
	}

	u.sending.Store(true)
	defer u.sending.Store(false)

	sent := false
	if requester := res.Requester(); requester != nil {
		statusText := "ZAMIETNUTÁ"
		verb := "zamietnutá"
		if approve {
			statusText = "POTVRDENÁ"
			verb = "potvrdená"
		}
		subject := fmt.Sprintf("Status Vašej rezervácie: %s", statusText)
		body := fmt.Sprintf("Dobrý deň %s, Vaša rezervácia miestnosti %s na deň %s o %s bola správcom %s.",
			requester.FirstName(), targetRoom.Name(),
			schedule.FormatDate(res.Start()), schedule.FormatTime(res.Start()), verb)
		sent = u.send(ctx, requester.Email(), subject, body)
	}

	now := u.clock.Now()
	if approve {
		err = res.Approve(now)
	} else {
		err = res.Reject(now)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrNotPending)
	}

	return &MutationResult{Reservation: res, NotificationSent: sent}, nil
}

// Delete removes a reservation of any status. Without the explicit
// confirmation signal the call is a no-op, not an error.
func (u *bookingCommandsImpl) Delete(ctx context.Context, sess *session.Session, id uuid.UUID, confirmed bool) (bool, error) {
	res, err := u.store.FindByID(id)
	if err != nil {
		return false, ErrReservationNotFound
	}
	if sess == nil || !sess.HasRoom(res.RoomID()) {
		return false, ErrNotRoomAdmin
	}
	if !confirmed {
		return false, nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.store.Delete(id); err != nil {
		return false, ErrReservationNotFound
	}
	slog.InfoContext(ctx, "reservation deleted", "reservation_id", id, "room_id", res.RoomID())
	return true, nil
}

// slotOccupied applies the canonical overlap rule against all of the day's
// reservations, REJECTED included: a rejected request keeps its slot until an
// admin deletes it.
func (u *bookingCommandsImpl) slotOccupied(roomID string, slot schedule.Slot) bool {
	for _, existing := range u.store.ListRoomDay(roomID, slot.Start) {
		if schedule.Occupies(existing, slot) {
			return true
		}
	}
	return false
}

// send attempts the notification with a per-call timeout, retrying once. On
// repeated failure the local state change still proceeds; the caller only
// loses the NotificationSent flag.
func (u *bookingCommandsImpl) send(ctx context.Context, to, subject, body string) bool {
	for attempt := 1; attempt <= 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := u.notifier.Notify(callCtx, to, subject, body)
		cancel()
		if err == nil {
			return true
		}
		slog.WarnContext(ctx, "notification attempt failed",
			"to", to, "subject", subject, "attempt", attempt, "error", err.Error())
	}
	return false
}
