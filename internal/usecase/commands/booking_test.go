//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"reservation-portal/internal/domain/booking"
	"reservation-portal/internal/domain/room"
	"reservation-portal/internal/domain/schedule"
	"reservation-portal/internal/domain/session"
	"reservation-portal/internal/infra/memstore"
	"reservation-portal/internal/pkg/clock"
	"reservation-portal/internal/pkg/config"
	"reservation-portal/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifyCall struct {
	To      string
	Subject string
	Body    string
}

// stubNotifier records deliveries and can fail, observe the caller mid-send or
// block until released.
type stubNotifier struct {
	mu       sync.Mutex
	calls    []notifyCall
	err      error
	observe  func()
	started  chan struct{}
	release  chan struct{}
}

func (n *stubNotifier) Notify(ctx context.Context, to, subject, body string) error {
	n.mu.Lock()
	n.calls = append(n.calls, notifyCall{To: to, Subject: subject, Body: body})
	n.mu.Unlock()

	if n.observe != nil {
		n.observe()
	}
	if n.started != nil {
		select {
		case n.started <- struct{}{}:
		default:
		}
	}
	if n.release != nil {
		select {
		case <-n.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return n.err
}

func (n *stubNotifier) Calls() []notifyCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notifyCall, len(n.calls))
	copy(out, n.calls)
	return out
}

type bookingFixture struct {
	store    *memstore.Reservations
	notifier *stubNotifier
	clock    *clock.MockClock
	uc       commands.BookingCommands
}

func newBookingFixture(t *testing.T, mutateCfg func(*config.Config)) *bookingFixture {
	t.Helper()

	registry, err := room.NewRegistry(room.DefaultDefinitions())
	require.NoError(t, err)

	grid, err := schedule.NewGrid(6, 20, 30, time.UTC)
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	if mutateCfg != nil {
		mutateCfg(&cfg)
	}

	f := &bookingFixture{
		store:    memstore.NewReservations(),
		notifier: &stubNotifier{},
		clock:    clock.NewMockClock(time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewBookingCommands(f.store, registry, f.notifier, grid, f.clock, cfg)
	return f
}

func validInput(hour, min int) commands.RequestReservationInput {
	return commands.RequestReservationInput{
		RoomID:    "room-1",
		Start:     time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC),
		FirstName: "Jana",
		LastName:  "Nováková",
		Email:     "jana@example.com",
		Purpose:   "standup",
	}
}

func adminFor(roomID string) *session.Session {
	s := session.NewSession(roomID, time.Date(2026, 9, 7, 7, 0, 0, 0, time.UTC))
	s.GrantRoom(roomID)
	return s
}

func TestRequestReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a pending request and notifies the admin inbox", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		result, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		require.NoError(t, err)
		assert.True(t, result.NotificationSent)
		assert.Equal(t, booking.StatusPending, result.Reservation.Status())

		stored := f.store.ListRoomDay("room-1", result.Reservation.Start())
		require.Len(t, stored, 1)
		assert.Equal(t, result.Reservation.ID(), stored[0].ID())

		calls := f.notifier.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "branislav.hadzima@uniza.sk", calls[0].To)
		assert.Contains(t, calls[0].Subject, "Nová žiadosť o rezerváciu")
		assert.Contains(t, calls[0].Subject, "Zasadacia miestnosť A (Alfa)")
		assert.Contains(t, calls[0].Body, "Jana Nováková")
		assert.Contains(t, calls[0].Body, "pondelok 7. septembra 2026")
		assert.Contains(t, calls[0].Body, "09:00")
	})

	t.Run("busy flag is raised exactly while sending", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		var duringSend bool
		f.notifier.observe = func() { duringSend = f.uc.Sending() }

		_, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		require.NoError(t, err)
		assert.True(t, duringSend)
		assert.False(t, f.uc.Sending())
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		in := validInput(9, 0)
		in.RoomID = "room-9"
		_, err := f.uc.RequestReservation(ctx, in)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("misaligned start", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.uc.RequestReservation(ctx, validInput(9, 15))
		assert.ErrorIs(t, err, commands.ErrInvalidSlot)
	})

	t.Run("start outside work hours", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.uc.RequestReservation(ctx, validInput(5, 30))
		assert.ErrorIs(t, err, commands.ErrInvalidSlot)
	})

	t.Run("slot already in the past", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		f.clock.Set(time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC))

		_, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		assert.ErrorIs(t, err, commands.ErrSlotInPast)
	})

	t.Run("invalid requester data", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		in := validInput(9, 0)
		in.Email = "not-an-email"
		_, err := f.uc.RequestReservation(ctx, in)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, booking.ErrInvalidEmail)
		assert.Empty(t, f.notifier.Calls())
	})

	t.Run("purpose required when configured", func(t *testing.T) {
		f := newBookingFixture(t, func(cfg *config.Config) {
			cfg.Booking.RequirePurpose = true
		})

		in := validInput(9, 0)
		in.Purpose = "   "
		_, err := f.uc.RequestReservation(ctx, in)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, commands.ErrPurposeRequired)
	})

	t.Run("occupied slot", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		require.NoError(t, err)

		_, err = f.uc.RequestReservation(ctx, validInput(9, 0))
		assert.ErrorIs(t, err, commands.ErrSlotTaken)
	})

	t.Run("rejected reservation keeps its slot", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		first, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		require.NoError(t, err)

		_, err = f.uc.Reject(ctx, adminFor("room-1"), first.Reservation.ID())
		require.NoError(t, err)

		_, err = f.uc.RequestReservation(ctx, validInput(9, 0))
		assert.ErrorIs(t, err, commands.ErrSlotTaken)
	})

	t.Run("failed notification keeps the request with the flag cleared", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		f.notifier.err = errors.New("smtp down")

		result, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		require.NoError(t, err)
		assert.False(t, result.NotificationSent)

		// One retry means two attempts.
		assert.Len(t, f.notifier.Calls(), 2)
		require.Len(t, f.store.ListRoomDay("room-1", result.Reservation.Start()), 1)
	})

	t.Run("rejected while another notification is in flight", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		f.notifier.started = make(chan struct{}, 1)
		f.notifier.release = make(chan struct{})

		done := make(chan error, 1)
		go func() {
			_, err := f.uc.RequestReservation(ctx, validInput(9, 0))
			done <- err
		}()

		<-f.notifier.started
		_, err := f.uc.RequestReservation(ctx, validInput(10, 0))
		assert.ErrorIs(t, err, commands.ErrNotificationInFlight)

		close(f.notifier.release)
		require.NoError(t, <-done)
	})
}

func TestBlockSlot(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

	t.Run("admin blocks a free slot without notification", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		res, err := f.uc.BlockSlot(ctx, adminFor("room-1"), "room-1", start)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusBlocked, res.Status())
		assert.Nil(t, res.Requester())
		assert.Empty(t, f.notifier.Calls())

		require.Len(t, f.store.ListRoomDay("room-1", start), 1)
	})

	t.Run("requires rights for the target room", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.uc.BlockSlot(ctx, adminFor("room-2"), "room-1", start)
		assert.ErrorIs(t, err, commands.ErrNotRoomAdmin)

		_, err = f.uc.BlockSlot(ctx, nil, "room-1", start)
		assert.ErrorIs(t, err, commands.ErrNotRoomAdmin)
	})

	t.Run("occupied slot", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		admin := adminFor("room-1")

		_, err := f.uc.BlockSlot(ctx, admin, "room-1", start)
		require.NoError(t, err)

		_, err = f.uc.BlockSlot(ctx, admin, "room-1", start)
		assert.ErrorIs(t, err, commands.ErrSlotTaken)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.uc.BlockSlot(ctx, adminFor("room-9"), "room-9", start)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}

func TestApproveAndReject(t *testing.T) {
	ctx := context.Background()

	pendingRequest := func(t *testing.T, f *bookingFixture) uuid.UUID {
		t.Helper()
		result, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		require.NoError(t, err)
		f.notifier.mu.Lock()
		f.notifier.calls = nil
		f.notifier.mu.Unlock()
		return result.Reservation.ID()
	}

	t.Run("approve confirms and notifies the requester", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := pendingRequest(t, f)

		result, err := f.uc.Approve(ctx, adminFor("room-1"), id)
		require.NoError(t, err)
		assert.True(t, result.NotificationSent)
		assert.Equal(t, booking.StatusConfirmed, result.Reservation.Status())

		calls := f.notifier.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "jana@example.com", calls[0].To)
		assert.Contains(t, calls[0].Subject, "POTVRDENÁ")
		assert.Contains(t, calls[0].Body, "potvrdená")
	})

	t.Run("reject keeps the reservation as rejected", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := pendingRequest(t, f)

		result, err := f.uc.Reject(ctx, adminFor("room-1"), id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, result.Reservation.Status())

		calls := f.notifier.Calls()
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0].Subject, "ZAMIETNUTÁ")

		stored, err := f.store.FindByID(id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, stored.Status())
	})

	t.Run("rights are checked against the reservation's room", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := pendingRequest(t, f)

		_, err := f.uc.Approve(ctx, adminFor("room-2"), id)
		assert.ErrorIs(t, err, commands.ErrNotRoomAdmin)

		_, err = f.uc.Approve(ctx, nil, id)
		assert.ErrorIs(t, err, commands.ErrNotRoomAdmin)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.uc.Approve(ctx, adminFor("room-1"), uuid.New())
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("already resolved", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := pendingRequest(t, f)
		admin := adminFor("room-1")

		_, err := f.uc.Approve(ctx, admin, id)
		require.NoError(t, err)

		_, err = f.uc.Approve(ctx, admin, id)
		assert.ErrorIs(t, err, commands.ErrNotPending)
		_, err = f.uc.Reject(ctx, admin, id)
		assert.ErrorIs(t, err, commands.ErrNotPending)
	})

	t.Run("status still changes when the notification fails", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := pendingRequest(t, f)
		f.notifier.err = errors.New("smtp down")

		result, err := f.uc.Approve(ctx, adminFor("room-1"), id)
		require.NoError(t, err)
		assert.False(t, result.NotificationSent)
		assert.Equal(t, booking.StatusConfirmed, result.Reservation.Status())
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

	t.Run("without confirmation nothing happens", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		admin := adminFor("room-1")
		res, err := f.uc.BlockSlot(ctx, admin, "room-1", start)
		require.NoError(t, err)

		deleted, err := f.uc.Delete(ctx, admin, res.ID(), false)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = f.store.FindByID(res.ID())
		assert.NoError(t, err)
	})

	t.Run("confirmed deletion removes the reservation silently", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		admin := adminFor("room-1")
		res, err := f.uc.BlockSlot(ctx, admin, "room-1", start)
		require.NoError(t, err)

		deleted, err := f.uc.Delete(ctx, admin, res.ID(), true)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Empty(t, f.notifier.Calls())

		_, err = f.store.FindByID(res.ID())
		assert.ErrorIs(t, err, memstore.ErrReservationNotFound)
	})

	t.Run("deleting a rejected reservation frees the slot", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		admin := adminFor("room-1")

		first, err := f.uc.RequestReservation(ctx, validInput(9, 0))
		require.NoError(t, err)
		_, err = f.uc.Reject(ctx, admin, first.Reservation.ID())
		require.NoError(t, err)

		deleted, err := f.uc.Delete(ctx, admin, first.Reservation.ID(), true)
		require.NoError(t, err)
		require.True(t, deleted)

		_, err = f.uc.RequestReservation(ctx, validInput(9, 0))
		assert.NoError(t, err)
	})

	t.Run("requires rights for the reservation's room", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		res, err := f.uc.BlockSlot(ctx, adminFor("room-1"), "room-1", start)
		require.NoError(t, err)

		_, err = f.uc.Delete(ctx, adminFor("room-2"), res.ID(), true)
		assert.ErrorIs(t, err, commands.ErrNotRoomAdmin)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.uc.Delete(ctx, adminFor("room-1"), uuid.New(), true)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}
