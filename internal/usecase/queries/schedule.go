package queries

import (
	"context"
	"time"

	"reservation-portal/internal/domain/booking"
	"reservation-portal/internal/domain/room"
	"reservation-portal/internal/domain/schedule"
	"reservation-portal/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

// Read-side ports, kept separate from the command ports (CQRS separation).

type ScheduleReader interface {
	ListRoomDay(roomID string, day time.Time) []*booking.Reservation
}

type RoomFinder interface {
	All() []room.Room
	FindByID(id string) (room.Room, error)
}

type RoomView struct {
	ID        string
	Name      string
	AdminName string
	Color     string
}

type RequesterView struct {
	FirstName string
	LastName  string
	Email     string
}

type ReservationView struct {
	ID        uuid.UUID
	RoomID    string
	Start     time.Time
	End       time.Time
	Status    string
	Requester *RequesterView
	Purpose   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SlotView struct {
	Start       time.Time
	End         time.Time
	Reservation *ReservationView
}

type DayOccupancyView struct {
	Date           string
	WorkDay        bool
	ConfirmedCount int
	PendingCount   int
	Percentage     int
}

type ScheduleQueries interface {
	Rooms(ctx context.Context) []RoomView
	DaySchedule(ctx context.Context, roomID string, day time.Time) ([]SlotView, error)
	DayOccupancy(ctx context.Context, roomID string, day time.Time) (*DayOccupancyView, error)
	MonthOccupancy(ctx context.Context, roomID string, year int, month time.Month) ([]DayOccupancyView, error)
}

type scheduleQueriesImpl struct {
	reader ScheduleReader
	rooms  RoomFinder
	grid   schedule.Grid
}

func NewScheduleQueries(reader ScheduleReader, rooms RoomFinder, grid schedule.Grid) ScheduleQueries {
	return &scheduleQueriesImpl{
		reader: reader,
		rooms:  rooms,
		grid:   grid,
	}
}

func (q *scheduleQueriesImpl) Rooms(_ context.Context) []RoomView {
	all := q.rooms.All()
	views := make([]RoomView, len(all))
	for i, r := range all {
		views[i] = RoomView{
			ID:        r.ID(),
			Name:      r.Name(),
			AdminName: r.AdminName(),
			Color:     r.Color(),
		}
	}
	return views
}

func (q *scheduleQueriesImpl) DaySchedule(_ context.Context, roomID string, day time.Time) ([]SlotView, error) {
	if _, err := q.rooms.FindByID(roomID); err != nil {
		return nil, ErrRoomNotFound
	}

	day = day.In(q.grid.Location())
	slots := q.grid.Slots(day)
	reservations := q.reader.ListRoomDay(roomID, day)

	annotated := schedule.Annotate(slots, reservations)
	views := make([]SlotView, len(annotated))
	for i, a := range annotated {
		views[i] = SlotView{
			Start:       a.Start,
			End:         a.End,
			Reservation: NewReservationView(a.Reservation),
		}
	}
	return views, nil
}

func (q *scheduleQueriesImpl) DayOccupancy(_ context.Context, roomID string, day time.Time) (*DayOccupancyView, error) {
	if _, err := q.rooms.FindByID(roomID); err != nil {
		return nil, ErrRoomNotFound
	}

	day = day.In(q.grid.Location())
	view := q.dayOccupancy(roomID, day)
	return &view, nil
}

// MonthOccupancy powers the calendar-heat view; weekend days are reported as
// non-working with zeroed counts.
func (q *scheduleQueriesImpl) MonthOccupancy(_ context.Context, roomID string, year int, month time.Month) ([]DayOccupancyView, error) {
	if _, err := q.rooms.FindByID(roomID); err != nil {
		return nil, ErrRoomNotFound
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, q.grid.Location())
	views := make([]DayOccupancyView, 0, 31)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if schedule.IsWeekend(day) {
			views = append(views, DayOccupancyView{
				Date:    day.Format("2006-01-02"),
				WorkDay: false,
			})
			continue
		}
		views = append(views, q.dayOccupancy(roomID, day))
	}
	return views, nil
}

func (q *scheduleQueriesImpl) dayOccupancy(roomID string, day time.Time) DayOccupancyView {
	occ := schedule.Summarize(q.reader.ListRoomDay(roomID, day), q.grid.SlotCount())
	return DayOccupancyView{
		Date:           day.Format("2006-01-02"),
		WorkDay:        !schedule.IsWeekend(day),
		ConfirmedCount: occ.ConfirmedCount,
		PendingCount:   occ.PendingCount,
		Percentage:     occ.Percentage,
	}
}

// NewReservationView converts a domain reservation for presentation.
func NewReservationView(r *booking.Reservation) *ReservationView {
	if r == nil {
		return nil
	}
	view := &ReservationView{
		ID:        r.ID(),
		RoomID:    r.RoomID(),
		Start:     r.Start(),
		End:       r.End(),
		Status:    r.Status().String(),
		Purpose:   r.Purpose().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
	if requester := r.Requester(); requester != nil {
		view.Requester = &RequesterView{
			FirstName: requester.FirstName(),
			LastName:  requester.LastName(),
			Email:     requester.Email(),
		}
	}
	return view
}
