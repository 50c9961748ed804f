package components

import (
	"log/slog"
	"time"

	"reservation-portal/internal/domain/room"
	"reservation-portal/internal/domain/schedule"
	"reservation-portal/internal/handler/middleware"
	"reservation-portal/internal/infra/mailer"
	"reservation-portal/internal/infra/memstore"
	"reservation-portal/internal/pkg/config"
	"reservation-portal/internal/pkg/jwt"
	"reservation-portal/internal/usecase/commands"
	"reservation-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewScheduleGrid,
		fx.Annotate(
			NewRoomRegistry,
			fx.As(new(commands.RoomDirectory)),
			fx.As(new(commands.CredentialChecker)),
			fx.As(new(queries.RoomFinder)),
		),
		fx.Annotate(
			memstore.NewReservations,
			fx.As(new(commands.ReservationStore)),
			fx.As(new(queries.ScheduleReader)),
		),
		fx.Annotate(
			memstore.NewSessions,
			fx.As(new(commands.SessionStore)),
			fx.As(new(middleware.SessionStore)),
		),
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Notifier)),
		),
		fx.Annotate(
			func(svc *jwt.Service) *jwt.Service { return svc },
			fx.As(new(commands.SessionTokenIssuer)),
		),
	),
)

func NewRoomRegistry(cfg config.Config) (*room.Registry, error) {
	defs, err := room.ParseDefinitions(cfg.Booking.Rooms)
	if err != nil {
		return nil, err
	}
	return room.NewRegistry(defs)
}

func NewScheduleGrid(cfg config.Config) (schedule.Grid, error) {
	loc, err := time.LoadLocation(cfg.Schedule.TimeZone)
	if err != nil {
		return schedule.Grid{}, err
	}
	return schedule.NewGrid(cfg.Schedule.StartHour, cfg.Schedule.EndHour, cfg.Schedule.StepMinutes, loc)
}

func NewMailer(cfg config.Config, logger *slog.Logger) *mailer.SimulatedMailer {
	return mailer.NewSimulatedMailer(cfg.Notifier.Delay, logger)
}
