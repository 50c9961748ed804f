package bootstrap

import (
	"reservation-portal/internal/pkg/config"
	"reservation-portal/internal/pkg/jwt"

	"go.uber.org/fx"
)

var SessionTokenModule = fx.Module("session-token",
	fx.Provide(
		NewSessionTokenService,
	),
)

func NewSessionTokenService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Session.Secret, cfg.Session.TokenDuration)
}
