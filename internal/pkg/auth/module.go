package auth

import (
	"github.com/polkiloo/canteen/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(newStaffCredentials),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
}

func newStaffCredentials(p strategyParams) StaffCredentials {
	return StaffCredentials{Username: p.Config.StaffUsername, Password: p.Config.StaffPassword}
}
