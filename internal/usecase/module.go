package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/canteen/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		newTransitionPolicy,
		newPayee,
		newQRSettings,
	),
	fx.Provide(
		NewAuthUseCase,
		NewMenuUseCase,
		NewOrderUseCase,
		NewPaymentUseCase,
		NewQRUseCase,
	),
)

func newTransitionPolicy(cfg *config.Config) TransitionPolicy {
	return TransitionPolicy{Strict: cfg.StrictTransitions}
}

func newPayee(cfg *config.Config) Payee {
	return Payee{ID: cfg.UPIID, Name: cfg.UPIName}
}

func newQRSettings(cfg *config.Config) QRSettings {
	return QRSettings{BaseURL: cfg.QRBaseURL}
}
