package gateway

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/canteen/internal/config"
)

// Module exposes the payment verifier to fx graph.
var Module = fx.Provide(newVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

func newVerifier(p verifierParams) (Verifier, error) {
	if p.Config.PaymentGatewayURL == "" {
		p.Logger.Warn("payment verification runs in stub mode: every transaction is acknowledged")
		return NewStubVerifier(p.Logger), nil
	}
	return NewHTTPVerifier(p.Config.PaymentGatewayURL, p.Logger)
}
