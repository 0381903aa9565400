// Package gateway verifies payment transactions reported by customers.
//
// The default StubVerifier does NOT contact any payment network: it
// acknowledges every well-formed (order, transaction) pair as verified.
// Deployments that need real confirmation set PAYMENT_GATEWAY_URL, which
// switches to HTTPVerifier.
package gateway

import (
	"context"

	"go.uber.org/zap"
)

// Verifier checks whether a reported transaction settled for an order.
type Verifier interface {
	Verify(ctx context.Context, orderRef, transactionID string) (bool, error)
}

// StubVerifier is an unauthenticated acknowledgment that always succeeds.
type StubVerifier struct {
	logger *zap.Logger
}

// NewStubVerifier creates StubVerifier.
func NewStubVerifier(logger *zap.Logger) *StubVerifier {
	return &StubVerifier{logger: logger}
}

// Verify reports success without checking funds movement.
func (v *StubVerifier) Verify(_ context.Context, orderRef, transactionID string) (bool, error) {
	v.logger.Debug("payment acknowledged without verification",
		zap.String("order_id", orderRef),
		zap.String("transaction_id", transactionID),
	)
	return true, nil
}
