package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/pkg/upi"
)

const (
	defaultOrderRef     = "N/A"
	defaultCustomerName = "Customer"
)

// PaymentVerifier confirms that a transaction settled for an order.
type PaymentVerifier interface {
	Verify(ctx context.Context, orderRef, transactionID string) (bool, error)
}

// Payee identifies the UPI account receiving payments.
type Payee struct {
	ID   string
	Name string
}

// LinkRequest carries parameters of a payment link.
type LinkRequest struct {
	Amount       *float64
	OrderRef     string
	CustomerName string
}

// PaymentUseCase builds UPI links and checks reported transactions.
type PaymentUseCase struct {
	payee    Payee
	verifier PaymentVerifier
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payee Payee, verifier PaymentVerifier) *PaymentUseCase {
	return &PaymentUseCase{payee: payee, verifier: verifier}
}

// GenerateLink formats a UPI intent link for the requested amount.
func (u *PaymentUseCase) GenerateLink(_ context.Context, req LinkRequest) (*model.PaymentLink, error) {
	if req.Amount == nil {
		return nil, domainErrors.Validation("Amount is required")
	}
	if *req.Amount <= 0 {
		return nil, domainErrors.Validation("Amount must be greater than zero")
	}

	ref := strings.TrimSpace(req.OrderRef)
	if ref == "" {
		ref = defaultOrderRef
	}
	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		customer = defaultCustomerName
	}

	return &model.PaymentLink{
		Link:         upi.Format(*req.Amount, ref, u.payee.ID, u.payee.Name),
		Amount:       *req.Amount,
		OrderRef:     ref,
		CustomerName: customer,
		PayeeID:      u.payee.ID,
		PayeeName:    u.payee.Name,
	}, nil
}

// Verify asks the configured verifier about a transaction. The order ledger
// is never touched; clients report the outcome through the order endpoints.
func (u *PaymentUseCase) Verify(ctx context.Context, orderRef, transactionID string) (*model.PaymentVerification, error) {
	orderRef = strings.TrimSpace(orderRef)
	transactionID = strings.TrimSpace(transactionID)
	if orderRef == "" || transactionID == "" {
		return nil, domainErrors.Validation("Missing required fields")
	}

	ok, err := u.verifier.Verify(ctx, orderRef, transactionID)
	if err != nil {
		return nil, err
	}

	return &model.PaymentVerification{
		OrderRef:      orderRef,
		TransactionID: transactionID,
		Verified:      ok,
	}, nil
}
