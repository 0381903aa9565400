package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
)

// OrderInput carries fields of a new order. A nil Items slice means the
// field was absent; an empty one means it was sent empty.
type OrderInput struct {
	Items       []model.OrderItem
	TotalAmount *float64
	TableNumber *string
	SplitCount  *int
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	policy TransitionPolicy
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, policy TransitionPolicy) *OrderUseCase {
	return &OrderUseCase{orders: orders, policy: policy, now: utcNow}
}

// Create places a new order owned by the caller.
func (u *OrderUseCase) Create(ctx context.Context, caller model.Identity, in OrderInput) (*model.Order, error) {
	if !caller.Authenticated() {
		return nil, domainErrors.ErrUnauthorized
	}
	if in.Items == nil || in.TotalAmount == nil {
		return nil, domainErrors.Validation("Missing required fields")
	}
	if err := validateOrderItems(in.Items); err != nil {
		return nil, err
	}
	if *in.TotalAmount < 0 {
		return nil, domainErrors.Validation("total_amount must be non-negative")
	}

	split := 1
	if in.SplitCount != nil {
		split = *in.SplitCount
	}
	if split < 1 {
		return nil, domainErrors.Validation("split_count must be at least 1")
	}

	now := u.now()
	order := &model.Order{
		UserID:          caller.Subject(),
		Items:           in.Items,
		TotalAmount:     *in.TotalAmount,
		PerPersonAmount: model.PerPerson(*in.TotalAmount, split),
		SplitCount:      split,
		TableNumber:     in.TableNumber,
		PaymentStatus:   model.PaymentStatusPending,
		OrderStatus:     model.OrderStatusPlaced,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return u.orders.Create(ctx, order)
}

// Get returns a single order visible to the caller.
func (u *OrderUseCase) Get(ctx context.Context, caller model.Identity, id string) (*model.Order, error) {
	if !caller.Authenticated() {
		return nil, domainErrors.ErrUnauthorized
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsStaff() && !caller.Owns(order.UserID) {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// List returns every order for staff and own orders otherwise, newest first.
func (u *OrderUseCase) List(ctx context.Context, caller model.Identity) ([]model.Order, error) {
	if !caller.Authenticated() {
		return nil, domainErrors.ErrUnauthorized
	}
	if caller.IsStaff() {
		return u.orders.List(ctx)
	}
	return u.orders.ListByUser(ctx, caller.Subject())
}

// SetPaymentStatus records a payment outcome for an order.
func (u *OrderUseCase) SetPaymentStatus(ctx context.Context, caller model.Identity, id string, status model.PaymentStatus) error {
	if !caller.Authenticated() {
		return domainErrors.ErrUnauthorized
	}
	if status == "" {
		return domainErrors.Validation("Missing payment_status")
	}
	if !status.Valid() {
		return domainErrors.Validation("Invalid payment_status")
	}

	if !u.policy.Strict {
		return u.orders.UpdatePaymentStatus(ctx, id, status, nil, u.now())
	}

	current, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMovePayment(current.PaymentStatus, status) {
		return domainErrors.ErrInvalidTransition
	}
	err = u.orders.UpdatePaymentStatus(ctx, id, status, paymentSources(status), u.now())
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.ErrInvalidTransition
	}
	return err
}

// SetOrderStatus advances kitchen progress. Staff only.
func (u *OrderUseCase) SetOrderStatus(ctx context.Context, caller model.Identity, id string, status model.OrderStatus) error {
	if !caller.IsStaff() {
		return domainErrors.ErrForbidden
	}
	if status == "" {
		return domainErrors.Validation("Missing order_status")
	}
	if !status.Valid() {
		return domainErrors.Validation("Invalid order_status")
	}

	if !u.policy.Strict {
		return u.orders.UpdateOrderStatus(ctx, id, status, nil, u.now())
	}

	current, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMoveOrder(current.OrderStatus, status) {
		return domainErrors.ErrInvalidTransition
	}
	err = u.orders.UpdateOrderStatus(ctx, id, status, orderSources(status), u.now())
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.ErrInvalidTransition
	}
	return err
}
