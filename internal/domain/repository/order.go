package repository

import (
	"context"
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// Status updates accept an optional set of allowed prior values. When the set
// is non-empty the write only applies if the stored value is one of them, and
// ErrNotFound is returned otherwise.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, from []model.PaymentStatus, updatedAt time.Time) error
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, from []model.OrderStatus, updatedAt time.Time) error
}
