package model

import "time"

// PaymentStatus describes customer payment outcome.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Valid reports whether the status is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	}
	return false
}

// OrderStatus describes kitchen progress of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

var orderStages = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
}

// Valid reports whether the status is a known order status.
func (s OrderStatus) Valid() bool {
	return s.Stage() >= 0
}

// Stage returns position of the status in the kitchen pipeline or -1 when unknown.
func (s OrderStatus) Stage() int {
	for i, stage := range orderStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// OrderItem is a point-in-time copy of a menu item placed in an order.
type OrderItem struct {
	ItemID   string  `json:"item_id" bson:"item_id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Order describes a canteen order with its payment and kitchen state.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	TotalAmount     float64
	PerPersonAmount float64
	SplitCount      int
	TableNumber     *string
	PaymentStatus   PaymentStatus
	OrderStatus     OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PerPerson splits total between diners. No rounding is applied.
func PerPerson(total float64, split int) float64 {
	if split > 1 {
		return total / float64(split)
	}
	return total
}
