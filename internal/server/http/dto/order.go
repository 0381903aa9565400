package dto

import (
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// OrderRequest describes order placement payload.
type OrderRequest struct {
	Items       []OrderItemRequest `json:"items"`
	TotalAmount *float64           `json:"total_amount"`
	TableNumber Scalar             `json:"table_number"`
	SplitCount  *int               `json:"split_count"`
}

// OrderItemRequest is a cart line. Carts built from menu listings send the
// item reference as _id, and it may be a string or a number.
type OrderItemRequest struct {
	ItemID   Scalar  `json:"item_id"`
	MenuID   Scalar  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderItems converts cart lines to domain items, keeping nil for an absent list.
func (r OrderRequest) OrderItems() []model.OrderItem {
	if r.Items == nil {
		return nil
	}
	items := make([]model.OrderItem, 0, len(r.Items))
	for _, line := range r.Items {
		id := line.ItemID.Value
		if !line.ItemID.Set {
			id = line.MenuID.Value
		}
		items = append(items, model.OrderItem{
			ItemID:   id,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}
	return items
}

// PaymentStatusRequest changes payment status of an order.
type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// OrderStatusRequest changes kitchen status of an order.
type OrderStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

// OrderResponse is the wire form of an order.
type OrderResponse struct {
	ID              string            `json:"_id"`
	UserID          string            `json:"user_id"`
	Items           []model.OrderItem `json:"items"`
	TotalAmount     float64           `json:"total_amount"`
	PerPersonAmount float64           `json:"per_person_amount"`
	SplitCount      int               `json:"split_count"`
	TableNumber     *string           `json:"table_number"`
	PaymentStatus   string            `json:"payment_status"`
	OrderStatus     string            `json:"order_status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// NewOrderResponse maps domain order to response.
func NewOrderResponse(order model.Order) OrderResponse {
	items := order.Items
	if items == nil {
		items = []model.OrderItem{}
	}
	return OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		TotalAmount:     order.TotalAmount,
		PerPersonAmount: order.PerPersonAmount,
		SplitCount:      order.SplitCount,
		TableNumber:     order.TableNumber,
		PaymentStatus:   string(order.PaymentStatus),
		OrderStatus:     string(order.OrderStatus),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// OrderSummary is the short form returned on placement.
type OrderSummary struct {
	ID              string  `json:"id"`
	TotalAmount     float64 `json:"total_amount"`
	PerPersonAmount float64 `json:"per_person_amount"`
	SplitCount      int     `json:"split_count"`
}

// OrderCreatedResponse is returned after placing an order.
type OrderCreatedResponse struct {
	Message string       `json:"message"`
	OrderID string       `json:"order_id"`
	Order   OrderSummary `json:"order"`
}

// OrdersResponse lists orders visible to caller.
type OrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// OrderEnvelope wraps a single order.
type OrderEnvelope struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}
