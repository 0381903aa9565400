package usecase

import "github.com/polkiloo/canteen/internal/domain/model"

// TransitionPolicy controls whether status writes follow the state machine.
type TransitionPolicy struct {
	Strict bool
}

var paymentTransitions = map[model.PaymentStatus][]model.PaymentStatus{
	model.PaymentStatusPending: {model.PaymentStatusSuccess, model.PaymentStatusFailed},
	model.PaymentStatusFailed:  {model.PaymentStatusPending, model.PaymentStatusSuccess},
}

// CanMovePayment reports whether payment status may change from -> to.
func CanMovePayment(from, to model.PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanMoveOrder reports whether kitchen status may change from -> to.
// Stages only advance; skipping is allowed.
func CanMoveOrder(from, to model.OrderStatus) bool {
	return from.Valid() && to.Stage() > from.Stage()
}

func paymentSources(to model.PaymentStatus) []model.PaymentStatus {
	var out []model.PaymentStatus
	for _, from := range []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusSuccess, model.PaymentStatusFailed} {
		if CanMovePayment(from, to) {
			out = append(out, from)
		}
	}
	return out
}

func orderSources(to model.OrderStatus) []model.OrderStatus {
	var out []model.OrderStatus
	for _, from := range []model.OrderStatus{model.OrderStatusPlaced, model.OrderStatusPreparing, model.OrderStatusReady, model.OrderStatusDelivered} {
		if CanMoveOrder(from, to) {
			out = append(out, from)
		}
	}
	return out
}
