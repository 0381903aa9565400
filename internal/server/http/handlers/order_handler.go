package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/usecase"
)

var orderMessages = messages{domainErrors.ErrNotFound: "Order not found"}

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentIdentity(c), usecase.OrderInput{
		Items:       req.OrderItems(),
		TotalAmount: req.TotalAmount,
		TableNumber: req.TableNumber.Ptr(),
		SplitCount:  req.SplitCount,
	})
	if err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderCreatedResponse{
		Message: "Order created successfully",
		OrderID: order.ID,
		Order: dto.OrderSummary{
			ID:              order.ID,
			TotalAmount:     order.TotalAmount,
			PerPersonAmount: order.PerPersonAmount,
			SplitCount:      order.SplitCount,
		},
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentIdentity(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.NewOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Orders: resp})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err, messages{
			domainErrors.ErrNotFound:  "Order not found",
			domainErrors.ErrForbidden: "Unauthorized",
		})
		return
	}
	c.JSON(http.StatusOK, dto.OrderEnvelope{Success: true, Order: dto.NewOrderResponse(*order)})
}

// UpdatePayment handles PUT /api/orders/:id/payment.
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	var req dto.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	err := h.facade.SetPaymentStatus(c.Request.Context(), CurrentIdentity(c), c.Param("id"), model.PaymentStatus(req.PaymentStatus))
	if err != nil {
		respondError(c, err, orderMessages)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment status updated successfully"})
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	// Role is checked before payload, so non-staff callers fall through to a 403.
	if err := c.ShouldBindJSON(&req); err != nil && CurrentIdentity(c).IsStaff() {
		badRequest(c, invalidBody)
		return
	}

	err := h.facade.SetOrderStatus(c.Request.Context(), CurrentIdentity(c), c.Param("id"), model.OrderStatus(req.OrderStatus))
	if err != nil {
		respondError(c, err, orderMessages)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Order status updated successfully"})
}
