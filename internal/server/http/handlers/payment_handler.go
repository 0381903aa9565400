package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/usecase"
)

// PaymentHandler serves UPI link and verification endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// GenerateUPI handles POST /api/payment/generate-upi.
func (h *PaymentHandler) GenerateUPI(c *gin.Context) {
	var req dto.UPILinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	link, err := h.facade.PaymentLink(c.Request.Context(), usecase.LinkRequest{
		Amount:       req.Amount,
		OrderRef:     req.OrderID.Value,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.UPILinkResponse{
		Success:   true,
		UPILink:   link.Link,
		Amount:    link.Amount,
		UPIID:     link.PayeeID,
		PayeeName: link.PayeeName,
		Message:   "UPI link generated successfully",
	})
}

// Verify handles POST /api/payment/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	result, err := h.facade.VerifyPayment(c.Request.Context(), req.OrderID.Value, req.TransactionID.Value)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	message := "Payment verified successfully"
	if !result.Verified {
		message = "Payment could not be verified"
	}
	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Success:         true,
		PaymentVerified: result.Verified,
		TransactionID:   result.TransactionID,
		Message:         message,
	})
}
