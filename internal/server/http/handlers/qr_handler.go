package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/usecase"
)

// QRHandler renders table QR codes.
type QRHandler struct {
	facade QRFacade
}

// NewQRHandler constructs QRHandler.
func NewQRHandler(facade QRFacade) *QRHandler {
	return &QRHandler{facade: facade}
}

// Generate handles POST /api/qr/generate.
func (h *QRHandler) Generate(c *gin.Context) {
	var req dto.QRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	code, err := h.facade.TableCode(c.Request.Context(), req.BaseURL, req.TableNumber.Value)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.QRResponse{
		Success: true,
		QRCode:  dto.NewQRCode(*code),
		Message: "QR code generated successfully",
	})
}

// GenerateMultiple handles POST /api/qr/generate-multiple.
// Explicit table_numbers take precedence over table_count.
func (h *QRHandler) GenerateMultiple(c *gin.Context) {
	var req dto.QRBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	var tables []string
	switch {
	case req.TableNumbers != nil:
		tables = make([]string, 0, len(req.TableNumbers))
		for _, n := range req.TableNumbers {
			tables = append(tables, n.Value)
		}
	case req.TableCount != nil:
		var err error
		if tables, err = usecase.TableRange(*req.TableCount); err != nil {
			respondError(c, err, nil)
			return
		}
	}

	codes, err := h.facade.TableCodes(c.Request.Context(), req.BaseURL, tables)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	resp := make([]dto.QRCode, 0, len(codes))
	for _, code := range codes {
		resp = append(resp, dto.NewQRCode(code))
	}
	c.JSON(http.StatusOK, dto.QRBatchResponse{Success: true, Count: len(resp), QRCodes: resp})
}
