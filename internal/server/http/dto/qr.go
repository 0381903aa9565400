package dto

import (
	"encoding/base64"

	"github.com/polkiloo/canteen/internal/domain/model"
)

const pngDataURIPrefix = "data:image/png;base64,"

// QRRequest asks for a single table code.
type QRRequest struct {
	TableNumber Scalar `json:"table_number"`
	BaseURL     string `json:"base_url"`
}

// QRBatchRequest asks for codes by explicit list or by count.
type QRBatchRequest struct {
	TableNumbers []Scalar `json:"table_numbers"`
	TableCount   *int     `json:"table_count"`
	BaseURL      string   `json:"base_url"`
}

// QRCode is the wire form of a rendered table code.
type QRCode struct {
	TableNumber string `json:"table_number"`
	QRURL       string `json:"qr_url"`
	QRImage     string `json:"qr_image"`
}

// NewQRCode maps domain code to response embedding PNG as data URI.
func NewQRCode(code model.TableCode) QRCode {
	return QRCode{
		TableNumber: code.TableNumber,
		QRURL:       code.URL,
		QRImage:     pngDataURIPrefix + base64.StdEncoding.EncodeToString(code.PNG),
	}
}

// QRResponse is returned for a single table.
type QRResponse struct {
	Success bool `json:"success"`
	QRCode
	Message string `json:"message"`
}

// QRBatchResponse is returned for several tables.
type QRBatchResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	QRCodes []QRCode `json:"qr_codes"`
}
