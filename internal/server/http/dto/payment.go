package dto

// UPILinkRequest asks for a UPI intent link.
type UPILinkRequest struct {
	Amount       *float64 `json:"amount"`
	OrderID      Scalar   `json:"order_id"`
	CustomerName string   `json:"customer_name"`
}

// UPILinkResponse carries generated link and payee details.
type UPILinkResponse struct {
	Success   bool    `json:"success"`
	UPILink   string  `json:"upi_link"`
	Amount    float64 `json:"amount"`
	UPIID     string  `json:"upi_id"`
	PayeeName string  `json:"payee_name"`
	Message   string  `json:"message"`
}

// VerifyPaymentRequest references a transaction to check.
type VerifyPaymentRequest struct {
	OrderID       Scalar `json:"order_id"`
	TransactionID Scalar `json:"transaction_id"`
}

// VerifyPaymentResponse reports verification outcome.
type VerifyPaymentResponse struct {
	Success         bool   `json:"success"`
	PaymentVerified bool   `json:"payment_verified"`
	TransactionID   string `json:"transaction_id"`
	Message         string `json:"message"`
}
