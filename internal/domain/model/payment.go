package model

// PaymentLink is a UPI intent link presented to the customer.
type PaymentLink struct {
	Link         string
	Amount       float64
	OrderRef     string
	CustomerName string
	PayeeID      string
	PayeeName    string
}

// PaymentVerification reports the outcome of a transaction check.
type PaymentVerification struct {
	OrderRef      string
	TransactionID string
	Verified      bool
}

// TableCode is a rendered QR code pointing at a table ordering page.
type TableCode struct {
	TableNumber string
	URL         string
	PNG         []byte
}
