// Package upi formats UPI payment intent links.
package upi

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Scheme   = "upi://pay"
	Currency = "INR"
)

// Note builds the transaction note attached to a canteen order link.
func Note(orderRef string) string {
	return "Canteen Order " + orderRef
}

// Format builds a deterministic upi://pay link. Parameters keep the
// pa, pn, am, cu, tn order expected by payment apps.
func Format(amount float64, orderRef, payeeID, payeeName string) string {
	params := [][2]string{
		{"pa", payeeID},
		{"pn", payeeName},
		{"am", FormatAmount(amount)},
		{"cu", Currency},
		{"tn", Note(orderRef)},
	}

	var b strings.Builder
	b.WriteString(Scheme)
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// FormatAmount renders amount with the shortest exact decimal form.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
