package usecase

import (
	"strings"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
)

// ValidateEmail performs the minimal shape check applied at registration:
// the address must contain both '@' and '.'.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func validateOrderItems(items []model.OrderItem) error {
	if len(items) == 0 {
		return domainErrors.Validation("Items must be a non-empty array")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return domainErrors.Validation("Each item requires a name")
		}
		if item.Quantity < 1 {
			return domainErrors.Validation("Item quantity must be at least 1")
		}
		if item.Price < 0 {
			return domainErrors.Validation("Item price must be non-negative")
		}
	}
	return nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
