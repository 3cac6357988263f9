package client

import (
	"errors"

	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/utils"
)

// PaymentDetails is the card entry of the checkout step. It is validated
// locally and never leaves the client.
type PaymentDetails struct {
	CardNumber string
	Expiry     string // MM/YY
}

// ValidateCheckout runs the field-level checks of the checkout step before
// an order is posted, returning the first problem found.
func ValidateCheckout(order *models.BookOrder, pay PaymentDetails) error {
	if !utils.IsValidEmail(order.Email) {
		return errors.New("invalid email address")
	}
	if order.Phone != "" && !utils.IsValidPhone(order.Phone) {
		return errors.New("invalid phone number")
	}
	if !utils.IsValidCardNumber(pay.CardNumber) {
		return errors.New("invalid card number")
	}
	if !utils.IsValidExpiry(pay.Expiry) {
		return errors.New("card expiry is invalid or in the past")
	}
	return nil
}
