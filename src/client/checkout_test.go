package client

import (
	"fmt"
	"testing"
	"time"

	"Backend-Adventura-001/src/models"

	"github.com/stretchr/testify/assert"
)

func validPayment() PaymentDetails {
	future := time.Now().AddDate(1, 0, 0)
	return PaymentDetails{
		CardNumber: "4242 4242 4242 4242",
		Expiry:     fmt.Sprintf("%02d/%02d", int(future.Month()), future.Year()%100),
	}
}

func TestValidateCheckout(t *testing.T) {
	order := &models.BookOrder{
		ParentName: "Somchai",
		Email:      "somchai@example.com",
		Phone:      "+66 81 234 5678",
		ChildName:  "Mali",
	}

	t.Run("AcceptsValidEntry", func(t *testing.T) {
		assert.NoError(t, ValidateCheckout(order, validPayment()))
	})

	t.Run("RejectsBadEmail", func(t *testing.T) {
		bad := *order
		bad.Email = "not-an-email"
		assert.EqualError(t, ValidateCheckout(&bad, validPayment()), "invalid email address")
	})

	t.Run("RejectsBadPhone", func(t *testing.T) {
		bad := *order
		bad.Phone = "123"
		assert.EqualError(t, ValidateCheckout(&bad, validPayment()), "invalid phone number")
	})

	t.Run("AllowsMissingPhone", func(t *testing.T) {
		noPhone := *order
		noPhone.Phone = ""
		assert.NoError(t, ValidateCheckout(&noPhone, validPayment()))
	})

	t.Run("RejectsBadChecksum", func(t *testing.T) {
		pay := validPayment()
		pay.CardNumber = "4242 4242 4242 4241"
		assert.EqualError(t, ValidateCheckout(order, pay), "invalid card number")
	})

	t.Run("RejectsExpiredCard", func(t *testing.T) {
		pay := validPayment()
		pay.Expiry = "01/20"
		assert.EqualError(t, ValidateCheckout(order, pay), "card expiry is invalid or in the past")
	})
}
