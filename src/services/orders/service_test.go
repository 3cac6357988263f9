package orders

import (
	"context"
	"testing"

	"Backend-Adventura-001/src/models"

	"github.com/stretchr/testify/assert"
)

// A malformed phone number is rejected before any storage is touched.
func TestCreateOrderRejectsInvalidPhone(t *testing.T) {
	order := &models.BookOrder{
		ParentName: "Somchai",
		Email:      "somchai@example.com",
		Phone:      "123",
		ChildName:  "Mali",
	}

	recorded, err := CreateOrder(context.Background(), order)
	assert.Nil(t, recorded)
	assert.EqualError(t, err, "invalid phone number")
}
