package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("somchai@example.com"))
	assert.True(t, IsValidEmail("  a@b.co  "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+66 81 234 5678"))
	assert.True(t, IsValidPhone("081-234-5678"))
	assert.False(t, IsValidPhone("123"))
	assert.False(t, IsValidPhone("call me maybe"))
}

func TestIsValidCardNumber(t *testing.T) {
	t.Run("KnownGoodNumbers", func(t *testing.T) {
		// Standard test card numbers.
		assert.True(t, IsValidCardNumber("4242 4242 4242 4242"))
		assert.True(t, IsValidCardNumber("4111-1111-1111-1111"))
	})

	t.Run("ChecksumFailure", func(t *testing.T) {
		assert.False(t, IsValidCardNumber("4242 4242 4242 4241"))
	})

	t.Run("LengthAndCharset", func(t *testing.T) {
		assert.False(t, IsValidCardNumber("4242"))
		assert.False(t, IsValidCardNumber("4242 4242 4242 424x"))
	})
}

func TestIsValidExpiry(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	assert.True(t, IsValidExpiry(fmt.Sprintf("%02d/%02d", int(future.Month()), future.Year()%100)))

	past := time.Now().AddDate(-1, 0, 0)
	assert.False(t, IsValidExpiry(fmt.Sprintf("%02d/%02d", int(past.Month()), past.Year()%100)))

	assert.False(t, IsValidExpiry("13/30"))
	assert.False(t, IsValidExpiry("00/30"))
	assert.False(t, IsValidExpiry("1230"))
	assert.False(t, IsValidExpiry("12/2030"))
}
