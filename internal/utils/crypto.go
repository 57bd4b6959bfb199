package utils

import (
	"crypto/rand"
	"math/big"
)

// RandomDigits returns n cryptographically random decimal digits.
func RandomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}

// GenerateCardNumber returns a 16-digit virtual card number in the
// Visa range (leading 4).
func GenerateCardNumber() (string, error) {
	rest, err := RandomDigits(15)
	if err != nil {
		return "", err
	}
	return "4" + rest, nil
}

// GenerateCVV returns a random 3-digit CVV.
func GenerateCVV() (string, error) {
	return RandomDigits(3)
}
