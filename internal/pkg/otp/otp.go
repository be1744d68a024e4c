package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// New generates a 6-digit one-time code in [100000, 999999].
func New() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
