package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// generateOTP draws a uniform 6-digit code in [100000, 999999]. The lower
// bound keeps the decimal form leading-zero-free by construction.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("otp generation: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+otpMin), nil
}
