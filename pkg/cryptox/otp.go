package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a password reset code.
const OTPLength = 6

// GenerateOTP returns a random numeric one-time code, zero-padded to
// OTPLength digits.
func GenerateOTP() (string, error) {
	digits := make([]byte, OTPLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
