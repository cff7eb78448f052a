package mail

import "fmt"

const otpSubject = "Reset Password OTP"

const otpHTML = `<div style="font-family: Arial, sans-serif">
  <h2>OTP Verification</h2>
  <p>Your OTP is:</p>
  <h1 style="letter-spacing: 4px">%s</h1>
  <p>This OTP expires in %d minutes.</p>
</div>`

// OTPMessage builds the password reset email for the given code.
func OTPMessage(to, otp string, expiryMinutes int) Message {
	return Message{
		To:      to,
		Subject: otpSubject,
		HTML:    fmt.Sprintf(otpHTML, otp, expiryMinutes),
		Text:    fmt.Sprintf("Your OTP is: %s\nThis OTP expires in %d minutes.", otp, expiryMinutes),
	}
}
