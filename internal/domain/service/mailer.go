package service

import "context"

// Mailer delivers transactional mail. The only message the system sends
// today is the admin login code, but the interface stays generic.
type Mailer interface {
	// SendOTP delivers a one-time login code to the given address.
	SendOTP(ctx context.Context, to, code string) error
}

// OTPGenerator produces one-time login codes.
type OTPGenerator interface {
	// Generate returns a new 6-digit numeric code.
	Generate() (string, error)
}
