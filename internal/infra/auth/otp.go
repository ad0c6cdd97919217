package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"sayma/internal/domain/service"
)

const (
	otpMin  = 100000
	otpSpan = 900000
)

// otpGenerator produces 6-digit numeric codes from crypto/rand.
type otpGenerator struct{}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator() service.OTPGenerator {
	return &otpGenerator{}
}

// Generate returns a code in [100000, 999999] so it always renders as
// exactly six digits.
func (g *otpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", errors.Wrap(err, "generate login code")
	}

	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}
