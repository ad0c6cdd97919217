package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"sayma/config"
	"sayma/internal/domain/entity"
	"sayma/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It signs admin tokens with HMAC-SHA256.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It refuses to construct without a signing secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.AdminToken == "" {
		return nil, errors.New("admin token secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.AdminToken),
		ttl:    cfg.Auth.AdminTokenTTL,
	}, nil
}

// Issue creates a signed token carrying the admin identity.
func (s *jwtService) Issue(adminID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   adminID.String(),
		"email": email,
		"role":  entity.RoleAdmin.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Validate parses and verifies a token string.
func (s *jwtService) Validate(tokenString string) (*service.AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse admin token")
	}
	if !token.Valid {
		return nil, errors.New("admin token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("admin token carries unexpected claims")
	}

	return mapClaimsToAdmin(claims)
}

func mapClaimsToAdmin(claims jwt.MapClaims) (*service.AdminClaims, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "admin token missing subject")
	}
	adminID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "admin token subject is not a uuid")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errors.New("admin token missing email")
	}

	role, _ := claims["role"].(string)
	if role != entity.RoleAdmin.String() {
		return nil, errors.New("admin token carries unexpected role")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("admin token missing expiry")
	}
	iat, _ := claims.GetIssuedAt()

	out := &service.AdminClaims{
		AdminID:   adminID,
		Email:     email,
		Role:      entity.Role(role),
		ExpiresAt: exp.Time,
	}
	if iat != nil {
		out.IssuedAt = iat.Time
	}

	return out, nil
}
