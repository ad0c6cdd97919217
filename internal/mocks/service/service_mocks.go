// Package service contains hand-maintained testify mocks for the
// domain service interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"sayma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- PasswordHasher ---

type MockPasswordHasher struct{ mock.Mock }

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockPasswordHasherExpecter struct{ mock *mock.Mock }

func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{mock: &m.Mock}
}

func (e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

func (e *MockPasswordHasherExpecter) Check(password, hash any) *mock.Call {
	return e.mock.On("Check", password, hash)
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// --- TokenService ---

type MockTokenService struct{ mock.Mock }

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockTokenServiceExpecter struct{ mock *mock.Mock }

func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &m.Mock}
}

func (e *MockTokenServiceExpecter) Issue(adminID, email any) *mock.Call {
	return e.mock.On("Issue", adminID, email)
}

func (e *MockTokenServiceExpecter) Validate(tokenString any) *mock.Call {
	return e.mock.On("Validate", tokenString)
}

func (m *MockTokenService) Issue(adminID uuid.UUID, email string) (string, error) {
	args := m.Called(adminID, email)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.AdminClaims, error) {
	args := m.Called(tokenString)
	if v := args.Get(0); v != nil {
		return v.(*service.AdminClaims), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- SessionStrategy ---

type MockSessionStrategy struct{ mock.Mock }

func NewMockSessionStrategy(t *testing.T) *MockSessionStrategy {
	m := &MockSessionStrategy{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockSessionStrategyExpecter struct{ mock *mock.Mock }

func (m *MockSessionStrategy) EXPECT() *MockSessionStrategyExpecter {
	return &MockSessionStrategyExpecter{mock: &m.Mock}
}

func (e *MockSessionStrategyExpecter) Establish(ctx, principal any) *mock.Call {
	return e.mock.On("Establish", ctx, principal)
}

func (e *MockSessionStrategyExpecter) Resolve(ctx, credential any) *mock.Call {
	return e.mock.On("Resolve", ctx, credential)
}

func (e *MockSessionStrategyExpecter) Revoke(ctx, credential any) *mock.Call {
	return e.mock.On("Revoke", ctx, credential)
}

func (e *MockSessionStrategyExpecter) CookieName() *mock.Call {
	return e.mock.On("CookieName")
}

func (m *MockSessionStrategy) Establish(ctx context.Context, principal service.Principal) (string, time.Time, error) {
	args := m.Called(ctx, principal)

	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockSessionStrategy) Resolve(ctx context.Context, credential string) (*service.Principal, error) {
	args := m.Called(ctx, credential)
	if v := args.Get(0); v != nil {
		return v.(*service.Principal), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSessionStrategy) Revoke(ctx context.Context, credential string) error {
	return m.Called(ctx, credential).Error(0)
}

func (m *MockSessionStrategy) CookieName() string {
	return m.Called().String(0)
}

// --- OAuthService ---

type MockOAuthService struct{ mock.Mock }

func NewMockOAuthService(t *testing.T) *MockOAuthService {
	m := &MockOAuthService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockOAuthServiceExpecter struct{ mock *mock.Mock }

func (m *MockOAuthService) EXPECT() *MockOAuthServiceExpecter {
	return &MockOAuthServiceExpecter{mock: &m.Mock}
}

func (e *MockOAuthServiceExpecter) VerifyIDToken(ctx, idToken any) *mock.Call {
	return e.mock.On("VerifyIDToken", ctx, idToken)
}

func (m *MockOAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	args := m.Called(ctx, idToken)
	if v := args.Get(0); v != nil {
		return v.(*service.OAuthUser), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- Mailer ---

type MockMailer struct{ mock.Mock }

func NewMockMailer(t *testing.T) *MockMailer {
	m := &MockMailer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockMailerExpecter struct{ mock *mock.Mock }

func (m *MockMailer) EXPECT() *MockMailerExpecter {
	return &MockMailerExpecter{mock: &m.Mock}
}

func (e *MockMailerExpecter) SendOTP(ctx, to, code any) *mock.Call {
	return e.mock.On("SendOTP", ctx, to, code)
}

func (m *MockMailer) SendOTP(ctx context.Context, to, code string) error {
	return m.Called(ctx, to, code).Error(0)
}

// --- OTPGenerator ---

type MockOTPGenerator struct{ mock.Mock }

func NewMockOTPGenerator(t *testing.T) *MockOTPGenerator {
	m := &MockOTPGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockOTPGeneratorExpecter struct{ mock *mock.Mock }

func (m *MockOTPGenerator) EXPECT() *MockOTPGeneratorExpecter {
	return &MockOTPGeneratorExpecter{mock: &m.Mock}
}

func (e *MockOTPGeneratorExpecter) Generate() *mock.Call {
	return e.mock.On("Generate")
}

func (m *MockOTPGenerator) Generate() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

// --- PhotoStore ---

type MockPhotoStore struct{ mock.Mock }

func NewMockPhotoStore(t *testing.T) *MockPhotoStore {
	m := &MockPhotoStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockPhotoStoreExpecter struct{ mock *mock.Mock }

func (m *MockPhotoStore) EXPECT() *MockPhotoStoreExpecter {
	return &MockPhotoStoreExpecter{mock: &m.Mock}
}

func (e *MockPhotoStoreExpecter) Save(ctx, filename, contentType, data any) *mock.Call {
	return e.mock.On("Save", ctx, filename, contentType, data)
}

func (e *MockPhotoStoreExpecter) Delete(ctx, url any) *mock.Call {
	return e.mock.On("Delete", ctx, url)
}

func (m *MockPhotoStore) Save(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)

	return args.String(0), args.Error(1)
}

func (m *MockPhotoStore) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

// --- AllowlistCache ---

type MockAllowlistCache struct{ mock.Mock }

func NewMockAllowlistCache(t *testing.T) *MockAllowlistCache {
	m := &MockAllowlistCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockAllowlistCacheExpecter struct{ mock *mock.Mock }

func (m *MockAllowlistCache) EXPECT() *MockAllowlistCacheExpecter {
	return &MockAllowlistCacheExpecter{mock: &m.Mock}
}

func (e *MockAllowlistCacheExpecter) Get(ctx, email any) *mock.Call {
	return e.mock.On("Get", ctx, email)
}

func (e *MockAllowlistCacheExpecter) Set(ctx, email, allowed, ttl any) *mock.Call {
	return e.mock.On("Set", ctx, email, allowed, ttl)
}

func (e *MockAllowlistCacheExpecter) Invalidate(ctx, email any) *mock.Call {
	return e.mock.On("Invalidate", ctx, email)
}

func (m *MockAllowlistCache) Get(ctx context.Context, email string) (bool, bool) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Bool(1)
}

func (m *MockAllowlistCache) Set(ctx context.Context, email string, allowed bool, ttl time.Duration) {
	m.Called(ctx, email, allowed, ttl)
}

func (m *MockAllowlistCache) Invalidate(ctx context.Context, email string) {
	m.Called(ctx, email)
}
