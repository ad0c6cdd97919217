// Package repository contains hand-maintained testify mocks for the
// domain repository interfaces.
package repository

import (
	"context"
	"testing"
	"time"

	"sayma/internal/domain/entity"
	"sayma/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- UserRepository ---

type MockUserRepository struct{ mock.Mock }

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockUserRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &m.Mock}
}

func (e *MockUserRepositoryExpecter) Create(ctx, user any) *mock.Call {
	return e.mock.On("Create", ctx, user)
}

func (e *MockUserRepositoryExpecter) Update(ctx, user any) *mock.Call {
	return e.mock.On("Update", ctx, user)
}

func (e *MockUserRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockUserRepositoryExpecter) FindByEmail(ctx, email any) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

func (e *MockUserRepositoryExpecter) FindByPhone(ctx, phone any) *mock.Call {
	return e.mock.On("FindByPhone", ctx, phone)
}

func (e *MockUserRepositoryExpecter) ListWithReviews(ctx any) *mock.Call {
	return e.mock.On("ListWithReviews", ctx)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	args := m.Called(ctx, phone)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) ListWithReviews(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- AccountRepository ---

type MockAccountRepository struct{ mock.Mock }

func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockAccountRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockAccountRepository) EXPECT() *MockAccountRepositoryExpecter {
	return &MockAccountRepositoryExpecter{mock: &m.Mock}
}

func (e *MockAccountRepositoryExpecter) Create(ctx, account any) *mock.Call {
	return e.mock.On("Create", ctx, account)
}

func (e *MockAccountRepositoryExpecter) FindByProviderUserID(ctx, provider, providerUserID any) *mock.Call {
	return e.mock.On("FindByProviderUserID", ctx, provider, providerUserID)
}

func (e *MockAccountRepositoryExpecter) FindByUserAndProvider(ctx, userID, provider any) *mock.Call {
	return e.mock.On("FindByUserAndProvider", ctx, userID, provider)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindByProviderUserID(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Account, error) {
	args := m.Called(ctx, provider, providerUserID)
	if v := args.Get(0); v != nil {
		return v.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Account, error) {
	args := m.Called(ctx, userID, provider)
	if v := args.Get(0); v != nil {
		return v.(*entity.Account), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- SessionRepository ---

type MockSessionRepository struct{ mock.Mock }

func NewMockSessionRepository(t *testing.T) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockSessionRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockSessionRepository) EXPECT() *MockSessionRepositoryExpecter {
	return &MockSessionRepositoryExpecter{mock: &m.Mock}
}

func (e *MockSessionRepositoryExpecter) Create(ctx, session any) *mock.Call {
	return e.mock.On("Create", ctx, session)
}

func (e *MockSessionRepositoryExpecter) FindByTokenHash(ctx, tokenHash any) *mock.Call {
	return e.mock.On("FindByTokenHash", ctx, tokenHash)
}

func (e *MockSessionRepositoryExpecter) DeleteByTokenHash(ctx, tokenHash any) *mock.Call {
	return e.mock.On("DeleteByTokenHash", ctx, tokenHash)
}

func (e *MockSessionRepositoryExpecter) DeleteExpired(ctx any) *mock.Call {
	return e.mock.On("DeleteExpired", ctx)
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	args := m.Called(ctx, tokenHash)
	if v := args.Get(0); v != nil {
		return v.(*entity.Session), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- AdminRepository ---

type MockAdminRepository struct{ mock.Mock }

func NewMockAdminRepository(t *testing.T) *MockAdminRepository {
	m := &MockAdminRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockAdminRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockAdminRepository) EXPECT() *MockAdminRepositoryExpecter {
	return &MockAdminRepositoryExpecter{mock: &m.Mock}
}

func (e *MockAdminRepositoryExpecter) FindByEmail(ctx, email any) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

func (e *MockAdminRepositoryExpecter) UpsertOTP(ctx, email, otp, expiresAt any) *mock.Call {
	return e.mock.On("UpsertOTP", ctx, email, otp, expiresAt)
}

func (e *MockAdminRepositoryExpecter) ClearOTP(ctx, email any) *mock.Call {
	return e.mock.On("ClearOTP", ctx, email)
}

func (e *MockAdminRepositoryExpecter) UpsertProfile(ctx, email, name, picture, googleID, loginAt any) *mock.Call {
	return e.mock.On("UpsertProfile", ctx, email, name, picture, googleID, loginAt)
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*entity.Admin), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminRepository) UpsertOTP(ctx context.Context, email, otp string, expiresAt time.Time) (*entity.Admin, error) {
	args := m.Called(ctx, email, otp, expiresAt)
	if v := args.Get(0); v != nil {
		return v.(*entity.Admin), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminRepository) ClearOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAdminRepository) UpsertProfile(ctx context.Context, email, name, picture, googleID string, loginAt time.Time) (*entity.Admin, error) {
	args := m.Called(ctx, email, name, picture, googleID, loginAt)
	if v := args.Get(0); v != nil {
		return v.(*entity.Admin), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- AuthorizedEmailRepository ---

type MockAuthorizedEmailRepository struct{ mock.Mock }

func NewMockAuthorizedEmailRepository(t *testing.T) *MockAuthorizedEmailRepository {
	m := &MockAuthorizedEmailRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockAuthorizedEmailRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockAuthorizedEmailRepository) EXPECT() *MockAuthorizedEmailRepositoryExpecter {
	return &MockAuthorizedEmailRepositoryExpecter{mock: &m.Mock}
}

func (e *MockAuthorizedEmailRepositoryExpecter) Exists(ctx, email any) *mock.Call {
	return e.mock.On("Exists", ctx, email)
}

func (e *MockAuthorizedEmailRepositoryExpecter) Create(ctx, entry any) *mock.Call {
	return e.mock.On("Create", ctx, entry)
}

func (e *MockAuthorizedEmailRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (e *MockAuthorizedEmailRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockAuthorizedEmailRepositoryExpecter) List(ctx any) *mock.Call {
	return e.mock.On("List", ctx)
}

func (m *MockAuthorizedEmailRepository) Exists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorizedEmailRepository) Create(ctx context.Context, entry *entity.AuthorizedEmail) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuthorizedEmailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAuthorizedEmailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthorizedEmail, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.AuthorizedEmail), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthorizedEmailRepository) List(ctx context.Context) ([]*entity.AuthorizedEmail, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.AuthorizedEmail), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- MaidRepository ---

type MockMaidRepository struct{ mock.Mock }

func NewMockMaidRepository(t *testing.T) *MockMaidRepository {
	m := &MockMaidRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockMaidRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockMaidRepository) EXPECT() *MockMaidRepositoryExpecter {
	return &MockMaidRepositoryExpecter{mock: &m.Mock}
}

func (e *MockMaidRepositoryExpecter) Create(ctx, maid any) *mock.Call {
	return e.mock.On("Create", ctx, maid)
}

func (e *MockMaidRepositoryExpecter) Update(ctx, maid any) *mock.Call {
	return e.mock.On("Update", ctx, maid)
}

func (e *MockMaidRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (e *MockMaidRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockMaidRepositoryExpecter) List(ctx, includeHidden any) *mock.Call {
	return e.mock.On("List", ctx, includeHidden)
}

func (m *MockMaidRepository) Create(ctx context.Context, maid *entity.Maid) error {
	return m.Called(ctx, maid).Error(0)
}

func (m *MockMaidRepository) Update(ctx context.Context, maid *entity.Maid) error {
	return m.Called(ctx, maid).Error(0)
}

func (m *MockMaidRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMaidRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Maid, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Maid), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMaidRepository) List(ctx context.Context, includeHidden bool) ([]*entity.Maid, error) {
	args := m.Called(ctx, includeHidden)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Maid), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- ReviewRepository ---

type MockReviewRepository struct{ mock.Mock }

func NewMockReviewRepository(t *testing.T) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockReviewRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockReviewRepository) EXPECT() *MockReviewRepositoryExpecter {
	return &MockReviewRepositoryExpecter{mock: &m.Mock}
}

func (e *MockReviewRepositoryExpecter) Create(ctx, review any) *mock.Call {
	return e.mock.On("Create", ctx, review)
}

func (e *MockReviewRepositoryExpecter) Update(ctx, review any) *mock.Call {
	return e.mock.On("Update", ctx, review)
}

func (e *MockReviewRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockReviewRepositoryExpecter) FindByUserAndMaid(ctx, userID, maidID any) *mock.Call {
	return e.mock.On("FindByUserAndMaid", ctx, userID, maidID)
}

func (e *MockReviewRepositoryExpecter) List(ctx, maidID any) *mock.Call {
	return e.mock.On("List", ctx, maidID)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) FindByUserAndMaid(ctx context.Context, userID uuid.UUID, maidID *uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, userID, maidID)
	if v := args.Get(0); v != nil {
		return v.(*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, maidID *uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, maidID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- ContactRepository ---

type MockContactRepository struct{ mock.Mock }

func NewMockContactRepository(t *testing.T) *MockContactRepository {
	m := &MockContactRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockContactRepositoryExpecter struct{ mock *mock.Mock }

func (m *MockContactRepository) EXPECT() *MockContactRepositoryExpecter {
	return &MockContactRepositoryExpecter{mock: &m.Mock}
}

func (e *MockContactRepositoryExpecter) Create(ctx, contact any) *mock.Call {
	return e.mock.On("Create", ctx, contact)
}

func (e *MockContactRepositoryExpecter) UpdateStatus(ctx, id, status any) *mock.Call {
	return e.mock.On("UpdateStatus", ctx, id, status)
}

func (e *MockContactRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (e *MockContactRepositoryExpecter) List(ctx any) *mock.Call {
	return e.mock.On("List", ctx)
}

func (m *MockContactRepository) Create(ctx context.Context, contact *entity.ContactForm) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.ContactForm, error) {
	args := m.Called(ctx, id, status)
	if v := args.Get(0); v != nil {
		return v.(*entity.ContactForm), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]*entity.ContactForm, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.ContactForm), args.Error(1)
	}

	return nil, args.Error(1)
}

// --- TransactionManager ---

type MockTransactionManager struct{ mock.Mock }

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockTransactionManagerExpecter struct{ mock *mock.Mock }

func (m *MockTransactionManager) EXPECT() *MockTransactionManagerExpecter {
	return &MockTransactionManagerExpecter{mock: &m.Mock}
}

func (e *MockTransactionManagerExpecter) Execute(ctx, fn any) *mock.Call {
	return e.mock.On("Execute", ctx, fn)
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// --- RepositoryFactory ---

type MockRepositoryFactory struct{ mock.Mock }

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockRepositoryFactoryExpecter struct{ mock *mock.Mock }

func (m *MockRepositoryFactory) EXPECT() *MockRepositoryFactoryExpecter {
	return &MockRepositoryFactoryExpecter{mock: &m.Mock}
}

func (e *MockRepositoryFactoryExpecter) UserRepo() *mock.Call {
	return e.mock.On("UserRepo")
}

func (e *MockRepositoryFactoryExpecter) AccountRepo() *mock.Call {
	return e.mock.On("AccountRepo")
}

func (e *MockRepositoryFactoryExpecter) SessionRepo() *mock.Call {
	return e.mock.On("SessionRepo")
}

func (e *MockRepositoryFactoryExpecter) AdminRepo() *mock.Call {
	return e.mock.On("AdminRepo")
}

func (e *MockRepositoryFactoryExpecter) AuthorizedEmailRepo() *mock.Call {
	return e.mock.On("AuthorizedEmailRepo")
}

func (e *MockRepositoryFactoryExpecter) ReviewRepo() *mock.Call {
	return e.mock.On("ReviewRepo")
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	return m.Called().Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) SessionRepo() repository.SessionRepository {
	return m.Called().Get(0).(repository.SessionRepository)
}

func (m *MockRepositoryFactory) AdminRepo() repository.AdminRepository {
	return m.Called().Get(0).(repository.AdminRepository)
}

func (m *MockRepositoryFactory) AuthorizedEmailRepo() repository.AuthorizedEmailRepository {
	return m.Called().Get(0).(repository.AuthorizedEmailRepository)
}

func (m *MockRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return m.Called().Get(0).(repository.ReviewRepository)
}
