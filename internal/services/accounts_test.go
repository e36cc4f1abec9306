package services

import (
	"context"
	"testing"
	"time"

	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/entities"
	"github.com/avikm/job-board/internal/repositories"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmployerAccounts struct {
	mock.Mock
}

func (m *mockEmployerAccounts) Add(ctx context.Context, employer *entities.Employer) error {
	return m.Called(ctx, employer).Error(0)
}

func (m *mockEmployerAccounts) GetByID(ctx context.Context, id uint) (*entities.Employer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entities.Employer), args.Error(1)
}

func (m *mockEmployerAccounts) GetByPhone(ctx context.Context, phone string) (*entities.Employer, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(*entities.Employer), args.Error(1)
}

func (m *mockEmployerAccounts) ContactExists(ctx context.Context, phone, email string) (bool, error) {
	args := m.Called(ctx, phone, email)
	return args.Bool(0), args.Error(1)
}

type mockAdminAccounts struct {
	mock.Mock
}

func (m *mockAdminAccounts) Add(ctx context.Context, admin *entities.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *mockAdminAccounts) GetByID(ctx context.Context, id uint) (*entities.Admin, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *mockAdminAccounts) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entities.Admin), args.Error(1)
}

var registration = EmployerRegistration{
	CompanyName: "Acme",
	OwnerName:   "Wile E.",
	Phone:       "9876543210",
	Email:       "owner@acme.test",
	Password:    "secret123",
}

func newAccountsService(employers *mockEmployerAccounts, admins *mockAdminAccounts) *Accounts {
	return NewAccountsService(employers, admins, auth.NewTokenService("test-secret", time.Hour))
}

func Test_RegisterEmployer_StorageErrorIsNotDuplicate(t *testing.T) {
	employers := &mockEmployerAccounts{}
	employers.On("ContactExists", mock.Anything, registration.Phone, registration.Email).
		Return(false, nil)
	employers.On("Add", mock.Anything, mock.Anything).
		Return(errors.New("disk I/O error"))

	service := newAccountsService(employers, &mockAdminAccounts{})
	_, _, err := service.RegisterEmployer(context.Background(), registration)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateContact)
}

func Test_RegisterEmployer_IndexViolationIsDuplicate(t *testing.T) {
	employers := &mockEmployerAccounts{}
	employers.On("ContactExists", mock.Anything, registration.Phone, registration.Email).
		Return(false, nil)
	employers.On("Add", mock.Anything, mock.Anything).
		Return(repositories.ErrDuplicateContact)

	service := newAccountsService(employers, &mockAdminAccounts{})
	_, _, err := service.RegisterEmployer(context.Background(), registration)

	assert.ErrorIs(t, err, ErrDuplicateContact)
}

func Test_RegisterEmployer_FoldsEmailCaseBeforeDuplicateCheck(t *testing.T) {
	employers := &mockEmployerAccounts{}
	employers.On("ContactExists", mock.Anything, registration.Phone, "owner@acme.test").
		Return(true, nil)

	mixedCase := registration
	mixedCase.Email = "Owner@Acme.Test"

	service := newAccountsService(employers, &mockAdminAccounts{})
	_, _, err := service.RegisterEmployer(context.Background(), mixedCase)

	assert.ErrorIs(t, err, ErrDuplicateContact)
	employers.AssertExpectations(t)
	employers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func Test_SignupAdmin_StorageErrorIsNotDuplicate(t *testing.T) {
	admins := &mockAdminAccounts{}
	admins.On("GetByEmail", mock.Anything, "root@board.test").
		Return((*entities.Admin)(nil), nil)
	admins.On("Add", mock.Anything, mock.Anything).
		Return(errors.New("disk I/O error"))

	service := newAccountsService(&mockEmployerAccounts{}, admins)
	_, _, err := service.SignupAdmin(context.Background(), "Root", "root@board.test", "secret123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateContact)
}
