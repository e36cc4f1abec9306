package services

import (
	"context"
	"strings"

	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/entities"
	"github.com/avikm/job-board/internal/logger"
	"github.com/avikm/job-board/internal/repositories"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type employerAccountRepository interface {
	Add(ctx context.Context, employer *entities.Employer) error
	GetByID(ctx context.Context, id uint) (*entities.Employer, error)
	GetByPhone(ctx context.Context, phone string) (*entities.Employer, error)
	ContactExists(ctx context.Context, phone, email string) (bool, error)
}

type adminAccountRepository interface {
	Add(ctx context.Context, admin *entities.Admin) error
	GetByID(ctx context.Context, id uint) (*entities.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entities.Admin, error)
}

// Accounts handles registration and login for both actor roles and issues
// their tokens.
type Accounts struct {
	employers employerAccountRepository
	admins    adminAccountRepository
	tokens    *auth.TokenService
}

func NewAccountsService(employers employerAccountRepository, admins adminAccountRepository,
	tokens *auth.TokenService) *Accounts {
	return &Accounts{employers: employers, admins: admins, tokens: tokens}
}

type EmployerRegistration struct {
	CompanyName string
	OwnerName   string
	Sector      string
	Address     string
	Phone       string
	Email       string
	Password    string
}

func (s *Accounts) RegisterEmployer(ctx context.Context, reg EmployerRegistration) (*entities.Employer, string, error) {

	email := strings.ToLower(reg.Email)

	exists, err := s.employers.ContactExists(ctx, reg.Phone, email)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to check employer contact")
	}
	if exists {
		return nil, "", ErrDuplicateContact
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to hash password")
	}

	employer := &entities.Employer{
		CompanyName:  reg.CompanyName,
		OwnerName:    reg.OwnerName,
		Sector:       reg.Sector,
		Address:      reg.Address,
		Phone:        reg.Phone,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err = s.employers.Add(ctx, employer); err != nil {
		// unique index backstop for a concurrent registration with the same contact
		if errors.Is(err, repositories.ErrDuplicateContact) {
			return nil, "", ErrDuplicateContact
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to create employer: %v", err)
		return nil, "", errors.Wrap(err, "failed to create employer")
	}

	token, err := s.tokens.Issue(employer.ID, auth.RoleEmployer)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to issue token")
	}
	return employer, token, nil
}

func (s *Accounts) LoginEmployer(ctx context.Context, phone, password string) (*entities.Employer, string, error) {

	employer, err := s.employers.GetByPhone(ctx, phone)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get employer")
	}
	if employer == nil || !auth.CheckPassword(employer.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(employer.ID, auth.RoleEmployer)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to issue token")
	}
	return employer, token, nil
}

func (s *Accounts) GetEmployer(ctx context.Context, id uint) (*entities.Employer, error) {
	employer, err := s.employers.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get employer")
	}
	if employer == nil {
		return nil, ErrNotFound
	}
	return employer, nil
}

func (s *Accounts) GetAdmin(ctx context.Context, id uint) (*entities.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get admin")
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

func (s *Accounts) SignupAdmin(ctx context.Context, name, email, password string) (*entities.Admin, string, error) {

	email = strings.ToLower(email)
	existing, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to check admin email")
	}
	if existing != nil {
		return nil, "", ErrDuplicateContact
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to hash password")
	}

	admin := &entities.Admin{Name: name, Email: email, PasswordHash: hash, Role: auth.RoleMaster}
	if err = s.admins.Add(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicateContact) {
			return nil, "", ErrDuplicateContact
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to create admin: %v", err)
		return nil, "", errors.Wrap(err, "failed to create admin")
	}

	token, err := s.tokens.Issue(admin.ID, admin.Role)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to issue token")
	}
	return admin, token, nil
}

func (s *Accounts) LoginAdmin(ctx context.Context, email, password string) (*entities.Admin, string, error) {

	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get admin")
	}
	if admin == nil || !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID, admin.Role)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to issue token")
	}
	return admin, token, nil
}
