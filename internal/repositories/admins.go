package repositories

import (
	"context"

	"github.com/avikm/job-board/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Admins struct {
	db *gorm.DB
}

func NewAdminsRepository(db *gorm.DB) *Admins {
	return &Admins{db: db}
}

// Add inserts the admin, mapping an email unique index violation to
// ErrDuplicateContact.
func (repo *Admins) Add(ctx context.Context, admin *entities.Admin) error {
	err := repo.db.WithContext(ctx).Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateContact
	}
	return err
}

func (repo *Admins) GetByID(ctx context.Context, id uint) (*entities.Admin, error) {
	var admin entities.Admin
	err := repo.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (repo *Admins) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var admin entities.Admin
	err := repo.db.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
