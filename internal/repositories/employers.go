package repositories

import (
	"context"

	"github.com/avikm/job-board/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrDuplicateContact = errors.New("duplicate contact")

type Employers struct {
	db *gorm.DB
}

func NewEmployersRepository(db *gorm.DB) *Employers {
	return &Employers{db: db}
}

// Add inserts the employer. A violation of the phone or email unique index
// comes back as ErrDuplicateContact.
func (repo *Employers) Add(ctx context.Context, employer *entities.Employer) error {
	err := repo.db.WithContext(ctx).Create(employer).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateContact
	}
	return err
}

func (repo *Employers) GetByID(ctx context.Context, id uint) (*entities.Employer, error) {
	var employer entities.Employer
	err := repo.db.WithContext(ctx).First(&employer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employer, nil
}

func (repo *Employers) GetByPhone(ctx context.Context, phone string) (*entities.Employer, error) {
	var employer entities.Employer
	err := repo.db.WithContext(ctx).First(&employer, "phone = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employer, nil
}

// ContactExists reports whether any employer already uses the phone or the email.
func (repo *Employers) ContactExists(ctx context.Context, phone, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Employer{}).
		Where("phone = ? OR email = ?", phone, email).
		Count(&count).Error
	return count > 0, err
}
