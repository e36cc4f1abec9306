package repositories

import (
	"context"

	"github.com/avikm/job-board/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrDuplicateApplication = errors.New("duplicate application")

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

// Add inserts the application. A violation of the (job, phone) or (job, email)
// unique indexes comes back as ErrDuplicateApplication.
func (repo *Applications) Add(ctx context.Context, application *entities.Application) error {
	err := repo.db.WithContext(ctx).Create(application).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

// ExistsForContact reports whether the job already has an application with the
// phone or with the email.
func (repo *Applications) ExistsForContact(ctx context.Context, jobID uint, phone, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Application{}).
		Where("job_id = ? AND (phone = ? OR email = ?)", jobID, phone, email).
		Count(&count).Error
	return count > 0, err
}

func (repo *Applications) GetByEmployer(ctx context.Context, employerID uint) ([]entities.Application, error) {
	var applications []entities.Application
	err := repo.db.WithContext(ctx).Preload("Job").
		Where("employer_id = ?", employerID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) RemoveByJob(ctx context.Context, jobID uint) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.Application{}, "job_id = ?", jobID)
	return res.RowsAffected, res.Error
}

// DistinctJobIDs returns every job id referenced by at least one application.
func (repo *Applications) DistinctJobIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := repo.db.WithContext(ctx).Model(&entities.Application{}).
		Distinct("job_id").
		Pluck("job_id", &ids).Error
	return ids, err
}

func (repo *Applications) RemoveByJobs(ctx context.Context, jobIDs []uint) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	res := repo.db.WithContext(ctx).Delete(&entities.Application{}, "job_id IN ?", jobIDs)
	return res.RowsAffected, res.Error
}
