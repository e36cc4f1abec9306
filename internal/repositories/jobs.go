package repositories

import (
	"context"

	"github.com/avikm/job-board/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id uint) (*entities.Job, error) {
	var job entities.Job
	err := repo.db.WithContext(ctx).Preload("Employer").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) GetByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	var jobs []entities.Job
	err := repo.db.WithContext(ctx).Preload("Employer").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetByEmployer(ctx context.Context, employerID uint) ([]entities.Job, error) {
	var jobs []entities.Job
	err := repo.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetAll(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	err := repo.db.WithContext(ctx).Preload("Employer").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateOwned applies the field changes to the job only if employerID owns it.
// Returns false when no row matched, which covers both a missing job and a
// job owned by someone else.
func (repo *Jobs) UpdateOwned(ctx context.Context, id uint, employerID uint, fields map[string]any) (bool, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Job{}).
		Where("id = ? AND employer_id = ?", id, employerID).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (repo *Jobs) UpdateStatus(ctx context.Context, id uint, status entities.JobStatus) (bool, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Job{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected > 0, res.Error
}

func (repo *Jobs) RemoveOwned(ctx context.Context, id uint, employerID uint) (bool, error) {
	res := repo.db.WithContext(ctx).
		Where("id = ? AND employer_id = ?", id, employerID).
		Delete(&entities.Job{})
	return res.RowsAffected > 0, res.Error
}

// ExistingIDs filters the given job ids down to those that still exist.
func (repo *Jobs) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	var existing []uint
	err := repo.db.WithContext(ctx).Model(&entities.Job{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	return existing, err
}
