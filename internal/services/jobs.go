package services

import (
	"context"

	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/entities"
	"github.com/pkg/errors"
)

type jobRepository interface {
	Add(ctx context.Context, job *entities.Job) error
	GetByID(ctx context.Context, id uint) (*entities.Job, error)
	GetByEmployer(ctx context.Context, employerID uint) ([]entities.Job, error)
	GetAll(ctx context.Context) ([]entities.Job, error)
	UpdateOwned(ctx context.Context, id uint, employerID uint, fields map[string]any) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status entities.JobStatus) (bool, error)
	RemoveOwned(ctx context.Context, id uint, employerID uint) (bool, error)
}

type jobApplicationsRemover interface {
	RemoveByJob(ctx context.Context, jobID uint) (int64, error)
}

type publicListing interface {
	GetAccepted(ctx context.Context) ([]entities.Job, error)
	Invalidate()
}

type employerGetter interface {
	GetByID(ctx context.Context, id uint) (*entities.Employer, error)
}

// Actor identifies the authenticated caller of an operation, when there is one.
type Actor struct {
	ID   uint
	Role string
}

func (a *Actor) isAdmin() bool {
	return a != nil && (a.Role == auth.RoleMaster || a.Role == auth.RoleAdmin)
}

func (a *Actor) ownsEmployer(employerID uint) bool {
	return a != nil && a.Role == auth.RoleEmployer && a.ID == employerID
}

type Jobs struct {
	jobs         jobRepository
	applications jobApplicationsRemover
	public       publicListing
	employers    employerGetter
}

func NewJobsService(jobs jobRepository, applications jobApplicationsRemover,
	public publicListing, employers employerGetter) *Jobs {
	return &Jobs{jobs: jobs, applications: applications, public: public, employers: employers}
}

func (s *Jobs) ListPublic(ctx context.Context) ([]entities.Job, error) {
	return s.public.GetAccepted(ctx)
}

func (s *Jobs) ListForEmployer(ctx context.Context, employerID uint) ([]entities.Job, error) {
	return s.jobs.GetByEmployer(ctx, employerID)
}

func (s *Jobs) ListAll(ctx context.Context) ([]entities.Job, error) {
	return s.jobs.GetAll(ctx)
}

// GetByID returns the job with employer details. Jobs that are not Accepted
// are only visible to their owner or an admin; everyone else sees the same
// not-available error a missing id produces.
func (s *Jobs) GetByID(ctx context.Context, id uint, caller *Actor) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job")
	}
	if job == nil {
		return nil, ErrJobNotAvailable
	}

	if job.Status != entities.StatusAccepted && !caller.isAdmin() && !caller.ownsEmployer(job.EmployerID) {
		return nil, ErrJobNotAvailable
	}
	return job, nil
}

// Create stamps the job with status New and the employer's current company name.
func (s *Jobs) Create(ctx context.Context, employerID uint, job entities.Job) (*entities.Job, error) {

	employer, err := s.employers.GetByID(ctx, employerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get employer")
	}
	if employer == nil {
		return nil, ErrNotFound
	}

	job.EmployerID = employerID
	job.CompanyName = employer.CompanyName
	job.Status = entities.StatusNew

	if err = s.jobs.Add(ctx, &job); err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}
	return &job, nil
}

// Update merges the fields into the job if employerID owns it. A job owned by
// someone else fails exactly like a missing id.
func (s *Jobs) Update(ctx context.Context, id uint, employerID uint, fields map[string]any) (*entities.Job, error) {

	updated, err := s.jobs.UpdateOwned(ctx, id, employerID, fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update job")
	}
	if !updated {
		return nil, ErrNotFound
	}

	s.public.Invalidate()
	return s.jobs.GetByID(ctx, id)
}

func (s *Jobs) SetStatus(ctx context.Context, id uint, status entities.JobStatus) (*entities.Job, error) {

	updated, err := s.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update job status")
	}
	if !updated {
		return nil, ErrNotFound
	}

	s.public.Invalidate()
	return s.jobs.GetByID(ctx, id)
}

// Delete removes the job and cascades to its applications. The cascade is
// orchestrated here, not by the storage layer; the orphan cleaner picks up
// anything a crash between the two deletes leaves behind.
func (s *Jobs) Delete(ctx context.Context, id uint, employerID uint) error {

	removed, err := s.jobs.RemoveOwned(ctx, id, employerID)
	if err != nil {
		return errors.Wrap(err, "failed to delete job")
	}
	if !removed {
		return ErrNotFound
	}

	s.public.Invalidate()

	if _, err = s.applications.RemoveByJob(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete job applications")
	}
	return nil
}
