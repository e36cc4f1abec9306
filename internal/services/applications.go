package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/avikm/job-board/internal/entities"
	"github.com/avikm/job-board/internal/events"
	"github.com/avikm/job-board/internal/metrics"
	"github.com/avikm/job-board/internal/repositories"
	"github.com/pkg/errors"
)

type applicationRepository interface {
	Add(ctx context.Context, application *entities.Application) error
	ExistsForContact(ctx context.Context, jobID uint, phone, email string) (bool, error)
	GetByEmployer(ctx context.Context, employerID uint) ([]entities.Application, error)
}

type jobGetter interface {
	GetByID(ctx context.Context, id uint) (*entities.Job, error)
}

type Applications struct {
	bus          EventBus.Bus
	jobs         jobGetter
	applications applicationRepository
}

func NewApplicationsService(bus EventBus.Bus, jobs jobGetter, applications applicationRepository) (*Applications, error) {
	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	return &Applications{bus: bus, jobs: jobs, applications: applications}, nil
}

// Apply submits an application against an accepted job. The contact pre-check
// is an optimization; the (job, phone) and (job, email) unique indexes are what
// actually holds under concurrent submissions. Success is independent of
// notification delivery.
func (s *Applications) Apply(ctx context.Context, jobID uint, application entities.Application) (*entities.Application, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job")
	}
	if job == nil || job.Status != entities.StatusAccepted {
		return nil, ErrJobNotAvailable
	}

	exists, err := s.applications.ExistsForContact(ctx, jobID, application.Phone, application.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing applications")
	}
	if exists {
		return nil, ErrDuplicateApplicant
	}

	application.JobID = jobID
	application.EmployerID = job.EmployerID

	if err = s.applications.Add(ctx, &application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, ErrDuplicateApplicant
		}
		return nil, errors.Wrap(err, "failed to create application")
	}

	metrics.ApplicationsCounter.Inc()

	s.bus.Publish(events.ApplicationReceivedTopic, events.ApplicationReceived{
		Application: application,
		JobID:       jobID,
		EmployerID:  job.EmployerID,
	})

	return &application, nil
}

func (s *Applications) ListForEmployer(ctx context.Context, employerID uint) ([]entities.Application, error) {
	return s.applications.GetByEmployer(ctx, employerID)
}
