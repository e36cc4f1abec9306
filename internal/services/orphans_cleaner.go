package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/samber/lo"
)

type orphanApplicationsRepository interface {
	DistinctJobIDs(ctx context.Context) ([]uint, error)
	RemoveByJobs(ctx context.Context, jobIDs []uint) (int64, error)
}

type jobIDsFilter interface {
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
}

// OrphansCleaner removes applications whose parent job no longer exists. Job
// deletion cascades in the API layer without a transaction, so a crash between
// the two deletes can leave orphans behind; this sweep is the compensation.
type OrphansCleaner struct {
	applications orphanApplicationsRepository
	jobs         jobIDsFilter
	cron         *cron.Cron
}

func NewOrphansCleaner(applications orphanApplicationsRepository, jobs jobIDsFilter) (*OrphansCleaner, error) {

	if applications == nil || jobs == nil {
		return nil, errors.New("repositories must not be nil")
	}

	oc := &OrphansCleaner{
		applications: applications,
		jobs:         jobs,
		cron:         cron.New(),
	}

	_, err := oc.cron.AddFunc("0 0 * * *", oc.cleanOrphans)
	if err != nil {
		return nil, err
	}

	oc.cron.Start()
	log.Info("orphan applications cleaner started")
	return oc, nil
}

func (oc *OrphansCleaner) Stop() {
	oc.cron.Stop()
}

func (oc *OrphansCleaner) cleanOrphans() {
	ctx := context.Background()

	referenced, err := oc.applications.DistinctJobIDs(ctx)
	if err != nil {
		log.Errorf("failed to list referenced jobs: %v", err)
		return
	}
	if len(referenced) == 0 {
		return
	}

	existing, err := oc.jobs.ExistingIDs(ctx, referenced)
	if err != nil {
		log.Errorf("failed to filter existing jobs: %v", err)
		return
	}

	orphaned, _ := lo.Difference(referenced, existing)
	if len(orphaned) == 0 {
		return
	}

	removed, err := oc.applications.RemoveByJobs(ctx, orphaned)
	if err != nil {
		log.Errorf("failed to remove orphaned applications: %v", err)
	} else {
		log.Infof("removed %v orphaned applications for %v deleted jobs", removed, len(orphaned))
	}
}
