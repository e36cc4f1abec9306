package repositories

import (
	"context"
	"time"

	"github.com/avikm/job-board/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type publicJobsRepository interface {
	GetByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
}

const publicListingKey = "public_listing"

// CachedPublicJobs caches the public (accepted) listing for a short window.
// Mutations must call Invalidate so moderation decisions show up promptly.
type CachedPublicJobs struct {
	repo  publicJobsRepository
	cache *gocache.Cache
}

func NewCachedPublicJobs(repo publicJobsRepository) *CachedPublicJobs {
	return &CachedPublicJobs{repo: repo, cache: gocache.New(30*time.Second, time.Minute)}
}

func (c *CachedPublicJobs) GetAccepted(ctx context.Context) ([]entities.Job, error) {
	if value, found := c.cache.Get(publicListingKey); found {
		return value.([]entities.Job), nil
	}

	jobs, err := c.repo.GetByStatus(ctx, entities.StatusAccepted)
	if err != nil {
		return nil, err
	}

	c.cache.Set(publicListingKey, jobs, gocache.DefaultExpiration)
	return jobs, nil
}

func (c *CachedPublicJobs) Invalidate() {
	c.cache.Delete(publicListingKey)
}
