package memory

import (
	"context"
	"sync"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
)

// JobCatalog is a seeded stand-in for the external job service.
type JobCatalog struct {
	mu   sync.RWMutex
	jobs map[string]entities.JobDetails
}

var _ interfaces.IJobCatalog = (*JobCatalog)(nil)

func NewJobCatalog(jobs ...entities.JobDetails) *JobCatalog {
	c := &JobCatalog{jobs: map[string]entities.JobDetails{}}
	for _, j := range jobs {
		c.Put(j)
	}
	return c
}

func (c *JobCatalog) Put(j entities.JobDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs[j.ID] = j
}

func (c *JobCatalog) GetJob(_ context.Context, businessID, jobID string) (entities.JobDetails, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	j, ok := c.jobs[jobID]
	if !ok || j.BusinessID != businessID {
		return entities.JobDetails{}, nil
	}
	return j, nil
}
