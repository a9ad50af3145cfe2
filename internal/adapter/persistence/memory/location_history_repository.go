package memory

import (
	"context"
	"sync"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
)

// LocationHistoryRepository prunes expired samples on read, standing in for
// the DynamoDB TTL.
type LocationHistoryRepository struct {
	mu      sync.Mutex
	samples map[string][]entities.LocationSample
	now     func() time.Time
}

var _ interfaces.ILocationHistoryRepository = (*LocationHistoryRepository)(nil)

func NewLocationHistoryRepository() *LocationHistoryRepository {
	return &LocationHistoryRepository{
		samples: map[string][]entities.LocationSample{},
		now:     time.Now,
	}
}

func (r *LocationHistoryRepository) Append(_ context.Context, s entities.LocationSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := s.BusinessID + "#" + s.TechID
	r.samples[key] = append(r.samples[key], s)
	return nil
}

func (r *LocationHistoryRepository) List(_ context.Context, businessID, techID string, since time.Time) ([]entities.LocationSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := businessID + "#" + techID
	now := r.now()
	kept := r.samples[key][:0]
	var out []entities.LocationSample
	for _, s := range r.samples[key] {
		if !s.ExpiresAt.After(now) {
			continue
		}
		kept = append(kept, s)
		if !s.RecordedAt.Before(since) {
			out = append(out, s)
		}
	}
	r.samples[key] = kept
	return out, nil
}
