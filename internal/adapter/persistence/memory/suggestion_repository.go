package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
)

type SuggestionRepository struct {
	mu    sync.RWMutex
	items map[string]entities.DispatchSuggestion
}

var _ interfaces.ISuggestionRepository = (*SuggestionRepository)(nil)

func NewSuggestionRepository() *SuggestionRepository {
	return &SuggestionRepository{items: map[string]entities.DispatchSuggestion{}}
}

func (r *SuggestionRepository) Create(_ context.Context, s entities.DispatchSuggestion) (entities.DispatchSuggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; ok {
		return entities.DispatchSuggestion{}, errDuplicateID
	}
	r.items[s.ID] = cloneSuggestion(s)
	return cloneSuggestion(s), nil
}

func (r *SuggestionRepository) GetByID(_ context.Context, businessID, id string) (entities.DispatchSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok || s.BusinessID != businessID {
		return entities.DispatchSuggestion{}, nil
	}
	return cloneSuggestion(s), nil
}

func (r *SuggestionRepository) SaveOutcome(_ context.Context, s entities.DispatchSuggestion) (entities.DispatchSuggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[s.ID]
	if !ok || stored.BusinessID != s.BusinessID {
		return entities.DispatchSuggestion{}, nil
	}
	if stored.Status != entities.SuggestionStatusPending {
		return entities.DispatchSuggestion{}, interfaces.ErrConditionFailed
	}
	r.items[s.ID] = cloneSuggestion(s)
	return cloneSuggestion(s), nil
}

func (r *SuggestionRepository) RevertOutcome(_ context.Context, recorded, reopened entities.DispatchSuggestion) (entities.DispatchSuggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[reopened.ID]
	if !ok || stored.BusinessID != reopened.BusinessID {
		return entities.DispatchSuggestion{}, nil
	}
	if stored.Status != recorded.Status || !sameInstant(stored.ActionedAt, recorded.ActionedAt) {
		return entities.DispatchSuggestion{}, interfaces.ErrConditionFailed
	}
	r.items[reopened.ID] = cloneSuggestion(reopened)
	return cloneSuggestion(reopened), nil
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (r *SuggestionRepository) ListByBusiness(_ context.Context, businessID string, from, to time.Time) ([]entities.DispatchSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.DispatchSuggestion
	for _, s := range r.items {
		if s.BusinessID == businessID && !s.CreatedAt.Before(from) && !s.CreatedAt.After(to) {
			out = append(out, cloneSuggestion(s))
		}
	}
	sortByCreated(out)
	return out, nil
}

func (r *SuggestionRepository) ListPendingCreatedBefore(_ context.Context, before time.Time, limit int) ([]entities.DispatchSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.DispatchSuggestion
	for _, s := range r.items {
		if s.Status == entities.SuggestionStatusPending && s.CreatedAt.Before(before) {
			out = append(out, cloneSuggestion(s))
		}
	}
	sortByCreated(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortByCreated(s []entities.DispatchSuggestion) {
	sort.Slice(s, func(i, j int) bool {
		if !s[i].CreatedAt.Equal(s[j].CreatedAt) {
			return s[i].CreatedAt.Before(s[j].CreatedAt)
		}
		return s[i].ID < s[j].ID
	})
}
