package memory

import (
	"context"
	"sort"
	"sync"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
)

// ScheduleEntryRepository keeps a version counter per technician day and
// applies the same compare-and-swap rules as the DynamoDB store.
type ScheduleEntryRepository struct {
	mu       sync.RWMutex
	entries  map[string]entities.ScheduleEntry
	days     map[string][]string
	versions map[string]int64
}

var _ interfaces.IScheduleEntryRepository = (*ScheduleEntryRepository)(nil)

func NewScheduleEntryRepository() *ScheduleEntryRepository {
	return &ScheduleEntryRepository{
		entries:  map[string]entities.ScheduleEntry{},
		days:     map[string][]string{},
		versions: map[string]int64{},
	}
}

func (r *ScheduleEntryRepository) ListDay(_ context.Context, businessID, techID, date string) (interfaces.DayEntries, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := entities.DayKey(businessID, techID, date)
	out := interfaces.DayEntries{Version: r.versions[key]}
	for _, id := range r.days[key] {
		out.Entries = append(out.Entries, cloneEntry(r.entries[id]))
	}
	sort.Slice(out.Entries, func(i, j int) bool { return out.Entries[i].Order < out.Entries[j].Order })
	return out, nil
}

func (r *ScheduleEntryRepository) CreateEntry(_ context.Context, e entities.ScheduleEntry, expectedVersion int64) (entities.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entities.DayKey(e.BusinessID, e.TechID, e.ScheduledDate)
	if r.versions[key] != expectedVersion {
		return entities.ScheduleEntry{}, interfaces.ErrVersionConflict
	}
	if _, ok := r.entries[e.ID]; ok {
		return entities.ScheduleEntry{}, errDuplicateID
	}
	r.entries[e.ID] = cloneEntry(e)
	r.days[key] = append(r.days[key], e.ID)
	r.versions[key]++
	return cloneEntry(e), nil
}

func (r *ScheduleEntryRepository) UpdateOrders(_ context.Context, businessID, techID, date string, orders map[string]int, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entities.DayKey(businessID, techID, date)
	if r.versions[key] != expectedVersion {
		return interfaces.ErrVersionConflict
	}
	for id := range orders {
		e, ok := r.entries[id]
		if !ok || entities.DayKey(e.BusinessID, e.TechID, e.ScheduledDate) != key {
			return interfaces.ErrVersionConflict
		}
	}
	for id, o := range orders {
		e := r.entries[id]
		e.Order = o
		r.entries[id] = e
	}
	r.versions[key]++
	return nil
}

func (r *ScheduleEntryRepository) GetByID(_ context.Context, businessID, id string) (entities.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok || e.BusinessID != businessID {
		return entities.ScheduleEntry{}, nil
	}
	return cloneEntry(e), nil
}

func (r *ScheduleEntryRepository) UpdateStatus(_ context.Context, e entities.ScheduleEntry, from entities.ScheduleEntryStatus) (entities.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.entries[e.ID]
	if !ok || stored.BusinessID != e.BusinessID {
		return entities.ScheduleEntry{}, nil
	}
	if stored.Status != from {
		return entities.ScheduleEntry{}, interfaces.ErrConditionFailed
	}
	stored.Status = e.Status
	stored.StartedAt = e.StartedAt
	stored.CompletedAt = e.CompletedAt
	stored.CancelledAt = e.CancelledAt
	stored.UpdatedAt = e.UpdatedAt
	r.entries[e.ID] = stored
	return cloneEntry(stored), nil
}
