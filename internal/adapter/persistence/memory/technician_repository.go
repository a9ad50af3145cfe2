package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
)

var errDuplicateID = errors.New("item already exists")

type TechnicianRepository struct {
	mu    sync.RWMutex
	techs map[string]entities.Technician
}

var _ interfaces.ITechnicianRepository = (*TechnicianRepository)(nil)

func NewTechnicianRepository() *TechnicianRepository {
	return &TechnicianRepository{techs: map[string]entities.Technician{}}
}

func (r *TechnicianRepository) Create(_ context.Context, t entities.Technician) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.techs[t.ID]; ok {
		return entities.Technician{}, errDuplicateID
	}
	r.techs[t.ID] = cloneTechnician(t)
	return cloneTechnician(t), nil
}

func (r *TechnicianRepository) GetByID(_ context.Context, businessID, id string) (entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.techs[id]
	if !ok || t.BusinessID != businessID {
		return entities.Technician{}, nil
	}
	return cloneTechnician(t), nil
}

func (r *TechnicianRepository) ListByBusiness(_ context.Context, businessID string) ([]entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Technician
	for _, t := range r.techs {
		if t.BusinessID == businessID {
			out = append(out, cloneTechnician(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TechnicianRepository) Update(_ context.Context, t entities.Technician) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.techs[t.ID]
	if !ok || stored.BusinessID != t.BusinessID {
		return entities.Technician{}, nil
	}
	if stored.Version != t.Version {
		return entities.Technician{}, interfaces.ErrConditionFailed
	}
	// Location has its own latest-wins write path.
	t.Location = stored.Location
	t.Version++
	r.techs[t.ID] = cloneTechnician(t)
	return cloneTechnician(t), nil
}

func (r *TechnicianRepository) UpdateLocation(_ context.Context, businessID, id string, loc entities.TechnicianLocation) (entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.techs[id]
	if !ok || t.BusinessID != businessID {
		return entities.Technician{}, nil
	}
	if t.Location != nil && t.Location.Timestamp.After(loc.Timestamp) {
		return entities.Technician{}, interfaces.ErrConditionFailed
	}
	t.Location = &loc
	t.UpdatedAt = maxTime(t.UpdatedAt, loc.Timestamp)
	r.techs[id] = cloneTechnician(t)
	return cloneTechnician(t), nil
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
