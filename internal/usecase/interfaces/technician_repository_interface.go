package interfaces

import (
	"context"
	"time"

	"dispatch_service/internal/domain/entities"
)

// ITechnicianRepository persists technicians. Reads are tenant-scoped: a
// technician owned by another business is returned as the zero value, exactly
// like a missing one.
type ITechnicianRepository interface {
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, businessID, id string) (entities.Technician, error)
	ListByBusiness(ctx context.Context, businessID string) ([]entities.Technician, error)
	// Update replaces the stored record, except the live location, when the
	// stored version still equals t.Version, and bumps the version. A stale
	// version fails with ErrConditionFailed. The zero value is returned when
	// the technician does not exist in businessID.
	Update(ctx context.Context, t entities.Technician) (entities.Technician, error)
	// UpdateLocation overwrites the live location when loc is newer than the
	// stored one; an older report fails with ErrConditionFailed.
	UpdateLocation(ctx context.Context, businessID, id string, loc entities.TechnicianLocation) (entities.Technician, error)
}

// ILocationHistoryRepository is the audit-only location stream. Samples expire
// on their own and are never read by dispatch decisions.
type ILocationHistoryRepository interface {
	Append(ctx context.Context, s entities.LocationSample) error
	List(ctx context.Context, businessID, techID string, since time.Time) ([]entities.LocationSample, error)
}
