package interfaces

import (
	"context"

	"dispatch_service/internal/domain/entities"
)

// DayEntries is a consistent snapshot of one technician day together with the
// version token that guards writes to it.
type DayEntries struct {
	Entries []entities.ScheduleEntry
	Version int64
}

// IScheduleEntryRepository persists schedule entries partitioned by technician
// day.
//
// Writes that depend on the day's contents (create, reorder) are compare-and-
// swap on the day version: they fail with ErrVersionConflict when another
// writer bumped it since the snapshot was taken.
type IScheduleEntryRepository interface {
	ListDay(ctx context.Context, businessID, techID, date string) (DayEntries, error)
	CreateEntry(ctx context.Context, e entities.ScheduleEntry, expectedVersion int64) (entities.ScheduleEntry, error)
	UpdateOrders(ctx context.Context, businessID, techID, date string, orders map[string]int, expectedVersion int64) error
	GetByID(ctx context.Context, businessID, id string) (entities.ScheduleEntry, error)
	// UpdateStatus writes e when the stored status still equals from; otherwise
	// ErrConditionFailed.
	UpdateStatus(ctx context.Context, e entities.ScheduleEntry, from entities.ScheduleEntryStatus) (entities.ScheduleEntry, error)
}
