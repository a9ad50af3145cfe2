package interfaces

import (
	"context"
	"time"

	"dispatch_service/internal/domain/entities"
)

// ISuggestionRepository persists dispatch suggestions.
type ISuggestionRepository interface {
	Create(ctx context.Context, s entities.DispatchSuggestion) (entities.DispatchSuggestion, error)
	GetByID(ctx context.Context, businessID, id string) (entities.DispatchSuggestion, error)
	// SaveOutcome stores an actioned or expired suggestion only if the stored
	// copy is still pending. A lost race fails with ErrConditionFailed.
	SaveOutcome(ctx context.Context, s entities.DispatchSuggestion) (entities.DispatchSuggestion, error)
	// RevertOutcome stores reopened only if the stored copy still carries the
	// status and actioned_at of recorded. Anything else is ErrConditionFailed.
	RevertOutcome(ctx context.Context, recorded, reopened entities.DispatchSuggestion) (entities.DispatchSuggestion, error)
	ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]entities.DispatchSuggestion, error)
	ListPendingCreatedBefore(ctx context.Context, before time.Time, limit int) ([]entities.DispatchSuggestion, error)
}
