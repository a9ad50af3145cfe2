package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
)

func TestSuggestionRepository_SaveOutcomeOnlyFromPending(t *testing.T) {
	ctx := context.Background()
	repo := NewSuggestionRepository()
	created := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	s := entities.DispatchSuggestion{ID: "s1", BusinessID: "biz-1", Status: entities.SuggestionStatusPending, CreatedAt: created}
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	accepted := s
	accepted.Status = entities.SuggestionStatusAccepted
	_, err = repo.SaveOutcome(ctx, accepted)
	require.NoError(t, err)

	rejected := s
	rejected.Status = entities.SuggestionStatusRejected
	_, err = repo.SaveOutcome(ctx, rejected)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	got, _ := repo.GetByID(ctx, "biz-1", "s1")
	assert.Equal(t, entities.SuggestionStatusAccepted, got.Status)
}

func TestSuggestionRepository_ListPendingCreatedBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewSuggestionRepository()
	base := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"s1", "s2", "s3"} {
		_, _ = repo.Create(ctx, entities.DispatchSuggestion{
			ID:         id,
			BusinessID: "biz-1",
			Status:     entities.SuggestionStatusPending,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}

	got, err := repo.ListPendingCreatedBefore(ctx, base.Add(90*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)

	limited, _ := repo.ListPendingCreatedBefore(ctx, base.Add(3*time.Hour), 1)
	assert.Len(t, limited, 1)

	inRange, _ := repo.ListByBusiness(ctx, "biz-1", base.Add(30*time.Minute), base.Add(3*time.Hour))
	assert.Len(t, inRange, 2)
}

func TestSuggestionRepository_RevertOutcomeGuarded(t *testing.T) {
	ctx := context.Background()
	repo := NewSuggestionRepository()
	created := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	s := entities.DispatchSuggestion{ID: "s1", BusinessID: "biz-1", Status: entities.SuggestionStatusPending, CreatedAt: created}
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	accepted, err := s.RecordOutcome(entities.SuggestionStatusAccepted, "tech-a", "user-1", "", created.Add(time.Minute))
	require.NoError(t, err)
	_, err = repo.SaveOutcome(ctx, accepted)
	require.NoError(t, err)

	// a different outcome instant no longer matches the stored copy
	stale, _ := s.RecordOutcome(entities.SuggestionStatusAccepted, "tech-a", "user-1", "", created.Add(2*time.Minute))
	reopened, err := accepted.Reopen(created.Add(3 * time.Minute))
	require.NoError(t, err)
	_, err = repo.RevertOutcome(ctx, stale, reopened)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	got, err := repo.RevertOutcome(ctx, accepted, reopened)
	require.NoError(t, err)
	assert.Equal(t, entities.SuggestionStatusPending, got.Status)
	assert.Empty(t, got.SelectedTechID)
	assert.Nil(t, got.ActionedAt)

	// pending again, so a new outcome can be recorded
	_, err = repo.SaveOutcome(ctx, stale)
	assert.NoError(t, err)

	missing, err := repo.RevertOutcome(ctx, accepted, entities.DispatchSuggestion{ID: "s1", BusinessID: "biz-other"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
