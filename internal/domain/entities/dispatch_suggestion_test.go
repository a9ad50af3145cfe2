package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchSuggestion_RecordOutcome(t *testing.T) {
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	base := DispatchSuggestion{
		ID:                "sug-1",
		Status:            SuggestionStatusPending,
		TopRecommendation: TechSuggestion{TechID: "tech-a"},
		AllSuggestions:    []TechSuggestion{{TechID: "tech-a"}, {TechID: "tech-b"}},
		CreatedAt:         created,
	}
	now := created.Add(90 * time.Second)

	accepted, err := base.RecordOutcome(SuggestionStatusAccepted, "tech-a", "disp-1", "", now)
	require.NoError(t, err)
	assert.True(t, accepted.WasTopPickSelected)
	assert.Equal(t, int64(90000), accepted.ResponseLatencyMs)
	assert.Equal(t, "disp-1", accepted.ActionedBy)

	rejected, err := base.RecordOutcome(SuggestionStatusRejected, "tech-b", "disp-1", "customer request", now)
	require.NoError(t, err)
	assert.False(t, rejected.WasTopPickSelected)
	assert.Equal(t, "tech-b", rejected.SelectedTechID)

	_, err = accepted.RecordOutcome(SuggestionStatusRejected, "tech-b", "disp-2", "x", now)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	_, err = base.RecordOutcome(SuggestionStatusAccepted, "", "disp-1", "", now)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = base.RecordOutcome(SuggestionStatusExpired, "tech-a", "disp-1", "", now)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDispatchSuggestion_Expire(t *testing.T) {
	now := time.Now()
	s := DispatchSuggestion{Status: SuggestionStatusPending}
	expired, err := s.Expire(now)
	require.NoError(t, err)
	assert.Equal(t, SuggestionStatusExpired, expired.Status)
	assert.Empty(t, expired.SelectedTechID)

	_, err = expired.Expire(now)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestDispatchSuggestion_Reopen(t *testing.T) {
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	base := DispatchSuggestion{
		ID:                "sug-1",
		Status:            SuggestionStatusPending,
		TopRecommendation: TechSuggestion{TechID: "tech-a"},
		CreatedAt:         created,
	}
	rejected, err := base.RecordOutcome(SuggestionStatusRejected, "tech-b", "disp-1", "customer request", created.Add(time.Minute))
	require.NoError(t, err)

	reopened, err := rejected.Reopen(created.Add(2 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, SuggestionStatusPending, reopened.Status)
	assert.Empty(t, reopened.SelectedTechID)
	assert.Empty(t, reopened.RejectionReason)
	assert.Nil(t, reopened.ActionedAt)
	assert.Zero(t, reopened.ResponseLatencyMs)

	_, err = base.Reopen(created)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	expired, _ := base.Expire(created)
	_, err = expired.Reopen(created)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}
