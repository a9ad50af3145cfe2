package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch_service/internal/infrastructure/metrics"
	"dispatch_service/internal/usecase/interfaces"
)

// SuggestionSweeper expires pending suggestions older than the TTL. One
// periodic job handles a bounded batch per tick.
type SuggestionSweeper struct {
	repo      interfaces.ISuggestionRepository
	ttl       time.Duration
	batchSize int
	now       func() time.Time
}

func NewSuggestionSweeper(repo interfaces.ISuggestionRepository, ttl time.Duration, batchSize int) *SuggestionSweeper {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &SuggestionSweeper{
		repo:      repo,
		ttl:       ttl,
		batchSize: batchSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SweepOnce expires at most one batch and returns how many were expired.
func (s *SuggestionSweeper) SweepOnce(ctx context.Context) (int, error) {
	now := s.now()
	stale, err := s.repo.ListPendingCreatedBefore(ctx, now.Add(-s.ttl), s.batchSize)
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, sg := range stale {
		next, err := sg.Expire(now)
		if err != nil {
			continue
		}
		if _, err := s.repo.SaveOutcome(ctx, next); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				continue
			}
			return expired, err
		}
		expired++
	}
	if expired > 0 {
		metrics.SuggestionOutcomes.WithLabelValues("expired").Add(float64(expired))
		slog.Info("expired stale suggestions", "count", expired, "batch", len(stale))
	}
	return expired, nil
}

// Run sweeps every interval until ctx is done.
func (s *SuggestionSweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil {
				slog.Error("suggestion sweep failed", "error", err)
			}
		}
	}
}
