package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch_service/internal/infrastructure/metrics"
	"dispatch_service/internal/usecase"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
)

// Resilient bounds a provider call with a deadline and retries transient
// failures. A blown deadline surfaces as usecase.ErrExternalTimeout so callers
// can degrade instead of failing the request.
type Resilient struct {
	next       interfaces.IRoutingProvider
	timeout    time.Duration
	maxRetries int
	// initialInterval is the first backoff wait; tests shrink it.
	initialInterval time.Duration
}

var _ interfaces.IRoutingProvider = (*Resilient)(nil)

func NewResilient(next interfaces.IRoutingProvider, timeout time.Duration, maxRetries int) *Resilient {
	return &Resilient{
		next:            next,
		timeout:         timeout,
		maxRetries:      max(maxRetries, 0),
		initialInterval: 100 * time.Millisecond,
	}
}

func (r *Resilient) TravelMatrix(ctx context.Context, req interfaces.TravelMatrixRequest) (interfaces.TravelMatrix, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(r.maxRetries)), ctx)

	attempt := 0
	var out interfaces.TravelMatrix
	err := backoff.Retry(func() error {
		attempt++
		m, err := r.next.TravelMatrix(ctx, req)
		if err == nil {
			out = m
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		slog.Debug("routing attempt failed", "attempt", attempt, "error", err)
		return err
	}, policy)

	switch {
	case err == nil:
		metrics.RoutingRequests.WithLabelValues("ok").Inc()
		return out, nil
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		metrics.RoutingRequests.WithLabelValues("timeout").Inc()
		return nil, fmt.Errorf("travel matrix after %d attempts: %w", attempt, usecase.ErrExternalTimeout)
	default:
		metrics.RoutingRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("travel matrix after %d attempts: %w", attempt, err)
	}
}
