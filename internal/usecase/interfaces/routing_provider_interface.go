package interfaces

import (
	"context"
	"time"

	"dispatch_service/internal/domain/entities"
)

// TravelLeg is one cell of a travel matrix. OK=false means the provider had no
// route for the pair and the caller must estimate it.
type TravelLeg struct {
	Minutes               float64
	MinutesWithoutTraffic float64
	Km                    float64
	OK                    bool
}

// TravelMatrix is indexed [origin][destination].
type TravelMatrix [][]TravelLeg

type TravelMatrixRequest struct {
	Origins      []entities.GeoPoint
	Destinations []entities.GeoPoint
	DepartAt     time.Time
}

// IRoutingProvider returns drive durations and distances. Implementations may
// be slow; callers pass a context with a deadline.
type IRoutingProvider interface {
	TravelMatrix(ctx context.Context, req TravelMatrixRequest) (TravelMatrix, error)
}
