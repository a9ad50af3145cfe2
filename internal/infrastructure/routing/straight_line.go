package routing

import (
	"context"

	"dispatch_service/internal/domain/geo"
	"dispatch_service/internal/usecase/interfaces"
)

// StraightLine answers every pair from haversine distance. It never fails and
// is the provider for local runs (ROUTING_PROVIDER=straight_line).
type StraightLine struct {
	Estimator geo.Estimator
}

var _ interfaces.IRoutingProvider = StraightLine{}

func (s StraightLine) TravelMatrix(_ context.Context, req interfaces.TravelMatrixRequest) (interfaces.TravelMatrix, error) {
	m := make(interfaces.TravelMatrix, len(req.Origins))
	for i, o := range req.Origins {
		m[i] = make([]interfaces.TravelLeg, len(req.Destinations))
		for j, d := range req.Destinations {
			minutes, km := s.Estimator.Estimate(o, d)
			m[i][j] = interfaces.TravelLeg{Minutes: minutes, MinutesWithoutTraffic: minutes, Km: km, OK: true}
		}
	}
	return m, nil
}
