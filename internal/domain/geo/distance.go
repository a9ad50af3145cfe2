// Package geo holds straight-line distance helpers used when the routing
// provider cannot answer.
package geo

import (
	"math"

	"dispatch_service/internal/domain/entities"
)

const earthRadiusKm = 6371.0

// DistanceKm is the haversine great-circle distance between two points.
func DistanceKm(a, b entities.GeoPoint) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Estimator turns straight-line distance into a drive estimate.
// RoadFactor inflates crow-flies distance to approximate the road network.
type Estimator struct {
	AverageSpeedKmh float64
	RoadFactor      float64
}

func (e Estimator) Estimate(from, to entities.GeoPoint) (minutes, km float64) {
	speed := e.AverageSpeedKmh
	if speed <= 0 {
		speed = 40
	}
	factor := e.RoadFactor
	if factor < 1 {
		factor = 1
	}
	km = DistanceKm(from, to) * factor
	return km / speed * 60, km
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
