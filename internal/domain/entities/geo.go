package entities

import "time"

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// TechnicianLocation is the latest reported position; newer reports overwrite it.
type TechnicianLocation struct {
	GeoPoint
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationSample is one entry of the audit-only location history stream.
type LocationSample struct {
	BusinessID string    `json:"business_id"`
	TechID     string    `json:"tech_id"`
	GeoPoint
	Accuracy   *float64  `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
