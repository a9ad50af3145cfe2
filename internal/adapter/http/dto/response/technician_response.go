package response

import (
	"time"

	"dispatch_service/internal/domain/entities"
)

type LocationResponse struct {
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type TechnicianResponse struct {
	ID             string                       `json:"id"`
	BusinessID     string                       `json:"business_id"`
	Name           string                       `json:"name"`
	Email          string                       `json:"email,omitempty"`
	Phone          string                       `json:"phone,omitempty"`
	Status         string                       `json:"status"`
	CurrentJobID   string                       `json:"current_job_id,omitempty"`
	NextJobID      string                       `json:"next_job_id,omitempty"`
	Location       *LocationResponse            `json:"location,omitempty"`
	Certifications []string                     `json:"certifications"`
	Skills         entities.Skills              `json:"skills"`
	WeeklySchedule entities.WeeklySchedule      `json:"weekly_schedule"`
	Performance    entities.PerformanceStats    `json:"performance"`
	Availability   []entities.AvailabilityEntry `json:"availability,omitempty"`
	IsActive       bool                         `json:"is_active"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	out := TechnicianResponse{
		ID:             t.ID,
		BusinessID:     t.BusinessID,
		Name:           t.Name,
		Email:          t.Email,
		Phone:          t.Phone,
		Status:         string(t.Status),
		CurrentJobID:   t.CurrentJobID,
		NextJobID:      t.NextJobID,
		Certifications: t.Certifications,
		Skills:         t.Skills,
		WeeklySchedule: t.WeeklySchedule,
		Performance:    t.Performance,
		Availability:   t.Availability,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if out.Certifications == nil {
		out.Certifications = []string{}
	}
	if t.Location != nil {
		out.Location = &LocationResponse{
			Longitude: t.Location.Longitude,
			Latitude:  t.Location.Latitude,
			Accuracy:  t.Location.Accuracy,
			Timestamp: t.Location.Timestamp,
		}
	}
	return out
}

func FromTechnicians(ts []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTechnician(t))
	}
	return out
}

type LocationSampleResponse struct {
	Longitude  float64   `json:"longitude"`
	Latitude   float64   `json:"latitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

func FromLocationSamples(samples []entities.LocationSample) []LocationSampleResponse {
	out := make([]LocationSampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, LocationSampleResponse{
			Longitude:  s.Longitude,
			Latitude:   s.Latitude,
			Accuracy:   s.Accuracy,
			RecordedAt: s.RecordedAt,
		})
	}
	return out
}
