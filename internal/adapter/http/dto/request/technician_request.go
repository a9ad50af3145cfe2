package request

import (
	"strings"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase"
)

type SkillsRequest struct {
	CanInstall     bool `json:"can_install"`
	CanService     bool `json:"can_service"`
	CanMaintenance bool `json:"can_maintenance"`
}

type DayScheduleRequest struct {
	Enabled    bool   `json:"enabled"`
	Start      string `json:"start" example:"08:00"`
	End        string `json:"end" example:"17:00"`
	LunchStart string `json:"lunch_start,omitempty" example:"12:00"`
	LunchEnd   string `json:"lunch_end,omitempty" example:"13:00"`
}

type CreateTechnicianRequest struct {
	Name           string                        `json:"name" binding:"required"`
	Email          string                        `json:"email"`
	Phone          string                        `json:"phone"`
	Certifications []string                      `json:"certifications"`
	Skills         SkillsRequest                 `json:"skills"`
	WeeklySchedule map[string]DayScheduleRequest `json:"weekly_schedule"`
}

func (r CreateTechnicianRequest) ToInput() usecase.CreateTechnicianInput {
	schedule := make(entities.WeeklySchedule, len(r.WeeklySchedule))
	for day, d := range r.WeeklySchedule {
		schedule[strings.ToLower(strings.TrimSpace(day))] = entities.DaySchedule{
			Enabled:    d.Enabled,
			Start:      d.Start,
			End:        d.End,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
		}
	}
	return usecase.CreateTechnicianInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Certifications: r.Certifications,
		Skills: entities.Skills{
			CanInstall:     r.Skills.CanInstall,
			CanService:     r.Skills.CanService,
			CanMaintenance: r.Skills.CanMaintenance,
		},
		WeeklySchedule: schedule,
	}
}

type UpdateTechnicianStatusRequest struct {
	Status string `json:"status" binding:"required" example:"enroute"`
	JobID  string `json:"job_id"`
}

// UpdateLocationRequest uses pointers so that 0,0 is distinguishable from a
// missing coordinate.
type UpdateLocationRequest struct {
	Longitude *float64 `json:"longitude" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Accuracy  *float64 `json:"accuracy"`
}

func (r UpdateLocationRequest) Point() entities.GeoPoint {
	return entities.GeoPoint{Longitude: *r.Longitude, Latitude: *r.Latitude}
}

type AvailabilityRequest struct {
	Date      string `json:"date" binding:"required" example:"2025-03-03"`
	StartTime string `json:"start_time" binding:"required" example:"13:00"`
	EndTime   string `json:"end_time" binding:"required" example:"17:00"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

func (r AvailabilityRequest) ToInput() usecase.AvailabilityInput {
	return usecase.AvailabilityInput{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Available: r.Available,
		Reason:    r.Reason,
	}
}
