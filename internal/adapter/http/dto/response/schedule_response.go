package response

import (
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase"
)

type ScheduleEntryResponse struct {
	ID               string     `json:"id"`
	TechID           string     `json:"tech_id"`
	JobID            string     `json:"job_id"`
	ScheduledDate    string     `json:"scheduled_date"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	EstimatedHours   float64    `json:"estimated_hours"`
	Status           string     `json:"status"`
	Order            int        `json:"order"`
	ConflictOverride bool       `json:"conflict_override"`
	ConflictsWith    []string   `json:"conflicts_with,omitempty"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromScheduleEntry(e entities.ScheduleEntry) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		ID:               e.ID,
		TechID:           e.TechID,
		JobID:            e.JobID,
		ScheduledDate:    e.ScheduledDate,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		EstimatedHours:   e.EstimatedHours,
		Status:           string(e.Status),
		Order:            e.Order,
		ConflictOverride: e.ConflictOverride,
		ConflictsWith:    e.ConflictsWith,
		StartedAt:        e.StartedAt,
		CompletedAt:      e.CompletedAt,
		CancelledAt:      e.CancelledAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromScheduleEntries(es []entities.ScheduleEntry) []ScheduleEntryResponse {
	out := make([]ScheduleEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromScheduleEntry(e))
	}
	return out
}

type AssignResponse struct {
	Entry    *ScheduleEntryResponse  `json:"entry,omitempty"`
	Conflict *usecase.ConflictResult `json:"conflict,omitempty"`
}

func FromAssignResult(r usecase.AssignResult) AssignResponse {
	out := AssignResponse{Conflict: r.Conflict}
	if r.Entry != nil {
		e := FromScheduleEntry(*r.Entry)
		out.Entry = &e
	}
	return out
}
