package response

import (
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase"
)

type SuggestionResponse struct {
	ID                 string                    `json:"id"`
	JobID              string                    `json:"job_id"`
	TargetDate         string                    `json:"target_date"`
	TargetTime         string                    `json:"target_time,omitempty"`
	EstimatedHours     float64                   `json:"estimated_hours"`
	TopRecommendation  entities.TechSuggestion   `json:"top_recommendation"`
	AllSuggestions     []entities.TechSuggestion `json:"all_suggestions"`
	Status             string                    `json:"status"`
	SelectedTechID     string                    `json:"selected_tech_id,omitempty"`
	WasTopPickSelected bool                      `json:"was_top_pick_selected"`
	ResponseLatencyMs  int64                     `json:"response_latency_ms,omitempty"`
	RejectionReason    string                    `json:"rejection_reason,omitempty"`
	Degraded           bool                      `json:"degraded"`
	CreatedAt          time.Time                 `json:"created_at"`
	ExpiresAt          time.Time                 `json:"expires_at"`
	ActionedAt         *time.Time                `json:"actioned_at,omitempty"`
}

func FromSuggestion(s entities.DispatchSuggestion) SuggestionResponse {
	return SuggestionResponse{
		ID:                 s.ID,
		JobID:              s.JobID,
		TargetDate:         s.TargetDate,
		TargetTime:         s.TargetTime,
		EstimatedHours:     s.EstimatedHours,
		TopRecommendation:  s.TopRecommendation,
		AllSuggestions:     s.AllSuggestions,
		Status:             string(s.Status),
		SelectedTechID:     s.SelectedTechID,
		WasTopPickSelected: s.WasTopPickSelected,
		ResponseLatencyMs:  s.ResponseLatencyMs,
		RejectionReason:    s.RejectionReason,
		Degraded:           s.Degraded,
		CreatedAt:          s.CreatedAt,
		ExpiresAt:          s.ExpiresAt,
		ActionedAt:         s.ActionedAt,
	}
}

type ActResponse struct {
	Suggestion SuggestionResponse `json:"suggestion"`
	Assignment AssignResponse     `json:"assignment"`
}

func FromActResult(r usecase.ActResult) ActResponse {
	return ActResponse{
		Suggestion: FromSuggestion(r.Suggestion),
		Assignment: FromAssignResult(r.Assignment),
	}
}
