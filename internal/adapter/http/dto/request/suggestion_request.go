package request

import "dispatch_service/internal/usecase"

type GenerateSuggestionRequest struct {
	JobID      string `json:"job_id" binding:"required"`
	TargetDate string `json:"target_date" binding:"required" example:"2025-03-03"`
	TargetTime string `json:"target_time" example:"14:00"`
	AutoAssign bool   `json:"auto_assign"`
}

func (r GenerateSuggestionRequest) ToInput(actor string) usecase.GenerateInput {
	return usecase.GenerateInput{
		JobID:      r.JobID,
		TargetDate: r.TargetDate,
		TargetTime: r.TargetTime,
		AutoAssign: r.AutoAssign,
		Actor:      actor,
	}
}

// RejectSuggestionRequest picks a technician other than the top
// recommendation. The reason is required.
type RejectSuggestionRequest struct {
	SelectedTechID string `json:"selected_tech_id" binding:"required"`
	Reason         string `json:"reason"`
}
