package request

import "dispatch_service/internal/usecase"

type AssignRequest struct {
	TechID         string  `json:"tech_id" binding:"required"`
	JobID          string  `json:"job_id" binding:"required"`
	Date           string  `json:"date" binding:"required" example:"2025-03-03"`
	StartTime      string  `json:"start_time" binding:"required" example:"09:00"`
	EstimatedHours float64 `json:"estimated_hours" example:"2"`
	AllowConflict  bool    `json:"allow_conflict"`
}

func (r AssignRequest) ToInput(actor string) usecase.AssignInput {
	return usecase.AssignInput{
		TechID:         r.TechID,
		JobID:          r.JobID,
		Date:           r.Date,
		StartTime:      r.StartTime,
		EstimatedHours: r.EstimatedHours,
		AllowConflict:  r.AllowConflict,
		CreatedBy:      actor,
	}
}

type ReorderRequest struct {
	JobIDs []string `json:"job_ids" binding:"required,min=1"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required" example:"in_progress"`
}
