package entities

import "time"

// SuggestionStatus tracks the dispatcher outcome of a suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending      SuggestionStatus = "pending"
	SuggestionStatusAccepted     SuggestionStatus = "accepted"
	SuggestionStatusRejected     SuggestionStatus = "rejected"
	SuggestionStatusExpired      SuggestionStatus = "expired"
	SuggestionStatusAutoAssigned SuggestionStatus = "auto_assigned"
)

// Actioned reports whether a dispatcher (or auto-assign) picked a technician.
func (s SuggestionStatus) Actioned() bool {
	switch s {
	case SuggestionStatusAccepted, SuggestionStatusRejected, SuggestionStatusAutoAssigned:
		return true
	}
	return false
}

// ScoreBreakdown holds each normalized factor in [0,1] before weighting.
type ScoreBreakdown struct {
	Proximity    float64 `json:"proximity"`
	Availability float64 `json:"availability"`
	OnTime       float64 `json:"on_time"`
	Rating       float64 `json:"rating"`
	Preferred    float64 `json:"preferred"`
}

type PerformanceSnapshot struct {
	JobsCompleted    int     `json:"jobs_completed"`
	AvgRating        float64 `json:"avg_rating"`
	OnTimePercentage float64 `json:"on_time_percentage"`
}

// TechSuggestion is one scored candidate. ETA fields are nil when no
// location was known for the technician.
type TechSuggestion struct {
	TechID                   string              `json:"tech_id"`
	TechName                 string              `json:"tech_name"`
	Score                    int                 `json:"score"`
	Breakdown                ScoreBreakdown      `json:"breakdown"`
	Reasons                  []string            `json:"reasons"`
	ETAMinutes               *float64            `json:"eta_minutes,omitempty"`
	ETAWithoutTrafficMinutes *float64            `json:"eta_without_traffic_minutes,omitempty"`
	DistanceKm               *float64            `json:"distance_km,omitempty"`
	ETAEstimated             bool                `json:"eta_estimated"`
	AvailableHours           float64             `json:"available_hours"`
	EarliestStart            string              `json:"earliest_start,omitempty"`
	Performance              PerformanceSnapshot `json:"performance"`
	IsPreferred              bool                `json:"is_preferred"`
}

// DispatchSuggestion is a point-in-time ranking for one job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI business_id-created_at-index: business_id, created_at
//   - GSI status-created_at-index: status, created_at (expiry sweep)
type DispatchSuggestion struct {
	ID                 string           `json:"id"`
	BusinessID         string           `json:"business_id"`
	JobID              string           `json:"job_id"`
	TargetDate         string           `json:"target_date"`
	TargetTime         string           `json:"target_time,omitempty"`
	EstimatedHours     float64          `json:"estimated_hours"`
	AllSuggestions     []TechSuggestion `json:"all_suggestions"`
	TopRecommendation  TechSuggestion   `json:"top_recommendation"`
	Status             SuggestionStatus `json:"status"`
	SelectedTechID     string           `json:"selected_tech_id,omitempty"`
	WasTopPickSelected bool             `json:"was_top_pick_selected"`
	ResponseLatencyMs  int64            `json:"response_latency_ms,omitempty"`
	RejectionReason    string           `json:"rejection_reason,omitempty"`
	ActionedBy         string           `json:"actioned_by,omitempty"`
	ActionedAt         *time.Time       `json:"actioned_at,omitempty"`
	Degraded           bool             `json:"degraded"`
	GeneratedBy        string           `json:"generated_by,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	ExpiresAt          time.Time        `json:"expires_at"`
	DeletedAt          *time.Time       `json:"deleted_at,omitempty"`
}

func (s DispatchSuggestion) Candidate(techID string) (TechSuggestion, bool) {
	for _, c := range s.AllSuggestions {
		if c.TechID == techID {
			return c, true
		}
	}
	return TechSuggestion{}, false
}

// RecordOutcome fills the outcome fields exactly once. It enforces that only a
// pending suggestion can be actioned and that actioned statuses name a tech.
func (s DispatchSuggestion) RecordOutcome(status SuggestionStatus, selectedTechID, actor, reason string, now time.Time) (DispatchSuggestion, error) {
	if s.Status != SuggestionStatusPending {
		return s, &TransitionError{Entity: "dispatch_suggestion", From: string(s.Status), To: string(status)}
	}
	if !status.Actioned() {
		return s, NewValidationError("status", "not an outcome status "+string(status))
	}
	if selectedTechID == "" {
		return s, NewValidationError("selected_tech_id", "required")
	}
	next := s
	at := now
	next.Status = status
	next.SelectedTechID = selectedTechID
	next.WasTopPickSelected = selectedTechID == s.TopRecommendation.TechID
	next.ResponseLatencyMs = now.Sub(s.CreatedAt).Milliseconds()
	next.RejectionReason = reason
	next.ActionedBy = actor
	next.ActionedAt = &at
	next.UpdatedAt = now
	return next, nil
}

// Reopen undoes an outcome whose assignment never happened. The returned
// copy is pending again with every outcome field cleared.
func (s DispatchSuggestion) Reopen(now time.Time) (DispatchSuggestion, error) {
	if !s.Status.Actioned() {
		return s, &TransitionError{Entity: "dispatch_suggestion", From: string(s.Status), To: string(SuggestionStatusPending)}
	}
	next := s
	next.Status = SuggestionStatusPending
	next.SelectedTechID = ""
	next.WasTopPickSelected = false
	next.ResponseLatencyMs = 0
	next.RejectionReason = ""
	next.ActionedBy = ""
	next.ActionedAt = nil
	next.UpdatedAt = now
	return next, nil
}

// Expire moves a pending suggestion to expired; selected_tech_id stays empty.
func (s DispatchSuggestion) Expire(now time.Time) (DispatchSuggestion, error) {
	if s.Status != SuggestionStatusPending {
		return s, &TransitionError{Entity: "dispatch_suggestion", From: string(s.Status), To: string(SuggestionStatusExpired)}
	}
	next := s
	next.Status = SuggestionStatusExpired
	next.UpdatedAt = now
	return next, nil
}
