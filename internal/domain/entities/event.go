package entities

import "time"

// EventType names a dispatch event published to subscribers of a business.
type EventType string

const (
	EventScheduleAssigned    EventType = "schedule.assigned"
	EventScheduleConflict    EventType = "schedule.conflict"
	EventScheduleReordered   EventType = "schedule.reordered"
	EventTechnicianStatus    EventType = "technician.status"
	EventSuggestionGenerated EventType = "suggestion.generated"
	EventSuggestionActioned  EventType = "suggestion.actioned"
)

type DispatchEvent struct {
	Type       EventType `json:"type"`
	BusinessID string    `json:"business_id"`
	TechID     string    `json:"tech_id,omitempty"`
	Data       any       `json:"data"`
	OccurredAt time.Time `json:"occurred_at"`
}
