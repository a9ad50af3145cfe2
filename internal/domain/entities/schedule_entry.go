package entities

import "time"

// ScheduleEntryStatus advances scheduled -> in_progress -> complete, or to
// cancelled from any non-terminal state.
type ScheduleEntryStatus string

const (
	ScheduleEntryStatusScheduled  ScheduleEntryStatus = "scheduled"
	ScheduleEntryStatusInProgress ScheduleEntryStatus = "in_progress"
	ScheduleEntryStatusComplete   ScheduleEntryStatus = "complete"
	ScheduleEntryStatusCancelled  ScheduleEntryStatus = "cancelled"
)

var scheduleEntryTransitions = map[ScheduleEntryStatus][]ScheduleEntryStatus{
	ScheduleEntryStatusScheduled:  {ScheduleEntryStatusInProgress, ScheduleEntryStatusCancelled},
	ScheduleEntryStatusInProgress: {ScheduleEntryStatusComplete, ScheduleEntryStatusCancelled},
}

func (s ScheduleEntryStatus) Valid() bool {
	switch s {
	case ScheduleEntryStatusScheduled, ScheduleEntryStatusInProgress, ScheduleEntryStatusComplete, ScheduleEntryStatusCancelled:
		return true
	}
	return false
}

func (s ScheduleEntryStatus) Terminal() bool {
	return s == ScheduleEntryStatusComplete || s == ScheduleEntryStatusCancelled
}

// ScheduleEntry places one job on one technician's calendar day.
//
// Storage model (DynamoDB):
//   - PK: day_key (business_id#tech_id#date), SK: id
//   - GSI entry_id-index: id
//
// The day partition also holds a version item used for compare-and-swap on
// assignment and reordering.
type ScheduleEntry struct {
	ID               string              `json:"id"`
	BusinessID       string              `json:"business_id"`
	TechID           string              `json:"tech_id"`
	JobID            string              `json:"job_id"`
	ScheduledDate    string              `json:"scheduled_date"`
	StartTime        string              `json:"start_time"`
	EndTime          string              `json:"end_time"`
	EstimatedHours   float64             `json:"estimated_hours"`
	Status           ScheduleEntryStatus `json:"status"`
	Order            int                 `json:"order"`
	ConflictOverride bool                `json:"conflict_override"`
	ConflictsWith    []string            `json:"conflicts_with,omitempty"`
	CreatedBy        string              `json:"created_by,omitempty"`
	StartedAt        *time.Time          `json:"started_at,omitempty"`
	CompletedAt      *time.Time          `json:"completed_at,omitempty"`
	CancelledAt      *time.Time          `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        *time.Time          `json:"deleted_at,omitempty"`
}

func (e ScheduleEntry) Window() (ClockTime, ClockTime, error) {
	start, err := ParseClock(e.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(e.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Blocking reports whether the entry still occupies its time window.
func (e ScheduleEntry) Blocking() bool {
	return e.Status != ScheduleEntryStatusCancelled && e.DeletedAt == nil
}

// Advance applies a status move and stamps the matching timestamp.
func (e ScheduleEntry) Advance(to ScheduleEntryStatus, now time.Time) (ScheduleEntry, error) {
	if !to.Valid() {
		return e, NewValidationError("status", "unknown schedule entry status "+string(to))
	}
	allowed := false
	for _, s := range scheduleEntryTransitions[e.Status] {
		if s == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return e, &TransitionError{Entity: "schedule_entry", From: string(e.Status), To: string(to)}
	}
	next := e
	next.Status = to
	next.UpdatedAt = now
	ts := now
	switch to {
	case ScheduleEntryStatusInProgress:
		next.StartedAt = &ts
	case ScheduleEntryStatusComplete:
		next.CompletedAt = &ts
	case ScheduleEntryStatusCancelled:
		next.CancelledAt = &ts
	}
	return next, nil
}

// DayKey is the partition key shared by all entries of one technician day.
func DayKey(businessID, techID, date string) string {
	return businessID + "#" + techID + "#" + date
}
