package entities

import (
	"strings"
	"time"
)

// TechnicianStatus is the dispatch state of a technician.
type TechnicianStatus string

const (
	TechnicianStatusAvailable TechnicianStatus = "available"
	TechnicianStatusAssigned  TechnicianStatus = "assigned"
	TechnicianStatusEnroute   TechnicianStatus = "enroute"
	TechnicianStatusOnSite    TechnicianStatus = "on_site"
	TechnicianStatusComplete  TechnicianStatus = "complete"
	TechnicianStatusOffDuty   TechnicianStatus = "off_duty"
)

func (s TechnicianStatus) Valid() bool {
	_, ok := technicianTransitions[s]
	return ok
}

// HoldsJob reports whether a technician in this status carries a current job.
func (s TechnicianStatus) HoldsJob() bool {
	switch s {
	case TechnicianStatusAssigned, TechnicianStatusEnroute, TechnicianStatusOnSite:
		return true
	}
	return false
}

// Skills are the capability flags matched against a job's service type.
type Skills struct {
	CanInstall     bool `json:"can_install"`
	CanService     bool `json:"can_service"`
	CanMaintenance bool `json:"can_maintenance"`
}

func (s Skills) Supports(st ServiceType) bool {
	switch st {
	case ServiceTypeInstall:
		return s.CanInstall
	case ServiceTypeService:
		return s.CanService
	case ServiceTypeMaintenance:
		return s.CanMaintenance
	}
	return false
}

// DaySchedule is a technician's default shift for one weekday.
type DaySchedule struct {
	Enabled    bool   `json:"enabled"`
	Start      string `json:"start"`
	End        string `json:"end"`
	LunchStart string `json:"lunch_start,omitempty"`
	LunchEnd   string `json:"lunch_end,omitempty"`
}

// Window returns the shift bounds.
func (d DaySchedule) Window() (ClockTime, ClockTime, error) {
	start, err := ParseClock(d.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(d.End)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, NewValidationError("weekly_schedule", "shift end must be after start")
	}
	return start, end, nil
}

// Lunch returns the lunch break, ok=false when none is configured.
func (d DaySchedule) Lunch() (ClockTime, ClockTime, bool) {
	if d.LunchStart == "" || d.LunchEnd == "" {
		return 0, 0, false
	}
	ls, err := ParseClock(d.LunchStart)
	if err != nil {
		return 0, 0, false
	}
	le, err := ParseClock(d.LunchEnd)
	if err != nil || le <= ls {
		return 0, 0, false
	}
	return ls, le, true
}

// WorkingMinutes is the shift length minus lunch.
func (d DaySchedule) WorkingMinutes() int {
	if !d.Enabled {
		return 0
	}
	start, end, err := d.Window()
	if err != nil {
		return 0
	}
	total := int(end - start)
	if ls, le, ok := d.Lunch(); ok {
		lo, hi := max(ls, start), min(le, end)
		if hi > lo {
			total -= int(hi - lo)
		}
	}
	return total
}

// WeeklySchedule is keyed by lower-case weekday name ("monday").
type WeeklySchedule map[string]DaySchedule

func (w WeeklySchedule) For(date time.Time) (DaySchedule, bool) {
	d, ok := w[strings.ToLower(date.Weekday().String())]
	if !ok || !d.Enabled {
		return DaySchedule{}, false
	}
	return d, true
}

// PerformanceStats is a rolling read cache updated on completion events.
// It is never consulted as the source of truth for scheduling.
type PerformanceStats struct {
	JobsCompleted     int     `json:"jobs_completed"`
	AvgRating         float64 `json:"avg_rating"`
	RatingCount       int     `json:"rating_count"`
	OnTimePercentage  float64 `json:"on_time_percentage"`
	OnTimeCount       int     `json:"on_time_count"`
	TotalDriveMinutes float64 `json:"total_drive_minutes"`
	TotalJobMinutes   float64 `json:"total_job_minutes"`
}

// RecordCompletion folds one completed job into the rolling stats.
func (p *PerformanceStats) RecordCompletion(rating *float64, onTime bool, driveMinutes, jobMinutes float64) {
	p.JobsCompleted++
	if onTime {
		p.OnTimeCount++
	}
	p.OnTimePercentage = float64(p.OnTimeCount) / float64(p.JobsCompleted) * 100
	if rating != nil {
		p.AvgRating = (p.AvgRating*float64(p.RatingCount) + *rating) / float64(p.RatingCount+1)
		p.RatingCount++
	}
	if driveMinutes > 0 {
		p.TotalDriveMinutes += driveMinutes
	}
	if jobMinutes > 0 {
		p.TotalJobMinutes += jobMinutes
	}
}

// AvailabilityEntry overrides the weekly schedule for one date window.
// Available=false is time off; Available=true is extra availability.
type AvailabilityEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Available bool      `json:"available"`
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Technician is a field worker dispatched to jobs.
type Technician struct {
	ID             string              `json:"id"`
	BusinessID     string              `json:"business_id"`
	Name           string              `json:"name"`
	Email          string              `json:"email,omitempty"`
	Phone          string              `json:"phone,omitempty"`
	Status         TechnicianStatus    `json:"status"`
	CurrentJobID   string              `json:"current_job_id,omitempty"`
	NextJobID      string              `json:"next_job_id,omitempty"`
	Location       *TechnicianLocation `json:"location,omitempty"`
	Certifications []string            `json:"certifications"`
	Skills         Skills              `json:"skills"`
	WeeklySchedule WeeklySchedule      `json:"weekly_schedule"`
	Performance    PerformanceStats    `json:"performance"`
	Availability   []AvailabilityEntry `json:"availability,omitempty"`
	IsActive       bool                `json:"is_active"`
	Version        int64               `json:"version"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      *time.Time          `json:"deleted_at,omitempty"`
}

// HasCertifications reports whether every required certification is held.
func (t Technician) HasCertifications(required []string) bool {
	held := make(map[string]struct{}, len(t.Certifications))
	for _, c := range t.Certifications {
		held[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}
	for _, r := range required {
		if _, ok := held[strings.ToLower(strings.TrimSpace(r))]; !ok {
			return false
		}
	}
	return true
}

// ShiftOn returns the working window for date after approved overrides.
// Approved time-off covering the whole shift yields ok=false.
func (t Technician) ShiftOn(date string) (DaySchedule, []AvailabilityEntry, bool) {
	d, err := ParseDate(date)
	if err != nil {
		return DaySchedule{}, nil, false
	}
	var overrides []AvailabilityEntry
	for _, a := range t.Availability {
		if a.Date == date && a.Approved {
			overrides = append(overrides, a)
		}
	}
	shift, ok := t.WeeklySchedule.For(d)
	if !ok {
		for _, o := range overrides {
			if o.Available {
				return DaySchedule{Enabled: true, Start: o.StartTime, End: o.EndTime}, overrides, true
			}
		}
		return DaySchedule{}, overrides, false
	}
	return shift, overrides, true
}
