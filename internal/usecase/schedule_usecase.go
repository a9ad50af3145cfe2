package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/infrastructure/metrics"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ErrConcurrentUpdate is returned when optimistic retries on a technician,
// a technician day or an entry were exhausted.
var ErrConcurrentUpdate = errors.New("concurrent update, retry the request")

// onTimeGrace is how far past its estimate a job may run and still count as
// on time.
const onTimeGrace = 15 * time.Minute

// IScheduleUseCase owns schedule entries and overlap detection.
type IScheduleUseCase interface {
	Assign(ctx context.Context, businessID string, in AssignInput) (AssignResult, error)
	Reorder(ctx context.Context, businessID, techID, date string, jobIDs []string) ([]entities.ScheduleEntry, error)
	AdvanceStatus(ctx context.Context, businessID, entryID string, status entities.ScheduleEntryStatus) (entities.ScheduleEntry, error)
	GetByID(ctx context.Context, businessID, id string) (entities.ScheduleEntry, error)
	ListDay(ctx context.Context, businessID, techID, date string) ([]entities.ScheduleEntry, error)
}

type AssignInput struct {
	TechID         string
	JobID          string
	Date           string
	StartTime      string
	EstimatedHours float64
	// AllowConflict writes the entry even when it overlaps existing ones.
	AllowConflict bool
	CreatedBy     string
}

// ConflictResult reports an overlap. It is a normal outcome, not an error.
type ConflictResult struct {
	TechID              string   `json:"tech_id"`
	Date                string   `json:"date"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	ConflictingEntryIDs []string `json:"conflicting_entry_ids"`
	// Contended means the day kept changing under concurrent writers and the
	// bounded retries ran out before a write could be made.
	Contended bool `json:"contended"`
}

// AssignResult carries the created entry, the detected conflict, or both when
// the conflict was overridden.
type AssignResult struct {
	Entry    *entities.ScheduleEntry `json:"entry,omitempty"`
	Conflict *ConflictResult         `json:"conflict,omitempty"`
}

type ScheduleUseCase struct {
	repo       interfaces.IScheduleEntryRepository
	techs      interfaces.ITechnicianRepository
	jobs       interfaces.IJobCatalog
	events     interfaces.IEventPublisher
	maxRetries int
	now        func() time.Time
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(
	repo interfaces.IScheduleEntryRepository,
	techs interfaces.ITechnicianRepository,
	jobs interfaces.IJobCatalog,
	events interfaces.IEventPublisher,
	maxRetries int,
) *ScheduleUseCase {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &ScheduleUseCase{
		repo:       repo,
		techs:      techs,
		jobs:       jobs,
		events:     events,
		maxRetries: maxRetries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Assign places a job on a technician day. The overlap check and the write are
// a compare-and-swap on the day version; a lost race re-reads and re-checks,
// up to maxRetries times, then reports a contended conflict instead of
// double-booking.
func (u *ScheduleUseCase) Assign(ctx context.Context, businessID string, in AssignInput) (AssignResult, error) {
	businessID = strings.TrimSpace(businessID)
	in.TechID, in.JobID = strings.TrimSpace(in.TechID), strings.TrimSpace(in.JobID)
	switch {
	case businessID == "":
		return AssignResult{}, ErrInvalidBusinessID
	case in.TechID == "":
		return AssignResult{}, ErrInvalidTechnicianID
	case in.JobID == "":
		return AssignResult{}, ErrInvalidJobID
	}
	if _, err := entities.ParseDate(in.Date); err != nil {
		return AssignResult{}, err
	}
	start, err := entities.ParseClock(in.StartTime)
	if err != nil {
		return AssignResult{}, err
	}
	end, err := entities.EndOf(start, in.EstimatedHours)
	if err != nil {
		return AssignResult{}, err
	}

	tech, err := u.techs.GetByID(ctx, businessID, in.TechID)
	if err != nil {
		return AssignResult{}, err
	}
	if tech.ID == "" || tech.BusinessID != businessID || tech.DeletedAt != nil {
		return AssignResult{}, ErrTechnicianNotFound
	}
	if !tech.IsActive {
		return AssignResult{}, ErrInactiveTechnician
	}
	job, err := u.jobs.GetJob(ctx, businessID, in.JobID)
	if err != nil {
		return AssignResult{}, err
	}
	if job.ID == "" || job.BusinessID != businessID {
		return AssignResult{}, ErrJobNotFound
	}

	var last []string
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if attempt > 0 {
			metrics.ScheduleAssignRetries.Inc()
		}
		day, err := u.repo.ListDay(ctx, businessID, in.TechID, in.Date)
		if err != nil {
			return AssignResult{}, err
		}
		if scheduledJob(day.Entries, in.JobID) {
			return AssignResult{}, ErrJobAlreadyScheduled
		}
		conflicts, order := overlapping(day.Entries, start, end)
		last = conflicts

		var conflict *ConflictResult
		if len(conflicts) > 0 {
			conflict = &ConflictResult{
				TechID:              in.TechID,
				Date:                in.Date,
				StartTime:           start.String(),
				EndTime:             end.String(),
				ConflictingEntryIDs: conflicts,
			}
			if !in.AllowConflict {
				metrics.ScheduleAssignments.WithLabelValues("conflict").Inc()
				slog.Info("schedule conflict detected",
					"business_id", businessID, "tech_id", in.TechID, "job_id", in.JobID, "date", in.Date, "conflicts", conflicts)
				u.publish(entities.EventScheduleConflict, businessID, in.TechID, conflict)
				return AssignResult{Conflict: conflict}, nil
			}
		}

		now := u.now()
		entry := entities.ScheduleEntry{
			ID:               uuid.NewString(),
			BusinessID:       businessID,
			TechID:           in.TechID,
			JobID:            in.JobID,
			ScheduledDate:    in.Date,
			StartTime:        start.String(),
			EndTime:          end.String(),
			EstimatedHours:   in.EstimatedHours,
			Status:           entities.ScheduleEntryStatusScheduled,
			Order:            order,
			ConflictOverride: conflict != nil,
			ConflictsWith:    conflicts,
			CreatedBy:        in.CreatedBy,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		created, err := u.repo.CreateEntry(ctx, entry, day.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			slog.Debug("technician day changed during assign, retrying",
				"business_id", businessID, "tech_id", in.TechID, "date", in.Date, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return AssignResult{}, err
		}

		result := "created"
		if conflict != nil {
			result = "overridden"
		}
		metrics.ScheduleAssignments.WithLabelValues(result).Inc()
		slog.Info("schedule entry created",
			"business_id", businessID, "tech_id", in.TechID, "job_id", in.JobID, "entry_id", created.ID,
			"date", in.Date, "start", created.StartTime, "end", created.EndTime, "order", created.Order, "override", conflict != nil)
		u.publish(entities.EventScheduleAssigned, businessID, in.TechID, created)
		return AssignResult{Entry: &created, Conflict: conflict}, nil
	}

	metrics.ScheduleAssignments.WithLabelValues("contended").Inc()
	slog.Warn("assign retries exhausted",
		"business_id", businessID, "tech_id", in.TechID, "job_id", in.JobID, "date", in.Date, "retries", u.maxRetries)
	conflict := &ConflictResult{
		TechID:              in.TechID,
		Date:                in.Date,
		StartTime:           start.String(),
		EndTime:             end.String(),
		ConflictingEntryIDs: last,
		Contended:           true,
	}
	u.publish(entities.EventScheduleConflict, businessID, in.TechID, conflict)
	return AssignResult{Conflict: conflict}, nil
}

// scheduledJob reports whether jobID already has a live entry on the day.
// Reorder addresses entries by job id, so a day holds each job at most once.
func scheduledJob(entries []entities.ScheduleEntry, jobID string) bool {
	for _, e := range entries {
		if e.Blocking() && e.JobID == jobID {
			return true
		}
	}
	return false
}

// overlapping returns the ids of blocking entries intersecting [start,end) and
// the order the new entry would take.
func overlapping(entries []entities.ScheduleEntry, start, end entities.ClockTime) ([]string, int) {
	var ids []string
	count, maxOrder := 0, 0
	for _, e := range entries {
		if !e.Blocking() {
			continue
		}
		count++
		maxOrder = max(maxOrder, e.Order)
		s, en, err := e.Window()
		if err != nil {
			continue
		}
		if entities.Overlaps(s, en, start, end) {
			ids = append(ids, e.ID)
		}
	}
	sort.Strings(ids)
	return ids, max(count, maxOrder) + 1
}

// Reorder rewrites order for every non-cancelled entry of the day. jobIDs must
// name exactly those entries.
func (u *ScheduleUseCase) Reorder(ctx context.Context, businessID, techID, date string, jobIDs []string) ([]entities.ScheduleEntry, error) {
	businessID, techID = strings.TrimSpace(businessID), strings.TrimSpace(techID)
	if businessID == "" {
		return nil, ErrInvalidBusinessID
	}
	if techID == "" {
		return nil, ErrInvalidTechnicianID
	}
	if _, err := entities.ParseDate(date); err != nil {
		return nil, err
	}

	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		day, err := u.repo.ListDay(ctx, businessID, techID, date)
		if err != nil {
			return nil, err
		}
		orders, err := orderFor(day.Entries, jobIDs)
		if err != nil {
			return nil, err
		}
		err = u.repo.UpdateOrders(ctx, businessID, techID, date, orders, day.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		out := make([]entities.ScheduleEntry, 0, len(day.Entries))
		now := u.now()
		for _, e := range day.Entries {
			if o, ok := orders[e.ID]; ok {
				e.Order = o
				e.UpdatedAt = now
			}
			out = append(out, e)
		}
		sortByOrder(out)
		slog.Info("technician day reordered", "business_id", businessID, "tech_id", techID, "date", date, "job_ids", jobIDs)
		u.publish(entities.EventScheduleReordered, businessID, techID, map[string]any{"date": date, "job_ids": jobIDs})
		return out, nil
	}
	return nil, fmt.Errorf("reorder %s/%s: %w", techID, date, ErrConcurrentUpdate)
}

func orderFor(entries []entities.ScheduleEntry, jobIDs []string) (map[string]int, error) {
	byJob := map[string]string{}
	for _, e := range entries {
		if !e.Blocking() {
			continue
		}
		if _, dup := byJob[e.JobID]; dup {
			return nil, fmt.Errorf("%w: job %s appears twice on this day", ErrValidation, e.JobID)
		}
		byJob[e.JobID] = e.ID
	}
	if len(jobIDs) != len(byJob) {
		return nil, ErrInvalidOrder
	}
	orders := make(map[string]int, len(jobIDs))
	for i, j := range jobIDs {
		id, ok := byJob[strings.TrimSpace(j)]
		if !ok {
			return nil, ErrInvalidOrder
		}
		if _, dup := orders[id]; dup {
			return nil, ErrInvalidOrder
		}
		orders[id] = i + 1
	}
	return orders, nil
}

// AdvanceStatus moves an entry through scheduled -> in_progress -> complete,
// or to cancelled. Completion also updates the technician's rolling stats.
func (u *ScheduleUseCase) AdvanceStatus(ctx context.Context, businessID, entryID string, status entities.ScheduleEntryStatus) (entities.ScheduleEntry, error) {
	e, err := u.GetByID(ctx, businessID, entryID)
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	next, err := e.Advance(status, u.now())
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	saved, err := u.repo.UpdateStatus(ctx, next, e.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ScheduleEntry{}, fmt.Errorf("entry %s: %w", e.ID, ErrConcurrentUpdate)
	}
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	if saved.ID == "" {
		return entities.ScheduleEntry{}, ErrEntryNotFound
	}
	slog.Info("schedule entry status changed", "business_id", saved.BusinessID, "entry_id", saved.ID, "from", e.Status, "to", saved.Status)

	if saved.Status == entities.ScheduleEntryStatusComplete {
		u.recordCompletion(ctx, saved)
	}
	return saved, nil
}

// recordCompletion updates the technician performance cache. The cache is
// eventually consistent, so failures are logged only.
func (u *ScheduleUseCase) recordCompletion(ctx context.Context, e entities.ScheduleEntry) {
	jobMinutes := e.EstimatedHours * 60
	if e.StartedAt != nil && e.CompletedAt != nil {
		jobMinutes = e.CompletedAt.Sub(*e.StartedAt).Minutes()
	}
	estimate := time.Duration(e.EstimatedHours * float64(time.Hour))
	onTime := time.Duration(jobMinutes*float64(time.Minute)) <= estimate+onTimeGrace
	_, _, err := updateTechnician(ctx, u.techs, e.BusinessID, e.TechID, func(t entities.Technician) (entities.Technician, bool, error) {
		t.Performance.RecordCompletion(nil, onTime, 0, jobMinutes)
		t.UpdatedAt = u.now()
		return t, true, nil
	})
	if err != nil {
		slog.Warn("completion stats update failed", "business_id", e.BusinessID, "tech_id", e.TechID, "entry_id", e.ID, "error", err)
	}
}

func (u *ScheduleUseCase) GetByID(ctx context.Context, businessID, id string) (entities.ScheduleEntry, error) {
	businessID, id = strings.TrimSpace(businessID), strings.TrimSpace(id)
	if businessID == "" {
		return entities.ScheduleEntry{}, ErrInvalidBusinessID
	}
	if id == "" {
		return entities.ScheduleEntry{}, ErrInvalidEntryID
	}
	e, err := u.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	if e.ID == "" || e.BusinessID != businessID || e.DeletedAt != nil {
		return entities.ScheduleEntry{}, ErrEntryNotFound
	}
	return e, nil
}

func (u *ScheduleUseCase) ListDay(ctx context.Context, businessID, techID, date string) ([]entities.ScheduleEntry, error) {
	businessID, techID = strings.TrimSpace(businessID), strings.TrimSpace(techID)
	if businessID == "" {
		return nil, ErrInvalidBusinessID
	}
	if techID == "" {
		return nil, ErrInvalidTechnicianID
	}
	if _, err := entities.ParseDate(date); err != nil {
		return nil, err
	}
	day, err := u.repo.ListDay(ctx, businessID, techID, date)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ScheduleEntry, 0, len(day.Entries))
	for _, e := range day.Entries {
		if e.BusinessID == businessID && e.DeletedAt == nil {
			out = append(out, e)
		}
	}
	sortByOrder(out)
	return out, nil
}

func (u *ScheduleUseCase) publish(t entities.EventType, businessID, techID string, data any) {
	if u.events == nil {
		return
	}
	u.events.Publish(entities.DispatchEvent{Type: t, BusinessID: businessID, TechID: techID, Data: data, OccurredAt: u.now()})
}

func sortByOrder(es []entities.ScheduleEntry) {
	sort.SliceStable(es, func(i, j int) bool {
		if es[i].Order != es[j].Order {
			return es[i].Order < es[j].Order
		}
		if es[i].StartTime != es[j].StartTime {
			return es[i].StartTime < es[j].StartTime
		}
		return es[i].ID < es[j].ID
	})
}
