package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ITechnicianUseCase tracks technician dispatch state: status, job linkage,
// live location and availability.
type ITechnicianUseCase interface {
	Create(ctx context.Context, businessID string, in CreateTechnicianInput) (entities.Technician, error)
	GetByID(ctx context.Context, businessID, id string) (entities.Technician, error)
	List(ctx context.Context, businessID string) ([]entities.Technician, error)
	Deactivate(ctx context.Context, businessID, id string) (entities.Technician, error)
	SetStatus(ctx context.Context, businessID, id string, status entities.TechnicianStatus, jobID string) (entities.Technician, error)
	UpdateLocation(ctx context.Context, businessID, id string, point entities.GeoPoint, accuracy *float64) (entities.Technician, error)
	LocationHistory(ctx context.Context, businessID, id string, since time.Time) ([]entities.LocationSample, error)
	ListAvailable(ctx context.Context, businessID string, at time.Time) ([]entities.Technician, error)
	LinkJob(ctx context.Context, businessID, id, jobID string) (entities.Technician, error)
	RecordCompletion(ctx context.Context, businessID, id string, in CompletionInput) (entities.Technician, error)
	AddAvailability(ctx context.Context, businessID, id string, in AvailabilityInput) (entities.Technician, error)
	ApproveAvailability(ctx context.Context, businessID, id, availabilityID string) (entities.Technician, error)
}

type CreateTechnicianInput struct {
	Name           string
	Email          string
	Phone          string
	Certifications []string
	Skills         entities.Skills
	WeeklySchedule entities.WeeklySchedule
}

type CompletionInput struct {
	Rating       *float64
	OnTime       bool
	DriveMinutes float64
	JobMinutes   float64
}

type AvailabilityInput struct {
	Date      string
	StartTime string
	EndTime   string
	Available bool
	Reason    string
}

type TechnicianOptions struct {
	// AutoApproveAvailability is the default approved flag for new
	// availability overrides.
	AutoApproveAvailability bool
	HistoryRetention        time.Duration
}

type TechnicianUseCase struct {
	repo     interfaces.ITechnicianRepository
	history  interfaces.ILocationHistoryRepository
	schedule interfaces.IScheduleEntryRepository
	events   interfaces.IEventPublisher
	opts     TechnicianOptions
	now      func() time.Time
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(
	repo interfaces.ITechnicianRepository,
	history interfaces.ILocationHistoryRepository,
	schedule interfaces.IScheduleEntryRepository,
	events interfaces.IEventPublisher,
	opts TechnicianOptions,
) *TechnicianUseCase {
	if opts.HistoryRetention <= 0 {
		opts.HistoryRetention = 7 * 24 * time.Hour
	}
	return &TechnicianUseCase{
		repo:     repo,
		history:  history,
		schedule: schedule,
		events:   events,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// technicianWriteRetries bounds re-reads after a lost version check.
const technicianWriteRetries = 3

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (u *TechnicianUseCase) Create(ctx context.Context, businessID string, in CreateTechnicianInput) (entities.Technician, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return entities.Technician{}, ErrInvalidBusinessID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Technician{}, entities.NewValidationError("name", "required")
	}
	schedule := entities.WeeklySchedule{}
	for day, d := range in.WeeklySchedule {
		key := strings.ToLower(strings.TrimSpace(day))
		if !weekdays[key] {
			return entities.Technician{}, entities.NewValidationError("weekly_schedule", "unknown weekday "+day)
		}
		if d.Enabled {
			if _, _, err := d.Window(); err != nil {
				return entities.Technician{}, err
			}
		}
		schedule[key] = d
	}

	now := u.now()
	t := entities.Technician{
		ID:             uuid.NewString(),
		BusinessID:     businessID,
		Name:           name,
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Status:         entities.TechnicianStatusOffDuty,
		Certifications: normalizeCertifications(in.Certifications),
		Skills:         in.Skills,
		WeeklySchedule: schedule,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Technician{}, err
	}
	slog.Info("technician created", "business_id", businessID, "tech_id", created.ID)
	return created, nil
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, businessID, id string) (entities.Technician, error) {
	businessID, id = strings.TrimSpace(businessID), strings.TrimSpace(id)
	if businessID == "" {
		return entities.Technician{}, ErrInvalidBusinessID
	}
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}
	t, err := u.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if t.ID == "" || t.BusinessID != businessID || t.DeletedAt != nil {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

func (u *TechnicianUseCase) List(ctx context.Context, businessID string) ([]entities.Technician, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return nil, ErrInvalidBusinessID
	}
	all, err := u.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Technician, 0, len(all))
	for _, t := range all {
		if t.BusinessID == businessID && t.DeletedAt == nil {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (u *TechnicianUseCase) Deactivate(ctx context.Context, businessID, id string) (entities.Technician, error) {
	_, saved, err := u.mutate(ctx, businessID, id, func(t entities.Technician) (entities.Technician, bool, error) {
		if !t.IsActive {
			return t, false, nil
		}
		next, _, err := t.ApplyStatus(entities.TechnicianStatusOffDuty, "", u.now())
		if err != nil {
			return t, false, err
		}
		next.IsActive = false
		next.UpdatedAt = u.now()
		return next, true, nil
	})
	return saved, err
}

// SetStatus applies the status state machine. Repeating the current status is
// a no-op and nothing is written.
func (u *TechnicianUseCase) SetStatus(ctx context.Context, businessID, id string, status entities.TechnicianStatus, jobID string) (entities.Technician, error) {
	jobID = strings.TrimSpace(jobID)
	var changed bool
	t, saved, err := u.mutate(ctx, businessID, id, func(t entities.Technician) (entities.Technician, bool, error) {
		if !t.IsActive && status != entities.TechnicianStatusOffDuty {
			return t, false, ErrInactiveTechnician
		}
		next, ok, err := t.ApplyStatus(status, jobID, u.now())
		changed = ok
		return next, ok, err
	})
	if err != nil {
		return entities.Technician{}, err
	}
	if !changed {
		return saved, nil
	}
	slog.Info("technician status changed",
		"business_id", saved.BusinessID, "tech_id", saved.ID, "from", t.Status, "to", saved.Status, "current_job_id", saved.CurrentJobID)
	u.publishStatus(saved)
	return saved, nil
}

// UpdateLocation overwrites the live location and appends an audit sample.
// A failed history append is logged and does not fail the update.
func (u *TechnicianUseCase) UpdateLocation(ctx context.Context, businessID, id string, point entities.GeoPoint, accuracy *float64) (entities.Technician, error) {
	if !point.Valid() {
		return entities.Technician{}, ErrInvalidLocation
	}
	if accuracy != nil && *accuracy < 0 {
		return entities.Technician{}, entities.NewValidationError("accuracy", "must not be negative")
	}
	t, err := u.GetByID(ctx, businessID, id)
	if err != nil {
		return entities.Technician{}, err
	}
	if !t.IsActive {
		return entities.Technician{}, ErrInactiveTechnician
	}

	now := u.now()
	loc := entities.TechnicianLocation{GeoPoint: point, Accuracy: accuracy, Timestamp: now}
	updated, err := u.repo.UpdateLocation(ctx, t.BusinessID, t.ID, loc)
	switch {
	case errors.Is(err, interfaces.ErrConditionFailed):
		// A newer report already landed; keep it.
		updated, err = u.GetByID(ctx, t.BusinessID, t.ID)
		if err != nil {
			return entities.Technician{}, err
		}
	case err != nil:
		return entities.Technician{}, err
	case updated.ID == "":
		return entities.Technician{}, ErrTechnicianNotFound
	}

	if u.history != nil {
		sample := entities.LocationSample{
			BusinessID: t.BusinessID,
			TechID:     t.ID,
			GeoPoint:   point,
			Accuracy:   accuracy,
			RecordedAt: now,
			ExpiresAt:  now.Add(u.opts.HistoryRetention),
		}
		if err := u.history.Append(ctx, sample); err != nil {
			slog.Warn("location history append failed", "business_id", t.BusinessID, "tech_id", t.ID, "error", err)
		}
	}
	return updated, nil
}

func (u *TechnicianUseCase) LocationHistory(ctx context.Context, businessID, id string, since time.Time) ([]entities.LocationSample, error) {
	t, err := u.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	now := u.now()
	if oldest := now.Add(-u.opts.HistoryRetention); since.IsZero() || since.Before(oldest) {
		since = oldest
	}
	samples, err := u.history.List(ctx, t.BusinessID, t.ID, since)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LocationSample, 0, len(samples))
	for _, s := range samples {
		if s.BusinessID == t.BusinessID && !s.RecordedAt.Before(since) && s.ExpiresAt.After(now) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.Before(out[j].RecordedAt) })
	return out, nil
}

// ListAvailable returns technicians that are available now, plus assigned or
// enroute technicians whose current entry ends by at.
func (u *TechnicianUseCase) ListAvailable(ctx context.Context, businessID string, at time.Time) ([]entities.Technician, error) {
	all, err := u.List(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = u.now()
	}
	date := at.Format(entities.DateLayout)
	atClock := entities.ClockFromTime(at)

	keep := make([]bool, len(all))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, t := range all {
		if !t.IsActive {
			continue
		}
		switch t.Status {
		case entities.TechnicianStatusAvailable:
			keep[i] = true
		case entities.TechnicianStatusAssigned, entities.TechnicianStatusEnroute:
			g.Go(func() error {
				free, err := u.freeBy(gctx, t, date, atClock)
				keep[i] = free
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]entities.Technician, 0, len(all))
	for i, t := range all {
		if keep[i] {
			out = append(out, t)
		}
	}
	return out, nil
}

// freeBy projects whether the technician's current job ends by atClock on date.
func (u *TechnicianUseCase) freeBy(ctx context.Context, t entities.Technician, date string, atClock entities.ClockTime) (bool, error) {
	if t.CurrentJobID == "" {
		return false, nil
	}
	day, err := u.schedule.ListDay(ctx, t.BusinessID, t.ID, date)
	if err != nil {
		return false, err
	}
	for _, e := range day.Entries {
		if e.JobID != t.CurrentJobID || !e.Blocking() {
			continue
		}
		_, end, err := e.Window()
		if err != nil {
			return false, nil
		}
		return end <= atClock, nil
	}
	return false, nil
}

func (u *TechnicianUseCase) LinkJob(ctx context.Context, businessID, id, jobID string) (entities.Technician, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Technician{}, ErrInvalidJobID
	}
	t, saved, err := u.mutate(ctx, businessID, id, func(t entities.Technician) (entities.Technician, bool, error) {
		next, changed := t.LinkJob(jobID, u.now())
		return next, changed, nil
	})
	if err != nil {
		return entities.Technician{}, err
	}
	if saved.Status != t.Status {
		u.publishStatus(saved)
	}
	return saved, nil
}

// RecordCompletion folds a completed job into the technician's rolling stats.
func (u *TechnicianUseCase) RecordCompletion(ctx context.Context, businessID, id string, in CompletionInput) (entities.Technician, error) {
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return entities.Technician{}, entities.NewValidationError("rating", "must be between 1 and 5")
	}
	if in.DriveMinutes < 0 || in.JobMinutes < 0 {
		return entities.Technician{}, entities.NewValidationError("minutes", "must not be negative")
	}
	_, saved, err := u.mutate(ctx, businessID, id, func(t entities.Technician) (entities.Technician, bool, error) {
		t.Performance.RecordCompletion(in.Rating, in.OnTime, in.DriveMinutes, in.JobMinutes)
		t.UpdatedAt = u.now()
		return t, true, nil
	})
	return saved, err
}

func (u *TechnicianUseCase) AddAvailability(ctx context.Context, businessID, id string, in AvailabilityInput) (entities.Technician, error) {
	if _, err := entities.ParseDate(in.Date); err != nil {
		return entities.Technician{}, err
	}
	start, err := entities.ParseClock(in.StartTime)
	if err != nil {
		return entities.Technician{}, err
	}
	end, err := entities.ParseClock(in.EndTime)
	if err != nil {
		return entities.Technician{}, err
	}
	if end <= start {
		return entities.Technician{}, entities.NewValidationError("end_time", "must be after start_time")
	}
	now := u.now()
	entry := entities.AvailabilityEntry{
		ID:        uuid.NewString(),
		Date:      in.Date,
		StartTime: start.String(),
		EndTime:   end.String(),
		Available: in.Available,
		Approved:  u.opts.AutoApproveAvailability,
		Reason:    strings.TrimSpace(in.Reason),
		CreatedAt: now,
	}
	_, saved, err := u.mutate(ctx, businessID, id, func(t entities.Technician) (entities.Technician, bool, error) {
		t.Availability = append(slices.Clone(t.Availability), entry)
		t.UpdatedAt = now
		return t, true, nil
	})
	return saved, err
}

func (u *TechnicianUseCase) ApproveAvailability(ctx context.Context, businessID, id, availabilityID string) (entities.Technician, error) {
	availabilityID = strings.TrimSpace(availabilityID)
	_, saved, err := u.mutate(ctx, businessID, id, func(t entities.Technician) (entities.Technician, bool, error) {
		for i := range t.Availability {
			if t.Availability[i].ID != availabilityID {
				continue
			}
			if t.Availability[i].Approved {
				return t, false, nil
			}
			t.Availability = slices.Clone(t.Availability)
			t.Availability[i].Approved = true
			t.UpdatedAt = u.now()
			return t, true, nil
		}
		return t, false, ErrAvailabilityNotFound
	})
	return saved, err
}

// mutate applies change to a fresh read of the technician and writes it under
// the version check, re-reading on a lost race.
func (u *TechnicianUseCase) mutate(
	ctx context.Context,
	businessID, id string,
	change func(entities.Technician) (entities.Technician, bool, error),
) (before, after entities.Technician, err error) {
	businessID, id = strings.TrimSpace(businessID), strings.TrimSpace(id)
	switch {
	case businessID == "":
		return entities.Technician{}, entities.Technician{}, ErrInvalidBusinessID
	case id == "":
		return entities.Technician{}, entities.Technician{}, ErrInvalidTechnicianID
	}
	return updateTechnician(ctx, u.repo, businessID, id, change)
}

// updateTechnician is the versioned read-modify-write shared by every use
// case that changes a technician. change returns changed=false to skip the
// write; before is the read the final result was derived from.
func updateTechnician(
	ctx context.Context,
	repo interfaces.ITechnicianRepository,
	businessID, id string,
	change func(entities.Technician) (entities.Technician, bool, error),
) (before, after entities.Technician, err error) {
	for attempt := 0; attempt <= technicianWriteRetries; attempt++ {
		t, err := repo.GetByID(ctx, businessID, id)
		if err != nil {
			return entities.Technician{}, entities.Technician{}, err
		}
		if t.ID == "" || t.BusinessID != businessID || t.DeletedAt != nil {
			return entities.Technician{}, entities.Technician{}, ErrTechnicianNotFound
		}
		next, changed, err := change(t)
		if err != nil {
			return entities.Technician{}, entities.Technician{}, err
		}
		if !changed {
			return t, t, nil
		}
		saved, err := repo.Update(ctx, next)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			continue
		}
		if err != nil {
			return entities.Technician{}, entities.Technician{}, err
		}
		if saved.ID == "" {
			return entities.Technician{}, entities.Technician{}, ErrTechnicianNotFound
		}
		return t, saved, nil
	}
	return entities.Technician{}, entities.Technician{}, fmt.Errorf("technician %s: %w", id, ErrConcurrentUpdate)
}

func (u *TechnicianUseCase) publishStatus(t entities.Technician) {
	if u.events == nil {
		return
	}
	u.events.Publish(entities.DispatchEvent{
		Type:       entities.EventTechnicianStatus,
		BusinessID: t.BusinessID,
		TechID:     t.ID,
		Data: map[string]string{
			"status":         string(t.Status),
			"current_job_id": t.CurrentJobID,
			"next_job_id":    t.NextJobID,
		},
		OccurredAt: u.now(),
	})
}

func normalizeCertifications(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
