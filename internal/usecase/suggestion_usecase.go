package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"dispatch_service/internal/config"
	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/domain/geo"
	"dispatch_service/internal/infrastructure/metrics"
	"dispatch_service/internal/usecase/interfaces"
	"dispatch_service/internal/usecase/scoring"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type SuggestionAction string

const (
	SuggestionActionAccept SuggestionAction = "accept"
	SuggestionActionReject SuggestionAction = "reject"
)

// ISuggestionUseCase generates and tracks technician suggestions for a job.
type ISuggestionUseCase interface {
	Generate(ctx context.Context, businessID string, in GenerateInput) (entities.DispatchSuggestion, error)
	Act(ctx context.Context, businessID, suggestionID string, in ActInput) (ActResult, error)
	GetByID(ctx context.Context, businessID, id string) (entities.DispatchSuggestion, error)
	Stats(ctx context.Context, businessID string, from, to time.Time) (SuggestionStats, error)
}

type GenerateInput struct {
	JobID      string
	TargetDate string
	// TargetTime is optional; when set only technicians free for the whole
	// job starting exactly then are candidates.
	TargetTime string
	AutoAssign bool
	Actor      string
}

type ActInput struct {
	Action         SuggestionAction
	SelectedTechID string
	Reason         string
	Actor          string
}

// ActResult is the recorded outcome plus the resulting assignment, which may
// itself be a conflict.
type ActResult struct {
	Suggestion entities.DispatchSuggestion `json:"suggestion"`
	Assignment AssignResult                `json:"assignment"`
}

// SuggestionStats aggregates outcomes over suggestions created in a range.
// Expired suggestions are counted in their own bucket and excluded from the
// acceptance rate.
type SuggestionStats struct {
	From                 time.Time      `json:"from"`
	To                   time.Time      `json:"to"`
	Total                int            `json:"total"`
	Pending              int            `json:"pending"`
	Accepted             int            `json:"accepted"`
	Rejected             int            `json:"rejected"`
	AutoAssigned         int            `json:"auto_assigned"`
	Expired              int            `json:"expired"`
	Actioned             int            `json:"actioned"`
	TopPickSelected      int            `json:"top_pick_selected"`
	AcceptanceRate       float64        `json:"acceptance_rate"`
	AvgResponseLatencyMs float64        `json:"avg_response_latency_ms"`
	RejectionReasons     map[string]int `json:"rejection_reasons"`
}

type SuggestionOptions struct {
	Weights            config.ScoringWeights
	Estimator          geo.Estimator
	TTL                time.Duration
	AutoAssignMinScore int
}

type SuggestionUseCase struct {
	repo        interfaces.ISuggestionRepository
	technicians ITechnicianUseCase
	entries     interfaces.IScheduleEntryRepository
	jobs        interfaces.IJobCatalog
	routing     interfaces.IRoutingProvider
	schedule    IScheduleUseCase
	events      interfaces.IEventPublisher
	opts        SuggestionOptions
	now         func() time.Time
}

var _ ISuggestionUseCase = (*SuggestionUseCase)(nil)

func NewSuggestionUseCase(
	repo interfaces.ISuggestionRepository,
	technicians ITechnicianUseCase,
	entries interfaces.IScheduleEntryRepository,
	jobs interfaces.IJobCatalog,
	routing interfaces.IRoutingProvider,
	schedule IScheduleUseCase,
	events interfaces.IEventPublisher,
	opts SuggestionOptions,
) *SuggestionUseCase {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	if opts.Weights.Total() <= 0 {
		opts.Weights = config.DefaultScoringWeights()
	}
	return &SuggestionUseCase{
		repo:        repo,
		technicians: technicians,
		entries:     entries,
		jobs:        jobs,
		routing:     routing,
		schedule:    schedule,
		events:      events,
		opts:        opts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// candidate is a scoring input plus the technician's live position.
type candidate struct {
	scoring.Candidate
	origin *entities.GeoPoint
}

// Generate scores every eligible technician for the job and persists a
// pending suggestion. With AutoAssign the top pick is actioned immediately
// when it clears the configured minimum score.
func (u *SuggestionUseCase) Generate(ctx context.Context, businessID string, in GenerateInput) (entities.DispatchSuggestion, error) {
	businessID = strings.TrimSpace(businessID)
	in.JobID = strings.TrimSpace(in.JobID)
	if businessID == "" {
		return entities.DispatchSuggestion{}, ErrInvalidBusinessID
	}
	if in.JobID == "" {
		return entities.DispatchSuggestion{}, ErrInvalidJobID
	}
	if _, err := entities.ParseDate(in.TargetDate); err != nil {
		return entities.DispatchSuggestion{}, err
	}
	var target *entities.ClockTime
	if in.TargetTime != "" {
		c, err := entities.ParseClock(in.TargetTime)
		if err != nil {
			return entities.DispatchSuggestion{}, err
		}
		target = &c
	}

	job, err := u.jobs.GetJob(ctx, businessID, in.JobID)
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	if job.ID == "" || job.BusinessID != businessID {
		return entities.DispatchSuggestion{}, ErrJobNotFound
	}
	hours := job.Hours()
	if target != nil {
		if _, err := entities.EndOf(*target, hours); err != nil {
			return entities.DispatchSuggestion{}, err
		}
	}

	cands, err := u.candidates(ctx, businessID, job, in.TargetDate, hours, target)
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	if len(cands) == 0 {
		slog.Info("no eligible technicians", "business_id", businessID, "job_id", job.ID, "date", in.TargetDate)
		return entities.DispatchSuggestion{}, ErrNoCandidates
	}
	departAt := departure(in.TargetDate, firstNonEmpty(in.TargetTime, cands[0].EarliestStart))
	degraded := u.fillETAs(ctx, job, cands, departAt)

	inputs := make([]scoring.Candidate, len(cands))
	for i, c := range cands {
		inputs[i] = c.Candidate
	}
	ranked := scoring.Rank(inputs, u.opts.Weights)

	now := u.now()
	s := entities.DispatchSuggestion{
		ID:                uuid.NewString(),
		BusinessID:        businessID,
		JobID:             job.ID,
		TargetDate:        in.TargetDate,
		TargetTime:        in.TargetTime,
		EstimatedHours:    hours,
		AllSuggestions:    ranked,
		TopRecommendation: ranked[0],
		Status:            entities.SuggestionStatusPending,
		Degraded:          degraded,
		GeneratedBy:       in.Actor,
		CreatedAt:         now,
		UpdatedAt:         now,
		ExpiresAt:         now.Add(u.opts.TTL),
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	metrics.SuggestionsGenerated.Inc()
	slog.Info("suggestion generated",
		"business_id", businessID, "job_id", job.ID, "suggestion_id", created.ID,
		"candidates", len(ranked), "top_tech_id", created.TopRecommendation.TechID,
		"top_score", created.TopRecommendation.Score, "degraded", degraded)
	u.publish(entities.EventSuggestionGenerated, created)

	if in.AutoAssign && created.TopRecommendation.Score >= u.opts.AutoAssignMinScore {
		res, err := u.action(ctx, created, entities.SuggestionStatusAutoAssigned, created.TopRecommendation.TechID, "", in.Actor)
		if err != nil {
			slog.Warn("auto-assign skipped, suggestion left pending",
				"business_id", businessID, "suggestion_id", created.ID, "error", err)
			return u.GetByID(ctx, businessID, created.ID)
		}
		return res.Suggestion, nil
	}
	return created, nil
}

// candidates filters the business's technicians to those able and free to do
// the job on date and gathers their availability facts.
func (u *SuggestionUseCase) candidates(
	ctx context.Context,
	businessID string,
	job entities.JobDetails,
	date string,
	hours float64,
	target *entities.ClockTime,
) ([]candidate, error) {
	techs, err := u.technicians.List(ctx, businessID)
	if err != nil {
		return nil, err
	}
	certs := job.Certifications()

	var eligible []entities.Technician
	for _, t := range techs {
		if !t.IsActive || !t.HasCertifications(certs) {
			continue
		}
		if job.ServiceType != "" && !t.Skills.Supports(job.ServiceType) {
			continue
		}
		eligible = append(eligible, t)
	}

	found := make([]*candidate, len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, t := range eligible {
		g.Go(func() error {
			shift, overrides, ok := t.ShiftOn(date)
			if !ok {
				return nil
			}
			day, err := u.entries.ListDay(gctx, businessID, t.ID, date)
			if err != nil {
				return err
			}
			free := entities.FreeWindows(shift, overrides, day.Entries)
			var notBefore entities.ClockTime
			if target != nil {
				notBefore = *target
			}
			start, fits := entities.EarliestFit(free, hours, notBefore)
			if !fits || (target != nil && start != *target) {
				return nil
			}
			c := &candidate{Candidate: scoring.Candidate{
				TechID:        t.ID,
				TechName:      t.Name,
				FreeMinutes:   entities.FreeMinutes(free),
				ShiftMinutes:  entities.FreeMinutes(entities.FreeWindows(shift, overrides, nil)),
				EarliestStart: start.String(),
				Performance:   t.Performance,
				IsPreferred:   job.PreferredTechID != "" && job.PreferredTechID == t.ID,
			}}
			if t.Location != nil {
				p := t.Location.GeoPoint
				c.origin = &p
			}
			found[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]candidate, 0, len(found))
	for _, c := range found {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

// fillETAs sets ETA and distance for candidates with a known position. Every
// candidate first gets the straight-line estimate; provider answers then
// replace it. degraded reports a provider failure.
func (u *SuggestionUseCase) fillETAs(ctx context.Context, job entities.JobDetails, cands []candidate, departAt time.Time) bool {
	if job.Location == nil {
		return false
	}
	dest := *job.Location
	var origins []entities.GeoPoint
	var idx []int
	for i := range cands {
		if cands[i].origin == nil {
			continue
		}
		minutes, km := u.opts.Estimator.Estimate(*cands[i].origin, dest)
		setETA(&cands[i], minutes, minutes, km, true)
		origins = append(origins, *cands[i].origin)
		idx = append(idx, i)
	}
	if len(origins) == 0 || u.routing == nil {
		return false
	}

	matrix, err := u.routing.TravelMatrix(ctx, interfaces.TravelMatrixRequest{
		Origins:      origins,
		Destinations: []entities.GeoPoint{dest},
		DepartAt:     departAt,
	})
	if err != nil {
		slog.Warn("routing provider unavailable, using straight-line ETAs", "job_id", job.ID, "origins", len(origins), "error", err)
		return true
	}
	for k, i := range idx {
		if k >= len(matrix) || len(matrix[k]) == 0 || !matrix[k][0].OK {
			continue
		}
		l := matrix[k][0]
		setETA(&cands[i], l.Minutes, l.MinutesWithoutTraffic, l.Km, false)
	}
	return false
}

func setETA(c *candidate, minutes, withoutTraffic, km float64, estimated bool) {
	m, w, d := round1(minutes), round1(withoutTraffic), round1(km)
	c.ETAMinutes, c.ETAWithoutTrafficMinutes, c.DistanceKm = &m, &w, &d
	c.ETAEstimated = estimated
}

// Act records the dispatcher's decision exactly once and then assigns the
// chosen technician. The outcome is written before the assignment so that a
// replayed request can never assign twice; a failed assignment reopens it.
func (u *SuggestionUseCase) Act(ctx context.Context, businessID, suggestionID string, in ActInput) (ActResult, error) {
	s, err := u.GetByID(ctx, businessID, suggestionID)
	if err != nil {
		return ActResult{}, err
	}
	if s.Status != entities.SuggestionStatusPending {
		return ActResult{}, ErrSuggestionAlreadyActioned
	}
	now := u.now()
	if !now.Before(s.ExpiresAt) {
		u.expire(ctx, s, now)
		return ActResult{}, ErrSuggestionAlreadyActioned
	}

	top := s.TopRecommendation.TechID
	selected := strings.TrimSpace(in.SelectedTechID)
	switch in.Action {
	case SuggestionActionAccept:
		if selected != "" && selected != top {
			return ActResult{}, ErrAcceptNotTopPick
		}
		return u.action(ctx, s, entities.SuggestionStatusAccepted, top, "", in.Actor)
	case SuggestionActionReject:
		reason := strings.TrimSpace(in.Reason)
		switch {
		case reason == "":
			return ActResult{}, ErrRejectReasonMissing
		case selected == "":
			return ActResult{}, entities.NewValidationError("selected_tech_id", "required when rejecting")
		case selected == top:
			return ActResult{}, ErrRejectSameAsTopPick
		}
		if _, ok := s.Candidate(selected); !ok {
			return ActResult{}, ErrUnknownCandidate
		}
		return u.action(ctx, s, entities.SuggestionStatusRejected, selected, reason, in.Actor)
	default:
		return ActResult{}, entities.NewValidationError("action", "must be accept or reject")
	}
}

func (u *SuggestionUseCase) action(
	ctx context.Context,
	s entities.DispatchSuggestion,
	status entities.SuggestionStatus,
	selected, reason, actor string,
) (ActResult, error) {
	cand, _ := s.Candidate(selected)
	assign := AssignInput{
		TechID:         selected,
		JobID:          s.JobID,
		Date:           s.TargetDate,
		StartTime:      firstNonEmpty(s.TargetTime, cand.EarliestStart),
		EstimatedHours: s.EstimatedHours,
		CreatedBy:      actor,
	}
	if err := u.checkAssignable(ctx, s.BusinessID, assign); err != nil {
		return ActResult{}, err
	}

	next, err := s.RecordOutcome(status, selected, actor, reason, u.now())
	if errors.Is(err, ErrInvalidTransition) {
		return ActResult{}, ErrSuggestionAlreadyActioned
	}
	if err != nil {
		return ActResult{}, err
	}
	saved, err := u.repo.SaveOutcome(ctx, next)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return ActResult{}, ErrSuggestionAlreadyActioned
	}
	if err != nil {
		return ActResult{}, err
	}
	if saved.ID == "" {
		return ActResult{}, ErrSuggestionNotFound
	}

	assignment, err := u.schedule.Assign(ctx, saved.BusinessID, assign)
	if err != nil {
		slog.Error("assignment after suggestion outcome failed",
			"business_id", saved.BusinessID, "suggestion_id", saved.ID, "tech_id", selected, "error", err)
		u.reopen(ctx, saved)
		return ActResult{}, err
	}

	metrics.SuggestionOutcomes.WithLabelValues(string(saved.Status)).Inc()
	slog.Info("suggestion actioned",
		"business_id", saved.BusinessID, "suggestion_id", saved.ID, "status", saved.Status,
		"selected_tech_id", saved.SelectedTechID, "top_pick", saved.WasTopPickSelected, "latency_ms", saved.ResponseLatencyMs)
	u.publish(entities.EventSuggestionActioned, saved)

	if assignment.Entry != nil {
		if _, err := u.technicians.LinkJob(ctx, saved.BusinessID, selected, saved.JobID); err != nil {
			slog.Warn("job link failed", "business_id", saved.BusinessID, "tech_id", selected, "job_id", saved.JobID, "error", err)
		}
	}
	return ActResult{Suggestion: saved, Assignment: assignment}, nil
}

// checkAssignable rejects an outcome whose assignment is bound to fail, before
// anything is written.
func (u *SuggestionUseCase) checkAssignable(ctx context.Context, businessID string, in AssignInput) error {
	start, err := entities.ParseClock(in.StartTime)
	if err != nil {
		return err
	}
	if _, err := entities.EndOf(start, in.EstimatedHours); err != nil {
		return err
	}
	tech, err := u.technicians.GetByID(ctx, businessID, in.TechID)
	if err != nil {
		return err
	}
	if !tech.IsActive {
		return ErrInactiveTechnician
	}
	return nil
}

// reopen puts a recorded outcome back to pending after its assignment
// failed. It only succeeds while the stored copy is still that outcome.
func (u *SuggestionUseCase) reopen(ctx context.Context, recorded entities.DispatchSuggestion) {
	pending, err := recorded.Reopen(u.now())
	if err != nil {
		return
	}
	if _, err := u.repo.RevertOutcome(ctx, recorded, pending); err != nil {
		slog.Error("suggestion outcome left without assignment",
			"business_id", recorded.BusinessID, "suggestion_id", recorded.ID, "status", recorded.Status, "error", err)
		return
	}
	slog.Info("suggestion reopened", "business_id", recorded.BusinessID, "suggestion_id", recorded.ID)
}

// expire marks s expired. Losing the race to another writer is fine.
func (u *SuggestionUseCase) expire(ctx context.Context, s entities.DispatchSuggestion, now time.Time) {
	next, err := s.Expire(now)
	if err != nil {
		return
	}
	if _, err := u.repo.SaveOutcome(ctx, next); err != nil {
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			slog.Warn("suggestion expiry failed", "business_id", s.BusinessID, "suggestion_id", s.ID, "error", err)
		}
		return
	}
	metrics.SuggestionOutcomes.WithLabelValues(string(entities.SuggestionStatusExpired)).Inc()
}

func (u *SuggestionUseCase) GetByID(ctx context.Context, businessID, id string) (entities.DispatchSuggestion, error) {
	businessID, id = strings.TrimSpace(businessID), strings.TrimSpace(id)
	if businessID == "" {
		return entities.DispatchSuggestion{}, ErrInvalidBusinessID
	}
	if id == "" {
		return entities.DispatchSuggestion{}, ErrInvalidSuggestionID
	}
	s, err := u.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return entities.DispatchSuggestion{}, err
	}
	if s.ID == "" || s.BusinessID != businessID || s.DeletedAt != nil {
		return entities.DispatchSuggestion{}, ErrSuggestionNotFound
	}
	return s, nil
}

// Stats aggregates suggestions created in [from, to]. A zero to means now and
// a zero from means 30 days before to.
func (u *SuggestionUseCase) Stats(ctx context.Context, businessID string, from, to time.Time) (SuggestionStats, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return SuggestionStats{}, ErrInvalidBusinessID
	}
	if to.IsZero() {
		to = u.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if from.After(to) {
		return SuggestionStats{}, ErrInvalidDateRange
	}
	list, err := u.repo.ListByBusiness(ctx, businessID, from, to)
	if err != nil {
		return SuggestionStats{}, err
	}

	st := SuggestionStats{From: from, To: to, RejectionReasons: map[string]int{}}
	var latencyTotal int64
	latencyCount := 0
	for _, s := range list {
		if s.BusinessID != businessID || s.DeletedAt != nil {
			continue
		}
		st.Total++
		switch s.Status {
		case entities.SuggestionStatusPending:
			st.Pending++
		case entities.SuggestionStatusExpired:
			st.Expired++
		case entities.SuggestionStatusAccepted:
			st.Accepted++
		case entities.SuggestionStatusRejected:
			st.Rejected++
			reason := strings.ToLower(strings.TrimSpace(s.RejectionReason))
			if reason == "" {
				reason = "unspecified"
			}
			st.RejectionReasons[reason]++
		case entities.SuggestionStatusAutoAssigned:
			st.AutoAssigned++
		}
		if !s.Status.Actioned() {
			continue
		}
		st.Actioned++
		if s.WasTopPickSelected {
			st.TopPickSelected++
		}
		if s.Status != entities.SuggestionStatusAutoAssigned {
			latencyTotal += s.ResponseLatencyMs
			latencyCount++
		}
	}
	if st.Actioned > 0 {
		st.AcceptanceRate = float64(st.TopPickSelected) / float64(st.Actioned)
	}
	if latencyCount > 0 {
		st.AvgResponseLatencyMs = float64(latencyTotal) / float64(latencyCount)
	}
	return st, nil
}

func (u *SuggestionUseCase) publish(t entities.EventType, s entities.DispatchSuggestion) {
	if u.events == nil {
		return
	}
	u.events.Publish(entities.DispatchEvent{
		Type:       t,
		BusinessID: s.BusinessID,
		TechID:     firstNonEmpty(s.SelectedTechID, s.TopRecommendation.TechID),
		Data:       s,
		OccurredAt: u.now(),
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
