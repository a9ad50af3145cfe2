package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch_service/internal/adapter/persistence/memory"
	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/domain/geo"
	"dispatch_service/internal/usecase/interfaces"
	mock_interfaces "dispatch_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type suggestionFixture struct {
	scheduleFixture
	suggestions *memory.SuggestionRepository
	uc          *SuggestionUseCase
}

var mondayShift = entities.WeeklySchedule{"monday": {Enabled: true, Start: "08:00", End: "17:00"}}

func newSuggestionFixture(t *testing.T, routing interfaces.IRoutingProvider) suggestionFixture {
	t.Helper()
	f := suggestionFixture{scheduleFixture: newScheduleFixture(t), suggestions: memory.NewSuggestionRepository()}
	ctx := context.Background()
	for _, tech := range []entities.Technician{
		{ID: "tech-a", Name: "Ana", Location: &entities.TechnicianLocation{GeoPoint: entities.GeoPoint{Latitude: 0.12}}},
		{ID: "tech-b", Name: "Bruno", Location: &entities.TechnicianLocation{GeoPoint: entities.GeoPoint{Latitude: 0.09}}},
	} {
		tech.BusinessID = "biz-1"
		tech.IsActive = true
		tech.Status = entities.TechnicianStatusAvailable
		tech.Skills = entities.Skills{CanService: true}
		tech.WeeklySchedule = mondayShift
		if _, err := f.techs.Create(ctx, tech); err != nil {
			t.Fatalf("seed technician: %v", err)
		}
	}
	f.jobs.Put(entities.JobDetails{
		ID:          "lawn-1",
		BusinessID:  "biz-1",
		Vertical:    entities.VerticalLawnCare,
		ServiceType: entities.ServiceTypeService,
		Location:    &entities.GeoPoint{},
	})
	f.jobs.Put(entities.JobDetails{ID: "hvac-1", BusinessID: "biz-1", Vertical: entities.VerticalHVAC})

	techs := NewTechnicianUseCase(f.techs, nil, f.entries, nil, TechnicianOptions{})
	techs.now = func() time.Time { return fixedNow }
	f.uc = NewSuggestionUseCase(f.suggestions, techs, f.entries, f.jobs, routing, f.scheduleFixture.uc, nil, SuggestionOptions{
		Estimator: geo.Estimator{AverageSpeedKmh: 40, RoadFactor: 1},
	})
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func (f suggestionFixture) generate(t *testing.T) entities.DispatchSuggestion {
	t.Helper()
	s, err := f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "lawn-1", TargetDate: "2025-03-03"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return s
}

func TestSuggestionUseCase_GenerateRanksByETA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	routing := mock_interfaces.NewMockIRoutingProvider(ctrl)
	f := newSuggestionFixture(t, routing)

	routing.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).DoAndReturn(latitudeMatrix)

	s := f.generate(t)
	if s.Status != entities.SuggestionStatusPending || s.Degraded {
		t.Fatalf("unexpected suggestion: %+v", s)
	}
	if len(s.AllSuggestions) != 2 || s.TopRecommendation.TechID != "tech-b" {
		t.Fatalf("expected tech-b on top, got %+v", s.AllSuggestions)
	}
	if s.AllSuggestions[0].Score < s.AllSuggestions[1].Score {
		t.Fatalf("suggestions not sorted by score")
	}
	eta := s.TopRecommendation.ETAMinutes
	if eta == nil || *eta != 9 || s.TopRecommendation.ETAEstimated {
		t.Fatalf("expected provider ETA of 9 minutes, got %+v", s.TopRecommendation)
	}
	if !s.ExpiresAt.Equal(fixedNow.Add(30 * time.Minute)) {
		t.Fatalf("unexpected expiry %v", s.ExpiresAt)
	}
}

func TestSuggestionUseCase_GenerateDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	routing := mock_interfaces.NewMockIRoutingProvider(ctrl)
	f := newSuggestionFixture(t, routing)

	routing.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).Return(nil, ErrExternalTimeout)

	s := f.generate(t)
	if !s.Degraded {
		t.Fatalf("expected degraded suggestion")
	}
	for _, c := range s.AllSuggestions {
		if c.ETAMinutes == nil || !c.ETAEstimated {
			t.Fatalf("expected straight-line estimate for %s", c.TechID)
		}
	}
	if s.TopRecommendation.TechID != "tech-b" {
		t.Fatalf("nearest technician should still win, got %s", s.TopRecommendation.TechID)
	}
}

func TestSuggestionUseCase_GenerateFilters(t *testing.T) {
	f := newSuggestionFixture(t, nil)

	t.Run("missing certification", func(t *testing.T) {
		_, err := f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "hvac-1", TargetDate: "2025-03-03"})
		if !errors.Is(err, ErrNoCandidates) {
			t.Fatalf("expected ErrNoCandidates, got %v", err)
		}
	})

	t.Run("no shift on sunday", func(t *testing.T) {
		_, err := f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "lawn-1", TargetDate: "2025-03-02"})
		if !errors.Is(err, ErrNoCandidates) {
			t.Fatalf("expected ErrNoCandidates, got %v", err)
		}
	})

	t.Run("target time must be free", func(t *testing.T) {
		if _, err := f.scheduleFixture.uc.Assign(context.Background(), "biz-1", AssignInput{
			TechID: "tech-a", JobID: "job-2", Date: "2025-03-03", StartTime: "14:30", EstimatedHours: 1,
		}); err != nil {
			t.Fatalf("assign: %v", err)
		}
		s, err := f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "lawn-1", TargetDate: "2025-03-03", TargetTime: "14:00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.AllSuggestions) != 1 || s.TopRecommendation.TechID != "tech-b" {
			t.Fatalf("expected only tech-b, got %+v", s.AllSuggestions)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "ghost", TargetDate: "2025-03-03"})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestSuggestionUseCase_AcceptIsAtMostOnce(t *testing.T) {
	f := newSuggestionFixture(t, nil)
	s := f.generate(t)
	ctx := context.Background()
	f.uc.now = func() time.Time { return fixedNow.Add(90 * time.Second) }

	res, err := f.uc.Act(ctx, "biz-1", s.ID, ActInput{Action: SuggestionActionAccept, Actor: "dispatcher-1"})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	got := res.Suggestion
	if got.Status != entities.SuggestionStatusAccepted || got.SelectedTechID != "tech-b" || !got.WasTopPickSelected {
		t.Fatalf("unexpected outcome: %+v", got)
	}
	if got.ResponseLatencyMs != 90000 {
		t.Fatalf("expected 90000ms latency, got %d", got.ResponseLatencyMs)
	}
	if res.Assignment.Entry == nil || res.Assignment.Entry.TechID != "tech-b" || res.Assignment.Entry.StartTime != "08:00" {
		t.Fatalf("unexpected assignment: %+v", res.Assignment)
	}
	tech, _ := f.techs.GetByID(ctx, "biz-1", "tech-b")
	if tech.CurrentJobID != "lawn-1" || tech.Status != entities.TechnicianStatusAssigned {
		t.Fatalf("expected job linked to technician, got %+v", tech)
	}

	_, err = f.uc.Act(ctx, "biz-1", s.ID, ActInput{Action: SuggestionActionAccept})
	if !errors.Is(err, ErrSuggestionAlreadyActioned) {
		t.Fatalf("expected ErrSuggestionAlreadyActioned, got %v", err)
	}
	day, _ := f.scheduleFixture.uc.ListDay(ctx, "biz-1", "tech-b", "2025-03-03")
	if len(day) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(day))
	}
}

func TestSuggestionUseCase_Reject(t *testing.T) {
	f := newSuggestionFixture(t, nil)
	s := f.generate(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   ActInput
		want error
	}{
		{"missing reason", ActInput{Action: SuggestionActionReject, SelectedTechID: "tech-a"}, ErrRejectReasonMissing},
		{"same as top pick", ActInput{Action: SuggestionActionReject, SelectedTechID: "tech-b", Reason: "x"}, ErrRejectSameAsTopPick},
		{"unknown candidate", ActInput{Action: SuggestionActionReject, SelectedTechID: "ghost", Reason: "x"}, ErrUnknownCandidate},
		{"accept other tech", ActInput{Action: SuggestionActionAccept, SelectedTechID: "tech-a"}, ErrAcceptNotTopPick},
		{"unknown action", ActInput{Action: "maybe"}, ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.uc.Act(ctx, "biz-1", s.ID, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	res, err := f.uc.Act(ctx, "biz-1", s.ID, ActInput{Action: SuggestionActionReject, SelectedTechID: "tech-a", Reason: "Customer Request"})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if res.Suggestion.Status != entities.SuggestionStatusRejected || res.Suggestion.WasTopPickSelected {
		t.Fatalf("unexpected outcome: %+v", res.Suggestion)
	}
	if res.Assignment.Entry == nil || res.Assignment.Entry.TechID != "tech-a" {
		t.Fatalf("expected tech-a assignment, got %+v", res.Assignment)
	}

	stats, err := f.uc.Stats(ctx, "biz-1", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Rejected != 1 || stats.AcceptanceRate != 0 || stats.RejectionReasons["customer request"] != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// failingAssign makes every assignment fail after the outcome is recorded.
type failingAssign struct {
	IScheduleUseCase
	err error
}

func (f failingAssign) Assign(context.Context, string, AssignInput) (AssignResult, error) {
	return AssignResult{}, f.err
}

func TestSuggestionUseCase_AcceptInactiveTopPickLeavesPending(t *testing.T) {
	f := newSuggestionFixture(t, nil)
	s := f.generate(t)
	ctx := context.Background()

	top, _ := f.techs.GetByID(ctx, "biz-1", s.TopRecommendation.TechID)
	top.IsActive = false
	if _, err := f.techs.Update(ctx, top); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := f.uc.Act(ctx, "biz-1", s.ID, ActInput{Action: SuggestionActionAccept})
	if !errors.Is(err, ErrInactiveTechnician) {
		t.Fatalf("expected ErrInactiveTechnician, got %v", err)
	}
	stored, _ := f.suggestions.GetByID(ctx, "biz-1", s.ID)
	if stored.Status != entities.SuggestionStatusPending || stored.SelectedTechID != "" {
		t.Fatalf("expected suggestion to stay pending, got %+v", stored)
	}

	res, err := f.uc.Act(ctx, "biz-1", s.ID, ActInput{Action: SuggestionActionReject, SelectedTechID: "tech-a", Reason: "tech unavailable"})
	if err != nil {
		t.Fatalf("reject after failed accept: %v", err)
	}
	if res.Assignment.Entry == nil || res.Assignment.Entry.TechID != "tech-a" {
		t.Fatalf("expected tech-a assignment, got %+v", res.Assignment)
	}
}

func TestSuggestionUseCase_FailedAssignmentReopens(t *testing.T) {
	f := newSuggestionFixture(t, nil)
	s := f.generate(t)
	ctx := context.Background()
	storeDown := errors.New("schedule store unavailable")
	f.uc.schedule = failingAssign{IScheduleUseCase: f.scheduleFixture.uc, err: storeDown}

	_, err := f.uc.Act(ctx, "biz-1", s.ID, ActInput{Action: SuggestionActionAccept, Actor: "dispatcher-1"})
	if !errors.Is(err, storeDown) {
		t.Fatalf("expected assignment error, got %v", err)
	}
	stored, _ := f.suggestions.GetByID(ctx, "biz-1", s.ID)
	if stored.Status != entities.SuggestionStatusPending || stored.ActionedAt != nil {
		t.Fatalf("expected reopened suggestion, got %+v", stored)
	}
	stats, _ := f.uc.Stats(ctx, "biz-1", time.Time{}, time.Time{})
	if stats.Actioned != 0 || stats.Pending != 1 {
		t.Fatalf("failed outcome must not count as actioned: %+v", stats)
	}

	f.uc.schedule = f.scheduleFixture.uc
	res, err := f.uc.Act(ctx, "biz-1", s.ID, ActInput{Action: SuggestionActionAccept, Actor: "dispatcher-1"})
	if err != nil {
		t.Fatalf("retry accept: %v", err)
	}
	if res.Suggestion.Status != entities.SuggestionStatusAccepted || res.Assignment.Entry == nil {
		t.Fatalf("unexpected retry result: %+v", res)
	}
}

func TestSuggestionUseCase_AutoAssignFailureStaysPending(t *testing.T) {
	f := newSuggestionFixture(t, nil)
	f.uc.opts.AutoAssignMinScore = 1
	f.uc.schedule = failingAssign{IScheduleUseCase: f.scheduleFixture.uc, err: errors.New("schedule store unavailable")}

	s, err := f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "lawn-1", TargetDate: "2025-03-03", AutoAssign: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if s.Status != entities.SuggestionStatusPending {
		t.Fatalf("expected pending suggestion, got %s", s.Status)
	}
}

func TestSuggestionUseCase_ActOnExpired(t *testing.T) {
	f := newSuggestionFixture(t, nil)
	s := f.generate(t)
	f.uc.now = func() time.Time { return s.ExpiresAt }

	_, err := f.uc.Act(context.Background(), "biz-1", s.ID, ActInput{Action: SuggestionActionAccept})
	if !errors.Is(err, ErrSuggestionAlreadyActioned) {
		t.Fatalf("expected ErrSuggestionAlreadyActioned, got %v", err)
	}
	stored, _ := f.suggestions.GetByID(context.Background(), "biz-1", s.ID)
	if stored.Status != entities.SuggestionStatusExpired || stored.SelectedTechID != "" {
		t.Fatalf("expected expired suggestion, got %+v", stored)
	}
}

func TestSuggestionUseCase_AutoAssign(t *testing.T) {
	f := newSuggestionFixture(t, nil)
	f.uc.opts.AutoAssignMinScore = 1

	s, err := f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "lawn-1", TargetDate: "2025-03-03", AutoAssign: true, Actor: "system"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if s.Status != entities.SuggestionStatusAutoAssigned || s.SelectedTechID != s.TopRecommendation.TechID {
		t.Fatalf("expected auto-assigned top pick, got %+v", s)
	}

	f.uc.opts.AutoAssignMinScore = 101
	s, err = f.uc.Generate(context.Background(), "biz-1", GenerateInput{JobID: "lawn-1", TargetDate: "2025-03-03", AutoAssign: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if s.Status != entities.SuggestionStatusPending {
		t.Fatalf("score below threshold must stay pending, got %s", s.Status)
	}
}

func TestSuggestionUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISuggestionRepository(ctrl)
	uc := NewSuggestionUseCase(repo, nil, nil, nil, nil, nil, nil, SuggestionOptions{})
	uc.now = func() time.Time { return fixedNow }

	t.Run("from after to", func(t *testing.T) {
		_, err := uc.Stats(context.Background(), "biz-1", fixedNow, fixedNow.Add(-time.Hour))
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("aggregates", func(t *testing.T) {
		repo.EXPECT().ListByBusiness(gomock.Any(), "biz-1", fixedNow.AddDate(0, 0, -30), fixedNow).Return([]entities.DispatchSuggestion{
			{ID: "1", BusinessID: "biz-1", Status: entities.SuggestionStatusAccepted, WasTopPickSelected: true, ResponseLatencyMs: 1000},
			{ID: "2", BusinessID: "biz-1", Status: entities.SuggestionStatusRejected, RejectionReason: "Too Far", ResponseLatencyMs: 3000},
			{ID: "3", BusinessID: "biz-1", Status: entities.SuggestionStatusAutoAssigned, WasTopPickSelected: true},
			{ID: "4", BusinessID: "biz-1", Status: entities.SuggestionStatusExpired},
			{ID: "5", BusinessID: "biz-1", Status: entities.SuggestionStatusPending},
		}, nil)

		st, err := uc.Stats(context.Background(), "biz-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Total != 5 || st.Actioned != 3 || st.TopPickSelected != 2 || st.Expired != 1 || st.Pending != 1 {
			t.Fatalf("unexpected counts: %+v", st)
		}
		if st.AcceptanceRate != 2.0/3.0 {
			t.Fatalf("unexpected acceptance rate %v", st.AcceptanceRate)
		}
		if st.AvgResponseLatencyMs != 2000 {
			t.Fatalf("unexpected latency %v", st.AvgResponseLatencyMs)
		}
		if st.RejectionReasons["too far"] != 1 {
			t.Fatalf("unexpected reasons %v", st.RejectionReasons)
		}
	})
}

func TestSuggestionSweeper_SweepOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISuggestionRepository(ctrl)
	sweeper := NewSuggestionSweeper(repo, 30*time.Minute, 10)
	sweeper.now = func() time.Time { return fixedNow }

	stale := []entities.DispatchSuggestion{
		{ID: "s1", BusinessID: "biz-1", Status: entities.SuggestionStatusPending},
		{ID: "s2", BusinessID: "biz-1", Status: entities.SuggestionStatusPending},
	}
	repo.EXPECT().ListPendingCreatedBefore(gomock.Any(), fixedNow.Add(-30*time.Minute), 10).Return(stale, nil)
	repo.EXPECT().SaveOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.DispatchSuggestion) (entities.DispatchSuggestion, error) {
			if s.Status != entities.SuggestionStatusExpired {
				t.Fatalf("expected expired status, got %s", s.Status)
			}
			if s.ID == "s2" {
				return entities.DispatchSuggestion{}, interfaces.ErrConditionFailed
			}
			return s, nil
		},
	).Times(2)

	n, err := sweeper.SweepOnce(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expired, got %d", n)
	}
}
