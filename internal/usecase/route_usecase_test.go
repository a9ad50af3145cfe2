package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/domain/geo"
	"dispatch_service/internal/usecase/interfaces"
	mock_interfaces "dispatch_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// latitudeMatrix charges 100 minutes per degree of latitude.
func latitudeMatrix(_ context.Context, req interfaces.TravelMatrixRequest) (interfaces.TravelMatrix, error) {
	m := make(interfaces.TravelMatrix, len(req.Origins))
	for i, o := range req.Origins {
		m[i] = make([]interfaces.TravelLeg, len(req.Destinations))
		for j, d := range req.Destinations {
			minutes := math.Abs(o.Latitude-d.Latitude) * 100
			m[i][j] = interfaces.TravelLeg{Minutes: minutes, MinutesWithoutTraffic: minutes, Km: minutes, OK: true}
		}
	}
	return m, nil
}

func newRouteFixture(t *testing.T, vertical entities.Vertical, lats ...float64) (scheduleFixture, []string) {
	t.Helper()
	f := newScheduleFixture(t)
	var ids []string
	for i, lat := range lats {
		jobID := "route-job-" + string(rune('a'+i))
		f.jobs.Put(entities.JobDetails{
			ID:         jobID,
			BusinessID: "biz-1",
			Vertical:   vertical,
			Location:   &entities.GeoPoint{Latitude: lat},
		})
		start := entities.ClockTime(8*60 + i*120).String()
		res := f.assign(t, jobID, start, 1)
		ids = append(ids, res.Entry.ID)
	}
	return f, ids
}

func newRouteUseCase(f scheduleFixture, routing interfaces.IRoutingProvider) *RouteUseCase {
	uc := NewRouteUseCase(f.uc, f.techs, f.jobs, routing, RouteOptions{Estimator: geo.Estimator{AverageSpeedKmh: 40, RoadFactor: 1.3}})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestRouteUseCase_OptimizeReorders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	routing := mock_interfaces.NewMockIRoutingProvider(ctrl)
	f, ids := newRouteFixture(t, entities.VerticalHVAC, 0, 0.3, 0.1)
	uc := newRouteUseCase(f, routing)

	routing.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).DoAndReturn(latitudeMatrix)

	plan, err := uc.Optimize(context.Background(), "biz-1", "t1", "2025-03-03", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Degraded || plan.StartsFromLocation {
		t.Fatalf("unexpected flags: %+v", plan)
	}
	if plan.OriginalTotalMinutes != 50 || plan.OptimizedTotalMinutes != 30 || plan.TimeSavedMinutes != 20 {
		t.Fatalf("unexpected totals: %+v", plan)
	}
	if !plan.Reordered() || !plan.Applied {
		t.Fatalf("expected applied reorder, got %+v", plan)
	}

	day, err := f.uc.ListDay(context.Background(), "biz-1", "t1", "2025-03-03")
	if err != nil {
		t.Fatalf("list day: %v", err)
	}
	for i, s := range plan.Stops {
		if day[i].ID != s.EntryID || day[i].Order != s.Order {
			t.Fatalf("persisted order %d = %s/%d, plan has %s/%d", i, day[i].ID, day[i].Order, s.EntryID, s.Order)
		}
	}
	if len(ids) != len(plan.Stops) {
		t.Fatalf("expected %d stops, got %d", len(ids), len(plan.Stops))
	}
}

func TestRouteUseCase_OptimizeDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	routing := mock_interfaces.NewMockIRoutingProvider(ctrl)
	f, ids := newRouteFixture(t, entities.VerticalHVAC, 0, 0.3, 0.1)
	uc := newRouteUseCase(f, routing)

	routing.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

	plan, err := uc.Optimize(context.Background(), "biz-1", "t1", "2025-03-03", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Degraded || plan.Reordered() || plan.Applied {
		t.Fatalf("expected degraded input order, got %+v", plan)
	}
	for i, s := range plan.Stops {
		if s.EntryID != ids[i] || !s.LegEstimated {
			t.Fatalf("stop %d changed or not estimated: %+v", i, s)
		}
	}
	if plan.TimeSavedMinutes != 0 {
		t.Fatalf("expected no savings, got %v", plan.TimeSavedMinutes)
	}
}

func TestRouteUseCase_OptimizeVerticalOptOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	routing := mock_interfaces.NewMockIRoutingProvider(ctrl)
	f, ids := newRouteFixture(t, entities.VerticalCleaning, 0, 0.3, 0.1)
	uc := newRouteUseCase(f, routing)

	plan, err := uc.Optimize(context.Background(), "biz-1", "t1", "2025-03-03", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Reordered() || plan.Degraded {
		t.Fatalf("expected input order, got %+v", plan)
	}
	if plan.Stops[0].EntryID != ids[0] {
		t.Fatalf("unexpected first stop %+v", plan.Stops[0])
	}
}

func TestRouteUseCase_InProgressStaysFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	routing := mock_interfaces.NewMockIRoutingProvider(ctrl)
	f, ids := newRouteFixture(t, entities.VerticalHVAC, 0, 0.5, 0.1, 0.4)
	uc := newRouteUseCase(f, routing)

	if _, err := f.uc.AdvanceStatus(context.Background(), "biz-1", ids[0], entities.ScheduleEntryStatusInProgress); err != nil {
		t.Fatalf("start: %v", err)
	}
	routing.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).DoAndReturn(latitudeMatrix)

	plan, err := uc.Optimize(context.Background(), "biz-1", "t1", "2025-03-03", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range plan.Stops {
		if s.EntryID == ids[0] {
			t.Fatalf("in-progress entry must not be routed")
		}
		if s.Order < 2 {
			t.Fatalf("routed stops must follow the in-progress entry, got order %d", s.Order)
		}
	}
	if plan.OptimizedTotalMinutes > plan.OriginalTotalMinutes {
		t.Fatalf("optimized route is longer: %+v", plan)
	}

	day, _ := f.uc.ListDay(context.Background(), "biz-1", "t1", "2025-03-03")
	if day[0].ID != ids[0] || day[0].Order != 1 {
		t.Fatalf("in-progress entry moved: %+v", day[0])
	}
}

func TestRouteUseCase_UnknownTechnician(t *testing.T) {
	f := newScheduleFixture(t)
	uc := newRouteUseCase(f, nil)

	_, err := uc.Optimize(context.Background(), "biz-1", "ghost", "2025-03-03", false)
	if !errors.Is(err, ErrTechnicianNotFound) {
		t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
	}
}
