package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dispatch_service/internal/adapter/persistence/memory"
	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"
	mock_interfaces "dispatch_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

func newTechnicianUseCase(repo interfaces.ITechnicianRepository, history interfaces.ILocationHistoryRepository, schedule interfaces.IScheduleEntryRepository, events interfaces.IEventPublisher) *TechnicianUseCase {
	uc := NewTechnicianUseCase(repo, history, schedule, events, TechnicianOptions{})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestTechnicianUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := newTechnicianUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "biz-1", CreateTechnicianInput{Name: "  "})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown weekday", func(t *testing.T) {
		uc := newTechnicianUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "biz-1", CreateTechnicianInput{
			Name:           "Ana",
			WeeklySchedule: entities.WeeklySchedule{"funday": {Enabled: true, Start: "08:00", End: "17:00"}},
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Technician{})).DoAndReturn(
			func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
				if tech.ID == "" || tech.BusinessID != "biz-1" || tech.Name != "Ana" {
					t.Fatalf("unexpected technician: %+v", tech)
				}
				if tech.Status != entities.TechnicianStatusOffDuty || !tech.IsActive {
					t.Fatalf("expected active off_duty technician, got %+v", tech)
				}
				if len(tech.Certifications) != 1 || tech.Certifications[0] != "epa_608" {
					t.Fatalf("expected normalized certifications, got %v", tech.Certifications)
				}
				if _, ok := tech.WeeklySchedule["monday"]; !ok {
					t.Fatalf("expected lower-cased weekday key")
				}
				return tech, nil
			},
		)

		_, err := uc.Create(context.Background(), " biz-1 ", CreateTechnicianInput{
			Name:           " Ana ",
			Certifications: []string{" EPA_608", "epa_608"},
			WeeklySchedule: entities.WeeklySchedule{"Monday": {Enabled: true, Start: "08:00", End: "17:00"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTechnicianUseCase_GetByID(t *testing.T) {
	t.Run("other business is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "biz-2", "t1").Return(entities.Technician{ID: "t1", BusinessID: "biz-1"}, nil)

		_, err := uc.GetByID(context.Background(), "biz-2", "t1")
		if !errors.Is(err, ErrTechnicianNotFound) {
			t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(entities.Technician{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "biz-1", "t1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTechnicianUseCase_SetStatus(t *testing.T) {
	active := entities.Technician{ID: "t1", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusAvailable}

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(active, nil)

		_, err := uc.SetStatus(context.Background(), "biz-1", "t1", entities.TechnicianStatusOnSite, "job-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, events)

		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(active, nil)

		got, err := uc.SetStatus(context.Background(), "biz-1", "t1", entities.TechnicianStatusAvailable, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.TechnicianStatusAvailable {
			t.Fatalf("unexpected status %s", got.Status)
		}
	})

	t.Run("inactive technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, nil)

		inactive := active
		inactive.IsActive = false
		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(inactive, nil)

		_, err := uc.SetStatus(context.Background(), "biz-1", "t1", entities.TechnicianStatusAssigned, "job-1")
		if !errors.Is(err, ErrInactiveTechnician) {
			t.Fatalf("expected ErrInactiveTechnician, got %v", err)
		}
	})

	t.Run("assigned publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, events)

		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(active, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Technician{})).DoAndReturn(
			func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
				if tech.Status != entities.TechnicianStatusAssigned || tech.CurrentJobID != "job-1" {
					t.Fatalf("unexpected technician: %+v", tech)
				}
				return tech, nil
			},
		)
		events.EXPECT().Publish(gomock.Any()).Do(func(e entities.DispatchEvent) {
			if e.Type != entities.EventTechnicianStatus || e.BusinessID != "biz-1" || e.TechID != "t1" {
				t.Fatalf("unexpected event: %+v", e)
			}
		})

		if _, err := uc.SetStatus(context.Background(), "biz-1", "t1", entities.TechnicianStatusAssigned, " job-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTechnicianUseCase_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
	uc := newTechnicianUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(entities.Technician{
		ID: "t1", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusAssigned, CurrentJobID: "job-1",
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
			return tech, nil
		},
	)

	got, err := uc.Deactivate(context.Background(), "biz-1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsActive || got.Status != entities.TechnicianStatusOffDuty || got.CurrentJobID != "" {
		t.Fatalf("unexpected technician: %+v", got)
	}
}

func TestTechnicianUseCase_UpdateLocation(t *testing.T) {
	tech := entities.Technician{ID: "t1", BusinessID: "biz-1", IsActive: true}
	point := entities.GeoPoint{Latitude: 40.7, Longitude: -74}

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := newTechnicianUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateLocation(context.Background(), "biz-1", "t1", entities.GeoPoint{Latitude: 91}, nil)
		if !errors.Is(err, ErrInvalidLocation) {
			t.Fatalf("expected ErrInvalidLocation, got %v", err)
		}
	})

	t.Run("history failure does not fail update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		history := mock_interfaces.NewMockILocationHistoryRepository(ctrl)
		uc := newTechnicianUseCase(repo, history, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(tech, nil)
		repo.EXPECT().UpdateLocation(gomock.Any(), "biz-1", "t1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, loc entities.TechnicianLocation) (entities.Technician, error) {
				if !loc.Timestamp.Equal(fixedNow) || loc.Latitude != 40.7 {
					t.Fatalf("unexpected location: %+v", loc)
				}
				updated := tech
				updated.Location = &loc
				return updated, nil
			},
		)
		history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.LocationSample) error {
				if !s.ExpiresAt.Equal(fixedNow.Add(7 * 24 * time.Hour)) {
					t.Fatalf("unexpected expiry %v", s.ExpiresAt)
				}
				return errors.New("throttled")
			},
		)

		got, err := uc.UpdateLocation(context.Background(), "biz-1", "t1", point, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Location == nil {
			t.Fatalf("expected location")
		}
	})

	t.Run("stale write keeps newer location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		history := mock_interfaces.NewMockILocationHistoryRepository(ctrl)
		uc := newTechnicianUseCase(repo, history, nil, nil)

		newer := tech
		newer.Location = &entities.TechnicianLocation{GeoPoint: entities.GeoPoint{Latitude: 1}, Timestamp: fixedNow.Add(time.Second)}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(tech, nil),
			repo.EXPECT().UpdateLocation(gomock.Any(), "biz-1", "t1", gomock.Any()).Return(entities.Technician{}, interfaces.ErrConditionFailed),
			repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(newer, nil),
		)
		history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.UpdateLocation(context.Background(), "biz-1", "t1", point, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Location.Latitude != 1 {
			t.Fatalf("expected newer location to win, got %+v", got.Location)
		}
	})
}

func TestTechnicianUseCase_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
	schedule := mock_interfaces.NewMockIScheduleEntryRepository(ctrl)
	uc := newTechnicianUseCase(repo, nil, schedule, nil)

	repo.EXPECT().ListByBusiness(gomock.Any(), "biz-1").Return([]entities.Technician{
		{ID: "a", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusAvailable},
		{ID: "b", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusAssigned, CurrentJobID: "job-b"},
		{ID: "c", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusEnroute, CurrentJobID: "job-c"},
		{ID: "d", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusOnSite, CurrentJobID: "job-d"},
		{ID: "e", BusinessID: "biz-1", IsActive: false, Status: entities.TechnicianStatusAvailable},
	}, nil)
	schedule.EXPECT().ListDay(gomock.Any(), "biz-1", "b", "2025-03-03").Return(interfaces.DayEntries{Entries: []entities.ScheduleEntry{
		{ID: "eb", JobID: "job-b", StartTime: "09:00", EndTime: "10:30", Status: entities.ScheduleEntryStatusScheduled},
	}}, nil)
	schedule.EXPECT().ListDay(gomock.Any(), "biz-1", "c", "2025-03-03").Return(interfaces.DayEntries{Entries: []entities.ScheduleEntry{
		{ID: "ec", JobID: "job-c", StartTime: "10:00", EndTime: "11:00", Status: entities.ScheduleEntryStatusScheduled},
	}}, nil)

	at := time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC)
	got, err := uc.ListAvailable(context.Background(), "biz-1", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("unexpected technicians: %+v", got)
	}
}

func TestTechnicianUseCase_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
	uc := newTechnicianUseCase(repo, nil, nil, nil)

	tech := entities.Technician{ID: "t1", BusinessID: "biz-1", IsActive: true}
	repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(tech, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tech entities.Technician) (entities.Technician, error) { return tech, nil },
	)

	added, err := uc.AddAvailability(context.Background(), "biz-1", "t1", AvailabilityInput{
		Date: "2025-03-04", StartTime: "12:00", EndTime: "13:00", Reason: "dentist",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added.Availability) != 1 || added.Availability[0].Approved {
		t.Fatalf("expected one unapproved entry, got %+v", added.Availability)
	}

	repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(added, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tech entities.Technician) (entities.Technician, error) { return tech, nil },
	)
	approved, err := uc.ApproveAvailability(context.Background(), "biz-1", "t1", added.Availability[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approved.Availability[0].Approved {
		t.Fatalf("expected approved entry")
	}

	repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(added, nil)
	if _, err := uc.ApproveAvailability(context.Background(), "biz-1", "t1", "missing"); !errors.Is(err, ErrAvailabilityNotFound) {
		t.Fatalf("expected ErrAvailabilityNotFound, got %v", err)
	}
}

func TestTechnicianUseCase_RecordCompletion(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		uc := newTechnicianUseCase(nil, nil, nil, nil)
		r := 6.0
		_, err := uc.RecordCompletion(context.Background(), "biz-1", "t1", CompletionInput{Rating: &r})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("updates stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := newTechnicianUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(entities.Technician{ID: "t1", BusinessID: "biz-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tech entities.Technician) (entities.Technician, error) { return tech, nil },
		)

		r := 4.0
		got, err := uc.RecordCompletion(context.Background(), "biz-1", "t1", CompletionInput{Rating: &r, OnTime: true, JobMinutes: 90})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Performance.JobsCompleted != 1 || got.Performance.AvgRating != 4 || got.Performance.OnTimePercentage != 100 {
			t.Fatalf("unexpected stats: %+v", got.Performance)
		}
	})
}

func TestTechnicianUseCase_SetStatusRereadsAfterVersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
	uc := newTechnicianUseCase(repo, nil, nil, nil)

	stale := entities.Technician{ID: "t1", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusAvailable, Version: 4}
	fresh := stale
	fresh.Version = 5
	fresh.Performance.JobsCompleted = 1

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(stale, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Technician{}, interfaces.ErrConditionFailed),
		repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(fresh, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
				if tech.Version != 5 || tech.Performance.JobsCompleted != 1 || tech.Status != entities.TechnicianStatusOffDuty {
					t.Fatalf("expected change reapplied on the fresh read, got %+v", tech)
				}
				tech.Version++
				return tech, nil
			},
		),
	)

	got, err := uc.SetStatus(context.Background(), "biz-1", "t1", entities.TechnicianStatusOffDuty, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Version != 6 {
		t.Fatalf("expected version 6, got %d", got.Version)
	}
}

func TestTechnicianUseCase_WriteRetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
	uc := newTechnicianUseCase(repo, nil, nil, nil)

	tech := entities.Technician{ID: "t1", BusinessID: "biz-1", IsActive: true}
	repo.EXPECT().GetByID(gomock.Any(), "biz-1", "t1").Return(tech, nil).Times(technicianWriteRetries + 1)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Technician{}, interfaces.ErrConditionFailed).Times(technicianWriteRetries + 1)

	_, err := uc.RecordCompletion(context.Background(), "biz-1", "t1", CompletionInput{OnTime: true})
	if !errors.Is(err, ErrConcurrentUpdate) {
		t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
	}
}

// readGate holds the first n technician reads until all n have happened, so
// that concurrent writers all start from the same snapshot.
type readGate struct {
	*memory.TechnicianRepository
	reads atomic.Int32
	n     int32
	wg    sync.WaitGroup
}

func newReadGate(repo *memory.TechnicianRepository, n int) *readGate {
	g := &readGate{TechnicianRepository: repo, n: int32(n)}
	g.wg.Add(n)
	return g
}

func (g *readGate) GetByID(ctx context.Context, businessID, id string) (entities.Technician, error) {
	t, err := g.TechnicianRepository.GetByID(ctx, businessID, id)
	if g.reads.Add(1) <= g.n {
		g.wg.Done()
		g.wg.Wait()
	}
	return t, err
}

func TestTechnicianUseCase_ConcurrentWritesKeepBothChanges(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTechnicianRepository()
	if _, err := store.Create(ctx, entities.Technician{
		ID: "t1", BusinessID: "biz-1", IsActive: true, Status: entities.TechnicianStatusAvailable,
	}); err != nil {
		t.Fatalf("seed technician: %v", err)
	}
	uc := newTechnicianUseCase(newReadGate(store, 2), nil, nil, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = uc.SetStatus(ctx, "biz-1", "t1", entities.TechnicianStatusOffDuty, "")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = uc.RecordCompletion(ctx, "biz-1", "t1", CompletionInput{OnTime: true, JobMinutes: 60})
	}()
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, _ := store.GetByID(ctx, "biz-1", "t1")
	if got.Status != entities.TechnicianStatusOffDuty || got.Performance.JobsCompleted != 1 {
		t.Fatalf("expected off_duty with one completion, got status=%s jobs_completed=%d", got.Status, got.Performance.JobsCompleted)
	}
	if got.Version != 2 {
		t.Fatalf("expected two versioned writes, got version %d", got.Version)
	}
}
