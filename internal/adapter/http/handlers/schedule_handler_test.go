package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"dispatch_service/internal/adapter/http/handlers/mocks"
	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestScheduleHandler_Assign(t *testing.T) {
	const body = `{"tech_id":"t1","job_id":"job-1","date":"2025-03-03","start_time":"10:00","estimated_hours":1}`
	wantInput := usecase.AssignInput{
		TechID: "t1", JobID: "job-1", Date: "2025-03-03", StartTime: "10:00", EstimatedHours: 1, CreatedBy: "dispatcher-1",
	}

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.POST("/v1/schedule/entries", h.Assign)

		w := doJSON(r, http.MethodPost, "/v1/schedule/entries", `{"tech_id":"t1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.POST("/v1/schedule/entries", h.Assign)

		entry := entities.ScheduleEntry{ID: "e1", TechID: "t1", JobID: "job-1", StartTime: "10:00", EndTime: "11:00", Order: 1, Status: entities.ScheduleEntryStatusScheduled}
		uc.EXPECT().Assign(gomock.Any(), testBusiness, wantInput).Return(usecase.AssignResult{Entry: &entry}, nil)

		w := doJSON(r, http.MethodPost, "/v1/schedule/entries", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["entry"]["id"] != "e1" || resp["entry"]["end_time"] != "11:00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("conflict is 409 with ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.POST("/v1/schedule/entries", h.Assign)

		uc.EXPECT().Assign(gomock.Any(), testBusiness, wantInput).Return(usecase.AssignResult{
			Conflict: &usecase.ConflictResult{TechID: "t1", StartTime: "10:00", EndTime: "11:00", ConflictingEntryIDs: []string{"e0"}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/schedule/entries", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Code    string                 `json:"code"`
			Details usecase.ConflictResult `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Code != "SCHEDULE_CONFLICT" || len(resp.Details.ConflictingEntryIDs) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("contended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.POST("/v1/schedule/entries", h.Assign)

		uc.EXPECT().Assign(gomock.Any(), testBusiness, wantInput).Return(usecase.AssignResult{
			Conflict: &usecase.ConflictResult{Contended: true},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/schedule/entries", body)
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if w.Code != http.StatusConflict || resp["code"] != "SCHEDULE_CONTENDED" {
			t.Fatalf("expected 409 SCHEDULE_CONTENDED, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("overridden conflict is created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.POST("/v1/schedule/entries", h.Assign)

		entry := entities.ScheduleEntry{ID: "e2", ConflictOverride: true, ConflictsWith: []string{"e0"}}
		uc.EXPECT().Assign(gomock.Any(), testBusiness, gomock.Any()).Return(usecase.AssignResult{
			Entry:    &entry,
			Conflict: &usecase.ConflictResult{ConflictingEntryIDs: []string{"e0"}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/schedule/entries",
			`{"tech_id":"t1","job_id":"job-1","date":"2025-03-03","start_time":"10:00","allow_conflict":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestScheduleHandler_Reorder(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/schedule/technicians/:tech_id/days/:date/order", h.Reorder)

		w := doJSON(r, http.MethodPut, "/v1/schedule/technicians/t1/days/2025-03-03/order", `{"job_ids":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/schedule/technicians/:tech_id/days/:date/order", h.Reorder)

		uc.EXPECT().Reorder(gomock.Any(), testBusiness, "t1", "2025-03-03", []string{"b", "a"}).Return(nil, usecase.ErrConcurrentUpdate)

		w := doJSON(r, http.MethodPut, "/v1/schedule/technicians/t1/days/2025-03-03/order", `{"job_ids":["b","a"]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("mismatched set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/schedule/technicians/:tech_id/days/:date/order", h.Reorder)

		uc.EXPECT().Reorder(gomock.Any(), testBusiness, "t1", "2025-03-03", []string{"a"}).Return(nil, usecase.ErrInvalidOrder)

		w := doJSON(r, http.MethodPut, "/v1/schedule/technicians/t1/days/2025-03-03/order", `{"job_ids":["a"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestScheduleHandler_ReadsAndStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIScheduleUseCase(ctrl)
	h := NewScheduleHandler(uc)
	r := newTestRouter()
	r.GET("/v1/schedule/entries/:id", h.GetEntry)
	r.PATCH("/v1/schedule/entries/:id/status", h.AdvanceStatus)
	r.GET("/v1/schedule/technicians/:tech_id/days/:date", h.ListDay)

	uc.EXPECT().GetByID(gomock.Any(), testBusiness, "e1").Return(entities.ScheduleEntry{ID: "e1"}, nil)
	uc.EXPECT().AdvanceStatus(gomock.Any(), testBusiness, "e1", entities.ScheduleEntryStatusInProgress).
		Return(entities.ScheduleEntry{ID: "e1", Status: entities.ScheduleEntryStatusInProgress}, nil)
	uc.EXPECT().ListDay(gomock.Any(), testBusiness, "t1", "2025-03-03").
		Return([]entities.ScheduleEntry{{ID: "e1", Order: 1}, {ID: "e2", Order: 2}}, nil)

	if w := doJSON(r, http.MethodGet, "/v1/schedule/entries/e1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, "/v1/schedule/entries/e1/status", `{"status":"in_progress"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doJSON(r, http.MethodGet, "/v1/schedule/technicians/t1/days/2025-03-03", "")
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || len(body) != 2 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
