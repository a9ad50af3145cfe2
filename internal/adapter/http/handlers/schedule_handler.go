package handlers

import (
	"net/http"

	"dispatch_service/internal/adapter/http/dto/request"
	"dispatch_service/internal/adapter/http/dto/response"
	"dispatch_service/internal/adapter/http/middleware"
	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase"
	"dispatch_service/pkg"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
}

func NewScheduleHandler(uc usecase.IScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

// Assign godoc
// @Summary      Put a job on a technician's day
// @Description  Returns 201 with the entry. An overlap without allow_conflict
// @Description  returns 409 and the conflicting entry ids; nothing is written.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      request.AssignRequest  true  "assignment"
// @Success      201   {object}  response.AssignResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /schedule/entries [post]
func (h *ScheduleHandler) Assign(c *gin.Context) {
	var payload request.AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	result, err := h.usecase.Assign(c.Request.Context(), middleware.BusinessID(c), payload.ToInput(middleware.Actor(c)))
	if err != nil {
		writeError(c, err)
		return
	}
	if result.Entry == nil && result.Conflict != nil {
		writeConflict(c, result.Conflict)
		return
	}
	c.JSON(http.StatusCreated, response.FromAssignResult(result))
}

func writeConflict(c *gin.Context, conflict *usecase.ConflictResult) {
	appErr := pkg.NewDomainErrorSimple("SCHEDULE_CONFLICT", "The slot overlaps existing entries", http.StatusConflict)
	if conflict.Contended {
		appErr = pkg.NewDomainErrorSimple("SCHEDULE_CONTENDED", "The technician day kept changing, retry the request", http.StatusConflict)
	}
	c.JSON(appErr.HTTPStatus, appErr.WithDetails(conflict).ToHTTPError())
}

// GetEntry godoc
// @Summary      Get a schedule entry
// @Tags         schedule
// @Produce      json
// @Param        id   path      string  true  "entry id"
// @Success      200  {object}  response.ScheduleEntryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /schedule/entries/{id} [get]
func (h *ScheduleHandler) GetEntry(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleEntry(e))
}

// ListDay godoc
// @Summary      A technician's entries for one day, in visit order
// @Tags         schedule
// @Produce      json
// @Param        tech_id  path  string  true  "technician id"
// @Param        date     path  string  true  "YYYY-MM-DD"
// @Success      200  {array}  response.ScheduleEntryResponse
// @Security     Bearer
// @Router       /schedule/technicians/{tech_id}/days/{date} [get]
func (h *ScheduleHandler) ListDay(c *gin.Context) {
	es, err := h.usecase.ListDay(c.Request.Context(), middleware.BusinessID(c), c.Param("tech_id"), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleEntries(es))
}

// Reorder godoc
// @Summary      Rewrite the visit order of a technician's day
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        tech_id  path  string                  true  "technician id"
// @Param        date     path  string                  true  "YYYY-MM-DD"
// @Param        body     body  request.ReorderRequest  true  "job ids in the new order"
// @Success      200  {array}   response.ScheduleEntryResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /schedule/technicians/{tech_id}/days/{date}/order [put]
func (h *ScheduleHandler) Reorder(c *gin.Context) {
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	es, err := h.usecase.Reorder(c.Request.Context(), middleware.BusinessID(c), c.Param("tech_id"), c.Param("date"), payload.JobIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleEntries(es))
}

// AdvanceStatus godoc
// @Summary      Start, complete or cancel an entry
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "entry id"
// @Param        body  body      request.AdvanceStatusRequest  true  "target status"
// @Success      200   {object}  response.ScheduleEntryResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /schedule/entries/{id}/status [patch]
func (h *ScheduleHandler) AdvanceStatus(c *gin.Context) {
	var payload request.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	e, err := h.usecase.AdvanceStatus(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), entities.ScheduleEntryStatus(payload.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleEntry(e))
}
