package handlers

import (
	"net/http"
	"time"

	"dispatch_service/internal/adapter/http/dto/request"
	"dispatch_service/internal/adapter/http/dto/response"
	"dispatch_service/internal/adapter/http/middleware"
	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase"
	"dispatch_service/pkg"

	"github.com/gin-gonic/gin"
)

// defaultHistoryWindow is used when location-history is called without since.
const defaultHistoryWindow = 24 * time.Hour

var errInvalidTimeQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Time query parameters must be RFC3339", http.StatusBadRequest)

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
	now     func() time.Time
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

// Create godoc
// @Summary      Onboard a technician
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateTechnicianRequest  true  "technician"
// @Success      201   {object}  response.TechnicianResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /technicians [post]
func (h *TechnicianHandler) Create(c *gin.Context) {
	var payload request.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	t, err := h.usecase.Create(c.Request.Context(), middleware.BusinessID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTechnician(t))
}

// List godoc
// @Summary      List the business's technicians
// @Tags         technicians
// @Produce      json
// @Success      200  {array}  response.TechnicianResponse
// @Security     Bearer
// @Router       /technicians [get]
func (h *TechnicianHandler) List(c *gin.Context) {
	ts, err := h.usecase.List(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnicians(ts))
}

// Get godoc
// @Summary      Get a technician
// @Tags         technicians
// @Produce      json
// @Param        id   path      string  true  "technician id"
// @Success      200  {object}  response.TechnicianResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /technicians/{id} [get]
func (h *TechnicianHandler) Get(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(t))
}

// Deactivate godoc
// @Summary      Soft-disable a technician
// @Tags         technicians
// @Produce      json
// @Param        id   path      string  true  "technician id"
// @Success      200  {object}  response.TechnicianResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /technicians/{id} [delete]
func (h *TechnicianHandler) Deactivate(c *gin.Context) {
	t, err := h.usecase.Deactivate(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(t))
}

// SetStatus godoc
// @Summary      Move a technician through the dispatch state machine
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        id    path      string                                 true  "technician id"
// @Param        body  body      request.UpdateTechnicianStatusRequest  true  "status"
// @Success      200   {object}  response.TechnicianResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /technicians/{id}/status [put]
func (h *TechnicianHandler) SetStatus(c *gin.Context) {
	var payload request.UpdateTechnicianStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	t, err := h.usecase.SetStatus(c.Request.Context(), middleware.BusinessID(c), c.Param("id"),
		entities.TechnicianStatus(payload.Status), payload.JobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(t))
}

// UpdateLocation godoc
// @Summary      Report a technician's current position
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "technician id"
// @Param        body  body      request.UpdateLocationRequest  true  "position"
// @Success      200   {object}  response.TechnicianResponse
// @Security     Bearer
// @Router       /technicians/{id}/location [put]
func (h *TechnicianHandler) UpdateLocation(c *gin.Context) {
	var payload request.UpdateLocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	t, err := h.usecase.UpdateLocation(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), payload.Point(), payload.Accuracy)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(t))
}

// LocationHistory godoc
// @Summary      Audit trail of reported positions
// @Tags         technicians
// @Produce      json
// @Param        id     path   string  true   "technician id"
// @Param        since  query  string  false  "RFC3339, defaults to 24h ago"
// @Success      200    {array}  response.LocationSampleResponse
// @Security     Bearer
// @Router       /technicians/{id}/location-history [get]
func (h *TechnicianHandler) LocationHistory(c *gin.Context) {
	since, ok := parseTimeQuery(c, "since", h.now().Add(-defaultHistoryWindow))
	if !ok {
		return
	}
	samples, err := h.usecase.LocationHistory(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), since)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLocationSamples(samples))
}

// ListAvailable godoc
// @Summary      Technicians free at a point in time
// @Tags         technicians
// @Produce      json
// @Param        at   query  string  false  "RFC3339, defaults to now"
// @Success      200  {array}  response.TechnicianResponse
// @Security     Bearer
// @Router       /technicians/available [get]
func (h *TechnicianHandler) ListAvailable(c *gin.Context) {
	at, ok := parseTimeQuery(c, "at", h.now())
	if !ok {
		return
	}
	ts, err := h.usecase.ListAvailable(c.Request.Context(), middleware.BusinessID(c), at)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnicians(ts))
}

// AddAvailability godoc
// @Summary      Add time off or extra availability
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "technician id"
// @Param        body  body      request.AvailabilityRequest  true  "override"
// @Success      201   {object}  response.TechnicianResponse
// @Security     Bearer
// @Router       /technicians/{id}/availability [post]
func (h *TechnicianHandler) AddAvailability(c *gin.Context) {
	var payload request.AvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	t, err := h.usecase.AddAvailability(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTechnician(t))
}

// ApproveAvailability godoc
// @Summary      Approve an availability override
// @Tags         technicians
// @Produce      json
// @Param        id               path  string  true  "technician id"
// @Param        availability_id  path  string  true  "override id"
// @Success      200  {object}  response.TechnicianResponse
// @Security     Bearer
// @Router       /technicians/{id}/availability/{availability_id}/approve [post]
func (h *TechnicianHandler) ApproveAvailability(c *gin.Context) {
	t, err := h.usecase.ApproveAvailability(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), c.Param("availability_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnician(t))
}

// parseTimeQuery reads an optional RFC3339 query parameter. On a bad value it
// writes the 400 and returns ok=false.
func parseTimeQuery(c *gin.Context, key string, def time.Time) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(errInvalidTimeQuery.HTTPStatus, errInvalidTimeQuery.WithDetails(key).ToHTTPError())
		return time.Time{}, false
	}
	return t.UTC(), true
}
