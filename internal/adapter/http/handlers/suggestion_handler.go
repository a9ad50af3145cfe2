package handlers

import (
	"net/http"
	"time"

	"dispatch_service/internal/adapter/http/dto/request"
	"dispatch_service/internal/adapter/http/dto/response"
	"dispatch_service/internal/adapter/http/middleware"
	"dispatch_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	usecase usecase.ISuggestionUseCase
}

func NewSuggestionHandler(uc usecase.ISuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{usecase: uc}
}

// Generate godoc
// @Summary      Rank technicians for a job
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Param        body  body      request.GenerateSuggestionRequest  true  "job and target"
// @Success      201   {object}  response.SuggestionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /suggestions [post]
func (h *SuggestionHandler) Generate(c *gin.Context) {
	var payload request.GenerateSuggestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	s, err := h.usecase.Generate(c.Request.Context(), middleware.BusinessID(c), payload.ToInput(middleware.Actor(c)))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSuggestion(s))
}

// Get godoc
// @Summary      Get a suggestion
// @Tags         suggestions
// @Produce      json
// @Param        id   path      string  true  "suggestion id"
// @Success      200  {object}  response.SuggestionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /suggestions/{id} [get]
func (h *SuggestionHandler) Get(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSuggestion(s))
}

// Accept godoc
// @Summary      Dispatch the top recommendation
// @Tags         suggestions
// @Produce      json
// @Param        id   path      string  true  "suggestion id"
// @Success      200  {object}  response.ActResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /suggestions/{id}/accept [post]
func (h *SuggestionHandler) Accept(c *gin.Context) {
	h.act(c, usecase.ActInput{Action: usecase.SuggestionActionAccept})
}

// Reject godoc
// @Summary      Dispatch a different candidate than the top pick
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "suggestion id"
// @Param        body  body      request.RejectSuggestionRequest  true  "selected technician and reason"
// @Success      200   {object}  response.ActResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /suggestions/{id}/reject [post]
func (h *SuggestionHandler) Reject(c *gin.Context) {
	var payload request.RejectSuggestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	h.act(c, usecase.ActInput{
		Action:         usecase.SuggestionActionReject,
		SelectedTechID: payload.SelectedTechID,
		Reason:         payload.Reason,
	})
}

func (h *SuggestionHandler) act(c *gin.Context, in usecase.ActInput) {
	in.Actor = middleware.Actor(c)
	result, err := h.usecase.Act(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromActResult(result))
}

// Stats godoc
// @Summary      Acceptance analytics over a creation window
// @Tags         suggestions
// @Produce      json
// @Param        from  query  string  false  "RFC3339, defaults to 30 days before to"
// @Param        to    query  string  false  "RFC3339, defaults to now"
// @Success      200  {object}  usecase.SuggestionStats
// @Security     Bearer
// @Router       /suggestions/stats [get]
func (h *SuggestionHandler) Stats(c *gin.Context) {
	from, ok := parseTimeQuery(c, "from", time.Time{})
	if !ok {
		return
	}
	to, ok := parseTimeQuery(c, "to", time.Time{})
	if !ok {
		return
	}
	stats, err := h.usecase.Stats(c.Request.Context(), middleware.BusinessID(c), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
