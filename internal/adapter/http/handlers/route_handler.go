package handlers

import (
	"net/http"
	"strconv"

	"dispatch_service/internal/adapter/http/middleware"
	"dispatch_service/internal/usecase"
	"dispatch_service/pkg"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	usecase usecase.IRouteUseCase
}

func NewRouteHandler(uc usecase.IRouteUseCase) *RouteHandler {
	return &RouteHandler{usecase: uc}
}

// Optimize godoc
// @Summary      Compute the shortest visit order for a technician's day
// @Description  apply=true persists the new order when it differs.
// @Tags         routes
// @Produce      json
// @Param        tech_id  path   string  true   "technician id"
// @Param        date     path   string  true   "YYYY-MM-DD"
// @Param        apply    query  bool    false  "persist the optimized order"
// @Success      200  {object}  entities.RoutePlan
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /routes/technicians/{tech_id}/days/{date}/optimize [post]
func (h *RouteHandler) Optimize(c *gin.Context) {
	apply := false
	if raw := c.Query("apply"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "apply must be a boolean", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		apply = v
	}
	plan, err := h.usecase.Optimize(c.Request.Context(), middleware.BusinessID(c), c.Param("tech_id"), c.Param("date"), apply)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
