package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"dispatch_service/internal/usecase"
	"dispatch_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// notFoundCodes gives the specific not-found sentinels a stable code.
var notFoundCodes = []struct {
	err  error
	code string
}{
	{usecase.ErrSuggestionAlreadyActioned, "SUGGESTION_NOT_PENDING"},
	{usecase.ErrTechnicianNotFound, "TECHNICIAN_NOT_FOUND"},
	{usecase.ErrEntryNotFound, "ENTRY_NOT_FOUND"},
	{usecase.ErrSuggestionNotFound, "SUGGESTION_NOT_FOUND"},
	{usecase.ErrJobNotFound, "JOB_NOT_FOUND"},
	{usecase.ErrAvailabilityNotFound, "AVAILABILITY_NOT_FOUND"},
}

// mapError translates use-case errors into transport errors. Validation and
// not-found messages come from our own sentinels and are safe to return.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		for _, nf := range notFoundCodes {
			if errors.Is(err, nf.err) {
				return pkg.NewDomainError(nf.code, err.Error(), err, http.StatusNotFound)
			}
		}
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainError("CONCURRENT_UPDATE", "The schedule changed concurrently, retry the request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrExternalTimeout):
		return pkg.NewDomainError("EXTERNAL_TIMEOUT", "An external dependency timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
		slog.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context, err error) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.WithDetails(err.Error()).ToHTTPError())
}
