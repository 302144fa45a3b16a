package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/core/services"
	"github.com/openbooks/bookkeeping_app/internal/middleware"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError translates service errors into their HTTP representation.
// Validation problems keep their detail; internal failures are masked.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, services.ErrAccountHasBalance):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPosting):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// authenticatedUserID pulls the user ID set by the auth middleware, writing a
// 401 response when it is missing.
func authenticatedUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// requirePostingAuthority resolves the authenticated user and checks they may
// administer the books (manager role). Writes the error response on failure.
func requirePostingAuthority(c *gin.Context, userSvc portssvc.UserSvcFacade) (string, bool) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return "", false
	}
	actor, err := userSvc.ResolveActor(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return "", false
	}
	if !actor.Role.HasPostingAuthority() {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Manager role required"})
		return "", false
	}
	return userID, true
}
