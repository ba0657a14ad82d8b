package handlers

import (
	"errors"
	"net/http"

	"dao-governance-backend/internal/auth"
	apperrors "dao-governance-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// callerAddress extracts the authenticated caller from the request context
func callerAddress(c *gin.Context) (string, bool) {
	address, ok := auth.GetAddress(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrCallerNotFound.Error()})
		return "", false
	}
	return address, true
}

// handleServiceError maps a service error to an HTTP status
func handleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSystemPaused):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case apperrors.IsState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotAMember):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientStake),
		errors.Is(err, apperrors.ErrAssetMismatch),
		errors.Is(err, apperrors.ErrAmountOverflow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicateVote),
		errors.Is(err, apperrors.ErrStakeTooRecent),
		errors.Is(err, apperrors.ErrInsufficientTreasury),
		errors.Is(err, apperrors.ErrTransferFailed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
