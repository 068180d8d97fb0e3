package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"file-portal-backend/internal/auth"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// actorFrom reads the authenticated identity placed on the context by the
// auth middleware. The middleware aborts unauthenticated requests, so a
// missing identity here is a wiring bug, reported as 401 all the same.
func actorFrom(c *gin.Context) (service.Actor, bool) {
	claims, ok := auth.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access, please add a valid token"})
		return service.Actor{}, false
	}
	return service.Actor{
		UserID:       claims.UserID,
		Email:        claims.Email,
		Role:         claims.Role,
		Organization: claims.Organization,
	}, true
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrNotLoggedIn),
		errors.Is(err, apperrors.ErrEmptyFile),
		errors.Is(err, apperrors.ErrFolderMissing),
		errors.Is(err, apperrors.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
