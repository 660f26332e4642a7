package handler

import (
	"errors"
	"log"
	"net/http"

	"ugel-backend/pkg/apperror"
	"ugel-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handleServiceError translates a service error into the matching HTTP
// response. Anything uncategorized is logged and hidden behind a generic 500.
func handleServiceError(c *gin.Context, err error) {
	if ve, ok := apperror.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, response.ValidationError(ve))
		return
	}
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(err.Error()))
	case errors.Is(err, apperror.ErrConflict):
		c.JSON(http.StatusConflict, response.Error(err.Error()))
	default:
		log.Printf("error interno: %v", err)
		c.JSON(http.StatusInternalServerError, response.Error("Error interno del servidor"))
	}
}

// currentUserID reads the authenticated user's ID placed in the context by
// the auth middleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
