package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hr-management-api/internal/middleware"
	"hr-management-api/internal/resource"
	"hr-management-api/internal/store"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// handleError maps pipeline errors to the fixed HTTP taxonomy. Anything not
// a foreseen validation or persistence failure collapses to a generic 500;
// the detail goes to the log, never to the caller.
func handleError(c *gin.Context, def resource.Definition, err error) {
	var required *resource.RequiredError
	if errors.As(err, &required) {
		respondError(c, http.StatusBadRequest, required.Message)
		return
	}

	var invalid *resource.InvalidFieldError
	if errors.As(err, &invalid) {
		respondError(c, http.StatusBadRequest, invalid.Error())
		return
	}

	switch {
	case errors.Is(err, store.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, store.ErrReferenceNotFound):
		message := "Referenced document not found"
		if def.Reference != nil {
			message = def.Reference.NotFoundMessage()
		}
		respondError(c, http.StatusNotFound, message)
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, def.NotFoundMessage())
	default:
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"resource":   def.Name,
			"method":     c.Request.Method,
			"error":      err.Error(),
		}).Error("Request failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
