package server

import (
	"net/http"

	"github.com/avikm/job-board/internal/logger"
	"github.com/avikm/job-board/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// All responses share the {success, message?, ...} envelope of the public API.

func ok(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// failFromError maps service errors onto the envelope. Storage errors become a
// generic 500; the underlying message is logged, never echoed to the client.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrJobNotAvailable):
		fail(c, http.StatusNotFound, "Job not available")
	case errors.Is(err, services.ErrDuplicateContact):
		fail(c, http.StatusBadRequest, "Phone or email already registered")
	case errors.Is(err, services.ErrDuplicateApplicant):
		fail(c, http.StatusBadRequest, "You have already applied to this job with this phone or email")
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("request failed: %v", err)
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
