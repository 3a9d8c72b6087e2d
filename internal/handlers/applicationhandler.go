package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Identity     services.Identity
}

func NewApplicationHandler(applications *services.ApplicationService, identity services.Identity) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: applications,
		Identity:     identity,
	}
}

// Apply is the POST /applications endpoint.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id required"})
		return
	}

	user, ok := authenticate(c, h.Identity)
	if !ok {
		return
	}

	rows, err := h.Applications.Apply(c.Request.Context(), user, req.JobID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyApplied) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
		"data":    rows,
	})
}

// ListApplications returns the caller's own applications, each with the
// embedded job columns.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	user, ok := authenticate(c, h.Identity)
	if !ok {
		return
	}

	rows, err := h.Applications.ListForUser(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
