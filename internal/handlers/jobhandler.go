package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/services"
)

type JobHandler struct {
	Jobs     *services.JobService
	Identity services.Identity
}

func NewJobHandler(jobs *services.JobService, identity services.Identity) *JobHandler {
	return &JobHandler{
		Jobs:     jobs,
		Identity: identity,
	}
}

// ListJobs is public; rows pass through exactly as the store returned them.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob validates the body before looking at the token, so a request
// missing job fields gets a 400 whether or not it could authenticate.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing job fields"})
		return
	}

	user, ok := authenticate(c, h.Identity)
	if !ok {
		return
	}

	rows, err := h.Jobs.Create(c.Request.Context(), user, &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rows)
}

// DeleteJob deletes a job the requester owns. Not-exists and not-owner are
// indistinguishable on purpose: both come back as the same 404.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid job id"})
		return
	}

	user, ok := authenticate(c, h.Identity)
	if !ok {
		return
	}

	if err := h.Jobs.Delete(c.Request.Context(), user, jobID); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
