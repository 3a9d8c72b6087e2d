package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/services"
)

type SavedJobHandler struct {
	Saved    *services.SavedJobService
	Identity services.Identity
}

func NewSavedJobHandler(saved *services.SavedJobService, identity services.Identity) *SavedJobHandler {
	return &SavedJobHandler{
		Saved:    saved,
		Identity: identity,
	}
}

// SaveJob is the POST /saved-jobs endpoint.
func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	var req dtos.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id required"})
		return
	}

	user, ok := authenticate(c, h.Identity)
	if !ok {
		return
	}

	if err := h.Saved.Save(c.Request.Context(), user, req.JobID); err != nil {
		if errors.Is(err, services.ErrJobAlreadySaved) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job saved successfully"})
}

// UnsaveJob removes a bookmark; unsaving a job that was never saved is a
// 200 no-op.
func (h *SavedJobHandler) UnsaveJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid job id"})
		return
	}

	user, ok := authenticate(c, h.Identity)
	if !ok {
		return
	}

	if err := h.Saved.Unsave(c.Request.Context(), user, jobID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job unsaved successfully"})
}

// ListSavedJobs returns the caller's bookmarks with the embedded job
// columns.
func (h *SavedJobHandler) ListSavedJobs(c *gin.Context) {
	user, ok := authenticate(c, h.Identity)
	if !ok {
		return
	}

	rows, err := h.Saved.ListForUser(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
