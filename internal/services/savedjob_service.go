package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/joblane/joblane-backend/internal/models"
)

type savedJobRow struct {
	JobID  int64  `json:"job_id"`
	UserID string `json:"user_id"`
}

type SavedJobService struct {
	store Store
}

func NewSavedJobService(store Store) *SavedJobService {
	return &SavedJobService{
		store: store,
	}
}

// Save bookmarks a job at most once per user, same shape as Apply.
func (s *SavedJobService) Save(ctx context.Context, user *models.User, jobID int64) error {
	filters := map[string]string{
		"job_id":  strconv.FormatInt(jobID, 10),
		"user_id": user.ID,
	}

	existing, err := s.store.Select(ctx, "saved_jobs", "*", filters, 0)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ErrJobAlreadySaved
	}

	_, err = s.store.Insert(ctx, "saved_jobs", savedJobRow{
		JobID:  jobID,
		UserID: user.ID,
	})
	if isConflict(err) {
		return ErrJobAlreadySaved
	}
	return err
}

// Unsave removes the bookmark if present. Deleting a job that was never
// saved is a no-op success, which keeps the call idempotent.
func (s *SavedJobService) Unsave(ctx context.Context, user *models.User, jobID int64) error {
	_, err := s.store.Delete(ctx, "saved_jobs", map[string]string{
		"job_id":  strconv.FormatInt(jobID, 10),
		"user_id": user.ID,
	})
	return err
}

// ListForUser returns the caller's saved jobs with the job columns embedded.
func (s *SavedJobService) ListForUser(ctx context.Context, user *models.User) ([]json.RawMessage, error) {
	return s.store.Select(ctx, "saved_jobs", jobEmbed, map[string]string{"user_id": user.ID}, 0)
}
