package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/joblane/joblane-backend/internal/models"
)

// jobEmbed is the select list that inlines the referenced job's display
// columns into each row.
const jobEmbed = "*,jobs(id,title,company,location,salary)"

type applicationRow struct {
	JobID  int64  `json:"job_id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

type ApplicationService struct {
	store Store
}

func NewApplicationService(store Store) *ApplicationService {
	return &ApplicationService{
		store: store,
	}
}

// Apply creates at most one application per (job, user). The pre-check keeps
// the friendly duplicate message; the 409 mapping catches the race the
// pre-check can't, via the store's uniqueness constraint.
func (s *ApplicationService) Apply(ctx context.Context, user *models.User, jobID int64) ([]json.RawMessage, error) {
	filters := map[string]string{
		"job_id":  strconv.FormatInt(jobID, 10),
		"user_id": user.ID,
	}

	existing, err := s.store.Select(ctx, "applications", "*", filters, 0)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyApplied
	}

	rows, err := s.store.Insert(ctx, "applications", applicationRow{
		JobID:  jobID,
		UserID: user.ID,
		Status: "pending",
	})
	if isConflict(err) {
		return nil, ErrAlreadyApplied
	}
	return rows, err
}

// ListForUser returns the caller's applications with the job columns
// embedded.
func (s *ApplicationService) ListForUser(ctx context.Context, user *models.User) ([]json.RawMessage, error) {
	return s.store.Select(ctx, "applications", jobEmbed, map[string]string{"user_id": user.ID}, 0)
}
