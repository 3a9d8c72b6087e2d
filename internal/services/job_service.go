package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/models"
)

type JobService struct {
	store Store
}

func NewJobService(store Store) *JobService {
	return &JobService{
		store: store,
	}
}

// List is public: every job row, passed through as-is.
func (s *JobService) List(ctx context.Context) ([]json.RawMessage, error) {
	return s.store.Select(ctx, "jobs", "*", nil, 0)
}

// Create inserts the job with created_by pinned to the verified requester.
func (s *JobService) Create(ctx context.Context, user *models.User, req *dtos.JobCreationRequest) ([]json.RawMessage, error) {
	row := models.NewJob{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Salary:      req.Salary,
		CreatedBy:   user.ID,
	}
	return s.store.Insert(ctx, "jobs", row)
}

// Delete issues one delete with a compound (id, created_by) predicate. Zero
// rows back means the job doesn't exist or belongs to someone else; callers
// get the same answer either way.
func (s *JobService) Delete(ctx context.Context, user *models.User, jobID int64) error {
	rows, err := s.store.Delete(ctx, "jobs", map[string]string{
		"id":         strconv.FormatInt(jobID, 10),
		"created_by": user.ID,
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrJobNotFound
	}
	return nil
}
