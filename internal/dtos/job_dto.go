package dtos

// JobCreationRequest is decoded with binding so a missing, empty or
// wrong-typed required field fails closed before anything else runs.
type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Salary *float64 `json:"salary"`
}

// ApplicationRequest covers POST /applications. A zero job_id counts as
// missing, same as the empty-string rule for text fields.
type ApplicationRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}

// SaveJobRequest covers POST /saved-jobs.
type SaveJobRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}
