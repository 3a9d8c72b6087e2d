package models

import "time"

// User is the identity record owned by the auth provider. The backend never
// mutates it; it only reads it back after signup, login or token checks.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is returned to the caller once and never stored server-side.
// The access token comes back on every authenticated request as a bearer.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Salary      *float64  `json:"salary,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewJob is the insert shape for the jobs table. CreatedBy is always the
// verified identity of the requester, never caller-supplied.
type NewJob struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Salary      *float64 `json:"salary,omitempty"`
	CreatedBy   string   `json:"created_by"`
}

// JobSummary is the subset of job columns embedded into application and
// saved-job rows by the join on read.
type JobSummary struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Salary   *float64 `json:"salary"`
}

type Application struct {
	ID     int64  `json:"id"`
	JobID  int64  `json:"job_id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`

	// Filled by the embed on list reads, absent on the insert echo.
	Job *JobSummary `json:"jobs,omitempty"`
}

type SavedJob struct {
	ID     int64  `json:"id"`
	JobID  int64  `json:"job_id"`
	UserID string `json:"user_id"`

	Job *JobSummary `json:"jobs,omitempty"`
}
