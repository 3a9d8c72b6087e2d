package services

import "errors"

// Sentinel errors the handlers translate to statuses. The texts are the
// API's public error messages, so they read like responses, not logs.
var (
	ErrAlreadyApplied  = errors.New("Already applied to this job")
	ErrJobAlreadySaved = errors.New("Job already saved")
	ErrJobNotFound     = errors.New("job not found or you don't have permission to delete it")
)
