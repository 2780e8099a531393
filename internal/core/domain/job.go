package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a job card.
type JobStatus string

const (
	StatusInProcess JobStatus = "In Process"
	StatusDone      JobStatus = "Done"
)

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidStatus = errors.New("invalid job status")

// ValidStatus reports whether s is a known job status.
func ValidStatus(s JobStatus) bool {
	return s == StatusInProcess || s == StatusDone
}

// Job is the core aggregate: one tracked unit of shop-floor work.
type Job struct {
	ID         string    `json:"id"`
	JobID      string    `json:"jobId"`
	Customer   string    `json:"customer"`
	Quantity   int       `json:"quantity"`
	Defect     string    `json:"defect,omitempty"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time,omitempty"`
	Status     JobStatus `json:"status"`
	Supervisor string    `json:"supervisor,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
