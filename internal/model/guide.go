package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type Guide struct {
	ID           int64
	Topic        string
	Subject      string
	Freshness    string
	MinimumLinks int
	Status       string
	Content      string
	Sources      []string
	ModelUsed    string
	CreatedAt    time.Time
	CompletedAt  time.Time
}

// GuideVerdict holds the verification outcome persisted alongside a
// completed guide. Passed is meaningless while Inconclusive is true.
type GuideVerdict struct {
	GuideID      int64
	Passed       bool
	Inconclusive bool
	Issues       []string
	StyleValid   bool
	StyleIssues  []string
	CreatedAt    time.Time
}

type ProcessingError struct {
	ID           int64
	GuideID      int64
	ErrorMessage string
	ErrorType    string
	AttemptCount int
	CreatedAt    time.Time
}
