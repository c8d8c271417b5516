package domain

import "time"

// Status is the closed enumeration of states a job application moves
// through. Every accepted change of this field is recorded in the
// status history ledger.
type Status string

const (
	StatusApplied   Status = "APPLIED"
	StatusInterview Status = "INTERVIEW"
	StatusOffer     Status = "OFFER"
	StatusRejected  Status = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Priority orders applications by how much attention they need.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Application is a tracked job application. Ownership is immutable after
// creation: an application belongs to exactly one user and every read or
// write of it is scoped by that user's id at the query boundary.
type Application struct {
	ID           int64
	Company      string
	Role         string
	Status       Status
	Priority     Priority
	AppliedDate  *time.Time // date only
	FollowUpDate *time.Time // date only
	Notes        string
	JobURL       string
	Salary       string
	UpdatedAt    *time.Time
	UserID       int64
}
