package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a test session
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusAbandoned SessionStatus = "abandoned"
)

// User represents a respondent
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Gender    string    `json:"gender" db:"gender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TestSession represents one pass of a user through one instrument
type TestSession struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	UserID          uuid.UUID     `json:"user_id" db:"user_id"`
	Instrument      string        `json:"instrument" db:"instrument"`
	Status          SessionStatus `json:"status" db:"status"`
	CurrentQuestion int           `json:"current_question" db:"current_question"`
	StartedAt       time.Time     `json:"started_at" db:"started_at"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
}

// TestResult stores one scored attempt: the derived scores as JSON plus the
// raw responses so the attempt can be re-scored if scoring rules change.
type TestResult struct {
	ID            uuid.UUID `json:"id" db:"id"`
	SessionID     uuid.UUID `json:"session_id" db:"session_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Instrument    string    `json:"instrument" db:"instrument"`
	ScoresJSON    string    `json:"scores_json" db:"scores_json"`
	ResponsesJSON string    `json:"responses_json" db:"responses_json"`
	QualityJSON   string    `json:"quality_json" db:"quality_json"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// UserResultStats summarizes a user's progress across instruments
type UserResultStats struct {
	CompletedInstruments int        `json:"completed_instruments"`
	TotalInstruments     int        `json:"total_instruments"`
	FirstCompletedAt     *time.Time `json:"first_completed_at,omitempty"`
	LastCompletedAt      *time.Time `json:"last_completed_at,omitempty"`
}
