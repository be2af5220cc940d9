package models

import "time"

// ActivitySource tells where a daily step count came from.
type ActivitySource string

const (
	SourceManual      ActivitySource = "manual"
	SourceIntegration ActivitySource = "integration"
)

// PhysicalActivity is the step count of one user on one day.
type PhysicalActivity struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Date      Date           `json:"date"`
	Steps     int            `json:"steps"`
	Source    ActivitySource `json:"source"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ExerciseType is a catalogue entry maintained by nutritionists.
type ExerciseType struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	CaloriesPerMinute float64 `json:"calories_per_minute"`
}

// ExerciseEntry is a workout logged by a client.
type ExerciseEntry struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	ExerciseTypeID int64     `json:"exercise_type_id"`
	Date           Date      `json:"date"`
	Duration       int       `json:"duration"`
	Calories       *float64  `json:"calories,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ActivityFilter narrows activity and exercise listings.
type ActivityFilter struct {
	UserID int64
	From   *Date
	To     *Date
}

// HealthIntegration is a connection to an external health app holding the
// OAuth tokens used to pull daily step counts.
type HealthIntegration struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Provider     string     `json:"provider"`
	AccessToken  string     `json:"access_token,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	TokenExpiry  *time.Time `json:"token_expiry,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Redacted returns a copy without token material, safe to return over HTTP.
func (h HealthIntegration) Redacted() HealthIntegration {
	h.AccessToken = ""
	h.RefreshToken = ""
	return h
}

// StepCount is the daily step total reported by a health provider.
type StepCount struct {
	Date  Date `json:"date"`
	Steps int  `json:"steps"`
}

// SyncResult reports one synchronisation run of a health integration.
type SyncResult struct {
	IntegrationID int64     `json:"integration_id"`
	Days          int       `json:"days"`
	Updated       int       `json:"updated"`
	Skipped       int       `json:"skipped"`
	SyncedAt      time.Time `json:"synced_at"`
}
