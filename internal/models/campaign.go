package models

import "time"

// Campaign visibility
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Campaign struct {
	ID          int64     `json:"id"`
	SponsorID   int64     `json:"sponsor_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      float64   `json:"budget"`
	Visibility  string    `json:"visibility"`
	Goals       *string   `json:"goals,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
