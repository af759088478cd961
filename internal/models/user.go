package models

import "time"

// User roles
const (
	RoleSponsor    = "sponsor"
	RoleInfluencer = "influencer"
)

func IsValidRole(role string) bool {
	return role == RoleSponsor || role == RoleInfluencer
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Sponsor struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	CompanyName string  `json:"company_name"`
	Industry    string  `json:"industry"`
	Budget      float64 `json:"budget"`
}

type Influencer struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	ProfileName string  `json:"profile_name"`
	Niche       string  `json:"niche"`
	Reach       float64 `json:"reach"`
}
