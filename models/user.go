package models

import (
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleCustomer  = "customer"

	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"

	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type User struct {
	ID           UserID    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`   // admin, organizer, customer
	Status       string    `json:"status"` // active, blocked
	CreatedAt    time.Time `json:"created_at"`
}

// OrganizerProfile extends a User with business details. It shares the ID
// of its User row; the two are seeded together and never reconciled beyond
// that shared key.
type OrganizerProfile struct {
	ID                 UserID     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	BusinessName       string     `json:"business_name"`
	VerificationStatus string     `json:"verification_status"` // pending, verified, rejected
	Documents          []Document `json:"documents"`
	CommissionRate     float64    `json:"commission_rate"` // 0..1 fraction
	CreatedAt          time.Time  `json:"created_at"`
}

type Document struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}
