package models

import (
	"time"
)

const (
	ActivityUserRegistered = "user_registered"
	ActivityEventCreated   = "event_created"
	ActivityOrderPlaced    = "order_placed"
)

// Activity is one entry of the merged dashboard feed.
type Activity struct {
	Type        string    `json:"type"` // user_registered, event_created, order_placed
	RefID       string    `json:"ref_id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type DashboardMetrics struct {
	TotalUsers         int     `json:"total_users"`
	ActiveUsers        int     `json:"active_users"`
	TotalOrganizers    int     `json:"total_organizers"`
	VerifiedOrganizers int     `json:"verified_organizers"`
	TotalEvents        int     `json:"total_events"`
	ActiveEvents       int     `json:"active_events"`
	TotalRevenue       float64 `json:"total_revenue"`
}
