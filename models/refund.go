package models

import (
	"time"
)

const (
	RefundStatusPending   = "pending"
	RefundStatusApproved  = "approved"
	RefundStatusRejected  = "rejected"
	RefundStatusCompleted = "completed"
)

type RefundRequest struct {
	ID          RefundID   `json:"id"`
	OrderID     OrderID    `json:"order_id"`
	CustomerID  UserID     `json:"customer_id"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"` // pending, approved, rejected, completed
	Amount      float64    `json:"amount"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
