package models

import (
	"time"
)

const (
	TicketStatusValid     = "valid"
	TicketStatusUsed      = "used"
	TicketStatusCancelled = "cancelled"
)

// Ticket is one issued unit. It is the source of truth for check-in state;
// status is derived from CheckedIn by the check-in mutation (used iff
// checked in). The cancelled status is a defined value no mutation here
// ever produces.
type Ticket struct {
	ID           TicketID     `json:"id"`
	OrderID      OrderID      `json:"order_id"`
	EventID      EventID      `json:"event_id"`
	TicketTypeID TicketTypeID `json:"ticket_type_id"`
	QRCode       string       `json:"qr_code"`
	CheckedIn    bool         `json:"checked_in"`
	CheckedInAt  *time.Time   `json:"checked_in_at,omitempty"`
	Status       string       `json:"status"` // valid, used, cancelled
}
