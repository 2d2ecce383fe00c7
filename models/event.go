package models

import (
	"time"
)

const (
	EventStatusActive    = "active"
	EventStatusInactive  = "inactive"
	EventStatusCancelled = "cancelled"

	TicketTierVIP       = "vip"
	TicketTierRegular   = "regular"
	TicketTierEarlyBird = "early-bird"
)

type Event struct {
	ID          EventID      `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	OrganizerID UserID       `json:"organizer_id"`
	Date        time.Time    `json:"date"`
	Location    string       `json:"location"`
	Category    string       `json:"category"`
	Status      string       `json:"status"` // active, inactive, cancelled
	TicketTypes []TicketType `json:"ticket_types"`
	// TotalAttendees is denormalized at generation time and not kept in
	// sync with later sales.
	TotalAttendees int       `json:"total_attendees"`
	CreatedAt      time.Time `json:"created_at"`
}

type TicketType struct {
	ID       TicketTypeID `json:"id"`
	EventID  EventID      `json:"event_id"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Quantity int          `json:"quantity"`
	Sold     int          `json:"sold"`
	Type     string       `json:"type"` // vip, regular, early-bird
}

// Available is the derived unit count; sold <= quantity is expected but
// never enforced by any mutation.
func (t TicketType) Available() int {
	return t.Quantity - t.Sold
}
