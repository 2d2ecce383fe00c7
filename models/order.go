package models

import (
	"time"
)

const (
	OrderStatusCompleted = "completed"
	OrderStatusPending   = "pending"
	OrderStatusRefunded  = "refunded"
	OrderStatusCancelled = "cancelled"

	PaymentCreditCard   = "credit_card"
	PaymentDebitCard    = "debit_card"
	PaymentPayPal       = "paypal"
	PaymentBankTransfer = "bank_transfer"
)

type Order struct {
	ID            OrderID     `json:"id"`
	CustomerID    UserID      `json:"customer_id"`
	EventID       EventID     `json:"event_id"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        string      `json:"status"`         // completed, pending, refunded, cancelled
	PaymentMethod string      `json:"payment_method"` // credit_card, debit_card, paypal, bank_transfer
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is a purchase line. Issued units live in the Ticket collection;
// the tickets belonging to an order are a query, not a nested copy.
type OrderItem struct {
	TicketTypeID TicketTypeID `json:"ticket_type_id"`
	Quantity     int          `json:"quantity"`
	UnitPrice    float64      `json:"unit_price"`
}
