package services

import (
	"github.com/shopspring/decimal"

	"ticket-storefront/models"
)

// ServiceFeeRate is the storefront-wide service fee applied on top of the
// cart subtotal. Not configurable.
var ServiceFeeRate = decimal.NewFromFloat(0.10)

// CartItem is one cart entry, keyed by ticket type. The ticket type is a
// snapshot taken when the item was added; a later price change on the
// event does not reprice the cart.
type CartItem struct {
	TicketTypeID models.TicketTypeID `json:"ticket_type_id"`
	EventID      models.EventID      `json:"event_id"`
	TicketType   models.TicketType   `json:"ticket_type"`
	Quantity     int                 `json:"quantity"`
}

// Cart holds the selection for one checkout. Entries keep insertion order
// and there is at most one entry per ticket type. All money accessors are
// pure functions of current state, recomputed on every call.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges by ticket type: re-adding the same type increments the
// existing entry instead of duplicating it.
func (c *Cart) AddItem(ticketType models.TicketType, quantity int) {
	for i := range c.items {
		if c.items[i].TicketTypeID == ticketType.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, CartItem{
		TicketTypeID: ticketType.ID,
		EventID:      ticketType.EventID,
		TicketType:   ticketType,
		Quantity:     quantity,
	})
}

func (c *Cart) RemoveItem(ticketTypeID models.TicketTypeID) {
	for i := range c.items {
		if c.items[i].TicketTypeID == ticketTypeID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity overwrites the entry's quantity; zero or negative behaves
// as RemoveItem.
func (c *Cart) UpdateQuantity(ticketTypeID models.TicketTypeID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(ticketTypeID)
		return
	}
	for i := range c.items {
		if c.items[i].TicketTypeID == ticketTypeID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		price := decimal.NewFromFloat(item.TicketType.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// Fees is subtotal * 0.10.
func (c *Cart) Fees() decimal.Decimal {
	return c.Subtotal().Mul(ServiceFeeRate)
}

// Total is subtotal + fees, always exactly subtotal * 1.10.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Fees())
}
