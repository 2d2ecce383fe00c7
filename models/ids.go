package models

// Opaque per-entity identifier types. Foreign keys stay plain identifier
// values with no structural enforcement; a dangling reference resolves to
// nil at query time.
type (
	UserID       string
	EventID      string
	TicketTypeID string
	OrderID      string
	TicketID     string
	RefundID     string
)

func (id UserID) String() string       { return string(id) }
func (id EventID) String() string      { return string(id) }
func (id TicketTypeID) String() string { return string(id) }
func (id OrderID) String() string      { return string(id) }
func (id TicketID) String() string     { return string(id) }
func (id RefundID) String() string     { return string(id) }
