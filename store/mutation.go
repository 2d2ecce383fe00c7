package store

import (
	"fmt"

	"ticket-storefront/models"
)

// Mutation layer. Every updater resolves its id first and silently does
// nothing on a miss, returning nil so the caller can tell. Target status
// values are not validated against the legal set; callers pre-validate.
// Each updater returns the mutated record so callers can reflect the
// change without a second read.

func (s *Store) UpdateUserStatus(id models.UserID, status string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.findUser(id)
	if user == nil {
		return nil
	}
	user.Status = status
	return user
}

func (s *Store) UpdateUserRole(id models.UserID, role string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.findUser(id)
	if user == nil {
		return nil
	}
	user.Role = role
	return user
}

func (s *Store) UpdateOrganizerVerificationStatus(id models.UserID, status string) *models.OrganizerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	organizer := s.findOrganizer(id)
	if organizer == nil {
		return nil
	}
	organizer.VerificationStatus = status
	return organizer
}

func (s *Store) UpdateEventStatus(id models.EventID, status string) *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	event := s.findEvent(id)
	if event == nil {
		return nil
	}
	event.Status = status
	return event
}

// UpdateOrderStatus accepts any target status unconditionally; there is no
// enforced transition graph.
func (s *Store) UpdateOrderStatus(id models.OrderID, status string) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.findOrder(id)
	if order == nil {
		return nil
	}
	order.Status = status
	order.UpdatedAt = s.now()
	return order
}

// UpdateTicketCheckIn sets the check-in flag and derives the rest: status
// is used iff checked in, and CheckedInAt is stamped on the way in and
// cleared on the way out. Calling it twice with the same flag is
// idempotent apart from the timestamp refresh.
func (s *Store) UpdateTicketCheckIn(id models.TicketID, checkedIn bool) *models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket := s.findTicket(id)
	if ticket == nil {
		return nil
	}
	ticket.CheckedIn = checkedIn
	if checkedIn {
		now := s.now()
		ticket.CheckedInAt = &now
		ticket.Status = models.TicketStatusUsed
	} else {
		ticket.CheckedInAt = nil
		ticket.Status = models.TicketStatusValid
	}
	return ticket
}

// UpdateRefundStatus stamps ProcessedAt on every call, not only on
// terminal statuses. Observed behavior of the storefront; kept as is.
func (s *Store) UpdateRefundStatus(id models.RefundID, status string) *models.RefundRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	refund := s.findRefund(id)
	if refund == nil {
		return nil
	}
	refund.Status = status
	now := s.now()
	refund.ProcessedAt = &now
	return refund
}

// CreateUser backs the registration flow. Role and status come from the
// caller; id and CreatedAt are assigned here.
func (s *Store) CreateUser(user *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = models.UserID(fmt.Sprintf("user-%d", len(s.users)+1))
	user.CreatedAt = s.now()
	s.users = append(s.users, user)
	return user
}

// CreateEvent assigns the id from the collection length. Records are never
// deleted, so the scheme cannot collide.
func (s *Store) CreateEvent(event *models.Event) *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = models.EventID(fmt.Sprintf("event-%d", len(s.events)+1))
	event.CreatedAt = s.now()
	for i := range event.TicketTypes {
		event.TicketTypes[i].ID = models.TicketTypeID(fmt.Sprintf("%s-tt-%d", event.ID, i+1))
		event.TicketTypes[i].EventID = event.ID
	}
	s.events = append(s.events, event)
	return event
}

// CreateOrder appends the order and cascades: one standalone Ticket per
// purchased unit, freshly tokenized, valid and not checked in. Both
// collections are mutated under one lock acquisition, so no reader can see
// the order without its tickets.
func (s *Store) CreateOrder(order *models.Order) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrderLocked(order)
}

func (s *Store) createOrderLocked(order *models.Order) *models.Order {
	order.ID = models.OrderID(fmt.Sprintf("order-%d", len(s.orders)+1))
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now()
	}
	order.UpdatedAt = s.now()
	s.orders = append(s.orders, order)

	for _, item := range order.Items {
		for unit := 0; unit < item.Quantity; unit++ {
			ticket := &models.Ticket{
				ID:           models.TicketID(fmt.Sprintf("ticket-%d", len(s.tickets)+1)),
				OrderID:      order.ID,
				EventID:      order.EventID,
				TicketTypeID: item.TicketTypeID,
				QRCode:       s.qrToken(),
				CheckedIn:    false,
				Status:       models.TicketStatusValid,
			}
			s.tickets = append(s.tickets, ticket)
		}
	}
	return order
}

// CreateRefundRequest backs the customer refund flow; status starts
// pending and ProcessedAt stays unset until the first status change.
func (s *Store) CreateRefundRequest(refund *models.RefundRequest) *models.RefundRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	refund.ID = models.RefundID(fmt.Sprintf("refund-%d", len(s.refunds)+1))
	refund.Status = models.RefundStatusPending
	refund.RequestedAt = s.now()
	s.refunds = append(s.refunds, refund)
	return refund
}
