package store

import (
	"ticket-storefront/models"
)

// Query layer. Every collection accessor returns a fresh slice (mutating
// the returned list cannot touch the store), while the records themselves
// are shared pointers. Single-record lookups return nil on a miss; nothing
// here returns an error or panics. All scans are linear: the store holds
// tens of records.

func (s *Store) GetAllUsers() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.User(nil), s.users...)
}

func (s *Store) GetUserByID(id models.UserID) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(id)
}

func (s *Store) GetUserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *Store) GetAllOrganizers() []*models.OrganizerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.OrganizerProfile(nil), s.organizers...)
}

func (s *Store) GetOrganizerByID(id models.UserID) *models.OrganizerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findOrganizer(id)
}

func (s *Store) GetAllEvents() []*models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Event(nil), s.events...)
}

func (s *Store) GetEventByID(id models.EventID) *models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findEvent(id)
}

func (s *Store) GetEventsByOrganizerID(organizerID models.UserID) []*models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Event
	for _, e := range s.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out
}

// GetTicketTypeByID scans every event's tiers.
func (s *Store) GetTicketTypeByID(id models.TicketTypeID) *models.TicketType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findTicketType(id)
}

func (s *Store) GetAllOrders() []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Order(nil), s.orders...)
}

func (s *Store) GetOrderByID(id models.OrderID) *models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findOrder(id)
}

func (s *Store) GetOrdersByCustomerID(customerID models.UserID) []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) GetAllTickets() []*models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Ticket(nil), s.tickets...)
}

func (s *Store) GetTicketByID(id models.TicketID) *models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findTicket(id)
}

func (s *Store) GetTicketsByOrderID(orderID models.OrderID) []*models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Ticket
	for _, t := range s.tickets {
		if t.OrderID == orderID {
			out = append(out, t)
		}
	}
	return out
}

// GetTicketsByCustomerID joins Order -> Ticket through the customer's
// order id set.
func (s *Store) GetTicketsByCustomerID(customerID models.UserID) []*models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orderIDs := map[models.OrderID]bool{}
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			orderIDs[o.ID] = true
		}
	}

	var out []*models.Ticket
	for _, t := range s.tickets {
		if orderIDs[t.OrderID] {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) GetTicketByQRCode(qrCode string) *models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.QRCode == qrCode {
			return t
		}
	}
	return nil
}

func (s *Store) GetTicketsByEventID(eventID models.EventID) []*models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Ticket
	for _, t := range s.tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) GetAllRefunds() []*models.RefundRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.RefundRequest(nil), s.refunds...)
}

func (s *Store) GetRefundByID(id models.RefundID) *models.RefundRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findRefund(id)
}

func (s *Store) GetRefundsByOrderID(orderID models.OrderID) []*models.RefundRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.RefundRequest
	for _, r := range s.refunds {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out
}

// GetRefundsByEventID joins Refund -> Order -> Event.
func (s *Store) GetRefundsByEventID(eventID models.EventID) []*models.RefundRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orderIDs := map[models.OrderID]bool{}
	for _, o := range s.orders {
		if o.EventID == eventID {
			orderIDs[o.ID] = true
		}
	}

	var out []*models.RefundRequest
	for _, r := range s.refunds {
		if orderIDs[r.OrderID] {
			out = append(out, r)
		}
	}
	return out
}

// Unexported finders, shared by the query and mutation layers. Caller
// holds at least the read lock.

func (s *Store) findUser(id models.UserID) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) findOrganizer(id models.UserID) *models.OrganizerProfile {
	for _, o := range s.organizers {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *Store) findEvent(id models.EventID) *models.Event {
	for _, e := range s.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) findTicketType(id models.TicketTypeID) *models.TicketType {
	for _, e := range s.events {
		for i := range e.TicketTypes {
			if e.TicketTypes[i].ID == id {
				return &e.TicketTypes[i]
			}
		}
	}
	return nil
}

func (s *Store) findOrder(id models.OrderID) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *Store) findTicket(id models.TicketID) *models.Ticket {
	for _, t := range s.tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) findRefund(id models.RefundID) *models.RefundRequest {
	for _, r := range s.refunds {
		if r.ID == id {
			return r
		}
	}
	return nil
}
