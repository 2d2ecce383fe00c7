package services

import (
	qrcode "github.com/skip2/go-qrcode"

	"ticket-storefront/internal/status"
	"ticket-storefront/models"
	"ticket-storefront/monitoring"
	"ticket-storefront/store"
)

// TicketService backs the door scanner and the ticket views.
type TicketService struct {
	store *store.Store
}

func NewTicketService(st *store.Store) *TicketService {
	return &TicketService{store: st}
}

// CheckInByQRCode admits one scanned ticket. The store mutation itself is
// unconditional; rejecting a second scan is this service's concern.
func (s *TicketService) CheckInByQRCode(qrCode string) (*models.Ticket, error) {
	ticket := s.store.GetTicketByQRCode(qrCode)
	if ticket == nil {
		return nil, status.ErrTicketNotFound
	}
	if ticket.CheckedIn {
		return ticket, status.ErrAlreadyCheckedIn
	}

	monitoring.TrackStoreOperation("update", "tickets")
	return s.store.UpdateTicketCheckIn(ticket.ID, true), nil
}

// UndoCheckIn reverts an admitted ticket to valid and clears the check-in
// timestamp.
func (s *TicketService) UndoCheckIn(id models.TicketID) (*models.Ticket, error) {
	ticket := s.store.UpdateTicketCheckIn(id, false)
	if ticket == nil {
		return nil, status.ErrTicketNotFound
	}
	monitoring.TrackStoreOperation("update", "tickets")
	return ticket, nil
}

// QRCodePNG renders the ticket's QR payload as a 256px PNG.
func (s *TicketService) QRCodePNG(id models.TicketID) ([]byte, error) {
	ticket := s.store.GetTicketByID(id)
	if ticket == nil {
		return nil, status.ErrTicketNotFound
	}
	return qrcode.Encode(ticket.QRCode, qrcode.Medium, 256)
}
