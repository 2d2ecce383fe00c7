package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"ticket-storefront/internal/status"
	"ticket-storefront/models"
	"ticket-storefront/services"
	"ticket-storefront/store"
)

type TicketHandler struct {
	store         *store.Store
	ticketService *services.TicketService
	authService   *services.AuthService
}

func NewTicketHandler(st *store.Store, ticketService *services.TicketService, authService *services.AuthService) *TicketHandler {
	return &TicketHandler{
		store:         st,
		ticketService: ticketService,
		authService:   authService,
	}
}

func (h *TicketHandler) MyTickets(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	tickets := h.store.GetTicketsByCustomerID(user.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"tickets": tickets,
		"total":   len(tickets),
	})
}

// TicketQRCode renders the ticket's QR payload as a PNG for display and
// print views.
func (h *TicketHandler) TicketQRCode(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	ticket := h.store.GetTicketByID(models.TicketID(c.PathParam("ticketId")))
	if ticket == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Ticket not found")
	}
	order := h.store.GetOrderByID(ticket.OrderID)
	if order == nil || (order.CustomerID != user.ID && user.Role != models.RoleAdmin) {
		return echo.NewHTTPError(http.StatusNotFound, "Ticket not found")
	}

	png, err := h.ticketService.QRCodePNG(ticket.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render QR code")
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// CheckIn is the door scanner endpoint. Organizer or admin only.
func (h *TicketHandler) CheckIn(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}
	if user.Role != models.RoleOrganizer && user.Role != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Organizer account required")
	}

	var req struct {
		QRCode string `json:"qr_code"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	ticket, err := h.ticketService.CheckInByQRCode(req.QRCode)
	if err != nil {
		if errors.Is(err, status.ErrTicketNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Ticket not found")
		}
		if errors.Is(err, status.ErrAlreadyCheckedIn) {
			return c.JSON(http.StatusConflict, map[string]any{
				"error":  "Ticket already checked in",
				"ticket": ticket,
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Check-in failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Checked in",
		"ticket":  ticket,
	})
}
