package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v5"

	"ticket-storefront/models"
	"ticket-storefront/monitoring"
	"ticket-storefront/services"
	"ticket-storefront/store"
)

type EventHandler struct {
	store       *store.Store
	authService *services.AuthService
}

func NewEventHandler(st *store.Store, authService *services.AuthService) *EventHandler {
	return &EventHandler{
		store:       st,
		authService: authService,
	}
}

// ListEvents applies the filter engine over the full event collection.
// Every criterion arrives as a query parameter; absent parameters filter
// nothing.
func (h *EventHandler) ListEvents(c echo.Context) error {
	filter := services.EventFilter{
		Search:    c.QueryParam("search"),
		Category:  c.QueryParam("category"),
		Location:  c.QueryParam("location"),
		DateRange: c.QueryParam("date_range"),
	}
	if v := c.QueryParam("price_max"); v != "" {
		priceMax, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid price_max")
		}
		filter.PriceMax = priceMax
	}
	if v := c.QueryParam("is_free"); v != "" {
		filter.IsFree, _ = strconv.ParseBool(v)
	}
	if v := c.QueryParam("is_online"); v != "" {
		filter.IsOnline, _ = strconv.ParseBool(v)
	}

	events := services.FilterEvents(h.store.GetAllEvents(), filter, time.Now())

	return c.JSON(http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	event := h.store.GetEventByID(models.EventID(c.PathParam("eventId")))
	if event == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	return c.JSON(http.StatusOK, event)
}

// ListOrganizerEvents returns the authenticated organizer's events.
func (h *EventHandler) ListOrganizerEvents(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}
	if user.Role != models.RoleOrganizer && user.Role != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Organizer account required")
	}

	events := h.store.GetEventsByOrganizerID(user.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}

// CreateEvent lets a verified organizer publish an event with its tiers.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}
	if user.Role != models.RoleOrganizer {
		return echo.NewHTTPError(http.StatusForbidden, "Organizer account required")
	}
	organizer := h.store.GetOrganizerByID(user.ID)
	if organizer == nil || organizer.VerificationStatus != models.VerificationVerified {
		return echo.NewHTTPError(http.StatusForbidden, "Organizer is not verified")
	}

	var req struct {
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
		Location    string    `json:"location"`
		Category    string    `json:"category"`
		TicketTypes []struct {
			Name     string  `json:"name"`
			Price    float64 `json:"price"`
			Quantity int     `json:"quantity"`
			Type     string  `json:"type"`
		} `json:"ticket_types"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if req.Name == "" || req.Location == "" || len(req.TicketTypes) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, location and at least one ticket type are required")
	}

	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		OrganizerID: organizer.ID,
		Date:        req.Date,
		Location:    req.Location,
		Category:    req.Category,
		Status:      models.EventStatusActive,
	}
	for _, tt := range req.TicketTypes {
		if tt.Price < 0 || tt.Quantity <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Ticket types need a non-negative price and a positive quantity")
		}
		event.TicketTypes = append(event.TicketTypes, models.TicketType{
			Name:     tt.Name,
			Price:    tt.Price,
			Quantity: tt.Quantity,
			Type:     tt.Type,
		})
	}

	h.store.CreateEvent(event)
	monitoring.TrackStoreOperation("create", "events")

	return c.JSON(http.StatusCreated, event)
}
