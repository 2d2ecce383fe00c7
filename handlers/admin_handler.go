package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v5"

	"ticket-storefront/internal/status"
	"ticket-storefront/models"
	"ticket-storefront/monitoring"
	"ticket-storefront/services"
	"ticket-storefront/store"
)

type AdminHandler struct {
	store        *store.Store
	orderService *services.OrderService
	authService  *services.AuthService
}

func NewAdminHandler(st *store.Store, orderService *services.OrderService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		store:        st,
		orderService: orderService,
		authService:  authService,
	}
}

func (h *AdminHandler) requireAdmin(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}
	if user.Role != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "Admin account required")
	}
	return nil
}

// GetDashboard returns the aggregated metrics plus the merged activity
// feed, newest first.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"metrics":    h.store.GetDashboardMetrics(),
		"activities": h.store.GetRecentActivities(limit),
	})
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	users := h.store.GetAllUsers()
	return c.JSON(http.StatusOK, map[string]any{
		"users": users,
		"total": len(users),
	})
}

func (h *AdminHandler) ListOrganizers(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	organizers := h.store.GetAllOrganizers()
	return c.JSON(http.StatusOK, map[string]any{
		"organizers": organizers,
		"total":      len(organizers),
	})
}

func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if !validStatus(req.Status, models.UserStatusActive, models.UserStatusBlocked) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown user status")
	}

	user := h.store.UpdateUserStatus(models.UserID(c.PathParam("userId")), req.Status)
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	monitoring.TrackStoreOperation("update", "users")
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if !validStatus(req.Role, models.RoleAdmin, models.RoleOrganizer, models.RoleCustomer) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown role")
	}

	user := h.store.UpdateUserRole(models.UserID(c.PathParam("userId")), req.Role)
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	monitoring.TrackStoreOperation("update", "users")
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UpdateOrganizerVerification(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if !validStatus(req.Status, models.VerificationPending, models.VerificationVerified, models.VerificationRejected) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown verification status")
	}

	organizer := h.store.UpdateOrganizerVerificationStatus(models.UserID(c.PathParam("organizerId")), req.Status)
	if organizer == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Organizer not found")
	}
	monitoring.TrackStoreOperation("update", "organizers")
	return c.JSON(http.StatusOK, organizer)
}

func (h *AdminHandler) UpdateEventStatus(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if !validStatus(req.Status, models.EventStatusActive, models.EventStatusInactive, models.EventStatusCancelled) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown event status")
	}

	event := h.store.UpdateEventStatus(models.EventID(c.PathParam("eventId")), req.Status)
	if event == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	monitoring.TrackStoreOperation("update", "events")
	return c.JSON(http.StatusOK, event)
}

func (h *AdminHandler) ProcessRefund(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if !validStatus(req.Status,
		models.RefundStatusPending, models.RefundStatusApproved,
		models.RefundStatusRejected, models.RefundStatusCompleted) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown refund status")
	}

	refund, err := h.orderService.ProcessRefund(c.Request().Context(), models.RefundID(c.PathParam("refundId")), req.Status)
	if err != nil {
		if errors.Is(err, status.ErrRefundNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Refund request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Refund processing failed")
	}
	return c.JSON(http.StatusOK, refund)
}

func (h *AdminHandler) ListRefunds(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	var refunds []*models.RefundRequest
	switch {
	case c.QueryParam("order_id") != "":
		refunds = h.store.GetRefundsByOrderID(models.OrderID(c.QueryParam("order_id")))
	case c.QueryParam("event_id") != "":
		refunds = h.store.GetRefundsByEventID(models.EventID(c.QueryParam("event_id")))
	default:
		refunds = h.store.GetAllRefunds()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"refunds": refunds,
		"total":   len(refunds),
	})
}

// ResetStore regenerates every collection from scratch. Development tool;
// every mutation made since startup is lost.
func (h *AdminHandler) ResetStore(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	h.store.Reset()
	monitoring.TrackStoreOperation("reset", "all")
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Store reset",
	})
}
