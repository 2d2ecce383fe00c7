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

type OrderHandler struct {
	store        *store.Store
	orderService *services.OrderService
	authService  *services.AuthService
}

func NewOrderHandler(st *store.Store, orderService *services.OrderService, authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		store:        st,
		orderService: orderService,
		authService:  authService,
	}
}

// Checkout submits the cart. The response carries the order plus the
// tickets the cascade issued for it.
func (h *OrderHandler) Checkout(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	var req struct {
		EventID       models.EventID          `json:"event_id"`
		Items         []services.CheckoutLine `json:"items"`
		PaymentMethod string                  `json:"payment_method"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	}
	if !validStatus(req.PaymentMethod,
		models.PaymentCreditCard, models.PaymentDebitCard,
		models.PaymentPayPal, models.PaymentBankTransfer) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown payment method")
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), user.ID, req.EventID, req.Items, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, status.ErrEventNotFound) || errors.Is(err, status.ErrTicketTypeNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Checkout failed")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"order":   order,
		"tickets": h.store.GetTicketsByOrderID(order.ID),
	})
}

func (h *OrderHandler) GetOrderHistory(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	orders := h.store.GetOrdersByCustomerID(user.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"orders": orders,
		"total":  len(orders),
	})
}

func (h *OrderHandler) GetOrderTickets(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	order := h.store.GetOrderByID(models.OrderID(c.PathParam("orderId")))
	if order == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if order.CustomerID != user.ID && user.Role != models.RoleAdmin {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"order":   order,
		"tickets": h.store.GetTicketsByOrderID(order.ID),
	})
}

func (h *OrderHandler) RequestRefund(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	var req struct {
		OrderID models.OrderID `json:"order_id"`
		Reason  string         `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	refund, err := h.orderService.RequestRefund(c.Request().Context(), user.ID, req.OrderID, req.Reason)
	if err != nil {
		if errors.Is(err, status.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Refund request failed")
	}

	return c.JSON(http.StatusCreated, refund)
}
