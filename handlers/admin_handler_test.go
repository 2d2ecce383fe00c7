package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-storefront/models"
	"ticket-storefront/services"
)

func TestAdminHandler_GetDashboard(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)
	e := echo.New()

	expectSession(redisMock, "admintoken", "user-1")

	req := jsonRequest(http.MethodGet, "/api/admin/dashboard?limit=5", "", "admintoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetDashboard(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	metrics := payload["metrics"].(map[string]any)
	assert.Equal(t, float64(len(st.GetAllUsers())), metrics["total_users"])
	activities := payload["activities"].([]any)
	assert.LessOrEqual(t, len(activities), 5)
}

func TestAdminHandler_GetDashboard_CustomerForbidden(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)
	e := echo.New()

	expectSession(redisMock, "custtoken", "user-2")

	req := jsonRequest(http.MethodGet, "/api/admin/dashboard", "", "custtoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetDashboard(c)
	requireHTTPError(t, err, http.StatusForbidden)
}

func TestAdminHandler_UpdateUserStatus(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)

	e := echo.New()
	e.POST("/api/admin/users/:userId/status", handler.UpdateUserStatus)

	expectSession(redisMock, "admintoken", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/admin/users/user-2/status",
		`{"status":"blocked"}`, "admintoken"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.UserStatusBlocked, st.GetUserByID("user-2").Status)
}

func TestAdminHandler_UpdateUserStatus_UnknownStatus(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)

	e := echo.New()
	e.POST("/api/admin/users/:userId/status", handler.UpdateUserStatus)

	expectSession(redisMock, "admintoken", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/admin/users/user-2/status",
		`{"status":"banned"}`, "admintoken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_UpdateUserStatus_UnknownUser(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)

	e := echo.New()
	e.POST("/api/admin/users/:userId/status", handler.UpdateUserStatus)

	expectSession(redisMock, "admintoken", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/admin/users/user-9999/status",
		`{"status":"blocked"}`, "admintoken"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandler_UpdateUserRole(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)

	e := echo.New()
	e.POST("/api/admin/users/:userId/role", handler.UpdateUserRole)

	expectSession(redisMock, "admintoken", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/admin/users/user-2/role",
		`{"role":"organizer"}`, "admintoken"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleOrganizer, st.GetUserByID("user-2").Role)
}

func TestAdminHandler_UpdateOrganizerVerification(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)

	e := echo.New()
	e.POST("/api/admin/organizers/:organizerId/verification", handler.UpdateOrganizerVerification)

	expectSession(redisMock, "admintoken", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/admin/organizers/user-7/verification",
		`{"status":"verified"}`, "admintoken"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VerificationVerified, st.GetOrganizerByID("user-7").VerificationStatus)
}

func TestAdminHandler_UpdateEventStatus(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)

	e := echo.New()
	e.POST("/api/admin/events/:eventId/status", handler.UpdateEventStatus)

	expectSession(redisMock, "admintoken", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/admin/events/event-1/status",
		`{"status":"cancelled"}`, "admintoken"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.EventStatusCancelled, st.GetEventByID("event-1").Status)
}

func TestAdminHandler_ProcessRefund(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)

	e := echo.New()
	e.POST("/api/admin/refunds/:refundId/status", handler.ProcessRefund)

	refund := st.GetRefundByID("refund-1")
	require.NotNil(t, refund)

	expectSession(redisMock, "admintoken", "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/admin/refunds/refund-1/status",
		`{"status":"approved"}`, "admintoken"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RefundStatusApproved, st.GetRefundByID("refund-1").Status)
	assert.Equal(t, models.OrderStatusRefunded, st.GetOrderByID(refund.OrderID).Status)
}

func TestAdminHandler_ListRefunds(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)
	e := echo.New()

	refund := st.GetRefundByID("refund-1")
	require.NotNil(t, refund)

	// Unfiltered list.
	expectSession(redisMock, "admintoken", "user-1")
	req := jsonRequest(http.MethodGet, "/api/admin/refunds", "", "admintoken")
	rec := httptest.NewRecorder()
	require.NoError(t, handler.ListRefunds(e.NewContext(req, rec)))
	payload := decodeBody(t, rec)
	assert.Equal(t, float64(len(st.GetAllRefunds())), payload["total"])

	// Narrowed to one order.
	expectSession(redisMock, "admintoken", "user-1")
	req = jsonRequest(http.MethodGet, "/api/admin/refunds?order_id="+refund.OrderID.String(), "", "admintoken")
	rec = httptest.NewRecorder()
	require.NoError(t, handler.ListRefunds(e.NewContext(req, rec)))
	payload = decodeBody(t, rec)
	assert.Equal(t, float64(len(st.GetRefundsByOrderID(refund.OrderID))), payload["total"])
}

func TestAdminHandler_ResetStore(t *testing.T) {
	st := newHandlerTestStore(t)
	authService, redisMock := newHandlerTestAuth(t, st)
	handler := NewAdminHandler(st, services.NewOrderService(st, services.NoopNotifier{}), authService)
	e := echo.New()

	baseline := len(st.GetAllUsers())
	st.CreateUser(&models.User{Name: "Transient", Email: "transient@example.com"})
	require.Equal(t, baseline+1, len(st.GetAllUsers()))

	expectSession(redisMock, "admintoken", "user-1")
	req := jsonRequest(http.MethodPost, "/api/admin/reset", "", "admintoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetStore(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, baseline, len(st.GetAllUsers()))
}
