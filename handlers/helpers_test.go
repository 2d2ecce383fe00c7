package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/require"

	"ticket-storefront/config"
	"ticket-storefront/models"
	"ticket-storefront/services"
	"ticket-storefront/store"
)

func newHandlerTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(&config.Config{
		SeedRandom:     7,
		SeedCustomers:  5,
		SeedOrganizers: 2,
		SeedEvents:     4,
		SeedOrders:     6,
		SeedRefunds:    2,
	})
	// Seeding blocks a share of accounts; session tests want everyone
	// able to log in.
	for _, user := range st.GetAllUsers() {
		st.UpdateUserStatus(user.ID, models.UserStatusActive)
	}
	return st
}

// newHandlerTestAuth wires an AuthService to a Redis mock. Tests stub the
// session lookup for whichever token they send.
func newHandlerTestAuth(t *testing.T, st *store.Store) (*services.AuthService, redismock.ClientMock) {
	t.Helper()
	db, redisMock := redismock.NewClientMock()
	return services.NewAuthService(db, st, time.Hour), redisMock
}

func expectSession(redisMock redismock.ClientMock, token, userID string) {
	redisMock.ExpectHGet("session:"+token, "user_id").SetVal(userID)
}

func jsonRequest(method, target, body, token string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, code, httpErr.Code)
}
