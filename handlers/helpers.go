package handlers

import (
	"strings"

	"github.com/labstack/echo/v5"

	"ticket-storefront/models"
	"ticket-storefront/services"
)

// currentUser resolves the request's session token. The Authorization
// header carries the raw token, with or without a Bearer prefix.
func currentUser(c echo.Context, auth *services.AuthService) (*models.User, error) {
	token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
	if token == "" {
		return nil, echo.NewHTTPError(401, "Unauthorized")
	}

	user, err := auth.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return nil, echo.NewHTTPError(401, err.Error())
	}
	return user, nil
}

func validStatus(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
