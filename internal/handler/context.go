package handler

import (
	"github.com/labstack/echo/v4"

	"foodcart/internal/model"
)

// CurrentUserKey is the context key the router's authentication middleware
// stores the resolved user under.
const CurrentUserKey = "currentUser"

// CurrentUser returns the authenticated user, or nil on unauthenticated
// routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(CurrentUserKey).(*model.User)
	return user
}
