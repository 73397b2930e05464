package router

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"foodcart/internal/auth"
	"foodcart/internal/handler"
	"foodcart/internal/repository"
)

var errTokenUser = errors.New("token user no longer exists")

// authRequired validates the bearer token and resolves it to a user record,
// which is stored on the context for handlers. Missing, malformed, expired,
// or orphaned tokens all answer 401.
func authRequired(tokens *auth.TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.CurrentUserKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			userID, err := tokens.Validate(token)
			if err != nil {
				return nil, err
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return nil, errTokenUser
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token")
			}
			if errors.Is(err, errTokenUser) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, user not found")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token failed")
		},
	})
}

// adminOnly rejects authenticated users lacking the admin role. Must run
// after authRequired.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := handler.CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Not authorized as admin")
		}
		return next(c)
	}
}

// corsWithAllowlist applies Echo's CORS middleware driven by the allow-list,
// and rejects requests from disallowed origins outright. Requests without an
// Origin header (same-origin, curl) pass through.
func corsWithAllowlist(allow *Allowlist) echo.MiddlewareFunc {
	corsMiddleware := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return allow.Match(origin), nil
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withCORS := corsMiddleware(next)
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin != "" && !allow.Match(origin) {
				return echo.NewHTTPError(http.StatusForbidden, "Not allowed by CORS")
			}
			return withCORS(c)
		}
	}
}
