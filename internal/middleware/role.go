package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireAdmin returns a middleware function that enforces that the
// authenticated user carries the admin flag.  It assumes the Auth
// middleware has already loaded the user into the context; an ordinary
// customer account is rejected with a 403 Forbidden response.
func RequireAdmin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            user, ok := CurrentUser(c)
            if !ok || !user.IsAdmin {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
            }
            return next(c)
        }
    }
}
