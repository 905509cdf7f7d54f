package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "context"  // context with timeout for the user lookup
    "errors"   // sentinel comparisons for token failures
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming
    "time"     // bound on the user lookup duration

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/perennia/storefront/internal/model"
    "github.com/perennia/storefront/internal/repository"
    "github.com/perennia/storefront/internal/utils"
)

// userContextKey is where the authenticated user document is stored in
// the Echo context.
const userContextKey = "user"

// CurrentUser returns the authenticated user injected by Auth or
// OptionalAuth.  The second return value is false for anonymous requests.
func CurrentUser(c echo.Context) (model.User, bool) {
    u, ok := c.Get(userContextKey).(model.User)
    return u, ok
}

// Auth returns an Echo middleware that validates a Bearer session token
// and loads the corresponding user document into the request context.
// The token alone is not trusted for identity: the embedded user id must
// still resolve to a stored user, so deleted accounts lose access even
// though tokens are stateless.  Failure modes are distinguished for the
// client: missing header, expired token, invalid token, unknown user.
func Auth(secret string, users *repository.UserRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            user, errMsg := resolveUser(c, secret, users)
            if errMsg != "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": errMsg})
            }
            c.Set(userContextKey, user)
            return next(c)
        }
    }
}

// OptionalAuth performs the same validation as Auth but swallows every
// failure into "no user": the request proceeds anonymously.  Routes that
// behave differently for logged-in callers read CurrentUser and check the
// ok flag.
func OptionalAuth(secret string, users *repository.UserRepo) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            user, errMsg := resolveUser(c, secret, users)
            if errMsg == "" {
                c.Set(userContextKey, user)
            }
            return next(c)
        }
    }
}

// resolveUser extracts and validates the bearer token, then loads the
// user document.  It returns a non-empty error message describing the
// first failure encountered, or the user and an empty message on success.
func resolveUser(c echo.Context, secret string, users *repository.UserRepo) (model.User, string) {
    // A valid header starts with "Bearer " followed by the JWT.
    auth := c.Request().Header.Get("Authorization")
    if !strings.HasPrefix(auth, "Bearer ") {
        return model.User{}, "not authenticated"
    }
    raw := strings.TrimPrefix(auth, "Bearer ")

    claims, err := utils.ParseSessionToken(secret, raw)
    if err != nil {
        if errors.Is(err, utils.ErrTokenExpired) {
            return model.User{}, "token expired"
        }
        return model.User{}, "invalid token"
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    user, err := users.GetByID(ctx, claims.UserID)
    if err != nil {
        return model.User{}, "user not found"
    }
    return user, ""
}
