package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/perennia/storefront/internal/handler"    // import the handlers that implement business logic
	"github.com/perennia/storefront/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/perennia/storefront/internal/repository"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance: a health check for load balancers and the API
// root banner.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	// The API root returns a short banner and doubles as a reachability probe
	// for the frontend.
	e.GET("/api/", handler.Root)
	e.GET("/api", handler.Root)
}

// RegisterAuth registers all authentication-related routes.  Unauthenticated
// operations (register, login) live under /api/auth; /api/auth/me requires a
// valid session token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, users *repository.UserRepo) {
	// Create a route group under the /api/auth prefix for operations that do
	// not require an existing session.  Each of these handlers returns a
	// freshly signed token on success.
	g := e.Group("/api/auth")
	// Register a POST endpoint to handle user registration at /api/auth/register.
	g.POST("/register", a.Register)
	// Register a POST endpoint to handle user login at /api/auth/login.
	g.POST("/login", a.Login)
	// Register a GET endpoint at /api/auth/me that returns the authenticated
	// user's profile.  The Auth middleware resolves the bearer token into a
	// full user record before the handler runs.
	g.GET("/me", a.Me, middleware.Auth(jwtSecret, users))
}

// RegisterCatalog registers product and review routes.  Browse endpoints are
// public and sit behind the shared response cache; mutations require an
// admin session.
func RegisterCatalog(e *echo.Echo, ch *handler.CatalogHandler, jwtSecret string, users *repository.UserRepo, cache echo.MiddlewareFunc) {
	auth := middleware.Auth(jwtSecret, users)
	optional := middleware.OptionalAuth(jwtSecret, users)
	admin := middleware.RequireAdmin()

	// Public catalog browsing.  These are the hottest read paths, so they
	// run through the Redis response cache when it is enabled.
	e.GET("/api/products", ch.ListProducts, cache)
	e.GET("/api/products/:id", ch.GetProduct, cache)
	// Reviews accept an optional session; the listing is identical for
	// guests today so the shared cache stays correct.
	e.GET("/api/products/:id/reviews", ch.ListReviews, cache, optional)

	// Admin catalog management.  Auth runs first so RequireAdmin can read
	// the resolved user from the request context.
	e.POST("/api/admin/products", ch.CreateProduct, auth, admin)
	e.PUT("/api/admin/products/:id", ch.UpdateProduct, auth, admin)
	e.DELETE("/api/admin/products/:id", ch.DeleteProduct, auth, admin)

	// Posting a review requires a session; the handler snapshots the
	// reviewer's display name at write time.
	e.POST("/api/products/:id/reviews", ch.CreateReview, auth)
}

// RegisterOrders registers order placement and tracking routes.  All of them
// require a session; the admin listing and status update additionally
// require the admin flag.
func RegisterOrders(e *echo.Echo, oh *handler.OrderHandler, jwtSecret string, users *repository.UserRepo) {
	auth := middleware.Auth(jwtSecret, users)
	admin := middleware.RequireAdmin()

	// Place a new order from the client-side cart.
	e.POST("/api/orders", oh.CreateOrder, auth)
	// List the caller's own orders, newest first.
	e.GET("/api/orders", oh.ListMyOrders, auth)
	// Fetch a single order.  The handler enforces owner-or-admin access.
	e.GET("/api/orders/:id", oh.GetOrder, auth)

	// Admin order management.
	e.GET("/api/admin/orders", oh.ListAllOrders, auth, admin)
	e.PUT("/api/admin/orders/:id/status", oh.UpdateOrderStatus, auth, admin)
}

// RegisterCheckout registers the payment routes.  Session creation and
// status polling require a session; the webhook is called by the payment
// provider and authenticates via its signature header instead.
func RegisterCheckout(e *echo.Echo, oh *handler.OrderHandler, jwtSecret string, users *repository.UserRepo) {
	auth := middleware.Auth(jwtSecret, users)

	e.POST("/api/checkout/create-session", oh.CreateCheckoutSession, auth)
	e.GET("/api/checkout/status/:session_id", oh.GetCheckoutStatus, auth)
	// Webhook deliveries carry no bearer token; signature verification
	// happens inside the handler.
	e.POST("/api/webhook/stripe", oh.StripeWebhook)
}

// RegisterSite registers site settings, contact form and bootstrap routes.
func RegisterSite(e *echo.Echo, sh *handler.SiteHandler, bh *handler.BootstrapHandler, jwtSecret string, users *repository.UserRepo, cache echo.MiddlewareFunc) {
	auth := middleware.Auth(jwtSecret, users)
	admin := middleware.RequireAdmin()

	// Public site settings feed the storefront's theming and copy.
	e.GET("/api/settings", sh.GetSettings, cache)
	e.PUT("/api/admin/settings", sh.UpdateSettings, auth, admin)

	// Contact form submission is open to guests; reading submissions is
	// admin only.
	e.POST("/api/contact", sh.SubmitContact)
	e.GET("/api/admin/contacts", sh.ListContacts, auth, admin)

	// One-shot bootstrap endpoints.  Both are safe to leave exposed: setup
	// refuses to run once an admin exists and seeding refuses to run once
	// any product exists.
	e.POST("/api/admin/setup", bh.SetupAdmin)
	e.POST("/api/seed", bh.SeedProducts)
}
