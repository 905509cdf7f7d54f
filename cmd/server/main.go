package main // Entry point package

import (
	"log"     // Logging library
	"strings" // Split the CORS origin list

	"github.com/joho/godotenv"                   // Load .env files in development
	"github.com/labstack/echo/v4"                // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware (CORS)

	"github.com/perennia/storefront/internal/config"     // Internal config loader
	"github.com/perennia/storefront/internal/database"   // Mongo connection helper
	"github.com/perennia/storefront/internal/handler"    // HTTP handlers
	"github.com/perennia/storefront/internal/middleware" // Response cache middleware
	"github.com/perennia/storefront/internal/payment"    // Stripe payment provider
	"github.com/perennia/storefront/internal/queue"      // Order event consumer
	"github.com/perennia/storefront/internal/repository" // Data access layer
	"github.com/perennia/storefront/internal/router"     // Route registration
	"github.com/perennia/storefront/internal/store"      // Document store adapter
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.MongoURL, cfg.DBName) // Connect to MongoDB
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	st := store.NewMongoStore(db) // Wrap the database in the document store port

	// Build the repositories over the shared store.
	users := repository.NewUserRepo(st)
	products := repository.NewProductRepo(st)
	reviews := repository.NewReviewRepo(st)
	orders := repository.NewOrderRepo(st)
	payments := repository.NewPaymentRepo(st)
	settings := repository.NewSettingsRepo(st)
	contacts := repository.NewContactRepo(st)

	// Payment provider is optional: without an API key the checkout
	// endpoints report "payment not configured" instead of failing at boot.
	var provider payment.Provider
	if cfg.StripeAPIKey != "" {
		provider = payment.NewStripeProvider(cfg.StripeAPIKey, cfg.StripeWebhookSecret)
	} else {
		log.Println("STRIPE_API_KEY not set; checkout disabled")
	}

	// Response cache for the public browse endpoints.  Both the Redis
	// client and the middleware degrade to pass-through when Redis is
	// unreachable or caching is disabled.
	cacheCfg := config.LoadCacheConfig()
	rdb := config.NewRedisClient()
	cache := middleware.ResponseCache(cacheCfg, rdb)

	// Background consumer for order and payment events.  Runs its own
	// reconnect loop; a missing broker only costs us the activity log.
	go queue.StartOrderConsumer()

	// Assemble the handlers.
	authH := handler.NewAuthHandler(cfg, users)
	catalogH := handler.NewCatalogHandler(products, reviews)
	orderH := handler.NewOrderHandler(cfg, orders, products, payments, provider)
	siteH := handler.NewSiteHandler(settings, contacts)
	bootH := handler.NewBootstrapHandler(cfg, users, products)

	e := echo.New() // Create Echo instance
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	router.RegisterRoutes(e) // Register application routes
	router.RegisterAuth(e, authH, cfg.JWTSecret, users)
	router.RegisterCatalog(e, catalogH, cfg.JWTSecret, users, cache)
	router.RegisterOrders(e, orderH, cfg.JWTSecret, users)
	router.RegisterCheckout(e, orderH, cfg.JWTSecret, users)
	router.RegisterSite(e, siteH, bootH, cfg.JWTSecret, users, cache)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
