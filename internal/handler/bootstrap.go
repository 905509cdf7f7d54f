package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/perennia/storefront/internal/config"
	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/repository"
	"github.com/perennia/storefront/internal/utils"
)

// Fixed bootstrap admin credentials.  Returning them in plaintext is a
// known-weak convenience kept for compatibility with the storefront's
// original setup flow; replace with a one-time setup token before any
// production hardening pass.
const (
	bootstrapAdminEmail    = "admin@perennia.bb"
	bootstrapAdminPassword = "admin123"
)

// BootstrapHandler serves the one-shot setup endpoints: initial admin
// creation and catalog seeding.
type BootstrapHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Products *repository.ProductRepo
}

func NewBootstrapHandler(cfg config.Config, u *repository.UserRepo, p *repository.ProductRepo) *BootstrapHandler {
	return &BootstrapHandler{Cfg: cfg, Users: u, Products: p}
}

// SetupAdmin handles POST /api/admin/setup.  It creates the fixed admin
// account if and only if no admin exists yet.
func (h *BootstrapHandler) SetupAdmin(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.Users.HasAdmin(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query admin failed"})
	}
	if exists {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin already exists"})
	}

	hash, err := utils.HashPassword(bootstrapAdminPassword, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	admin := model.User{
		ID:           uuid.NewString(),
		Email:        bootstrapAdminEmail,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Users.Create(ctx, &admin); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Admin created",
		"email":    bootstrapAdminEmail,
		"password": bootstrapAdminPassword,
	})
}

// SeedProducts handles POST /api/seed.  It populates the sample catalog
// once; any existing product makes it a no-op.
func (h *BootstrapHandler) SeedProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	any, err := h.Products.Any(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query products failed"})
	}
	if any {
		return c.JSON(http.StatusOK, echo.Map{"message": "Data already seeded"})
	}

	catalog := seedCatalog()
	if err := h.Products.InsertMany(ctx, catalog); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed products failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Data seeded", "products_count": len(catalog)})
}

// seedCatalog returns the launch catalog: nine sample products across
// the resin, soaps and candles categories.
func seedCatalog() []model.Product {
	now := time.Now().UTC()
	return []model.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Ocean Wave Coaster Set",
			Description: "Hand-poured resin coasters capturing the essence of Caribbean waves. Each piece is unique with swirling turquoise and white tones.",
			PriceBBD:    120.00,
			PriceUSD:    60.00,
			Category:    "resin",
			Images:      []string{"https://images.unsplash.com/photo-1718635310388-880694939769?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2Mzl8MHwxfHNlYXJjaHwyfHxyZXNpbiUyMGFydCUyMGRlY29yJTIwZ29sZCUyMHR1cnF1b2lzZXxlbnwwfHx8fDE3Njg5NDMzNDZ8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       15,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Gold Leaf Trinket Tray",
			Description: "Elegant resin tray adorned with genuine gold leaf flakes. Perfect for jewelry or decorative display.",
			PriceBBD:    180.00,
			PriceUSD:    90.00,
			Category:    "resin",
			Images:      []string{"https://images.unsplash.com/photo-1663739314425-4b0d05a8a068?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2Mzl8MHwxfHNlYXJjaHw0fHxyZXNpbiUyMGFydCUyMGRlY29yJTIwZ29sZCUyMHR1cnF1b2lzZXxlbnwwfHx8fDE3Njg5NDMzNDZ8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       10,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Midnight Purple Clock",
			Description: "A stunning wall clock featuring deep purple resin with gold flecks. Functional art for your space.",
			PriceBBD:    250.00,
			PriceUSD:    125.00,
			Category:    "resin",
			Images:      []string{"https://images.unsplash.com/photo-1718635310388-880694939769?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2Mzl8MHwxfHNlYXJjaHwyfHxyZXNpbiUyMGFydCUyMGRlY29yJTIwZ29sZCUyMHR1cnF1b2lzZXxlbnwwfHx8fDE3Njg5NDMzNDZ8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       5,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Lavender Dreams Bar",
			Description: "Gentle lavender-infused soap made with organic oils. Calming scent for relaxation.",
			PriceBBD:    24.00,
			PriceUSD:    12.00,
			Category:    "soaps",
			Images:      []string{"https://images.unsplash.com/photo-1622116500760-1753e5973ec7?crop=entropy&cs=srgb&fm=jpg&ixid=M3w4NTYxODh8MHwxfHNlYXJjaHw0fHxsdXh1cnklMjBoYW5kbWFkZSUyMHNvYXAlMjBkYXJrJTIwYmFja2dyb3VuZHxlbnwwfHx8fDE3Njg5NDMzNDJ8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       50,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Charcoal Detox Scrub",
			Description: "Deep cleansing activated charcoal body scrub with coconut oil. Exfoliates and purifies.",
			PriceBBD:    36.00,
			PriceUSD:    18.00,
			Category:    "soaps",
			Images:      []string{"https://images.pexels.com/photos/6621470/pexels-photo-6621470.jpeg"},
			Stock:       30,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Shea Butter Body Lotion",
			Description: "Rich moisturizing lotion with pure shea butter and vanilla essence. Nourishes dry skin.",
			PriceBBD:    48.00,
			PriceUSD:    24.00,
			Category:    "soaps",
			Images:      []string{"https://images.unsplash.com/photo-1620567645328-99d8d4b6d4e5?crop=entropy&cs=srgb&fm=jpg&ixid=M3w4NTYxODh8MHwxfHNlYXJjaHwzfHxsdXh1cnklMjBoYW5kbWFkZSUyMHNvYXAlMjBkYXJrJTIwYmFja2dyb3VuZHxlbnwwfHx8fDE3Njg5NDMzNDJ8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       25,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Caribbean Sunset Candle",
			Description: "Hand-poured soy candle with notes of hibiscus, mango, and warm amber. 40+ hours burn time.",
			PriceBBD:    64.00,
			PriceUSD:    32.00,
			Category:    "candles",
			Images:      []string{"https://images.unsplash.com/photo-1668086682339-f14262879c18?crop=entropy&cs=srgb&fm=jpg&ixid=M3w4NTYxOTF8MHwxfHNlYXJjaHwxfHxhcnRpc2FuJTIwc2NlbnRlZCUyMGNhbmRsZSUyMGRhcmslMjBtb29kJTIwZ29sZHxlbnwwfHx8fDE3Njg5NDMzNDR8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       20,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Midnight Oud Collection",
			Description: "Luxurious black vessel candle with deep oud and sandalwood fragrance. Perfect for evening ambiance.",
			PriceBBD:    96.00,
			PriceUSD:    48.00,
			Category:    "candles",
			Images:      []string{"https://images.unsplash.com/photo-1651795426376-0e6adfd01f00?crop=entropy&cs=srgb&fm=jpg&ixid=M3w4NTYxOTF8MHwxfHNlYXJjaHwzfHxhcnRpc2FuJTIwc2NlbnRlZCUyMGNhbmRsZSUyMGRhcmslMjBtb29kJTIwZ29sZHxlbnwwfHx8fDE3Njg5NDMzNDR8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       15,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Vanilla Bean Trio",
			Description: "Set of three mini candles in warm vanilla scent. Perfect gift set or home warming collection.",
			PriceBBD:    72.00,
			PriceUSD:    36.00,
			Category:    "candles",
			Images:      []string{"https://images.unsplash.com/photo-1641837225643-f999493f6375?crop=entropy&cs=srgb&fm=jpg&ixid=M3w4NTYxOTF8MHwxfHNlYXJjaHw0fHxhcnRpc2FuJTIwc2NlbnRlZCUyMGNhbmRsZSUyMGRhcmslMjBtb29kJTIwZ29sZHxlbnwwfHx8fDE3Njg5NDMzNDR8MA&ixlib=rb-4.1.0&q=85"},
			Stock:       18,
			Featured:    true,
			CreatedAt:   now,
		},
	}
}
