package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/repository"
	"github.com/perennia/storefront/internal/store"
)

// CatalogHandler serves the public catalog and the admin product CRUD,
// plus product reviews.  Rating figures are derived from the reviews
// collection on every read.
type CatalogHandler struct {
	Products *repository.ProductRepo
	Reviews  *repository.ReviewRepo
}

func NewCatalogHandler(p *repository.ProductRepo, r *repository.ReviewRepo) *CatalogHandler {
	return &CatalogHandler{Products: p, Reviews: r}
}

// productResp is a product enriched with its derived rating figures.
type productResp struct {
	model.Product
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

func (h *CatalogHandler) withRating(ctx context.Context, p model.Product) (productResp, error) {
	avg, count, err := h.Reviews.RatingFor(ctx, p.ID)
	if err != nil {
		return productResp{}, err
	}
	return productResp{Product: p, AverageRating: avg, ReviewCount: count}, nil
}

// ListProducts handles GET /api/products.  The category and featured
// query parameters are exact-match filters applied only when present.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var category *string
	if v := c.QueryParam("category"); v != "" {
		category = &v
	}
	var featured *bool
	if v := c.QueryParam("featured"); v != "" {
		f, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "featured must be a boolean"})
		}
		featured = &f
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Products.List(ctx, category, featured)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list products failed"})
	}
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		resp, err := h.withRating(ctx, p)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load ratings failed"})
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load product failed"})
	}
	resp, err := h.withRating(ctx, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load ratings failed"})
	}
	return c.JSON(http.StatusOK, resp)
}

// ----- admin CRUD -----

type productCreateReq struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceBBD    float64  `json:"price_bbd"`
	PriceUSD    float64  `json:"price_usd"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}

// productUpdateReq uses pointer fields so absent JSON keys mean "leave
// unchanged".  There is no way to clear a field to null through this
// payload.
type productUpdateReq struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	PriceBBD    *float64  `json:"price_bbd"`
	PriceUSD    *float64  `json:"price_usd"`
	Category    *string   `json:"category"`
	Images      *[]string `json:"images"`
	Stock       *int      `json:"stock"`
	Featured    *bool     `json:"featured"`
}

func (r productUpdateReq) fields() bson.M {
	f := bson.M{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Description != nil {
		f["description"] = *r.Description
	}
	if r.PriceBBD != nil {
		f["price_bbd"] = *r.PriceBBD
	}
	if r.PriceUSD != nil {
		f["price_usd"] = *r.PriceUSD
	}
	if r.Category != nil {
		f["category"] = *r.Category
	}
	if r.Images != nil {
		f["images"] = *r.Images
	}
	if r.Stock != nil {
		f["stock"] = *r.Stock
	}
	if r.Featured != nil {
		f["featured"] = *r.Featured
	}
	return f
}

// CreateProduct handles POST /api/admin/products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req productCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Images == nil {
		req.Images = []string{}
	}
	p := model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		PriceBBD:    req.PriceBBD,
		PriceUSD:    req.PriceUSD,
		Category:    req.Category,
		Images:      req.Images,
		Stock:       req.Stock,
		Featured:    req.Featured,
		CreatedAt:   time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Products.Insert(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create product failed"})
	}
	return c.JSON(http.StatusOK, productResp{Product: p})
}

// UpdateProduct handles PUT /api/admin/products/:id.  Only fields present
// in the payload are applied; an effectively empty payload is rejected.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req productUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	fields := req.fields()
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no data to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id := c.Param("id")
	matched, err := h.Products.ApplyPartial(ctx, id, fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update product failed"})
	}
	if !matched {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}
	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load product failed"})
	}
	resp, err := h.withRating(ctx, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load ratings failed"})
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteProduct handles DELETE /api/admin/products/:id.  Reviews pointing
// at the deleted product are left in place.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.Products.Delete(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete product failed"})
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted"})
}
