package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/perennia/storefront/internal/middleware"
	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/repository"
	"github.com/perennia/storefront/internal/store"
)

type reviewCreateReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListReviews handles GET /api/products/:id/reviews.  Public; logged-in
// callers get no different view today but the optional authentication is
// wired through for when they do.
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.ListByProduct(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list reviews failed"})
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /api/products/:id/reviews.  One review per
// user per product; the reviewer's display name is snapshotted at write
// time and intentionally never updated afterwards.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	var req reviewCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	productID := c.Param("id")
	if _, err := h.Products.GetByID(ctx, productID); err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load product failed"})
	}

	review := model.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    user.ID,
		UserName:  displayName(user),
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Reviews.Insert(ctx, &review); err != nil {
		if err == repository.ErrDuplicateReview {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "you already reviewed this product"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	return c.JSON(http.StatusOK, review)
}

// displayName renders "First L." from the user's names.
func displayName(u model.User) string {
	name := u.FirstName
	if last := []rune(u.LastName); len(last) > 0 {
		name += " " + string(last[0]) + "."
	}
	return name
}
