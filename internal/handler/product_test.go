package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perennia/storefront/internal/model"
)

func seedReview(t *testing.T, env *testEnv, productID, userID string, rating int) {
	t.Helper()
	r := model.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		UserName:  "Test P.",
		Rating:    rating,
		Comment:   "fine",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, env.reviews.Insert(context.Background(), &r))
}

func TestListProductsFilters(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	env.seedProduct(t, "Soap", "soaps", 24, 12, 50, false)
	env.seedProduct(t, "Candle", "candles", 64, 32, 20, true)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodGet, "/api/products?category=resin", "")
	require.NoError(t, h.ListProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []productResp
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Coaster", list[0].Name)

	c, rec = env.jsonCtx(http.MethodGet, "/api/products?featured=true", "")
	require.NoError(t, h.ListProducts(c))
	decodeBody(t, rec, &list)
	assert.Len(t, list, 2)

	c, rec = env.jsonCtx(http.MethodGet, "/api/products", "")
	require.NoError(t, h.ListProducts(c))
	decodeBody(t, rec, &list)
	assert.Len(t, list, 3)
}

func TestListProductsBadFeaturedParam(t *testing.T) {
	env := newTestEnv(t)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodGet, "/api/products?featured=maybe", "")
	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "featured must be a boolean")
}

func TestGetProductRatingAggregation(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	seedReview(t, env, p.ID, "u-1", 4)
	seedReview(t, env, p.ID, "u-2", 5)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodGet, "/api/products/"+p.ID, "")
	setParam(c, "id", p.ID)
	require.NoError(t, h.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productResp
	decodeBody(t, rec, &resp)
	assert.Equal(t, 4.5, resp.AverageRating)
	assert.Equal(t, 2, resp.ReviewCount)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodGet, "/api/products/nope", "")
	setParam(c, "id", "nope")
	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "product not found")
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPost, "/api/admin/products",
		`{"name":"New Candle","description":"smells great","price_bbd":64,"price_usd":32,"category":"candles","stock":5,"featured":true}`)
	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productResp
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "New Candle", resp.Name)
	assert.Zero(t, resp.ReviewCount)

	stored, err := env.products.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)
}

func TestCreateProductRequiresName(t *testing.T) {
	env := newTestEnv(t)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPost, "/api/admin/products", `{"price_bbd":10}`)
	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProductPartial(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPut, "/api/admin/products/"+p.ID, `{"stock":3}`)
	setParam(c, "id", p.ID)
	require.NoError(t, h.UpdateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := env.products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Coaster", stored.Name)
	assert.Equal(t, 120.0, stored.PriceBBD)
}

func TestUpdateProductEmptyPayload(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPut, "/api/admin/products/"+p.ID, `{}`)
	setParam(c, "id", p.ID)
	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no data to update")
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPut, "/api/admin/products/nope", `{"stock":3}`)
	setParam(c, "id", "nope")
	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodDelete, "/api/admin/products/"+p.ID, "")
	setParam(c, "id", p.ID)
	require.NoError(t, h.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted")

	c, rec = env.jsonCtx(http.MethodDelete, "/api/admin/products/"+p.ID, "")
	setParam(c, "id", p.ID)
	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
