package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perennia/storefront/internal/model"
)

func TestListReviewsEmpty(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodGet, "/api/products/"+p.ID+"/reviews", "")
	setParam(c, "id", p.ID)
	require.NoError(t, h.ListReviews(c))
	require.Equal(t, http.StatusOK, rec.Code)
	// An empty list serializes as [], never null.
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateReviewSnapshotsDisplayName(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	u.FirstName = "Maria"
	u.LastName = "Greaves"
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPost, "/api/products/"+p.ID+"/reviews",
		`{"rating":5,"comment":"beautiful work"}`)
	setParam(c, "id", p.ID)
	asUser(c, u)
	require.NoError(t, h.CreateReview(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.Review
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Maria G.", resp.UserName)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, p.ID, resp.ProductID)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewCatalogHandler(env.products, env.reviews)

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`} {
		c, rec := env.jsonCtx(http.MethodPost, "/api/products/"+p.ID+"/reviews", body)
		setParam(c, "id", p.ID)
		asUser(c, u)
		require.NoError(t, h.CreateReview(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "rating must be between 1 and 5")
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPost, "/api/products/nope/reviews", `{"rating":4}`)
	setParam(c, "id", "nope")
	asUser(c, u)
	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReviewOncePerUser(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewCatalogHandler(env.products, env.reviews)

	c, rec := env.jsonCtx(http.MethodPost, "/api/products/"+p.ID+"/reviews", `{"rating":4}`)
	setParam(c, "id", p.ID)
	asUser(c, u)
	require.NoError(t, h.CreateReview(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = env.jsonCtx(http.MethodPost, "/api/products/"+p.ID+"/reviews", `{"rating":2}`)
	setParam(c, "id", p.ID)
	asUser(c, u)
	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "you already reviewed this product")

	// A different user can still review the same product.
	other := env.seedUser(t, "other@example.com", false)
	c, rec = env.jsonCtx(http.MethodPost, "/api/products/"+p.ID+"/reviews", `{"rating":3}`)
	setParam(c, "id", p.ID)
	asUser(c, other)
	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
