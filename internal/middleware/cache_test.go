package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perennia/storefront/internal/config"
)

func cacheKeyFor(strategy, target string) string {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	// Parameterized routes resolve to the same registered pattern for
	// every id; the key must not depend on it.
	c.SetPath("/api/products/:id")
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: strategy}
	return cacheKeyFrom(cfg, c)
}

func TestCacheKeyDistinguishesPathParams(t *testing.T) {
	for _, strategy := range []string{"route", "method_route", "method_route_query", "route_query"} {
		a := cacheKeyFor(strategy, "/api/products/product-A")
		b := cacheKeyFor(strategy, "/api/products/product-B")
		assert.NotEqual(t, a, b, "strategy %s must key on the concrete path", strategy)
	}
}

func TestCacheKeyStable(t *testing.T) {
	a := cacheKeyFor("route_query", "/api/products/product-A?featured=true")
	b := cacheKeyFor("route_query", "/api/products/product-A?featured=true")
	assert.Equal(t, a, b)
}

func TestCacheKeyQueryStrategy(t *testing.T) {
	withQuery := cacheKeyFor("route_query", "/api/products/product-A?category=resin")
	without := cacheKeyFor("route_query", "/api/products/product-A")
	assert.NotEqual(t, withQuery, without)

	// The plain route strategy ignores the query on purpose.
	a := cacheKeyFor("route", "/api/products/product-A?category=resin")
	b := cacheKeyFor("route", "/api/products/product-A")
	assert.Equal(t, a, b)
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	body := []byte(`{"id":"product-A"}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, echo.MIMEApplicationJSON, gotHdr.Get(echo.HeaderContentType))
	assert.Equal(t, body, gotBody)

	_, _, _, ok = decodePayload([]byte("short"))
	assert.False(t, ok)
}
