package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perennia/storefront/internal/model"
)

func TestCreateOrderTotalsAndStock(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	coaster := env.seedProduct(t, "Coaster", "resin", 120.00, 60.00, 10, true)
	soap := env.seedProduct(t, "Soap", "soaps", 24.10, 12.05, 50, false)
	h := NewOrderHandler(env.cfg, env.orders, env.products, env.payments, nil)

	body := fmt.Sprintf(`{"items":[{"product_id":%q,"quantity":2},{"product_id":%q,"quantity":3}],"shipping_address":"1 Bay St","city":"Bridgetown","phone":"246-555-0100"}`,
		coaster.ID, soap.ID)
	c, rec := env.jsonCtx(http.MethodPost, "/api/orders", body)
	asUser(c, u)
	require.NoError(t, h.CreateOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var order model.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, 312.30, order.TotalBBD)
	assert.Equal(t, 156.15, order.TotalUSD)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "Barbados", order.Country)
	assert.Equal(t, "stripe", order.PaymentMethod)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Coaster", order.Items[0].ProductName)
	assert.Equal(t, 60.00, order.Items[0].PriceUSD)

	// Stock is reserved at order time.
	storedCoaster, err := env.products.GetByID(context.Background(), coaster.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, storedCoaster.Stock)
	storedSoap, err := env.products.GetByID(context.Background(), soap.ID)
	require.NoError(t, err)
	assert.Equal(t, 47, storedSoap.Stock)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	p := env.seedProduct(t, "Clock", "resin", 250, 125, 1, false)
	h := NewOrderHandler(env.cfg, env.orders, env.products, env.payments, nil)

	body := fmt.Sprintf(`{"items":[{"product_id":%q,"quantity":2}]}`, p.ID)
	c, rec := env.jsonCtx(http.MethodPost, "/api/orders", body)
	asUser(c, u)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient stock for Clock")

	// The rejected item's stock is untouched.
	stored, err := env.products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Stock)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	h := NewOrderHandler(env.cfg, env.orders, env.products, env.payments, nil)

	c, rec := env.jsonCtx(http.MethodPost, "/api/orders",
		`{"items":[{"product_id":"ghost","quantity":1}]}`)
	asUser(c, u)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "product ghost not found")
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "shopper@example.com", false)
	p := env.seedProduct(t, "Coaster", "resin", 120, 60, 10, true)
	h := NewOrderHandler(env.cfg, env.orders, env.products, env.payments, nil)

	body := fmt.Sprintf(`{"items":[{"product_id":%q,"quantity":0}]}`, p.ID)
	c, rec := env.jsonCtx(http.MethodPost, "/api/orders", body)
	asUser(c, u)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "quantity must be at least 1")
}

func TestGetOrderOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner@example.com", false)
	stranger := env.seedUser(t, "stranger@example.com", false)
	admin := env.seedUser(t, "admin@example.com", true)
	order := env.seedOrder(t, owner, 50)
	h := NewOrderHandler(env.cfg, env.orders, env.products, env.payments, nil)

	get := func(u model.User) int {
		c, rec := env.jsonCtx(http.MethodGet, "/api/orders/"+order.ID, "")
		setParam(c, "id", order.ID)
		asUser(c, u)
		require.NoError(t, h.GetOrder(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, get(owner))
	assert.Equal(t, http.StatusForbidden, get(stranger))
	assert.Equal(t, http.StatusOK, get(admin))
}

func TestListMyOrders(t *testing.T) {
	env := newTestEnv(t)
	me := env.seedUser(t, "me@example.com", false)
	other := env.seedUser(t, "other@example.com", false)
	env.seedOrder(t, me, 10)
	env.seedOrder(t, other, 20)
	env.seedOrder(t, me, 30)
	h := NewOrderHandler(env.cfg, env.orders, env.products, env.payments, nil)

	c, rec := env.jsonCtx(http.MethodGet, "/api/orders", "")
	asUser(c, me)
	require.NoError(t, h.ListMyOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []model.Order
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, me.ID, o.UserID)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "owner@example.com", false)
	order := env.seedOrder(t, u, 50)
	h := NewOrderHandler(env.cfg, env.orders, env.products, env.payments, nil)

	c, rec := env.jsonCtx(http.MethodPut, "/api/admin/orders/"+order.ID+"/status", `{"status":"teleported"}`)
	setParam(c, "id", order.ID)
	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid status")

	c, rec = env.jsonCtx(http.MethodPut, "/api/admin/orders/"+order.ID+"/status", `{"status":"shipped"}`)
	setParam(c, "id", order.ID)
	require.NoError(t, h.UpdateOrderStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status updated")

	stored, err := env.orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, stored.Status)

	c, rec = env.jsonCtx(http.MethodPut, "/api/admin/orders/ghost/status", `{"status":"shipped"}`)
	setParam(c, "id", "ghost")
	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
