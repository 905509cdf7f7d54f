package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/perennia/storefront/internal/config"
	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/repository"
	"github.com/perennia/storefront/internal/store"
	"github.com/perennia/storefront/internal/utils"
)

// testEnv wires the full repository stack over the in-memory store so
// handlers can be exercised without MongoDB.
type testEnv struct {
	e        *echo.Echo
	cfg      config.Config
	users    *repository.UserRepo
	products *repository.ProductRepo
	reviews  *repository.ReviewRepo
	orders   *repository.OrderRepo
	payments *repository.PaymentRepo
	settings *repository.SettingsRepo
	contacts *repository.ContactRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := store.NewMemory()
	return &testEnv{
		e: echo.New(),
		cfg: config.Config{
			Env:          "test",
			JWTSecret:    "handler-test-secret",
			TokenTTLDays: 7,
			BcryptCost:   bcrypt.MinCost,
		},
		users:    repository.NewUserRepo(st),
		products: repository.NewProductRepo(st),
		reviews:  repository.NewReviewRepo(st),
		orders:   repository.NewOrderRepo(st),
		payments: repository.NewPaymentRepo(st),
		settings: repository.NewSettingsRepo(st),
		contacts: repository.NewContactRepo(st),
	}
}

// jsonCtx builds an Echo context for a JSON request.  An empty body is
// allowed for GET/DELETE style calls.
func (env *testEnv) jsonCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.e.NewContext(r, rec), rec
}

// asUser injects an authenticated user into the context under the same
// key middleware.Auth uses, so handlers can be called without the full
// middleware chain.
func asUser(c echo.Context, u model.User) {
	c.Set("user", u)
}

func setParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func (env *testEnv) seedUser(t *testing.T, email string, admin bool) model.User {
	t.Helper()
	hash, err := utils.HashPassword("pass1234", env.cfg.BcryptCost)
	require.NoError(t, err)
	u := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "Person",
		IsAdmin:      admin,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, env.users.Create(context.Background(), &u))
	return u
}

func (env *testEnv) seedProduct(t *testing.T, name, category string, priceBBD, priceUSD float64, stock int, featured bool) model.Product {
	t.Helper()
	p := model.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		PriceBBD:  priceBBD,
		PriceUSD:  priceUSD,
		Images:    []string{"https://example.com/" + name + ".jpg"},
		Stock:     stock,
		Featured:  featured,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, env.products.Insert(context.Background(), &p))
	return p
}

func (env *testEnv) seedOrder(t *testing.T, user model.User, totalUSD float64) model.Order {
	t.Helper()
	o := model.Order{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		UserEmail:     user.Email,
		Items:         []model.OrderItem{},
		TotalBBD:      totalUSD * 2,
		TotalUSD:      totalUSD,
		Country:       "Barbados",
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		PaymentMethod: "stripe",
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, env.orders.Insert(context.Background(), &o))
	return o
}
