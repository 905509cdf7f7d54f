package handler

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/perennia/storefront/internal/config"
	"github.com/perennia/storefront/internal/middleware"
	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/payment"
	"github.com/perennia/storefront/internal/queue"
	"github.com/perennia/storefront/internal/repository"
	queue_publisher "github.com/perennia/storefront/internal/service"
	"github.com/perennia/storefront/internal/store"
)

// OrderHandler bundles everything the order and checkout endpoints need.
// Provider may be nil when Stripe is not configured; checkout endpoints
// then answer that payment is unavailable while plain order placement
// keeps working.
type OrderHandler struct {
	Cfg      config.Config
	Orders   *repository.OrderRepo
	Products *repository.ProductRepo
	Payments *repository.PaymentRepo
	Provider payment.Provider
}

func NewOrderHandler(cfg config.Config, o *repository.OrderRepo, p *repository.ProductRepo, pay *repository.PaymentRepo, provider payment.Provider) *OrderHandler {
	return &OrderHandler{Cfg: cfg, Orders: o, Products: p, Payments: pay, Provider: provider}
}

// ----- DTOs -----

type cartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderCreateReq struct {
	Items           []cartItem `json:"items"`
	ShippingAddress string     `json:"shipping_address"`
	City            string     `json:"city"`
	PostalCode      string     `json:"postal_code"`
	Country         string     `json:"country"`
	Phone           string     `json:"phone"`
	Notes           *string    `json:"notes"`
	PaymentMethod   string     `json:"payment_method"` // stripe or form
}

// CreateOrder handles POST /api/orders.  Items are processed in input
// order: each product is looked up, its stock checked, the running totals
// advanced, and the stock decremented immediately.  Stock is reserved at
// order-creation time, not at payment time.  The per-item writes are
// independent; a failure on a later item does not restore stock already
// taken for earlier ones.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	var req orderCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Country == "" {
		req.Country = "Barbados"
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "stripe"
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	items := make([]model.OrderItem, 0, len(req.Items))
	var totalBBD, totalUSD float64
	for _, item := range req.Items {
		product, err := h.Products.GetByID(ctx, item.ProductID)
		if err != nil {
			if err == store.ErrNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("product %s not found", item.ProductID)})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load product failed"})
		}
		if product.Stock < item.Quantity {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("insufficient stock for %s", product.Name)})
		}

		totalBBD += product.PriceBBD * float64(item.Quantity)
		totalUSD += product.PriceUSD * float64(item.Quantity)

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		// Snapshot name, prices and image so later catalog edits do
		// not rewrite this order.
		items = append(items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			PriceBBD:    product.PriceBBD,
			PriceUSD:    product.PriceUSD,
			Image:       image,
		})

		if err := h.Products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update stock failed"})
		}
	}

	order := model.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		UserEmail:       user.Email,
		Items:           items,
		TotalBBD:        round2(totalBBD),
		TotalUSD:        round2(totalUSD),
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		PostalCode:      req.PostalCode,
		Country:         req.Country,
		Phone:           req.Phone,
		Notes:           req.Notes,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.Orders.Insert(ctx, &order); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create order failed"})
	}

	// Broker publish happens off the request path; a dead broker never
	// fails an order.
	go func() {
		_ = queue_publisher.PublishOrderPlaced(context.Background(), queue.OrderPlacedEvent{
			OrderID:       order.ID,
			UserID:        order.UserID,
			UserEmail:     order.UserEmail,
			ItemCount:     len(order.Items),
			TotalBBD:      order.TotalBBD,
			TotalUSD:      order.TotalUSD,
			PaymentMethod: order.PaymentMethod,
			PlacedAt:      order.CreatedAt.Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, order)
}

// ListMyOrders handles GET /api/orders: the caller's orders, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByUser(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list orders failed"})
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.  Visible to its owner and to
// admins only.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	order, err := h.Orders.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
	}
	if order.UserID != user.ID && !user.IsAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
	}
	return c.JSON(http.StatusOK, order)
}

// ListAllOrders handles GET /api/admin/orders.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list orders failed"})
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	matched, err := h.Orders.SetStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	if !matched {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Status updated"})
}

// round2 rounds a currency total to two decimal places after summation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
