package handler

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/perennia/storefront/internal/middleware"
	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/payment"
	"github.com/perennia/storefront/internal/queue"
	queue_publisher "github.com/perennia/storefront/internal/service"
	"github.com/perennia/storefront/internal/store"
)

type checkoutReq struct {
	OrderID   string `json:"order_id"`
	OriginURL string `json:"origin_url"`
}

// CreateCheckoutSession handles POST /api/checkout/create-session.  The
// hosted session always charges the order's USD total regardless of the
// storefront currency the customer browsed in.  A new transaction row is
// recorded per attempt, so retried checkouts accumulate rows against the
// same order.
func (h *OrderHandler) CreateCheckoutSession(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	order, err := h.Orders.GetByID(ctx, req.OrderID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
	}
	if order.UserID != user.ID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order already paid"})
	}
	if h.Provider == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment not configured"})
	}

	origin := strings.TrimRight(req.OriginURL, "/")
	session, err := h.Provider.CreateSession(ctx, payment.SessionRequest{
		Amount:      order.TotalUSD,
		Currency:    "usd",
		Description: fmt.Sprintf("Perennia order %s", order.ID),
		SuccessURL:  origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/checkout/cancel?order_id=" + order.ID,
		Metadata: map[string]string{
			"order_id":   order.ID,
			"user_id":    user.ID,
			"user_email": user.Email,
		},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create checkout session failed"})
	}

	tx := model.PaymentTransaction{
		ID:            uuid.NewString(),
		SessionID:     session.ID,
		OrderID:       order.ID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		Amount:        order.TotalUSD,
		Currency:      "usd",
		PaymentStatus: model.PaymentStatusInitiated,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.Payments.Insert(ctx, &tx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "record transaction failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"url": session.URL, "session_id": session.ID})
}

// GetCheckoutStatus handles GET /api/checkout/status/:session_id.  The
// provider is queried live on every call.  When the provider reports
// "paid" and the stored transaction is not yet paid, the transaction is
// updated and the order cascades to paid/processing in the same call.
// Once a transaction is "paid" that value is final: a later poll seeing
// a different provider status does not overwrite it.
func (h *OrderHandler) GetCheckoutStatus(c echo.Context) error {
	if _, ok := middleware.CurrentUser(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	if h.Provider == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment not configured"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sessionID := c.Param("session_id")
	status, err := h.Provider.SessionStatus(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load checkout status failed"})
	}

	tx, err := h.Payments.GetBySession(ctx, sessionID)
	if err == nil && tx.PaymentStatus != model.PaymentStatusPaid {
		if err := h.Payments.SetStatusBySession(ctx, sessionID, status.PaymentStatus); err != nil {
			log.Printf("checkout: update transaction %s failed: %v", sessionID, err)
		}
		if status.PaymentStatus == model.PaymentStatusPaid {
			if _, err := h.Orders.MarkPaid(ctx, tx.OrderID); err != nil {
				log.Printf("checkout: mark order %s paid failed: %v", tx.OrderID, err)
			}
			h.publishPaymentConfirmed(tx, "poll")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":         status.Status,
		"payment_status": status.PaymentStatus,
		"amount_total":   status.AmountTotal,
		"currency":       status.Currency,
	})
}

// StripeWebhook handles POST /api/webhook/stripe.  The handler always
// acknowledges receipt so the provider does not build a retry backlog;
// internal failures are logged and swallowed.
func (h *OrderHandler) StripeWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Printf("webhook: read body failed: %v", err)
		return c.JSON(http.StatusOK, echo.Map{"received": true})
	}
	signature := c.Request().Header.Get("Stripe-Signature")

	if h.Provider == nil {
		log.Printf("webhook: payment provider not configured, event dropped")
		return c.JSON(http.StatusOK, echo.Map{"received": true})
	}

	event, err := h.Provider.ParseWebhook(body, signature)
	if err != nil {
		log.Printf("webhook: parse event failed: %v", err)
		return c.JSON(http.StatusOK, echo.Map{"received": true})
	}

	if event.PaymentStatus == model.PaymentStatusPaid {
		orderID := event.Metadata["order_id"]
		if orderID != "" {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
			defer cancel()
			if _, err := h.Orders.MarkPaid(ctx, orderID); err != nil {
				log.Printf("webhook: mark order %s paid failed: %v", orderID, err)
			}
			if err := h.Payments.MarkPaidByOrder(ctx, orderID); err != nil {
				log.Printf("webhook: mark transaction for order %s paid failed: %v", orderID, err)
			}
			h.publishPaymentConfirmed(model.PaymentTransaction{OrderID: orderID}, "webhook")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}

func (h *OrderHandler) publishPaymentConfirmed(tx model.PaymentTransaction, source string) {
	go func() {
		_ = queue_publisher.PublishPaymentConfirmed(context.Background(), queue.PaymentConfirmedEvent{
			OrderID:     tx.OrderID,
			SessionID:   tx.SessionID,
			Amount:      tx.Amount,
			Currency:    tx.Currency,
			Source:      source,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()
}
