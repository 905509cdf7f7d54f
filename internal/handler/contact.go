package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/perennia/storefront/internal/model"
)

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact handles POST /api/contact.  Messages are stored unread;
// there is no further validation beyond field presence.
func (h *SiteHandler) SubmitContact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}

	msg := model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
		Read:      false,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Contacts.Insert(ctx, &msg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save message failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message sent successfully"})
}

// ListContacts handles GET /api/admin/contacts.
func (h *SiteHandler) ListContacts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	messages, err := h.Contacts.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list messages failed"})
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}
	return c.JSON(http.StatusOK, messages)
}
