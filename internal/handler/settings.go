package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/perennia/storefront/internal/model"
	"github.com/perennia/storefront/internal/repository"
	"github.com/perennia/storefront/internal/store"
)

// SiteHandler serves the site settings singleton and the contact form.
type SiteHandler struct {
	Settings *repository.SettingsRepo
	Contacts *repository.ContactRepo
}

func NewSiteHandler(s *repository.SettingsRepo, c *repository.ContactRepo) *SiteHandler {
	return &SiteHandler{Settings: s, Contacts: c}
}

// GetSettings handles GET /api/settings.  When no settings document
// exists yet the fixed default template is persisted and returned, so
// the first public read bootstraps the document.
func (h *SiteHandler) GetSettings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	settings, err := h.Settings.Get(ctx)
	if err == store.ErrNotFound {
		settings = model.DefaultSiteSettings()
		if err := h.Settings.Insert(ctx, &settings); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create settings failed"})
		}
		return c.JSON(http.StatusOK, settings)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load settings failed"})
	}
	return c.JSON(http.StatusOK, settings)
}

// Update payloads replace sub-objects wholesale: when a sub-object key is
// present, its omitted sub-fields store the parse template value below,
// never a Go zero value, and never the currently stored value.  The parse
// templates intentionally differ from the first-read defaults in the hero
// and about image URLs and the about content.
func updateHeroTemplate() model.HeroSection {
	return model.HeroSection{
		Tagline:     "Handcrafted in Barbados",
		Title:       "Luxury Artisan",
		Subtitle:    "Gifts & Décor",
		Description: "Discover our collection of handcrafted resin art, natural body care, and artisan candles. Each piece crafted with love and Caribbean spirit.",
	}
}

func updateAboutTemplate() model.AboutSection {
	return model.AboutSection{
		Title:   "Crafted with Love, Inspired by the Caribbean",
		Content: "Perennia was born from a deep passion for artistry and the enchanting beauty of Barbados. What started as a personal creative journey has blossomed into a celebration of Caribbean craftsmanship.",
		Quote:   "Every piece tells a story of Caribbean beauty and timeless elegance.",
	}
}

func updateContactTemplate() model.ContactInfo {
	return model.ContactInfo{
		Address: "Bridgetown, Barbados",
		Phone:   "+1 (246) 123-4567",
		Email:   "info@perennia.bb",
	}
}

func updateThemeTemplate() model.ThemeColors {
	return model.ThemeColors{
		Primary:       "#D4AF37",
		Secondary:     "#40E0D0",
		Accent:        "#4A0E5C",
		Background:    "#050505",
		Surface:       "#0F0F0F",
		TextPrimary:   "#F5F5F5",
		TextSecondary: "#A3A3A3",
	}
}

func updateLayoutTemplate() model.LayoutSettings {
	return model.LayoutSettings{
		ShowHero:         true,
		ShowCategories:   true,
		ShowFeatured:     true,
		ShowAboutSnippet: true,
		ShowNewsletter:   true,
		NavbarStyle:      "glass",
		FooterStyle:      "full",
		ProductCardStyle: "default",
	}
}

// settingsUpdateFields turns a raw update payload into the $set document.
// Absent keys and explicit nulls leave the stored value untouched.  For a
// present sub-object the template is decoded over, so only the provided
// sub-fields diverge from it.  Unknown keys are ignored.
func settingsUpdateFields(body []byte) (bson.M, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	fields := bson.M{}
	for key, msg := range raw {
		if string(msg) == "null" {
			continue
		}
		switch key {
		case "business_name", "tagline", "logo_url", "footer_text":
			var s string
			if err := json.Unmarshal(msg, &s); err != nil {
				return nil, err
			}
			fields[key] = s
		case "social_links":
			var v model.SocialLinks
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, err
			}
			fields[key] = v
		case "contact_info":
			v := updateContactTemplate()
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, err
			}
			fields[key] = v
		case "hero_section":
			v := updateHeroTemplate()
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, err
			}
			fields[key] = v
		case "about_section":
			v := updateAboutTemplate()
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, err
			}
			fields[key] = v
		case "theme_colors":
			v := updateThemeTemplate()
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, err
			}
			fields[key] = v
		case "layout_settings":
			v := updateLayoutTemplate()
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, err
			}
			fields[key] = v
		}
	}
	return fields, nil
}

// UpdateSettings handles PUT /api/admin/settings.  Only fields present in
// the payload are applied.  If the settings document does not exist yet
// the provided fields are inserted as a new document (upsert).
func (h *SiteHandler) UpdateSettings(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	fields, err := settingsUpdateFields(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no data to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	matched, err := h.Settings.Update(ctx, fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update settings failed"})
	}
	if !matched {
		fields["id"] = model.SiteSettingsID
		if err := h.Settings.InsertFields(ctx, fields); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create settings failed"})
		}
	}

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load settings failed"})
	}
	return c.JSON(http.StatusOK, settings)
}
