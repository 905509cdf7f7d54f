package model

// SiteSettingsID is the fixed identifier of the singleton settings document.
const SiteSettingsID = "main"

// SocialLinks holds the storefront's social media URLs.
type SocialLinks struct {
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Twitter   string `bson:"twitter" json:"twitter"`
	TikTok    string `bson:"tiktok" json:"tiktok"`
	WhatsApp  string `bson:"whatsapp" json:"whatsapp"`
	YouTube   string `bson:"youtube" json:"youtube"`
	Pinterest string `bson:"pinterest" json:"pinterest"`
}

// ContactInfo holds the business contact details shown in the footer.
type ContactInfo struct {
	Address string `bson:"address" json:"address"`
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
}

// HeroSection is the landing page hero copy.
type HeroSection struct {
	Tagline     string `bson:"tagline" json:"tagline"`
	Title       string `bson:"title" json:"title"`
	Subtitle    string `bson:"subtitle" json:"subtitle"`
	Description string `bson:"description" json:"description"`
	ImageURL    string `bson:"image_url" json:"image_url"`
}

// AboutSection is the about page copy.
type AboutSection struct {
	Title    string `bson:"title" json:"title"`
	Content  string `bson:"content" json:"content"`
	Quote    string `bson:"quote" json:"quote"`
	ImageURL string `bson:"image_url" json:"image_url"`
}

// ThemeColors is the storefront palette as hex strings.
type ThemeColors struct {
	Primary       string `bson:"primary" json:"primary"`
	Secondary     string `bson:"secondary" json:"secondary"`
	Accent        string `bson:"accent" json:"accent"`
	Background    string `bson:"background" json:"background"`
	Surface       string `bson:"surface" json:"surface"`
	TextPrimary   string `bson:"text_primary" json:"text_primary"`
	TextSecondary string `bson:"text_secondary" json:"text_secondary"`
}

// LayoutSettings toggles frontend sections and picks component styles.
type LayoutSettings struct {
	ShowHero         bool   `bson:"show_hero" json:"show_hero"`
	ShowCategories   bool   `bson:"show_categories" json:"show_categories"`
	ShowFeatured     bool   `bson:"show_featured" json:"show_featured"`
	ShowAboutSnippet bool   `bson:"show_about_snippet" json:"show_about_snippet"`
	ShowNewsletter   bool   `bson:"show_newsletter" json:"show_newsletter"`
	NavbarStyle      string `bson:"navbar_style" json:"navbar_style"`      // glass, solid, transparent
	FooterStyle      string `bson:"footer_style" json:"footer_style"`      // full, minimal
	ProductCardStyle string `bson:"product_card_style" json:"product_card_style"` // default, minimal, detailed
}

// SiteSettings is the singleton configuration document in the
// `site_settings` collection, keyed by SiteSettingsID.  Sub-objects are
// replaced wholesale on update; there is no field-level merge inside them.
type SiteSettings struct {
	ID             string         `bson:"id" json:"id"`
	BusinessName   string         `bson:"business_name" json:"business_name"`
	Tagline        string         `bson:"tagline" json:"tagline"`
	LogoURL        string         `bson:"logo_url" json:"logo_url"`
	SocialLinks    SocialLinks    `bson:"social_links" json:"social_links"`
	ContactInfo    ContactInfo    `bson:"contact_info" json:"contact_info"`
	HeroSection    HeroSection    `bson:"hero_section" json:"hero_section"`
	AboutSection   AboutSection   `bson:"about_section" json:"about_section"`
	FooterText     string         `bson:"footer_text" json:"footer_text"`
	ThemeColors    ThemeColors    `bson:"theme_colors" json:"theme_colors"`
	LayoutSettings LayoutSettings `bson:"layout_settings" json:"layout_settings"`
}

// DefaultSiteSettings returns the document persisted on first public read
// when no settings exist yet.  The copy and palette are the launch values
// of the Perennia storefront.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:           SiteSettingsID,
		BusinessName: "Perennia",
		Tagline:      "Handcrafted Luxury from Barbados",
		LogoURL:      "/logo-transparent.png",
		SocialLinks:  SocialLinks{},
		ContactInfo: ContactInfo{
			Address: "Bridgetown, Barbados",
			Phone:   "+1 (246) 123-4567",
			Email:   "info@perennia.bb",
		},
		HeroSection: HeroSection{
			Tagline:     "Handcrafted in Barbados",
			Title:       "Luxury Artisan",
			Subtitle:    "Gifts & Décor",
			Description: "Discover our collection of handcrafted resin art, natural body care, and artisan candles. Each piece crafted with love and Caribbean spirit.",
			ImageURL:    "https://images.unsplash.com/photo-1668086682339-f14262879c18?crop=entropy&cs=srgb&fm=jpg&ixid=M3w4NTYxOTF8MHwxfHNlYXJjaHwxfHxhcnRpc2FuJTIwc2NlbnRlZCUyMGNhbmRsZSUyMGRhcmslMjBtb29kJTIwZ29sZHxlbnwwfHx8fDE3Njg5NDMzNDR8MA&ixlib=rb-4.1.0&q=85",
		},
		AboutSection: AboutSection{
			Title:    "Crafted with Love, Inspired by the Caribbean",
			Content:  "Perennia was born from a deep passion for artistry and the enchanting beauty of Barbados. What started as a personal creative journey has blossomed into a celebration of Caribbean craftsmanship.\n\nBased in the vibrant island of Barbados, Perennia represents more than just handcrafted goods—it's a testament to the rich artistic heritage of the Caribbean. Each resin piece captures the turquoise waters of our beaches, each candle carries the warmth of our tropical sunsets.\n\nOur body care line is crafted with natural ingredients, drawing from the healing traditions that have been passed down through generations. We believe that luxury should be accessible, sustainable, and deeply personal.",
			Quote:    "Every piece tells a story of Caribbean beauty and timeless elegance.",
			ImageURL: "https://images.unsplash.com/photo-1759794108525-94ff060da692?crop=entropy&cs=srgb&fm=jpg&ixid=M3w4NTYxODh8MHwxfHNlYXJjaHwyfHxsdXh1cnklMjBoYW5kbWFkZSUyMHNvYXAlMjBkYXJrJTIwYmFja2dyb3VuZHxlbnwwfHx8fDE3Njg5NDMzNDJ8MA&ixlib=rb-4.1.0&q=85",
		},
		FooterText: "Handcrafted luxury from Barbados. Each piece tells a story of Caribbean artistry and timeless elegance.",
		ThemeColors: ThemeColors{
			Primary:       "#D4AF37",
			Secondary:     "#40E0D0",
			Accent:        "#4A0E5C",
			Background:    "#050505",
			Surface:       "#0F0F0F",
			TextPrimary:   "#F5F5F5",
			TextSecondary: "#A3A3A3",
		},
		LayoutSettings: LayoutSettings{
			ShowHero:         true,
			ShowCategories:   true,
			ShowFeatured:     true,
			ShowAboutSnippet: true,
			ShowNewsletter:   true,
			NavbarStyle:      "glass",
			FooterStyle:      "full",
			ProductCardStyle: "default",
		},
	}
}
