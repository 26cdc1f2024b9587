package catalog

import (
	"net/http"
	"strings"

	"github.com/leathstore/catalog-api/models"
)

// LocalizedText carries the two storefront languages side by side.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

type CategoryResponse struct {
	ID    uint          `json:"id"`
	Slug  string        `json:"slug"`
	Label LocalizedText `json:"label"`
}

type ProductResponse struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Name        LocalizedText  `json:"name"`
	Description LocalizedText  `json:"description"`
	PriceFull   float64        `json:"priceFull"`
	OldPrice    *float64       `json:"oldPrice"`
	Badge       *LocalizedText `json:"badge"`
	Image       *string        `json:"image"`
}

func NewCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Slug: c.Slug,
		Label: LocalizedText{
			En: c.NameEn,
			Ar: c.NameAr,
		},
	}
}

// NewProductResponse maps a stored product to its public shape. baseURL is
// the inbound request origin (scheme://host); when empty, image links stay
// relative.
func NewProductResponse(p models.Product, baseURL string) ProductResponse {
	resp := ProductResponse{
		ID:   p.ID.String(),
		Type: string(p.Type),
		Name: LocalizedText{
			En: p.NameEn,
			Ar: p.NameAr,
		},
		Description: LocalizedText{
			En: p.DescriptionEn,
			Ar: p.DescriptionAr,
		},
		PriceFull: p.Price.InexactFloat64(),
	}

	if p.OldPrice.Valid {
		v := p.OldPrice.Decimal.InexactFloat64()
		resp.OldPrice = &v
	}

	// Badge is null only when both language variants are absent.
	if p.BadgeEn != "" || p.BadgeAr != "" {
		resp.Badge = &LocalizedText{
			En: p.BadgeEn,
			Ar: p.BadgeAr,
		}
	}

	if p.Image != "" {
		u := imageURL(p.Image, baseURL)
		resp.Image = &u
	}

	return resp
}

func imageURL(path, baseURL string) string {
	rel := "/media/" + strings.TrimPrefix(path, "/")
	if baseURL == "" {
		return rel
	}
	return strings.TrimSuffix(baseURL, "/") + rel
}

// requestBaseURL reconstructs the inbound origin so image links come back
// fully qualified. A reverse proxy announces the external scheme via
// X-Forwarded-Proto.
func requestBaseURL(r *http.Request) string {
	if r.Host == "" {
		return ""
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host
}
