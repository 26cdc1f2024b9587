package catalog

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/leathstore/catalog-api/models"
)

func TestNewProductResponseBadgeRule(t *testing.T) {
	base := models.Product{
		Type:   models.TypeClothes,
		NameEn: "Shirt",
		NameAr: "قميص",
		Price:  decimal.NewFromFloat(29.50),
	}

	t.Run("both absent is null", func(t *testing.T) {
		resp := NewProductResponse(base, "")
		assert.Nil(t, resp.Badge)
	})

	t.Run("english only keeps both keys", func(t *testing.T) {
		p := base
		p.BadgeEn = "Sale"
		resp := NewProductResponse(p, "")
		assert.NotNil(t, resp.Badge)
		assert.Equal(t, "Sale", resp.Badge.En)
		assert.Equal(t, "", resp.Badge.Ar)
	})

	t.Run("arabic only keeps both keys", func(t *testing.T) {
		p := base
		p.BadgeAr = "تخفيض"
		resp := NewProductResponse(p, "")
		assert.NotNil(t, resp.Badge)
		assert.Equal(t, "", resp.Badge.En)
		assert.Equal(t, "تخفيض", resp.Badge.Ar)
	})
}

func TestNewProductResponseImageURL(t *testing.T) {
	p := models.Product{
		Type:   models.TypeShoes,
		NameEn: "Boots",
		NameAr: "حذاء",
		Price:  decimal.NewFromFloat(89.90),
		Image:  "products/boots.jpg",
	}

	t.Run("absolute with base URL", func(t *testing.T) {
		resp := NewProductResponse(p, "https://shop.example")
		assert.NotNil(t, resp.Image)
		assert.Equal(t, "https://shop.example/media/products/boots.jpg", *resp.Image)
	})

	t.Run("relative without base URL", func(t *testing.T) {
		resp := NewProductResponse(p, "")
		assert.NotNil(t, resp.Image)
		assert.Equal(t, "/media/products/boots.jpg", *resp.Image)
	})

	t.Run("no image is null", func(t *testing.T) {
		bare := p
		bare.Image = ""
		resp := NewProductResponse(bare, "https://shop.example")
		assert.Nil(t, resp.Image)
	})
}

func TestNewProductResponsePrices(t *testing.T) {
	p := models.Product{
		Type:   models.TypeClothes,
		NameEn: "Hoodie",
		NameAr: "هودي",
		Price:  decimal.RequireFromString("39.99"),
	}

	resp := NewProductResponse(p, "")
	assert.Equal(t, 39.99, resp.PriceFull)
	assert.Nil(t, resp.OldPrice)

	p.OldPrice = decimal.NewNullDecimal(decimal.RequireFromString("55.00"))
	resp = NewProductResponse(p, "")
	assert.NotNil(t, resp.OldPrice)
	assert.Equal(t, 55.00, *resp.OldPrice)
}

func TestRequestBaseURL(t *testing.T) {
	t.Run("plain http", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://shop.example/products/", nil)
		assert.Equal(t, "http://shop.example", requestBaseURL(r))
	})

	t.Run("tls", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://shop.example/products/", nil)
		r.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https://shop.example", requestBaseURL(r))
	})

	t.Run("forwarded proto wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://shop.example/products/", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		assert.Equal(t, "https://shop.example", requestBaseURL(r))
	})
}
