package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leathstore/catalog-api/app/api"
	"github.com/leathstore/catalog-api/models"
)

type productPayload struct {
	CategoryID    uint             `json:"category_id" validate:"required"`
	SKU           string           `json:"sku" validate:"omitempty,max=64"`
	Type          string           `json:"type" validate:"required,oneof=clothes shoes"`
	NameEn        string           `json:"name_en" validate:"required,max=160"`
	NameAr        string           `json:"name_ar" validate:"required,max=160"`
	DescriptionEn string           `json:"description_en"`
	DescriptionAr string           `json:"description_ar"`
	Price         *decimal.Decimal `json:"price"`
	OldPrice      *decimal.Decimal `json:"old_price"`
	BadgeEn       string           `json:"badge_en" validate:"omitempty,max=40"`
	BadgeAr       string           `json:"badge_ar" validate:"omitempty,max=40"`
	Image         string           `json:"image" validate:"omitempty,max=255"`
	IsActive      *bool            `json:"is_active"`
}

// priceErrors covers the decimal fields the struct validator cannot express.
func (p productPayload) priceErrors() map[string]string {
	out := make(map[string]string)
	if p.Price == nil {
		out["price"] = "price is required"
	} else if p.Price.IsNegative() {
		out["price"] = "price must not be negative"
	}
	if p.OldPrice != nil && p.OldPrice.IsNegative() {
		out["old_price"] = "old_price must not be negative"
	}
	return out
}

// ProductRecord is the admin-facing product shape. Prices stay as exact
// decimal strings here; only the public catalog emits floats.
type ProductRecord struct {
	ID            string    `json:"id"`
	CategoryID    uint      `json:"category_id"`
	SKU           string    `json:"sku,omitempty"`
	Type          string    `json:"type"`
	NameEn        string    `json:"name_en"`
	NameAr        string    `json:"name_ar"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	Price         string    `json:"price"`
	OldPrice      *string   `json:"old_price"`
	BadgeEn       string    `json:"badge_en"`
	BadgeAr       string    `json:"badge_ar"`
	Image         string    `json:"image"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newProductRecord(p models.Product) ProductRecord {
	rec := ProductRecord{
		ID:            p.ID.String(),
		CategoryID:    p.CategoryID,
		Type:          string(p.Type),
		NameEn:        p.NameEn,
		NameAr:        p.NameAr,
		DescriptionEn: p.DescriptionEn,
		DescriptionAr: p.DescriptionAr,
		Price:         p.Price.StringFixed(2),
		BadgeEn:       p.BadgeEn,
		BadgeAr:       p.BadgeAr,
		Image:         p.Image,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.SKU != nil {
		rec.SKU = *p.SKU
	}
	if p.OldPrice.Valid {
		s := p.OldPrice.Decimal.StringFixed(2)
		rec.OldPrice = &s
	}
	return rec
}

func (h *AdminHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAllProducts()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	records := make([]ProductRecord, len(products))
	for i, p := range products {
		records[i] = newProductRecord(p)
	}
	api.WriteJSON(w, http.StatusOK, records)
}

func (h *AdminHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeProductPayload(w, r)
	if !ok {
		return
	}

	// The category reference is resolved explicitly before the insert.
	if _, err := h.categories.GetCategoryByID(payload.CategoryID); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteFieldErrors(w, map[string]string{"category_id": "category not found"})
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	product := &models.Product{
		CategoryID:    payload.CategoryID,
		Type:          models.ProductType(payload.Type),
		NameEn:        payload.NameEn,
		NameAr:        payload.NameAr,
		DescriptionEn: payload.DescriptionEn,
		DescriptionAr: payload.DescriptionAr,
		Price:         *payload.Price,
		BadgeEn:       payload.BadgeEn,
		BadgeAr:       payload.BadgeAr,
		Image:         payload.Image,
		IsActive:      true,
	}
	applyProductOptionals(product, payload)

	if err := h.products.CreateProduct(product); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	api.WriteJSON(w, http.StatusCreated, newProductRecord(*product))
}

func (h *AdminHandler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	payload, ok := h.decodeProductPayload(w, r)
	if !ok {
		return
	}

	product, err := h.products.GetProductByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteError(w, http.StatusNotFound, "product not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch product")
		return
	}

	if payload.CategoryID != product.CategoryID {
		if _, err := h.categories.GetCategoryByID(payload.CategoryID); err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				api.WriteFieldErrors(w, map[string]string{"category_id": "category not found"})
				return
			}
			api.WriteError(w, http.StatusInternalServerError, "failed to fetch category")
			return
		}
	}

	product.CategoryID = payload.CategoryID
	product.Type = models.ProductType(payload.Type)
	product.NameEn = payload.NameEn
	product.NameAr = payload.NameAr
	product.DescriptionEn = payload.DescriptionEn
	product.DescriptionAr = payload.DescriptionAr
	product.Price = *payload.Price
	product.OldPrice = decimal.NullDecimal{}
	product.BadgeEn = payload.BadgeEn
	product.BadgeAr = payload.BadgeAr
	product.Image = payload.Image
	product.SKU = nil
	applyProductOptionals(product, payload)
	if payload.IsActive != nil {
		product.IsActive = *payload.IsActive
	}

	if err := h.products.UpdateProduct(product); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	api.WriteJSON(w, http.StatusOK, newProductRecord(*product))
}

func (h *AdminHandler) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	switch err := h.products.DeleteProduct(id); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, models.ErrProductNotFound):
		api.WriteError(w, http.StatusNotFound, "product not found")
	default:
		api.WriteError(w, http.StatusInternalServerError, "failed to delete product")
	}
}

// decodeProductPayload decodes and validates the request body, writing the
// error response itself when validation fails.
func (h *AdminHandler) decodeProductPayload(w http.ResponseWriter, r *http.Request) (productPayload, bool) {
	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return payload, false
	}

	fields := make(map[string]string)
	if err := h.validate.Struct(payload); err != nil {
		fields = fieldErrors(err)
	}
	for k, v := range payload.priceErrors() {
		fields[k] = v
	}
	if len(fields) > 0 {
		api.WriteFieldErrors(w, fields)
		return payload, false
	}

	return payload, true
}

func applyProductOptionals(product *models.Product, payload productPayload) {
	if payload.SKU != "" {
		sku := payload.SKU
		product.SKU = &sku
	}
	if payload.OldPrice != nil {
		product.OldPrice = decimal.NullDecimal{Decimal: *payload.OldPrice, Valid: true}
	}
}
