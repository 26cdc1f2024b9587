package catalog

import (
	"net/http"
	"strconv"

	"github.com/leathstore/catalog-api/app/api"
	"github.com/leathstore/catalog-api/models"
)

type ProductProvider interface {
	GetVisibleProducts(filters models.ProductFilters) ([]models.Product, error)
}

type CategoryProvider interface {
	GetActiveCategories() ([]models.Category, error)
}

type CatalogHandler struct {
	products   ProductProvider
	categories CategoryProvider
}

func NewCatalogHandler(p ProductProvider, c CategoryProvider) *CatalogHandler {
	return &CatalogHandler{
		products:   p,
		categories: c,
	}
}

func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetActiveCategories()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = NewCategoryResponse(c)
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CatalogHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	var filters models.ProductFilters

	// The category parameter is dual-mode: an all-digits value is a numeric
	// id, anything else is a slug. Decided once here; the repository only
	// sees one of the two.
	if raw := r.URL.Query().Get("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cid := uint(id)
			filters.CategoryID = &cid
		} else {
			filters.CategorySlug = raw
		}
	}

	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := models.ParseProductType(raw)
		if err != nil {
			api.WriteFieldErrors(w, map[string]string{
				"type": "type must be clothes or shoes",
			})
			return
		}
		filters.Type = &t
	}

	products, err := h.products.GetVisibleProducts(filters)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	baseURL := requestBaseURL(r)
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = NewProductResponse(p, baseURL)
	}

	api.WriteJSON(w, http.StatusOK, response)
}
