package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/leathstore/catalog-api/models"
)

// --- Mock Repo ---

type MockProductRepo struct {
	SourceProducts []models.Product
	Err            error

	// Fields to capture call arguments
	calls       int
	lastFilters models.ProductFilters
}

func (m *MockProductRepo) GetVisibleProducts(filters models.ProductFilters) ([]models.Product, error) {
	m.calls++
	m.lastFilters = filters

	if m.Err != nil {
		return nil, m.Err
	}

	// Simulate the repository query
	var visible []models.Product
	for _, p := range m.SourceProducts {
		if !p.IsActive || !p.Category.IsActive {
			continue
		}
		if filters.CategoryID != nil && p.CategoryID != *filters.CategoryID {
			continue
		}
		if filters.CategoryID == nil && filters.CategorySlug != "" && p.Category.Slug != filters.CategorySlug {
			continue
		}
		if filters.Type != nil && p.Type != *filters.Type {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// --- Helpers ---

var (
	activeClothes = models.Category{ID: 1, Slug: "clothes", NameEn: "Clothes", NameAr: "ملابس", IsActive: true}
	activeShoes   = models.Category{ID: 2, Slug: "shoes", NameEn: "Shoes", NameAr: "أحذية", IsActive: true}
	hiddenCat     = models.Category{ID: 3, Slug: "hidden", NameEn: "Hidden", NameAr: "مخفي", IsActive: false}
)

func newTestProduct(nameEn string, cat models.Category, ptype models.ProductType, price float64, createdAt time.Time) models.Product {
	return models.Product{
		ID:         uuid.New(),
		CategoryID: cat.ID,
		Category:   cat,
		Type:       ptype,
		NameEn:     nameEn,
		NameAr:     nameEn + " ar",
		Price:      decimal.NewFromFloat(price),
		IsActive:   true,
		CreatedAt:  createdAt,
	}
}

// --- Tests ---

func TestHandleListProducts(t *testing.T) {
	now := time.Now()

	newest := newTestProduct("Hoodie", activeClothes, models.TypeClothes, 39.00, now)
	middle := newTestProduct("Boots", activeShoes, models.TypeShoes, 89.90, now.Add(-time.Hour))
	oldest := newTestProduct("Shirt", activeClothes, models.TypeClothes, 29.50, now.Add(-2*time.Hour))

	inactiveProduct := newTestProduct("Retired", activeClothes, models.TypeClothes, 10.00, now)
	inactiveProduct.IsActive = false
	hiddenCatProduct := newTestProduct("Invisible", hiddenCat, models.TypeShoes, 10.00, now)

	// Repo returns newest first, so the mock source is kept in that order.
	allMockProducts := []models.Product{newest, middle, oldest, inactiveProduct, hiddenCatProduct}

	testCases := []struct {
		name               string
		url                string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCalls     func(t *testing.T, repo *MockProductRepo)
	}{
		{
			name: "Success with no filters",
			url:  "/products/",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 3, "inactive products and hidden categories must not appear")
				assert.Equal(t, newest.ID.String(), resp[0].ID)
				assert.Equal(t, middle.ID.String(), resp[1].ID)
				assert.Equal(t, oldest.ID.String(), resp[2].ID)
			},
			checkRepoCalls: func(t *testing.T, repo *MockProductRepo) {
				assert.Nil(t, repo.lastFilters.CategoryID)
				assert.Empty(t, repo.lastFilters.CategorySlug)
				assert.Nil(t, repo.lastFilters.Type)
			},
		},
		{
			name: "Filter by type",
			url:  "/products/?type=clothes",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				for _, p := range resp {
					assert.Equal(t, "clothes", p.Type)
				}
			},
			checkRepoCalls: func(t *testing.T, repo *MockProductRepo) {
				assert.NotNil(t, repo.lastFilters.Type)
				assert.Equal(t, models.TypeClothes, *repo.lastFilters.Type)
			},
		},
		{
			name: "Invalid type is rejected before any query",
			url:  "/products/?type=boots",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "type must be clothes or shoes", errResp["type"])
			},
			checkRepoCalls: func(t *testing.T, repo *MockProductRepo) {
				assert.Equal(t, 0, repo.calls, "repository must not be queried for an invalid type")
			},
		},
		{
			name: "Category filter by slug",
			url:  "/products/?category=shoes",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 1)
				assert.Equal(t, middle.ID.String(), resp[0].ID)
			},
			checkRepoCalls: func(t *testing.T, repo *MockProductRepo) {
				assert.Nil(t, repo.lastFilters.CategoryID)
				assert.Equal(t, "shoes", repo.lastFilters.CategorySlug)
			},
		},
		{
			name: "Category filter by numeric id",
			url:  "/products/?category=2",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 1)
				assert.Equal(t, middle.ID.String(), resp[0].ID, "id 2 and slug shoes must select the same set")
			},
			checkRepoCalls: func(t *testing.T, repo *MockProductRepo) {
				assert.NotNil(t, repo.lastFilters.CategoryID)
				assert.Equal(t, uint(2), *repo.lastFilters.CategoryID)
				assert.Empty(t, repo.lastFilters.CategorySlug)
			},
		},
		{
			name: "Unknown category yields an empty list",
			url:  "/products/?category=nonexistent",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 0)
			},
		},
		{
			name: "Repository error",
			url:  "/products/",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{Err: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "failed to fetch products", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()
			handler := NewCatalogHandler(mockRepo, nil)
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleListProducts(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}

			if tc.checkRepoCalls != nil {
				tc.checkRepoCalls(t, mockRepo)
			}
		})
	}
}

func TestHandleListProductsSerialization(t *testing.T) {
	withEverything := newTestProduct("Hoodie", activeClothes, models.TypeClothes, 39.00, time.Now())
	withEverything.DescriptionEn = "Heavyweight cotton."
	withEverything.DescriptionAr = "قطن ثقيل."
	withEverything.OldPrice = decimal.NewNullDecimal(decimal.NewFromFloat(55.00))
	withEverything.BadgeEn = "Sale"
	withEverything.Image = "products/hoodie.jpg"

	bare := newTestProduct("Shirt", activeClothes, models.TypeClothes, 29.50, time.Now().Add(-time.Hour))

	mockRepo := &MockProductRepo{SourceProducts: []models.Product{withEverything, bare}}
	handler := NewCatalogHandler(mockRepo, nil)
	req := httptest.NewRequest("GET", "/products/", nil)
	rec := httptest.NewRecorder()

	handler.HandleListProducts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []ProductResponse
	err := json.NewDecoder(rec.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)

	full := resp[0]
	assert.Equal(t, 39.00, full.PriceFull)
	assert.NotNil(t, full.OldPrice)
	assert.Equal(t, 55.00, *full.OldPrice)
	assert.NotNil(t, full.Badge, "a badge with only one language set must not be null")
	assert.Equal(t, "Sale", full.Badge.En)
	assert.Equal(t, "", full.Badge.Ar)
	assert.NotNil(t, full.Image)
	assert.Equal(t, "http://example.com/media/products/hoodie.jpg", *full.Image,
		"image must be an absolute URL built from the request host")

	plain := resp[1]
	assert.Nil(t, plain.OldPrice)
	assert.Nil(t, plain.Badge, "a product with no badge text serializes badge as null")
	assert.Nil(t, plain.Image)
	assert.Equal(t, "", plain.Description.En)
	assert.Equal(t, "", plain.Description.Ar)
}
