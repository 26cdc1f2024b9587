// Package admin is the JSON content-entry API: operator login plus CRUD over
// categories and products. It stands in for the generated admin screen of the
// original system; everything here sits behind the bearer-token middleware
// except login.
package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/leathstore/catalog-api/app/api"
	"github.com/leathstore/catalog-api/models"
)

type CategoryStore interface {
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error
}

type ProductStore interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id uuid.UUID) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uuid.UUID) error
}

type AdminHandler struct {
	categories CategoryStore
	products   ProductStore
	auth       *Authenticator
	validate   *validator.Validate
}

func NewAdminHandler(c CategoryStore, p ProductStore, auth *Authenticator) *AdminHandler {
	return &AdminHandler{
		categories: c,
		products:   p,
		auth:       auth,
		validate:   newValidator(),
	}
}

func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if input.Username == "" || input.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "missing username or password")
		return
	}

	token, err := h.auth.Login(input.Username, input.Password)
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
