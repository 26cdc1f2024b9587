package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gosimple/slug"

	"github.com/leathstore/catalog-api/app/api"
	"github.com/leathstore/catalog-api/models"
)

type categoryPayload struct {
	Slug      string `json:"slug" validate:"omitempty,max=80"`
	NameEn    string `json:"name_en" validate:"required,max=120"`
	NameAr    string `json:"name_ar" validate:"required,max=120"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// CategoryRecord is the admin-facing category shape, field names matching
// storage rather than the public catalog contract.
type CategoryRecord struct {
	ID        uint   `json:"id"`
	Slug      string `json:"slug"`
	NameEn    string `json:"name_en"`
	NameAr    string `json:"name_ar"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

func newCategoryRecord(c models.Category) CategoryRecord {
	return CategoryRecord{
		ID:        c.ID,
		Slug:      c.Slug,
		NameEn:    c.NameEn,
		NameAr:    c.NameAr,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
	}
}

func (h *AdminHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAllCategories()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	records := make([]CategoryRecord, len(categories))
	for i, c := range categories {
		records[i] = newCategoryRecord(c)
	}
	api.WriteJSON(w, http.StatusOK, records)
}

func (h *AdminHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		api.WriteFieldErrors(w, fieldErrors(err))
		return
	}

	// A blank slug is derived from the English name, the same convenience the
	// original admin screen offered.
	s := payload.Slug
	if s == "" {
		s = slug.Make(payload.NameEn)
	}

	category := &models.Category{
		Slug:      s,
		NameEn:    payload.NameEn,
		NameAr:    payload.NameAr,
		SortOrder: payload.SortOrder,
		IsActive:  true,
	}
	if payload.IsActive != nil {
		category.IsActive = *payload.IsActive
	}

	if err := h.categories.CreateCategory(category); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	api.WriteJSON(w, http.StatusCreated, newCategoryRecord(*category))
}

func (h *AdminHandler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "category not found")
		return
	}

	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		api.WriteFieldErrors(w, fieldErrors(err))
		return
	}

	category, err := h.categories.GetCategoryByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteError(w, http.StatusNotFound, "category not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	if payload.Slug != "" {
		category.Slug = payload.Slug
	}
	category.NameEn = payload.NameEn
	category.NameAr = payload.NameAr
	category.SortOrder = payload.SortOrder
	if payload.IsActive != nil {
		category.IsActive = *payload.IsActive
	}

	if err := h.categories.UpdateCategory(category); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to update category")
		return
	}

	api.WriteJSON(w, http.StatusOK, newCategoryRecord(*category))
}

func (h *AdminHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "category not found")
		return
	}

	switch err := h.categories.DeleteCategory(uint(id)); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, models.ErrCategoryInUse):
		api.WriteError(w, http.StatusConflict, "category still has products")
	case errors.Is(err, models.ErrCategoryNotFound):
		api.WriteError(w, http.StatusNotFound, "category not found")
	default:
		api.WriteError(w, http.StatusInternalServerError, "failed to delete category")
	}
}
