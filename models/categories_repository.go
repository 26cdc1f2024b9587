package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when deleting a category that still has
	// products referencing it.
	ErrCategoryInUse = errors.New("category still has products")
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// GetActiveCategories returns publicly visible categories in catalog order:
// sort_order first, English name as the tiebreaker.
func (r *CategoriesRepository) GetActiveCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.
		Where("is_active = ?", true).
		Order("sort_order ASC, name_en ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetAllCategories returns every category, including inactive ones, for the
// admin listing. Same order as the public listing.
func (r *CategoriesRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.
		Order("sort_order ASC, name_en ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetCategoryByID(id uint) (*Category, error) {
	var category Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepository) CreateCategory(category *Category) error {
	return r.db.Create(category).Error
}

func (r *CategoriesRepository) UpdateCategory(category *Category) error {
	return r.db.Save(category).Error
}

// DeleteCategory removes a category unless products still reference it. The
// reference check runs before the delete so callers get ErrCategoryInUse
// instead of a raw constraint violation; the FK constraint remains the
// backstop for concurrent writers.
func (r *CategoriesRepository) DeleteCategory(id uint) error {
	var count int64
	if err := r.db.Model(&Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	res := r.db.Delete(&Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
