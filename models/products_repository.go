package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilters narrows the public product listing. CategoryID and
// CategorySlug are mutually exclusive; the HTTP boundary decides which one is
// set after a single integer-literal parse of the raw parameter.
type ProductFilters struct {
	CategoryID   *uint
	CategorySlug string
	Type         *ProductType
}

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetVisibleProducts returns active products whose category is also active,
// newest first, narrowed by the optional filters. A filter that matches
// nothing yields an empty slice, not an error.
func (r *ProductsRepository) GetVisibleProducts(filters ProductFilters) ([]Product, error) {
	var products []Product

	query := r.db.Model(&Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ?", true).
		Where("categories.is_active = ?", true).
		Preload("Category")

	if filters.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filters.CategoryID)
	} else if filters.CategorySlug != "" {
		query = query.Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.Type != nil {
		query = query.Where("products.type = ?", *filters.Type)
	}

	if err := query.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetAllProducts returns every product, including inactive ones, for the
// admin listing. Newest first.
func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetProductByID(id uuid.UUID) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductsRepository) CreateProduct(product *Product) error {
	return r.db.Create(product).Error
}

func (r *ProductsRepository) UpdateProduct(product *Product) error {
	return r.db.Save(product).Error
}

func (r *ProductsRepository) DeleteProduct(id uuid.UUID) error {
	res := r.db.Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
