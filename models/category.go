package models

// Category groups products for catalog navigation.
// Slug is the URL-safe alternate key; names are stored in both storefront languages.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Slug      string `gorm:"size:80;uniqueIndex;not null"`
	NameEn    string `gorm:"size:120;not null"`
	NameAr    string `gorm:"size:120;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`
}

func (c *Category) TableName() string {
	return "categories"
}
