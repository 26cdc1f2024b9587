package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable catalog item. Text fields come in English/Arabic
// pairs; prices are fixed-point with two fraction digits. OldPrice, when set,
// is the pre-discount reference price.
type Product struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CategoryID    uint                `gorm:"not null;index"`
	Category      Category            `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	SKU           *string             `gorm:"size:64;uniqueIndex"`
	Type          ProductType         `gorm:"size:16;not null"`
	NameEn        string              `gorm:"size:160;not null"`
	NameAr        string              `gorm:"size:160;not null"`
	DescriptionEn string              `gorm:"type:text"`
	DescriptionAr string              `gorm:"type:text"`
	Price         decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	OldPrice      decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	BadgeEn       string              `gorm:"size:40"`
	BadgeAr       string              `gorm:"size:40"`
	Image         string              `gorm:"size:255"`
	IsActive      bool                `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BeforeCreate assigns the immutable surrogate id.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Product) TableName() string {
	return "products"
}
