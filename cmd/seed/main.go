// Seeds the database with a small bilingual catalog for local development.
// Safe to run repeatedly: existing slugs and SKUs are left untouched.
package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type seedCategory struct {
	slug      string
	nameEn    string
	nameAr    string
	sortOrder int
}

type seedProduct struct {
	category string
	sku      string
	ptype    string
	nameEn   string
	nameAr   string
	descEn   string
	descAr   string
	price    string
	oldPrice *string
	badgeEn  string
	badgeAr  string
	image    string
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	categories := []seedCategory{
		{"clothes", "Clothes", "ملابس", 1},
		{"shoes", "Shoes", "أحذية", 2},
	}

	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range categories {
		if _, err := db.Exec(`
			INSERT INTO categories (slug, name_en, name_ar, sort_order, is_active)
			VALUES ($1, $2, $3, $4, TRUE)
			ON CONFLICT (slug) DO NOTHING`,
			c.slug, c.nameEn, c.nameAr, c.sortOrder,
		); err != nil {
			log.Fatalf("seed category %s: %v", c.slug, err)
		}

		var id int64
		if err := db.QueryRow(`SELECT id FROM categories WHERE slug = $1`, c.slug).Scan(&id); err != nil {
			log.Fatalf("lookup category %s: %v", c.slug, err)
		}
		categoryIDs[c.slug] = id
	}

	oldPrice := func(s string) *string { return &s }

	products := []seedProduct{
		{
			category: "clothes", sku: "CL-0001", ptype: "clothes",
			nameEn: "Oversized Hoodie", nameAr: "هودي واسع",
			descEn: "Heavyweight cotton hoodie.", descAr: "هودي قطني ثقيل.",
			price: "39.00", oldPrice: oldPrice("55.00"),
			badgeEn: "Sale", badgeAr: "تخفيض",
			image: "products/hoodie.jpg",
		},
		{
			category: "clothes", sku: "CL-0002", ptype: "clothes",
			nameEn: "Linen Shirt", nameAr: "قميص كتان",
			descEn: "Relaxed fit, breathable linen.", descAr: "قصة مريحة من الكتان.",
			price: "29.50",
			badgeEn: "New", badgeAr: "جديد",
			image: "products/linen-shirt.jpg",
		},
		{
			category: "shoes", sku: "SH-0001", ptype: "shoes",
			nameEn: "Canvas Sneakers", nameAr: "حذاء قماشي",
			price: "45.00",
			image: "products/canvas-sneakers.jpg",
		},
		{
			category: "shoes", sku: "SH-0002", ptype: "shoes",
			nameEn: "Leather Boots", nameAr: "حذاء جلدي",
			descEn: "Full-grain leather, rubber sole.", descAr: "جلد طبيعي ونعل مطاطي.",
			price: "89.90", oldPrice: oldPrice("110.00"),
		},
	}

	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (
				id, category_id, sku, type,
				name_en, name_ar, description_en, description_ar,
				price, old_price, badge_en, badge_ar,
				image, is_active, created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, TRUE, NOW(), NOW())
			ON CONFLICT (sku) DO NOTHING`,
			uuid.NewString(), categoryIDs[p.category], p.sku, p.ptype,
			p.nameEn, p.nameAr, p.descEn, p.descAr,
			p.price, p.oldPrice, p.badgeEn, p.badgeAr,
			p.image,
		); err != nil {
			log.Fatalf("seed product %s: %v", p.sku, err)
		}
	}

	log.Printf("seeded %d categories and %d products", len(categories), len(products))
}
