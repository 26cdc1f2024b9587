package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/leathstore/catalog-api/app/admin"
	"github.com/leathstore/catalog-api/app/catalog"
	"github.com/leathstore/catalog-api/config"
	"github.com/leathstore/catalog-api/database"
	"github.com/leathstore/catalog-api/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migrate database", "error", err)
		os.Exit(1)
	}

	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)

	auth := admin.NewAuthenticator(cfg)
	catalogHandler := catalog.NewCatalogHandler(productsRepo, categoriesRepo)
	adminHandler := admin.NewAdminHandler(categoriesRepo, productsRepo, auth)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories/{$}", catalogHandler.HandleListCategories)
	mux.HandleFunc("GET /products/{$}", catalogHandler.HandleListProducts)
	mux.HandleFunc("POST /admin/login", adminHandler.HandleLogin)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /admin/categories", adminHandler.HandleListCategories)
	protected.HandleFunc("POST /admin/categories", adminHandler.HandleCreateCategory)
	protected.HandleFunc("PUT /admin/categories/{id}", adminHandler.HandleUpdateCategory)
	protected.HandleFunc("DELETE /admin/categories/{id}", adminHandler.HandleDeleteCategory)
	protected.HandleFunc("GET /admin/products", adminHandler.HandleListProducts)
	protected.HandleFunc("POST /admin/products", adminHandler.HandleCreateProduct)
	protected.HandleFunc("PUT /admin/products/{id}", adminHandler.HandleUpdateProduct)
	protected.HandleFunc("DELETE /admin/products/{id}", adminHandler.HandleDeleteProduct)
	mux.Handle("/admin/", auth.Middleware(protected))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
