package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "inventory-service/internal/adapters/web"
	"inventory-service/internal/app"
	"inventory-service/internal/core"
	"inventory-service/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	productService := core.NewProductService(pool)
	alertService := core.NewAlertService(pool)
	inventoryService := core.NewInventoryService(pool)
	supplierService := core.NewSupplierService(pool)
	companyService := core.NewCompanyService(pool)

	svc := app.NewAppService(productService, alertService, inventoryService, supplierService, companyService)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
