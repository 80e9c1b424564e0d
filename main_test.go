package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"loja/internal/models"
	"loja/internal/repositories"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	os.Exit(m.Run())
}

func TestAppWiring(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:main_test?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.User{}))

	app, authService := NewApp(db, nil, nil)
	assert.NotNil(t, authService)

	productRepo := repositories.NewGORMProductRepository(db)
	assert.NoError(t, productRepo.Create(&models.Product{Name: "Camiseta", Price: 59.90, Quantity: 12, Active: true}))

	// --- Health endpoint ---
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	resp.Body.Close()

	// --- Store is public ---
	req = httptest.NewRequest(http.MethodGet, "/api/v1/store/products", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 1)
	resp.Body.Close()

	// --- Admin console is not ---
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// --- Demo catalog seeding fills an empty store only ---
	seedProducts(productRepo)
	all, err := productRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1) // catalog was not empty, nothing added
}
