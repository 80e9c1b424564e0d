package services_test

import (
	"fmt"
	"testing"

	"loja/internal/models"
	"loja/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetActive() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Camiseta", Price: 59.90, Quantity: 12, Active: true},
		{ID: "2", Name: "Boné", Price: 39.90, Quantity: 15, Active: false},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetActiveProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	activeProducts := []models.Product{
		{ID: "1", Name: "Camiseta", Price: 59.90, Quantity: 12, Active: true},
	}

	mockRepo.On("GetActive").Return(activeProducts, nil).Once()

	products, err := service.GetActiveProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.True(t, products[0].Active)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Camiseta", Price: 59.90, Quantity: 12, Active: true}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_ForcesActive(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Calça Jeans", Price: 129.90, Quantity: 10}

	// Test successful creation; new products must come out active.
	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Active
	})).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	assert.True(t, newProduct.Active)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stored := &models.Product{ID: "1", Name: "Camiseta", Price: 59.90, Quantity: 12, Active: true}

	// Test successful update; the active flag is preserved.
	mockRepo.On("GetByID", "1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Camiseta Premium" && p.Price == 79.90 && p.Quantity == 9 && p.Active
	})).Return(nil).Once()

	updated, err := service.UpdateProduct("1", "Camiseta Premium", 79.90, 9)
	assert.NoError(t, err)
	assert.Equal(t, "Camiseta Premium", updated.Name)
	assert.True(t, updated.Active)
	mockRepo.AssertExpectations(t)

	// Test update failure (product not found in repo)
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	_, err = service.UpdateProduct("99", "NonExistent", 1.0, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (e.g., product not found)
	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err = service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}

func TestProductService_ToggleActive(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stored := &models.Product{ID: "1", Name: "Camiseta", Price: 59.90, Quantity: 12, Active: true}

	mockRepo.On("GetByID", "1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return !p.Active
	})).Return(nil).Once()

	toggled, err := service.ToggleActive("1")
	assert.NoError(t, err)
	assert.False(t, toggled.Active)
	mockRepo.AssertExpectations(t)

	// Toggling back
	mockRepo.On("GetByID", "1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.Active
	})).Return(nil).Once()

	toggled, err = service.ToggleActive("1")
	assert.NoError(t, err)
	assert.True(t, toggled.Active)
	mockRepo.AssertExpectations(t)
}
