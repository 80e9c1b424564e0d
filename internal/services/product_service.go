package services

import (
	"fmt"

	"loja/internal/models"
	"loja/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products, active or not.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetActiveProducts retrieves the products orderable from the store.
func (s *ProductService) GetActiveProducts() ([]models.Product, error) {
	return s.repo.GetActive()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. New products are always born active.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Active = true
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product's name, price and quantity.
// The active flag is left as stored.
func (s *ProductService) UpdateProduct(id, name string, price float64, quantity int) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Name = name
	product.Price = price
	product.Quantity = quantity
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID. Orders referencing it keep
// their denormalized product name.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// ToggleActive flips whether a product is orderable from the store.
func (s *ProductService) ToggleActive(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Active = !product.Active
	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to toggle product %s: %w", id, err)
	}
	return product, nil
}
