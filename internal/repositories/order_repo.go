package repositories

import (
	"loja/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// append-only; there is no update or delete.
type OrderRepository interface {
	// GetAllByTicket returns every order sorted ascending by ticket number.
	GetAllByTicket() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	// LatestByTicket returns the order with the highest ticket number, or
	// nil when the collection is empty.
	LatestByTicket() (*models.Order, error)
}
