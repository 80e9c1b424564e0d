package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"loja/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetAllByTicket returns all orders sorted ascending by ticket number.
func (r *MockOrderRepository) GetAllByTicket() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].TicketNumber < orderList[j].TicketNumber
	})
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s not found", id)
	}
	return &order, nil
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = *order
	return nil
}

// LatestByTicket returns the order with the highest ticket number, or nil
// when there are no orders yet.
func (r *MockOrderRepository) LatestByTicket() (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *models.Order
	for _, order := range r.orders {
		if latest == nil || order.TicketNumber > latest.TicketNumber {
			o := order
			latest = &o
		}
	}
	return latest, nil
}
