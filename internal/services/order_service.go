package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/ticket"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders: ticket number
// assignment and order placement.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	sequencer   ticket.Sequencer
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case no events are emitted.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, sequencer ticket.Sequencer, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		sequencer:   sequencer,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders sorted ascending by ticket number.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAllByTicket()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return orders, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// NextTicketNumber computes the ticket number the next order would
// receive: one past the highest persisted ticket, or 0 when no orders
// exist. Read-only; calling it twice with no intervening write returns
// the same value. Actual assignment goes through the sequencer, which
// serializes concurrent placements.
func (s *OrderService) NextTicketNumber() (int, error) {
	latest, err := s.orderRepo.LatestByTicket()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if latest == nil {
		return 0, nil
	}
	return latest.TicketNumber + 1, nil
}

// PlaceOrder validates the request, assigns the next ticket number and
// persists a new order referencing the product. The product name is
// copied onto the order so the record keeps the name current at placement
// time. Product stock is intentionally left untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, productID, userName string, quantity int) (*models.Order, error) {
	if userName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s: %v", ErrValidation, productID, err)
	}

	ticketNumber, err := s.sequencer.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		UserName:     userName,
		Quantity:     quantity,
		TicketNumber: ticketNumber,
		CreatedAt:    time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Publish an order.created event. A broker failure must not fail an
	// order that is already persisted.
	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":      order.ID,
			"productID":    order.ProductID,
			"productName":  order.ProductName,
			"userName":     order.UserName,
			"quantity":     order.Quantity,
			"ticketNumber": order.TicketNumber,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}
