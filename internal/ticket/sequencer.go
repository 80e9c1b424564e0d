package ticket

import (
	"context"
	"fmt"
	"sync"

	"loja/internal/models"
)

// Sequencer hands out order ticket numbers. Numbers start at 0 and are
// unique and monotonically increasing; a number issued for an order whose
// write later fails is never reissued, so the sequence may contain gaps.
type Sequencer interface {
	Next(ctx context.Context) (int, error)
}

// LastTicketSource is the slice of the order store a StoreSequencer needs
// to seed itself: the order currently holding the highest ticket number,
// or nil when none exist.
type LastTicketSource interface {
	LatestByTicket() (*models.Order, error)
}

// StoreSequencer serializes ticket assignment within a single process.
// The first call seeds the counter from the highest persisted ticket;
// every call after that is a plain in-memory increment under the lock, so
// two concurrent placements can never be handed the same number.
type StoreSequencer struct {
	source LastTicketSource

	mu     sync.Mutex
	seeded bool
	next   int
}

// NewStoreSequencer creates a StoreSequencer seeded lazily from source.
func NewStoreSequencer(source LastTicketSource) *StoreSequencer {
	return &StoreSequencer{
		source: source,
	}
}

// Next returns the next ticket number.
func (s *StoreSequencer) Next(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		last, err := s.source.LatestByTicket()
		if err != nil {
			return 0, fmt.Errorf("failed to seed ticket sequencer: %w", err)
		}
		if last != nil {
			s.next = last.TicketNumber + 1
		}
		s.seeded = true
	}

	n := s.next
	s.next++
	return n, nil
}
