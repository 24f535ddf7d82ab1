package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
)

// OrderRepositoryMemory mirrors the Mongo repository's behavior, including
// the unique constraint on the human-readable order id.
type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{
		orders: make(map[string]*entities.Order),
	}
}

func (r *OrderRepositoryMemory) Create(ctx context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return repositories.ErrOrderIDTaken
	}
	for _, existing := range r.orders {
		if existing.OrderID == order.OrderID {
			return repositories.ErrOrderIDTaken
		}
	}

	orderCopy := *order
	r.orders[order.ID] = &orderCopy
	return nil
}

func (r *OrderRepositoryMemory) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, repositories.ErrOrderNotFound
	}

	orderCopy := *order
	return &orderCopy, nil
}

func (r *OrderRepositoryMemory) List(ctx context.Context) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entities.Order) bool { return true }), nil
}

func (r *OrderRepositoryMemory) ListByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o *entities.Order) bool { return o.UserID == userID }), nil
}

func (r *OrderRepositoryMemory) collect(keep func(*entities.Order) bool) []*entities.Order {
	out := make([]*entities.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if keep(order) {
			orderCopy := *order
			out = append(out, &orderCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *OrderRepositoryMemory) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[id]
	if !exists {
		return repositories.ErrOrderNotFound
	}

	order.OrderStatus = status
	return nil
}

func (r *OrderRepositoryMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[id]; !exists {
		return repositories.ErrOrderNotFound
	}

	delete(r.orders, id)
	return nil
}

func (r *OrderRepositoryMemory) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}
