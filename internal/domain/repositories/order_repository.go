package repositories

import (
	"context"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
)

// OrderRepository persists orders. Create must enforce uniqueness of the
// human-readable OrderID and report a collision as ErrOrderIDTaken so the
// caller can regenerate and retry.
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context) ([]*entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
