package repositories

import (
	"context"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByEmail(ctx context.Context, email string) (*entities.Admin, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*entities.Admin, error)
	Update(ctx context.Context, admin *entities.Admin) error
}
