package memory

import (
	"context"
	"sync"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
)

type UserRepositoryMemory struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{
		users: make(map[string]*entities.User),
	}
}

func (r *UserRepositoryMemory) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}

	userCopy := *user
	r.users[user.ID] = &userCopy
	return nil
}

func (r *UserRepositoryMemory) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, repositories.ErrUserNotFound
	}

	userCopy := *user
	return &userCopy, nil
}

func (r *UserRepositoryMemory) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type AdminRepositoryMemory struct {
	mu     sync.RWMutex
	admins map[string]*entities.Admin
}

func NewAdminRepositoryMemory() *AdminRepositoryMemory {
	return &AdminRepositoryMemory{
		admins: make(map[string]*entities.Admin),
	}
}

func (r *AdminRepositoryMemory) Create(ctx context.Context, admin *entities.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.admins {
		if existing.Email == admin.Email {
			return repositories.ErrEmailTaken
		}
	}

	adminCopy := *admin
	r.admins[admin.ID] = &adminCopy
	return nil
}

func (r *AdminRepositoryMemory) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, admin := range r.admins {
		if admin.Email == email {
			adminCopy := *admin
			return &adminCopy, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (r *AdminRepositoryMemory) GetByResetTokenHash(ctx context.Context, tokenHash string) (*entities.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, admin := range r.admins {
		if admin.ResetTokenHash != "" && admin.ResetTokenHash == tokenHash {
			adminCopy := *admin
			return &adminCopy, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (r *AdminRepositoryMemory) Update(ctx context.Context, admin *entities.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.admins[admin.ID]; !exists {
		return repositories.ErrAdminNotFound
	}

	adminCopy := *admin
	r.admins[admin.ID] = &adminCopy
	return nil
}
