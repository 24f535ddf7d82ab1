package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
)

type ProductRepositoryMemory struct {
	mu       sync.RWMutex
	products map[string]*entities.Product
}

func NewProductRepositoryMemory() *ProductRepositoryMemory {
	return &ProductRepositoryMemory{
		products: make(map[string]*entities.Product),
	}
}

func (r *ProductRepositoryMemory) Create(ctx context.Context, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, repositories.ErrProductNotFound
	}

	productCopy := *product
	return &productCopy, nil
}

func (r *ProductRepositoryMemory) List(ctx context.Context) ([]*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Product, 0, len(r.products))
	for _, product := range r.products {
		productCopy := *product
		out = append(out, &productCopy)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ProductRepositoryMemory) Update(ctx context.Context, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; !exists {
		return repositories.ErrProductNotFound
	}

	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return repositories.ErrProductNotFound
	}

	delete(r.products, id)
	return nil
}

type CategoryRepositoryMemory struct {
	mu         sync.RWMutex
	categories map[string]*entities.Category
}

func NewCategoryRepositoryMemory() *CategoryRepositoryMemory {
	return &CategoryRepositoryMemory{
		categories: make(map[string]*entities.Category),
	}
}

func (r *CategoryRepositoryMemory) Create(ctx context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	categoryCopy := *category
	r.categories[category.ID] = &categoryCopy
	return nil
}

func (r *CategoryRepositoryMemory) GetByID(ctx context.Context, id string) (*entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, exists := r.categories[id]
	if !exists {
		return nil, repositories.ErrCategoryNotFound
	}

	categoryCopy := *category
	return &categoryCopy, nil
}

func (r *CategoryRepositoryMemory) List(ctx context.Context) ([]*entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Category, 0, len(r.categories))
	for _, category := range r.categories {
		categoryCopy := *category
		out = append(out, &categoryCopy)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *CategoryRepositoryMemory) Update(ctx context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[category.ID]; !exists {
		return repositories.ErrCategoryNotFound
	}

	categoryCopy := *category
	r.categories[category.ID] = &categoryCopy
	return nil
}

func (r *CategoryRepositoryMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[id]; !exists {
		return repositories.ErrCategoryNotFound
	}

	delete(r.categories, id)
	return nil
}
