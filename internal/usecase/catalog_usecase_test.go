package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/memory"
)

// fakeFileStore records saves and removals without touching the disk.
type fakeFileStore struct {
	mu      sync.Mutex
	saved   []string
	removed []string
}

func (f *fakeFileStore) Save(_ context.Context, filename string, _ io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	path := "/uploads/" + fmt.Sprintf("%03d-", len(f.saved)) + filename
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeFileStore) Remove(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, path)
	return nil
}

func newCatalogFixture(t *testing.T) (*CatalogUseCase, *memory.ProductRepositoryMemory, *fakeFileStore, *entities.Category) {
	t.Helper()

	products := memory.NewProductRepositoryMemory()
	categories := memory.NewCategoryRepositoryMemory()
	files := &fakeFileStore{}

	uc := NewCatalogUseCase(products, categories, files, logger.NewNop())

	category, err := uc.CreateCategory(context.Background(), "Women")
	assert.NoError(t, err)

	return uc, products, files, category
}

func TestCatalogUseCase_CreateProduct(t *testing.T) {
	uc, _, files, category := newCatalogFixture(t)
	ctx := context.Background()

	view, err := uc.CreateProduct(ctx, CreateProductInput{
		Name:          "  Embroidered Kurta  ",
		Stock:         5,
		CategoryID:    category.ID,
		CurrentPrice:  2500,
		OriginalPrice: 3000,
		Colors:        []string{"Red"},
		Sizes:         []string{"M"},
		Images: []FileUpload{
			{Filename: "front.jpg", Content: strings.NewReader("img")},
			{Filename: "back.jpg", Content: strings.NewReader("img")},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Embroidered Kurta", view.Name)
	assert.NotEmpty(t, view.ID)
	assert.Len(t, view.Images, 2)
	assert.Len(t, files.saved, 2)
	assert.Equal(t, category.ID, view.Category.ID)

	// An omitted sku is derived from the product id.
	assert.True(t, strings.HasPrefix(view.Sku, "PRD-"))
	assert.Len(t, view.Sku, len("PRD-")+8)
}

func TestCatalogUseCase_CreateProduct_Invalid(t *testing.T) {
	uc, _, files, category := newCatalogFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateProductInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   CreateProductInput{CategoryID: category.ID, CurrentPrice: 100},
			wantErr: ErrMissingProductFields,
		},
		{
			name:    "missing category",
			input:   CreateProductInput{Name: "Kurta", CurrentPrice: 100},
			wantErr: ErrMissingProductFields,
		},
		{
			name:    "non-positive price",
			input:   CreateProductInput{Name: "Kurta", CategoryID: category.ID},
			wantErr: ErrMissingProductFields,
		},
		{
			name:    "unknown category",
			input:   CreateProductInput{Name: "Kurta", CategoryID: "nope", CurrentPrice: 100},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := uc.CreateProduct(ctx, tt.input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Nil(t, view)
		})
	}

	assert.Empty(t, files.saved)
}

func TestCatalogUseCase_UpdateProduct_Partial(t *testing.T) {
	uc, _, _, category := newCatalogFixture(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, CreateProductInput{
		Name:         "Kurta",
		Stock:        5,
		CategoryID:   category.ID,
		CurrentPrice: 2500,
		Colors:       []string{"Red"},
	})
	assert.NoError(t, err)

	newPrice := 1999.0
	updated, err := uc.UpdateProduct(ctx, created.ID, UpdateProductInput{
		CurrentPrice: &newPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1999.0, updated.CurrentPrice)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Kurta", updated.Name)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, []string{"Red"}, updated.Colors)
}

func TestCatalogUseCase_UpdateProduct_ImageLifecycle(t *testing.T) {
	uc, _, files, category := newCatalogFixture(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, CreateProductInput{
		Name:         "Kurta",
		CategoryID:   category.ID,
		CurrentPrice: 2500,
		Images: []FileUpload{
			{Filename: "front.jpg", Content: strings.NewReader("img")},
			{Filename: "back.jpg", Content: strings.NewReader("img")},
		},
	})
	assert.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, created.ID, UpdateProductInput{
		RemoveImages: []string{created.Images[0]},
		NewImages: []FileUpload{
			{Filename: "side.jpg", Content: strings.NewReader("img")},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, updated.Images, 2)
	assert.NotContains(t, updated.Images, created.Images[0])
	assert.Contains(t, files.removed, created.Images[0])
}

func TestCatalogUseCase_UpdateProduct_NotFound(t *testing.T) {
	uc, _, _, _ := newCatalogFixture(t)

	name := "Renamed"
	_, err := uc.UpdateProduct(context.Background(), "missing", UpdateProductInput{Name: &name})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))
}

func TestCatalogUseCase_DeleteProduct_RemovesBlobs(t *testing.T) {
	uc, products, files, category := newCatalogFixture(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, CreateProductInput{
		Name:         "Kurta",
		CategoryID:   category.ID,
		CurrentPrice: 2500,
		Images: []FileUpload{
			{Filename: "front.jpg", Content: strings.NewReader("img")},
		},
	})
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteProduct(ctx, created.ID))
	assert.Equal(t, created.Images, files.removed)

	_, err = products.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))
}

func TestCatalogUseCase_ListProducts_CategoryNameFilter(t *testing.T) {
	uc, _, _, women := newCatalogFixture(t)
	ctx := context.Background()

	men, err := uc.CreateCategory(ctx, "Men")
	assert.NoError(t, err)

	_, err = uc.CreateProduct(ctx, CreateProductInput{Name: "Kurta", CategoryID: women.ID, CurrentPrice: 2500})
	assert.NoError(t, err)
	_, err = uc.CreateProduct(ctx, CreateProductInput{Name: "Shalwar", CategoryID: men.ID, CurrentPrice: 1200})
	assert.NoError(t, err)

	views, err := uc.ListProducts(ctx, &ProductFilter{CategoryName: "women"})
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Kurta", views[0].Name)
	assert.Equal(t, "Women", views[0].Category.Name)

	// An unknown category name matches nothing rather than everything.
	views, err = uc.ListProducts(ctx, &ProductFilter{CategoryName: "Kids"})
	assert.NoError(t, err)
	assert.Empty(t, views)
}

func TestCatalogUseCase_CategoryCRUD(t *testing.T) {
	uc, _, _, category := newCatalogFixture(t)
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, "   ")
	assert.True(t, errors.Is(err, ErrMissingCategoryName))

	renamed, err := uc.UpdateCategory(ctx, category.ID, "Ladies")
	assert.NoError(t, err)
	assert.Equal(t, "Ladies", renamed.Name)

	assert.NoError(t, uc.DeleteCategory(ctx, category.ID))

	categories, err := uc.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Empty(t, categories)

	err = uc.DeleteCategory(ctx, category.ID)
	assert.True(t, errors.Is(err, repositories.ErrCategoryNotFound))
}
