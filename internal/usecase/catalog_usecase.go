package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
)

type CreateProductInput struct {
	Name          string
	Sku           string
	Stock         int
	CategoryID    string
	Rating        float64
	CurrentPrice  float64
	OriginalPrice float64
	Colors        []string
	Sizes         []string
	Description   string
	Images        []FileUpload
}

// UpdateProductInput carries a partial update; nil pointer fields are left
// untouched. Colors and Sizes replace the stored lists only when non-empty,
// matching the admin form's submit behavior.
type UpdateProductInput struct {
	Name          *string
	Stock         *int
	CategoryID    *string
	Rating        *float64
	CurrentPrice  *float64
	OriginalPrice *float64
	Colors        []string
	Sizes         []string
	Description   *string
	RemoveImages  []string
	NewImages     []FileUpload
}

type ProductView struct {
	entities.Product
	Category *entities.Category `json:"category,omitempty"`
}

type CatalogUseCase struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	files      FileStore
	logger     *logger.Logger
}

func NewCatalogUseCase(
	products repositories.ProductRepository,
	categories repositories.CategoryRepository,
	files FileStore,
	logger *logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:   products,
		categories: categories,
		files:      files,
		logger:     logger,
	}
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error) {
	if input.Name == "" || input.CategoryID == "" || input.CurrentPrice <= 0 {
		return nil, ErrMissingProductFields
	}

	category, err := uc.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	images, err := uc.storeImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	sku := input.Sku
	if sku == "" {
		sku = "PRD-" + strings.ToUpper(id[:8])
	}

	now := time.Now()
	product := &entities.Product{
		ID:            id,
		Name:          strings.TrimSpace(input.Name),
		Sku:           sku,
		Images:        images,
		Stock:         input.Stock,
		CategoryID:    input.CategoryID,
		Rating:        input.Rating,
		CurrentPrice:  input.CurrentPrice,
		OriginalPrice: input.OriginalPrice,
		Colors:        input.Colors,
		Sizes:         input.Sizes,
		Description:   input.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.products.Create(ctx, product); err != nil {
		uc.removeImages(images)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &ProductView{Product: *product, Category: category}, nil
}

func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*ProductView, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.CategoryID != nil {
		if _, err := uc.categories.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, ErrInvalidCategory
			}
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.CurrentPrice != nil {
		product.CurrentPrice = *input.CurrentPrice
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if len(input.Colors) > 0 {
		product.Colors = input.Colors
	}
	if len(input.Sizes) > 0 {
		product.Sizes = input.Sizes
	}

	if len(input.RemoveImages) > 0 {
		product.Images = uc.removeSelectedImages(product.Images, input.RemoveImages)
	}

	if len(input.NewImages) > 0 {
		added, err := uc.storeImages(ctx, input.NewImages)
		if err != nil {
			return nil, err
		}
		product.Images = append(product.Images, added...)
	}

	product.UpdatedAt = time.Now()

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return uc.toProductView(ctx, product), nil
}

// DeleteProduct removes the product document and its image blobs. Orders
// keep their own snapshots, so historical line items are unaffected.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	uc.removeImages(product.Images)

	if err := uc.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*ProductView, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return uc.toProductView(ctx, product), nil
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context, filter *ProductFilter) ([]*ProductView, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	byID := make(map[string]*entities.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	if filter != nil && filter.CategoryName != "" && filter.CategoryID == "" {
		for _, c := range categories {
			if strings.EqualFold(c.Name, filter.CategoryName) {
				filter.CategoryID = c.ID
				break
			}
		}
		if filter.CategoryID == "" {
			return []*ProductView{}, nil
		}
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products = FilterProducts(products, filter)

	views := make([]*ProductView, len(products))
	for i, p := range products {
		views[i] = &ProductView{Product: *p, Category: byID[p.CategoryID]}
	}
	return views, nil
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingCategoryName
	}

	category := &entities.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, id, name string) (*entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingCategoryName
	}

	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	category.Name = name
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory does not check for products still referencing the
// category; see DESIGN.md for why this gap is preserved.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (uc *CatalogUseCase) toProductView(ctx context.Context, product *entities.Product) *ProductView {
	view := &ProductView{Product: *product}

	category, err := uc.categories.GetByID(ctx, product.CategoryID)
	if err == nil {
		view.Category = category
	} else if !errors.Is(err, repositories.ErrCategoryNotFound) {
		uc.logger.Warn("Failed to resolve category for product", "product_id", product.ID, "error", err)
	}

	return view
}

func (uc *CatalogUseCase) storeImages(ctx context.Context, uploads []FileUpload) ([]string, error) {
	var stored []string
	for _, upload := range uploads {
		path, err := uc.files.Save(ctx, upload.Filename, upload.Content)
		if err != nil {
			uc.removeImages(stored)
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		stored = append(stored, path)
	}
	return stored, nil
}

// removeSelectedImages drops entries matching either the stored path or
// its bare filename, deleting the blobs as it goes.
func (uc *CatalogUseCase) removeSelectedImages(images, toRemove []string) []string {
	requested := make(map[string]bool, len(toRemove))
	for _, r := range toRemove {
		requested[r] = true
	}

	kept := images[:0]
	for _, img := range images {
		if requested[img] || requested[filepath.Base(img)] {
			uc.removeImages([]string{img})
			continue
		}
		kept = append(kept, img)
	}
	return kept
}

func (uc *CatalogUseCase) removeImages(paths []string) {
	if len(paths) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, path := range paths {
		if err := uc.files.Remove(ctx, path); err != nil {
			uc.logger.Warn("Failed to remove image blob", "path", path, "error", err)
		}
	}
}

var (
	ErrMissingProductFields = errors.New("name, category and currentPrice are required")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrMissingCategoryName  = errors.New("category name is required")
)
