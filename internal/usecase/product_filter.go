package usecase

import (
	"strings"
	"time"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
)

// ProductFilter is a conjunction of optional predicates applied to an
// already-fetched product list. Unset fields match everything; numeric and
// date bounds are inclusive; text matching is a case-insensitive substring.
type ProductFilter struct {
	CategoryID string
	// CategoryName is resolved to CategoryID by the catalog usecase before
	// matching; Matches itself only looks at CategoryID.
	CategoryName string
	Name         string
	Color        string
	Size         string
	MinStock     *int
	MaxStock     *int
	MinPrice     *float64
	MaxPrice     *float64
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

func (f *ProductFilter) Matches(p *entities.Product) bool {
	if f == nil {
		return true
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Color != "" && !containsFold(p.Colors, f.Color) {
		return false
	}
	if f.Size != "" && !containsFold(p.Sizes, f.Size) {
		return false
	}
	if f.MinStock != nil && p.Stock < *f.MinStock {
		return false
	}
	if f.MaxStock != nil && p.Stock > *f.MaxStock {
		return false
	}
	if f.MinPrice != nil && p.CurrentPrice < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.CurrentPrice > *f.MaxPrice {
		return false
	}
	if f.CreatedFrom != nil && p.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && p.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

func FilterProducts(products []*entities.Product, f *ProductFilter) []*entities.Product {
	if f == nil {
		return products
	}
	out := make([]*entities.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
