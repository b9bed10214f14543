package repository

import (
	"context"
	"sort"
	"strings"

	"tinytreasures/internal/domain/model"
	repo "tinytreasures/internal/repository"
)

// DBを使わないときのカタログ
type ProductMemoryRepository struct {
	products []model.Product
}

func NewProductMemoryRepository(products []model.Product) *ProductMemoryRepository {
	cp := make([]model.Product, len(products))
	copy(cp, products)
	return &ProductMemoryRepository{products: cp}
}

func (r *ProductMemoryRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	category := strings.TrimSpace(q.Category)
	needle := strings.ToLower(strings.TrimSpace(q.Q))

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}
