package repository

import (
	"context"
	"errors"

	"tinytreasures/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Category string
	Q        string
	Sort     string
}

// カタログは読み取りだけ
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
}
