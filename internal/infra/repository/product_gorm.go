package repository

import (
	"context"
	"errors"
	"strings"

	"tinytreasures/internal/domain/model"
	repo "tinytreasures/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// Seed はテーブルを作り、無い商品だけ入れる（既存行は上書きしない）
func (r *ProductGormRepository) Seed(ctx context.Context, products []model.Product) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.Product{}); err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
}

// カテゴリ/名前検索/ソート付きで返す
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if c := strings.TrimSpace(q.Category); c != "" {
		tx = tx.Where("LOWER(category) = LOWER(?)", c)
	}

	// q nameを対象
	if s := strings.TrimSpace(q.Q); s != "" {
		tx = tx.Where("name ILIKE ?", "%"+s+"%")
	}

	//sort
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("position asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("position asc")
	default:
		tx = tx.Order("position asc").Order("id asc")
	}

	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}
