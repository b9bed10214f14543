package usecase

import (
	"context"

	"tinytreasures/internal/domain/cart"
	repo "tinytreasures/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// カートはセッションが持ち、商品はカタログから引きます。
type CartUsecase struct {
	sessions    repo.SessionRepository
	productRepo repo.ProductRepository
	clock       Clock
}

func NewCartUsecase(
	sessions repo.SessionRepository,
	productRepo repo.ProductRepository,
	clock Clock,
) *CartUsecase {
	return &CartUsecase{
		sessions:    sessions,
		productRepo: productRepo,
		clock:       clock,
	}
}

type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// 合計は毎回明細から計算したものを返す
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice int64              `json:"total_price"`
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	var out CartResponse
	_ = s.Do(u.clock.Now(), func() error {
		out = buildCartResponse(s.Cart)
		return nil
	})
	return out, nil
}

// AddToCart はカートに追加（同一商品は数量+1）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, productID string) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	// 商品チェック
	p, err := findProduct(ctx, u.productRepo, productID)
	if err != nil {
		return CartResponse{}, err
	}

	var out CartResponse
	_ = s.Do(u.clock.Now(), func() error {
		s.Cart.Add(p)
		out = buildCartResponse(s.Cart)
		return nil
	})
	return out, nil
}

// 数量変更（0以下は削除、無い商品は何もしない）
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	var out CartResponse
	_ = s.Do(u.clock.Now(), func() error {
		s.Cart.UpdateQuantity(productID, quantity)
		out = buildCartResponse(s.Cart)
		return nil
	})
	return out, nil
}

// 明細削除（無くてもエラーにしない）
func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionID string, productID string) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	var out CartResponse
	_ = s.Do(u.clock.Now(), func() error {
		s.Cart.Remove(productID)
		out = buildCartResponse(s.Cart)
		return nil
	})
	return out, nil
}

func buildCartResponse(c *cart.Store) CartResponse {
	return CartResponse{
		Items:      toCartItems(c.Lines()),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func toCartItems(lines []cart.Line) []CartItemResponse {
	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartItemResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Image:     l.Product.Image,
			Quantity:  l.Quantity,
			LineTotal: l.Subtotal(),
		})
	}
	return items
}
