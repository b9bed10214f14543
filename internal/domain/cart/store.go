package cart

import "tinytreasures/internal/domain/model"

// カートの明細（1商品につき1行）
// Quantityは常に1以上。0以下になった行は存在しない扱い。
type Line struct {
	Product  model.Product
	Quantity int
}

// 行の小計
func (l Line) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

type Op string

const (
	OpAdd    Op = "ADD"
	OpUpdate Op = "UPDATE"
	OpRemove Op = "REMOVE"
	OpClear  Op = "CLEAR"
)

// 変更通知。no-opの操作では通知しない。
type Change struct {
	Op        Op
	ProductID string
	Quantity  int
}

// Store はセッション1つ分のカート。
// 行は追加順で保持し、合計は読むたびに計算する。
type Store struct {
	lines     []Line
	observers []func(Change)
}

func NewStore() *Store {
	return &Store{}
}

// 変更を購読する
func (s *Store) OnChange(fn func(Change)) {
	s.observers = append(s.observers, fn)
}

// Add は同じ商品なら数量+1、無ければ末尾に数量1で追加する。
func (s *Store) Add(p model.Product) {
	if i := s.indexOf(p.ID); i >= 0 {
		s.lines[i].Quantity++
		s.notify(Change{Op: OpAdd, ProductID: p.ID, Quantity: s.lines[i].Quantity})
		return
	}

	s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	s.notify(Change{Op: OpAdd, ProductID: p.ID, Quantity: 1})
}

// Remove は行を削除する。無ければ何もしない。
func (s *Store) Remove(productID string) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.notify(Change{Op: OpRemove, ProductID: productID})
}

// UpdateQuantity は数量を上書きする。0以下なら削除。
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	s.lines[i].Quantity = quantity
	s.notify(Change{Op: OpUpdate, ProductID: productID, Quantity: quantity})
}

// Clear は全行を削除する（注文確定時のみ使う）
func (s *Store) Clear() {
	s.lines = nil
	s.notify(Change{Op: OpClear})
}

// Lines は追加順のコピーを返す
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Contains(productID string) bool {
	return s.indexOf(productID) >= 0
}

func (s *Store) TotalItems() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

func (s *Store) TotalPrice() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *Store) indexOf(productID string) int {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) notify(ch Change) {
	for _, fn := range s.observers {
		fn(ch)
	}
}
