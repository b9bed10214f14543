package checkout

import (
	"time"

	"tinytreasures/internal/domain/cart"
	"tinytreasures/internal/domain/model"
)

// Cart はチェックアウトから見えるカートの操作。
// 変更できるのはClearだけ。
type Cart interface {
	Lines() []cart.Line
	TotalItems() int
	TotalPrice() int64
	Clear()
}

// 注文確定時点の控え（カートを空にする前に取る）
type Receipt struct {
	Reference     string
	Lines         []cart.Line
	TotalItems    int
	TotalPrice    int64
	Address       model.Address
	PaymentTarget string
	PlacedAt      time.Time
}

type Option func(*Flow)

// 注文番号の採番
func WithReference(fn func() string) Option {
	return func(f *Flow) { f.newReference = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(f *Flow) { f.now = fn }
}

// Flow は住所 → 支払い → 完了 の1回分のチェックアウト。
type Flow struct {
	cart          Cart
	paymentTarget string

	step        Step
	address     model.Address
	fieldErrors FieldErrors
	receipt     *Receipt

	newReference func() string
	now          func() time.Time
}

// Start は空でないカートに対してStepAddressから始める。
func Start(c Cart, paymentTarget string, opts ...Option) (*Flow, error) {
	if c.TotalItems() == 0 {
		return nil, ErrEmptyCart
	}

	f := &Flow{
		cart:          c,
		paymentTarget: paymentTarget,
		step:          StepAddress,
		fieldErrors:   FieldErrors{},
		newReference:  func() string { return "" },
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Flow) Step() Step {
	return f.step
}

func (f *Flow) Address() model.Address {
	return f.address
}

func (f *Flow) FieldErrors() FieldErrors {
	out := make(FieldErrors, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

func (f *Flow) PaymentTarget() string {
	return f.paymentTarget
}

// 完了後のみ控えを返す
func (f *Flow) Receipt() (Receipt, bool) {
	if f.receipt == nil {
		return Receipt{}, false
	}
	return *f.receipt, true
}

// Check はカートが空になっていないか見る。
// 完了画面はカートが空でも表示できる。
func (f *Flow) Check() error {
	if f.step != StepSuccess && f.cart.TotalItems() == 0 {
		return ErrEmptyCart
	}
	return nil
}

// EditField は下書きの1項目を書き換え、その項目のエラーだけ消す。
func (f *Flow) EditField(field, value string) error {
	if err := f.Check(); err != nil {
		return err
	}
	if f.step != StepAddress {
		return ErrInvalidTransition
	}

	p := addressField(&f.address, field)
	if p == nil {
		return ErrUnknownField
	}
	if *p == value {
		return nil
	}

	*p = value
	delete(f.fieldErrors, field)
	return nil
}

// SubmitAddress は下書きを保存して検証する。
// 失敗したらStepAddressのままでErrAddressInvalid。
func (f *Flow) SubmitAddress(draft model.Address) error {
	if err := f.Check(); err != nil {
		return err
	}
	if f.step != StepAddress {
		return ErrInvalidTransition
	}

	f.address = draft

	if errs := ValidateAddress(draft); len(errs) > 0 {
		f.fieldErrors = errs
		return ErrAddressInvalid
	}

	next, err := transition(f.step, EventAddressAccepted)
	if err != nil {
		return err
	}
	f.step = next
	f.fieldErrors = FieldErrors{}
	return nil
}

// GoBackToAddress は下書きを残したまま住所入力に戻る。
func (f *Flow) GoBackToAddress() error {
	if err := f.Check(); err != nil {
		return err
	}

	next, err := transition(f.step, EventGoBack)
	if err != nil {
		return err
	}
	f.step = next
	f.fieldErrors = FieldErrors{}
	return nil
}

// ConfirmPayment は「支払いました」の申告を受けて注文を確定する。
// 控えを取る → カートを空にする → 完了、の順。
func (f *Flow) ConfirmPayment() (Receipt, error) {
	if err := f.Check(); err != nil {
		return Receipt{}, err
	}

	next, err := transition(f.step, EventPaymentConfirmed)
	if err != nil {
		return Receipt{}, err
	}

	r := Receipt{
		Reference:     f.newReference(),
		Lines:         f.cart.Lines(),
		TotalItems:    f.cart.TotalItems(),
		TotalPrice:    f.cart.TotalPrice(),
		Address:       f.address,
		PaymentTarget: f.paymentTarget,
		PlacedAt:      f.now(),
	}

	f.cart.Clear()
	f.step = next
	f.receipt = &r
	return r, nil
}

func addressField(a *model.Address, field string) *string {
	switch field {
	case model.AddressFieldFullName:
		return &a.FullName
	case model.AddressFieldPhone:
		return &a.Phone
	case model.AddressFieldAddressLine1:
		return &a.AddressLine1
	case model.AddressFieldAddressLine2:
		return &a.AddressLine2
	case model.AddressFieldCity:
		return &a.City
	case model.AddressFieldState:
		return &a.State
	case model.AddressFieldPincode:
		return &a.Pincode
	default:
		return nil
	}
}
