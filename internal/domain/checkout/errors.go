package checkout

import "errors"

var (
	//カートが空（確定済みでなければチェックアウトを続けられない）
	ErrEmptyCart = errors.New("cart empty")

	//今のステップでは許されない操作
	ErrInvalidTransition = errors.New("invalid checkout transition")

	//住所の入力エラー（内容はFieldErrorsで取る）
	ErrAddressInvalid = errors.New("address invalid")

	ErrUnknownField = errors.New("unknown address field")
)
