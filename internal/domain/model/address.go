package model

// 配送先住所（チェックアウト中だけ保持する下書き）
type Address struct {
	//宛名
	FullName string `json:"full_name"`

	//電話番号（10桁、先頭は6〜9）
	Phone string `json:"phone"`

	//番地など
	AddressLine1 string `json:"address_line1"`

	//建物名など（任意）
	AddressLine2 string `json:"address_line2"`

	City  string `json:"city"`
	State string `json:"state"`

	//郵便番号（6桁）
	Pincode string `json:"pincode"`
}

// フィールド名（JSON名）の一覧
const (
	AddressFieldFullName     = "full_name"
	AddressFieldPhone        = "phone"
	AddressFieldAddressLine1 = "address_line1"
	AddressFieldAddressLine2 = "address_line2"
	AddressFieldCity         = "city"
	AddressFieldState        = "state"
	AddressFieldPincode      = "pincode"
)
