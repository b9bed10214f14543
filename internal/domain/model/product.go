package model

// 商品（カタログは読み取り専用）
// IDは "ring-1" のようなスラッグ
type Product struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"`
	Image       string `gorm:"type:varchar(255)" json:"image"`
	Category    string `gorm:"type:varchar(100);not null;index" json:"category"`
	Description string `gorm:"type:text" json:"description"`

	//表示順
	Position int `gorm:"not null;default:0" json:"-"`
}
