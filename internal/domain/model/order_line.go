package model

import "time"

// 注文明細。チェックアウト時点の合計金額を必ず保存（後から再計算しない）。
// OrderRef は1回のチェックアウトで作られた明細をまとめるキー。
type OrderLine struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef   string    `gorm:"type:varchar(36);not null;index" json:"order_ref"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	ProductID  int64     `gorm:"not null;index" json:"product_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	OrderDate  time.Time `gorm:"not null;autoCreateTime" json:"order_date"`
}
