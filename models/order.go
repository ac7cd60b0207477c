package models

import "time"

type PaymentMethod string

const (
	PaymentZelle PaymentMethod = "zelle"
	PaymentCash  PaymentMethod = "cash"
)

// Order is a submitted pickup order. Items is the human-readable summary
// captured at submission time (one "QTYxNAME" line per cart entry); it is the
// display-compatible record of the sale, so later catalog price changes never
// touch it. Lines is the normalized copy of the same selection.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	CustomerName  string        `gorm:"not null" json:"customer_name"`
	CustomerPhone string        `gorm:"not null" json:"customer_phone"`
	OrderDate     string        `gorm:"not null;index" json:"order_date"` // ISO date
	OrderTime     string        `gorm:"not null" json:"order_time"`       // slot, e.g. "10:00"
	Items         string        `json:"items"`
	Lines         []OrderLine   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}

// OrderLine snapshots one cart entry. UnitPrice is the catalog price at
// submission time and is the price basis for any later admin edit.
type OrderLine struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
