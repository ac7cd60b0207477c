package models

type DayStatus string

const (
	StatusAvailable DayStatus = "available"
	StatusSoldOut   DayStatus = "sold_out"
)

// DayAvailability marks a single day of the pickup calendar. Days with no row
// are implicitly available; Sundays are always closed regardless of rows.
type DayAvailability struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Date   string    `gorm:"uniqueIndex;not null" json:"date"` // ISO date, e.g. 2026-03-02
	Status DayStatus `gorm:"type:VARCHAR(20);not null;default:'available'" json:"status"`
}
