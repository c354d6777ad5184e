package models

import "time"

// Car is a rental vehicle in the catalog. Price is stored in minor
// currency units per day. Features holds a serialized list the catalog
// treats as opaque text.
type Car struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `json:"category"`
	Price        int64     `gorm:"not null" json:"price"`
	Rating       *float64  `json:"rating"`
	Seats        int       `json:"seats"`
	Transmission string    `json:"transmission"`
	Fuel         string    `json:"fuel"`
	Image        *string   `json:"image"`
	Badge        *string   `json:"badge"`
	Features     *string   `json:"features"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
