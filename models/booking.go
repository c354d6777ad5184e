package models

import "time"

// Booking statuses. A booking in any status other than cancelled counts
// as active and blocks deletion of the car it references.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking references a car and, depending on the submission path, either
// a registered user or a guest. UserID holds a users.id for signed-in
// bookings but the guest paths store the raw customer name in the same
// column; resolving that double duty needs a product decision first.
type Booking struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CarID      string    `gorm:"index" json:"car_id"`
	UserID     string    `gorm:"index" json:"user_id"`
	StartDate  string    `gorm:"not null" json:"start_date"`
	EndDate    string    `gorm:"not null" json:"end_date"`
	TotalPrice int64     `gorm:"not null" json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// BookingWithCar is a booking row joined with the referenced car's
// display fields, used by the bookings page.
type BookingWithCar struct {
	Booking
	CarName  string  `json:"car_name"`
	CarImage *string `json:"car_image"`
}
