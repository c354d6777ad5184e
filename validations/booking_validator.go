package validations

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// BookCarRequest is the priced booking form posted from a car's detail
// page. Dates arrive as yyyy-mm-dd form values.
type BookCarRequest struct {
	CarID     string `form:"car_id" validate:"required"`
	StartDate string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"required,datetime=2006-01-02"`
	Name      string `form:"name" validate:"required"`
	Phone     string `form:"phone"`
	Email     string `form:"email" validate:"omitempty,email"`
	Location  string `form:"location"`
}

// RawBookingRequest is the quick-booking widget's payload. It is kept
// deliberately loose: no date-ordering check, mirroring the widget's
// fire-and-forget behavior.
type RawBookingRequest struct {
	CarID     string `form:"carId" json:"carId"`
	Name      string `form:"name" json:"name"`
	Email     string `form:"email" json:"email"`
	Phone     string `form:"phone" json:"phone"`
	Location  string `form:"location" json:"location"`
	StartDate string `form:"startDate" json:"startDate"`
	EndDate   string `form:"endDate" json:"endDate"`
}

// ValidateBookCar checks required fields, date formats and that the end
// date falls strictly after the start date.
func ValidateBookCar(req *BookCarRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if !end.After(start) {
		return errors.New("end date must be after start date")
	}
	return nil
}
