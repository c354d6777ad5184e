package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/middlewares"
	"github.com/Adisheth/car-rental-website/models"
	"github.com/Adisheth/car-rental-website/validations"
)

// rentalDays counts billable days, rounding any partial day up.
func rentalDays(start, end time.Time) int64 {
	return int64(math.Ceil(end.Sub(start).Hours() / 24))
}

// BookCar is the priced submission path: it validates the dates and
// charges ceil(days) times the car's daily price. A signed-in visitor's
// booking is recorded under their user id; guests are recorded by name.
func BookCar(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validations.BookCarRequest
		if err := c.ShouldBind(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid booking request")
			return
		}
		if err := validations.ValidateBookCar(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid booking request: %v", err)
			return
		}

		var car models.Car
		if err := db.First(&car, "id = ?", req.CarID).Error; err != nil {
			c.String(http.StatusNotFound, "Car not found")
			return
		}

		start, _ := time.Parse("2006-01-02", req.StartDate)
		end, _ := time.Parse("2006-01-02", req.EndDate)
		totalPrice := rentalDays(start, end) * car.Price

		renter := req.Name
		if claims, ok := middlewares.CurrentUser(c); ok {
			renter = claims.UserID
		}

		booking := models.Booking{
			ID:         uuid.NewString(),
			CarID:      car.ID,
			UserID:     renter,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalPrice: totalPrice,
			Status:     models.BookingStatusPending,
		}
		if err := db.Create(&booking).Error; err != nil {
			log.Error("create booking", zap.Error(err))
			c.String(http.StatusInternalServerError, "Error saving booking")
			return
		}

		c.Redirect(http.StatusFound, "/book-success")
	}
}

// RawBooking is the quick-booking widget's path. It stores whatever it
// was given: no date-ordering check, total price zero, customer name in
// the user id column. Kept deliberately separate from BookCar; the two
// paths disagree on purpose until the widget is redesigned.
func RawBooking(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validations.RawBookingRequest
		if err := c.ShouldBind(&req); err != nil {
			c.String(http.StatusInternalServerError, "Error saving booking")
			return
		}

		booking := models.Booking{
			ID:         uuid.NewString(),
			CarID:      req.CarID,
			UserID:     req.Name,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalPrice: 0,
			Status:     models.BookingStatusPending,
		}
		if err := db.Create(&booking).Error; err != nil {
			log.Error("create booking", zap.Error(err))
			c.String(http.StatusInternalServerError, "Error saving booking")
			return
		}

		c.String(http.StatusOK, "Booking saved")
	}
}

// MyBookings renders the signed-in user's bookings newest first, joined
// with each car's display name and image.
func MyBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middlewares.CurrentUser(c)

		var bookings []models.BookingWithCar
		if err := db.Table("bookings").
			Select("bookings.*, cars.name AS car_name, cars.image AS car_image").
			Joins("JOIN cars ON cars.id = bookings.car_id").
			Where("bookings.user_id = ?", claims.UserID).
			Order("bookings.created_at DESC").
			Scan(&bookings).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}

		c.HTML(http.StatusOK, "bookings.html", gin.H{
			"User":     claims,
			"Bookings": bookings,
		})
	}
}

// UpdateBookingStatus lets an admin move a booking between the pending,
// confirmed and cancelled states.
func UpdateBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		switch body.Status {
		case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown booking status"})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		if err := db.Model(&booking).Update("status", body.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully", "booking": booking})
	}
}
