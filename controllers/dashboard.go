package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/models"
)

// DashboardStats returns the headline counts for the admin dashboard.
func DashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users, cars, bookings, pending int64
		db.Model(&models.User{}).Count(&users)
		db.Model(&models.Car{}).Count(&cars)
		db.Model(&models.Booking{}).Count(&bookings)
		db.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&pending)

		c.JSON(http.StatusOK, gin.H{
			"total_users":      users,
			"total_cars":       cars,
			"total_bookings":   bookings,
			"pending_bookings": pending,
		})
	}
}

// AdminListBookings returns all bookings newest first, optionally
// filtered by status.
func AdminListBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var bookings []models.Booking
		if err := query.Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}
