package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/models"
	"github.com/Adisheth/car-rental-website/storage"
)

// ListCars returns the catalog newest first. ?available=true restricts
// the result to cars currently offered for rent.
func ListCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if c.Query("available") == "true" {
			query = query.Where("available = ?", true)
		}

		var cars []models.Car
		if err := query.Find(&cars).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cars"})
			return
		}
		c.JSON(http.StatusOK, cars)
	}
}

func GetCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var car models.Car
		if err := db.First(&car, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}
		c.JSON(http.StatusOK, car)
	}
}

// CreateCar adds a vehicle to the catalog. The image file, when
// supplied, is written before the row; if the insert then fails the
// freshly written file is removed again.
func CreateCar(db *gorm.DB, images *storage.ImageStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		seatsStr := c.PostForm("seats")
		transmission := c.PostForm("transmission")
		fuel := c.PostForm("fuel")

		if name == "" || priceStr == "" || seatsStr == "" || transmission == "" || fuel == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		seats, err := strconv.Atoi(seatsStr)
		if err != nil || seats <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seats"})
			return
		}

		car := models.Car{
			ID:           uuid.NewString(),
			Name:         name,
			Category:     c.PostForm("category"),
			Price:        price,
			Seats:        seats,
			Transmission: transmission,
			Fuel:         fuel,
			Available:    true,
		}
		if v, ok := c.GetPostForm("rating"); ok && v != "" {
			rating, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
				return
			}
			car.Rating = &rating
		}
		if v := c.PostForm("badge"); v != "" {
			car.Badge = &v
		}
		if v := c.PostForm("features"); v != "" {
			car.Features = &v
		}

		if file, err := c.FormFile("image"); err == nil {
			webPath, err := images.Save(car.ID, file)
			if err != nil {
				log.Error("store image", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add car"})
				return
			}
			car.Image = &webPath
		}

		if err := db.Create(&car).Error; err != nil {
			if car.Image != nil {
				if rmErr := images.Remove(*car.Image); rmErr != nil {
					log.Warn("remove orphaned image", zap.Error(rmErr))
				}
			}
			log.Error("create car", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add car"})
			return
		}

		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// UpdateCar replaces only the supplied fields. A new image is written
// first and the replaced file deleted only once the row update went
// through.
func UpdateCar(db *gorm.DB, images *storage.ImageStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var car models.Car
		if err := db.First(&car, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}

		updates := map[string]interface{}{}
		if v := c.PostForm("name"); v != "" {
			updates["name"] = v
		}
		if v := c.PostForm("category"); v != "" {
			updates["category"] = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseInt(v, 10, 64)
			if err != nil || price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			updates["price"] = price
		}
		if v, ok := c.GetPostForm("rating"); ok {
			if v == "" {
				updates["rating"] = nil
			} else {
				rating, err := strconv.ParseFloat(v, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
					return
				}
				updates["rating"] = rating
			}
		}
		if v := c.PostForm("seats"); v != "" {
			seats, err := strconv.Atoi(v)
			if err != nil || seats <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seats"})
				return
			}
			updates["seats"] = seats
		}
		if v := c.PostForm("transmission"); v != "" {
			updates["transmission"] = v
		}
		if v := c.PostForm("fuel"); v != "" {
			updates["fuel"] = v
		}
		if v, ok := c.GetPostForm("badge"); ok {
			if v == "" {
				updates["badge"] = nil
			} else {
				updates["badge"] = v
			}
		}
		if v, ok := c.GetPostForm("features"); ok {
			if v == "" {
				updates["features"] = nil
			} else {
				updates["features"] = v
			}
		}

		var newImage string
		if file, err := c.FormFile("image"); err == nil {
			newImage, err = images.Save(car.ID, file)
			if err != nil {
				log.Error("store image", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
				return
			}
			updates["image"] = newImage
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		if err := db.Model(&car).Updates(updates).Error; err != nil {
			if newImage != "" {
				if rmErr := images.Remove(newImage); rmErr != nil {
					log.Warn("remove orphaned image", zap.Error(rmErr))
				}
			}
			log.Error("update car", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
			return
		}

		if newImage != "" && car.Image != nil {
			if err := images.Remove(*car.Image); err != nil {
				log.Warn("remove replaced image", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Car updated successfully"})
	}
}

// SetAvailability flips the rentable flag on a car.
func SetAvailability(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Available *bool `json:"available" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var car models.Car
		if err := db.First(&car, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}

		if err := db.Model(&car).Update("available", *body.Available).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully"})
	}
}

// DeleteCar removes a car, but only when no active booking still points
// at it. The stored image file goes after the conflict check so a
// refused delete leaves the catalog entry intact.
func DeleteCar(db *gorm.DB, images *storage.ImageStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var car models.Car
		if err := db.First(&car, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}

		var active int64
		if err := db.Model(&models.Booking{}).
			Where("car_id = ? AND status != ?", car.ID, models.BookingStatusCancelled).
			Count(&active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
			return
		}
		if active > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete car with active bookings"})
			return
		}

		if car.Image != nil {
			if err := images.Remove(*car.Image); err != nil {
				log.Warn("remove car image", zap.Error(err))
			}
		}

		if err := db.Delete(&car).Error; err != nil {
			log.Error("delete car", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
	}
}
