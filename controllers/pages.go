package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/middlewares"
	"github.com/Adisheth/car-rental-website/models"
)

// Home renders the landing page with the six newest available cars.
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var featured []models.Car
		db.Where("available = ?", true).Order("created_at DESC").Limit(6).Find(&featured)

		claims, _ := middlewares.CurrentUser(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"User":         claims,
			"FeaturedCars": featured,
		})
	}
}

// CarsPage renders the full catalog of available cars.
func CarsPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cars []models.Car
		db.Where("available = ?", true).Order("created_at DESC").Find(&cars)

		claims, _ := middlewares.CurrentUser(c)
		c.HTML(http.StatusOK, "cars.html", gin.H{
			"User": claims,
			"Cars": cars,
		})
	}
}

func SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func SigninPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{})
}

func BookingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "booking.html", gin.H{})
}

func BookSuccessPage(c *gin.Context) {
	c.HTML(http.StatusOK, "book-success.html", gin.H{})
}

// ProfilePage renders the signed-in user's profile.
func ProfilePage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middlewares.CurrentUser(c)

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		c.HTML(http.StatusOK, "profile.html", gin.H{"User": user})
	}
}

func DashboardPage(c *gin.Context) {
	claims, _ := middlewares.CurrentUser(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"User": claims})
}

// PlaceholderSVG serves a parameterized gray placeholder image for cards
// that have no photo yet.
func PlaceholderSVG(c *gin.Context) {
	width, err := strconv.Atoi(c.Query("width"))
	if err != nil || width <= 0 {
		width = 1200
	}
	height, err := strconv.Atoi(c.Query("height"))
	if err != nil || height <= 0 {
		height = 400
	}
	opacity, err := strconv.ParseFloat(c.Query("opacity"), 64)
	if err != nil || opacity <= 0 {
		opacity = 0.06
	}
	text := c.Query("text")

	svg := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d' viewBox='0 0 %d %d'>
  <rect width='100%%' height='100%%' fill='#f3f4f6' />
  <text x='50%%' y='50%%' dominant-baseline='middle' text-anchor='middle' fill='#9ca3af' opacity='%g' font-family='Arial, Helvetica, sans-serif' font-size='24'>%s</text>
</svg>`, width, height, width, height, opacity, text)

	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
