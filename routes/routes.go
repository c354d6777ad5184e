package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/config"
	"github.com/Adisheth/car-rental-website/controllers"
	"github.com/Adisheth/car-rental-website/middlewares"
	"github.com/Adisheth/car-rental-website/storage"
)

// SetupRouter wires every route. Identity attachment is best-effort for
// page routes; API mutations sit behind the auth and admin gates.
func SetupRouter(db *gorm.DB, cfg *config.Config, images *storage.ImageStore, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.AttachUser(cfg.JWTSecret))

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/image", filepath.Join(cfg.UploadDir, "image"))

	// Public API

	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register(db, cfg, log))
		api.POST("/login", controllers.Login(db, cfg))
		api.POST("/logout", controllers.Logout(cfg))

		api.GET("/cars", controllers.ListCars(db))
		api.GET("/cars/:id", controllers.GetCar(db))

		api.GET("/profile", middlewares.RequireAuth(cfg.JWTSecret), controllers.Profile(db))
	}

	// Admin API

	admin := r.Group("/api", middlewares.RequireAuth(cfg.JWTSecret), middlewares.RequireAdmin())
	{
		admin.POST("/cars", controllers.CreateCar(db, images, log))
		admin.PUT("/cars/:id", controllers.UpdateCar(db, images, log))
		admin.PUT("/cars/:id/availability", controllers.SetAvailability(db))
		admin.DELETE("/cars/:id", controllers.DeleteCar(db, images, log))

		admin.GET("/admin/stats", controllers.DashboardStats(db))
		admin.GET("/admin/bookings", controllers.AdminListBookings(db))
		admin.PUT("/bookings/:id/status", controllers.UpdateBookingStatus(db))
	}

	// Booking submissions

	r.POST("/book", controllers.BookCar(db, log))
	r.POST("/bookings", controllers.RawBooking(db, log))

	// Pages

	r.GET("/", controllers.Home(db))
	r.GET("/cars", controllers.CarsPage(db))
	r.GET("/signup", controllers.SignupPage)
	r.GET("/signin", controllers.SigninPage)
	r.GET("/booking", controllers.BookingPage)
	r.GET("/book-success", controllers.BookSuccessPage)
	r.GET("/placeholder.svg", controllers.PlaceholderSVG)

	r.GET("/profile", middlewares.RequireAuth(cfg.JWTSecret), controllers.ProfilePage(db))
	r.GET("/bookings", middlewares.RequireAuth(cfg.JWTSecret), controllers.MyBookings(db))
	r.GET("/dashboard", middlewares.RequireAdminPage(cfg.JWTSecret), controllers.DashboardPage)
	r.GET("/logout", controllers.Logout(cfg))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
