package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/config"
	"github.com/Adisheth/car-rental-website/middlewares"
	"github.com/Adisheth/car-rental-website/models"
	"github.com/Adisheth/car-rental-website/utils"
)

func setSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, maxAge, "/", "", secure, true)
}

// Register handles new customer signup. A fresh account never carries
// the admin flag.
func Register(db *gorm.DB, cfg *config.Config, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		firstName := c.PostForm("firstName")
		lastName := c.PostForm("lastName")
		email := c.PostForm("email")
		phone := c.PostForm("phone")
		password := c.PostForm("password")

		if firstName == "" || lastName == "" || email == "" || phone == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}

		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			log.Error("hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		user := models.User{
			ID:        uuid.NewString(),
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Phone:     phone,
			Password:  hashedPassword,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Error("create user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		token, err := utils.CreateToken(cfg.JWTSecret, &user, false)
		if err != nil {
			log.Error("sign token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		setSessionCookie(c, token, int(utils.TokenTTL.Seconds()), cfg.Production)
		c.Redirect(http.StatusFound, "/signin")
	}
}

// Login authenticates by email and password. Failures re-render the
// signin page with a single generic message so the response never says
// which of the two was wrong.
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")
		remember := c.PostForm("remember") != ""

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.HTML(http.StatusOK, "signin.html", gin.H{"Error": "Invalid email or password"})
			return
		}
		if !utils.CheckPasswordHash(password, user.Password) {
			c.HTML(http.StatusOK, "signin.html", gin.H{"Error": "Invalid email or password"})
			return
		}

		token, err := utils.CreateToken(cfg.JWTSecret, &user, remember)
		if err != nil {
			c.HTML(http.StatusOK, "signin.html", gin.H{"Error": "An error occurred during login. Please try again."})
			return
		}

		ttl := utils.TokenTTL
		if remember {
			ttl = utils.TokenTTLRemember
		}
		setSessionCookie(c, token, int(ttl.Seconds()), cfg.Production)

		if user.IsAdmin {
			c.Redirect(http.StatusFound, "/dashboard")
		} else {
			c.Redirect(http.StatusFound, "/")
		}
	}
}

// Logout clears the session cookie. The token itself stays valid until
// it expires; there is no revocation list.
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, "", -1, cfg.Production)
		c.Redirect(http.StatusFound, "/signin")
	}
}

// Profile returns the signed-in user's record.
func Profile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middlewares.CurrentUser(c)

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
