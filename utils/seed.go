package utils

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/models"
)

// SeedAdminUser makes sure an admin account exists for the configured
// credentials. Registration never grants the admin flag, so a deployment
// bootstraps its first admin through ADMIN_EMAIL / ADMIN_PASSWORD.
// Idempotent: an existing row for the email is left untouched.
func SeedAdminUser(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:        uuid.NewString(),
		FirstName: "Site",
		LastName:  "Admin",
		Email:     email,
		Phone:     "-",
		Password:  hash,
		IsAdmin:   true,
	}
	return db.Create(&admin).Error
}
