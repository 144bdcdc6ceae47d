package bootstrap

import (
	"log"

	"anoa.com/internhub/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const superAdminEmail = "admin@internhub.local"

// SeedSuperAdmin creates the development super-admin account if it does
// not exist yet.
func SeedSuperAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", superAdminEmail).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Super admin already exists, skipping seed")
		return nil
	}

	password := "Admin123!"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	email := superAdminEmail
	admin := model.User{
		Slug:         "super-admin",
		FullName:     "Super Admin",
		Email:        &email,
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleSuperAdmin,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Super admin seeded successfully")
	log.Printf("   Email: %s", superAdminEmail)

	return nil
}
