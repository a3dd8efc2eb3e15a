package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups makes sure a default restaurant and branch exist so a fresh
// install is usable immediately.
func SeedLookups() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurant := entity.Restaurant{Name: getEnv("RESTAURANT_NAME", "Main Restaurant")}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}
	branch := entity.Branch{
		Name:         getEnv("DEFAULT_BRANCH_NAME", "Main Branch"),
		RestaurantID: restaurant.ID,
		Active:       true,
	}
	return db.Create(&branch).Error
}
