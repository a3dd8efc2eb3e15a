package configs

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return Migrate(db)
}

// Migrate runs the schema migration on the given handle; tests call it
// against their own in-memory database.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&entity.Restaurant{}, &entity.Branch{}, &entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.Modifier{},
		&entity.MenuItemIngredient{}, &entity.ModifierIngredient{},
		&entity.InventoryItem{}, &entity.InventoryTransaction{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Payment{},
		&entity.Printer{}, &entity.PrintJob{},
		&entity.Shift{},
	)
}
