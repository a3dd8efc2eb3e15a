package configs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

// The category to menu-item relation keys on CategoryID, so the schema
// must migrate cleanly and the association must round-trip.
func TestMigrateAndCategoryItemsRelation(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	cat := entity.MenuCategory{Name: "Burgers"}
	require.NoError(t, db.Create(&cat).Error)

	for _, name := range []string{"Classic", "Double"} {
		item := entity.MenuItem{
			Name:       name,
			Price:      decimal.RequireFromString("9.50"),
			Active:     true,
			CategoryID: cat.ID,
		}
		require.NoError(t, db.Create(&item).Error)
	}

	var got entity.MenuCategory
	require.NoError(t, db.Preload("MenuItems").First(&got, cat.ID).Error)
	require.Len(t, got.MenuItems, 2)
	for _, it := range got.MenuItems {
		require.Equal(t, cat.ID, it.CategoryID)
	}
}

// A literal false must survive the insert; a column default of true
// would make GORM drop the zero value and store true instead.
func TestFalseBooleansPersist(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	branch := entity.Branch{Name: "Dark Kitchen", Active: false}
	require.NoError(t, db.Create(&branch).Error)

	printer := entity.Printer{
		Name:     "Backup",
		Type:     entity.PrinterTypeReceipt,
		Active:   false,
		Online:   false,
		BranchID: branch.ID,
	}
	require.NoError(t, db.Create(&printer).Error)

	cat := entity.MenuCategory{Name: "Seasonal"}
	require.NoError(t, db.Create(&cat).Error)
	item := entity.MenuItem{
		Name:       "Pumpkin Pie",
		Price:      decimal.RequireFromString("4.00"),
		Active:     false,
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(&item).Error)

	var b entity.Branch
	require.NoError(t, db.First(&b, branch.ID).Error)
	require.False(t, b.Active)

	var p entity.Printer
	require.NoError(t, db.First(&p, printer.ID).Error)
	require.False(t, p.Active)
	require.False(t, p.Online)

	var m entity.MenuItem
	require.NoError(t, db.First(&m, item.ID).Error)
	require.False(t, m.Active)
}
