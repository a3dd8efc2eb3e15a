package services

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/configs"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fixture wires the service graph against a fresh database and offers
// builders for the rows most tests need.
type fixture struct {
	t  *testing.T
	db *gorm.DB

	orders    *OrderService
	inventory *InventoryService
	printing  *PrintService
	shifts    *ShiftService

	branch entity.Branch
	other  entity.Branch
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	log := quietLogger()

	orderRepo := repository.NewOrderRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	printerRepo := repository.NewPrinterRepository(db)
	shiftRepo := repository.NewShiftRepository(db)

	inventory := NewInventoryService(db, invRepo)
	printing := NewPrintService(printerRepo, orderRepo, log)
	orders := NewOrderService(db, orderRepo, branchRepo, inventory, nil, nil, log, true)

	f := &fixture{
		t:         t,
		db:        db,
		orders:    orders,
		inventory: inventory,
		printing:  printing,
		shifts:    NewShiftService(shiftRepo),
	}

	f.branch = entity.Branch{Name: "Downtown", Active: true}
	require.NoError(t, db.Create(&f.branch).Error)
	f.other = entity.Branch{Name: "Uptown", Active: true}
	require.NoError(t, db.Create(&f.other).Error)
	return f
}

func (f *fixture) manager() utils.Actor {
	return utils.Actor{UserID: 1, Role: entity.RoleManager, BranchID: f.branch.ID, BranchName: f.branch.Name}
}

func (f *fixture) admin() utils.Actor {
	return utils.Actor{UserID: 2, Role: entity.RoleAdmin}
}

func (f *fixture) kitchen() utils.Actor {
	return utils.Actor{UserID: 3, Role: entity.RoleKitchenStaff, BranchID: f.branch.ID, BranchName: f.branch.Name}
}

func (f *fixture) addInventory(name, qty, minStock string) *entity.InventoryItem {
	f.t.Helper()
	item := entity.InventoryItem{
		Name:     name,
		Unit:     "unit",
		Quantity: dec(qty),
		MinStock: dec(minStock),
		Status:   entity.ResolveStockStatus(dec(qty), dec(minStock)),
		BranchID: f.branch.ID,
	}
	require.NoError(f.t, f.db.Create(&item).Error)
	return &item
}

func (f *fixture) addCategory(name string) *entity.MenuCategory {
	f.t.Helper()
	cat := entity.MenuCategory{Name: name}
	require.NoError(f.t, f.db.Create(&cat).Error)
	return &cat
}

type ingredientSpec struct {
	item    *entity.InventoryItem
	perUnit string
}

func (f *fixture) addMenuItem(name, price, taxRate string, cat *entity.MenuCategory, ingredients ...ingredientSpec) *entity.MenuItem {
	f.t.Helper()
	mi := entity.MenuItem{
		Name:       name,
		Price:      dec(price),
		TaxRate:    dec(taxRate),
		Active:     true,
		CategoryID: cat.ID,
	}
	require.NoError(f.t, f.db.Create(&mi).Error)
	for _, ing := range ingredients {
		link := entity.MenuItemIngredient{
			MenuItemID:      mi.ID,
			InventoryItemID: ing.item.ID,
			QuantityPerUnit: dec(ing.perUnit),
		}
		require.NoError(f.t, f.db.Create(&link).Error)
	}
	return &mi
}

func (f *fixture) addModifier(name, price string, mi *entity.MenuItem, ingredients ...ingredientSpec) *entity.Modifier {
	f.t.Helper()
	mod := entity.Modifier{Name: name, Price: dec(price), Active: true}
	require.NoError(f.t, f.db.Create(&mod).Error)
	for _, ing := range ingredients {
		link := entity.ModifierIngredient{
			ModifierID:      mod.ID,
			InventoryItemID: ing.item.ID,
			QuantityPerUnit: dec(ing.perUnit),
		}
		require.NoError(f.t, f.db.Create(&link).Error)
	}
	require.NoError(f.t, f.db.Model(mi).Association("Modifiers").Append(&mod))
	return &mod
}

func (f *fixture) addPrinter(printerType string, categoryID *uint, active, online bool) *entity.Printer {
	f.t.Helper()
	p := entity.Printer{
		Name:       printerType + " printer",
		Type:       printerType,
		Active:     active,
		Online:     online,
		BranchID:   f.branch.ID,
		CategoryID: categoryID,
	}
	require.NoError(f.t, f.db.Create(&p).Error)
	return &p
}

func (f *fixture) inventoryQty(id uint) decimal.Decimal {
	f.t.Helper()
	var item entity.InventoryItem
	require.NoError(f.t, f.db.First(&item, id).Error)
	return item.Quantity
}

func (f *fixture) inventoryStatus(id uint) string {
	f.t.Helper()
	var item entity.InventoryItem
	require.NoError(f.t, f.db.First(&item, id).Error)
	return item.Status
}
