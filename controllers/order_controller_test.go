package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/configs"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/routes"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/ws"
)

type apiHarness struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	cfg    *configs.Config

	branch entity.Branch
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	configs.RegisterValidations()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour, StrictTransitions: true}
	log := configs.GetLogger()

	orderRepo := repository.NewOrderRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	printerRepo := repository.NewPrinterRepository(db)

	hub := ws.NewNotificationHub(log)
	go hub.Run()

	inventory := services.NewInventoryService(db, invRepo)
	printing := services.NewPrintService(printerRepo, orderRepo, log)
	orders := services.NewOrderService(db, orderRepo, branchRepo, inventory, printing, hub, log, cfg.StrictTransitions)

	router := gin.New()
	routes.RegisterRoutes(router, routes.Deps{
		Cfg:       cfg,
		Auth:      services.NewAuthService(repository.NewUserRepository(db), cfg),
		Orders:    orders,
		Menu:      services.NewMenuService(repository.NewMenuRepository(db)),
		Inventory: inventory,
		Branches:  services.NewBranchService(branchRepo),
		Printing:  printing,
		Shifts:    services.NewShiftService(repository.NewShiftRepository(db)),
		Reports:   services.NewReportService(repository.NewReportRepository(db)),
		Hub:       hub,
	})

	h := &apiHarness{t: t, db: db, router: router, cfg: cfg}
	h.branch = entity.Branch{Name: "Downtown", Active: true}
	require.NoError(t, db.Create(&h.branch).Error)
	return h
}

func (h *apiHarness) token(role string, branchID uint, branchName string) string {
	h.t.Helper()
	token, err := utils.GenerateToken(1, role, branchID, branchName, h.cfg.JWTSecret, h.cfg.JWTTTL)
	require.NoError(h.t, err)
	return token
}

func (h *apiHarness) do(method, path, token string, body any) (*httptest.ResponseRecorder, resp.Envelope) {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var env resp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func (h *apiHarness) seedMenuItem(price string) *entity.MenuItem {
	h.t.Helper()
	cat := entity.MenuCategory{Name: "Pizza"}
	require.NoError(h.t, h.db.Create(&cat).Error)
	mi := entity.MenuItem{
		Name:       "Margherita",
		Price:      decimal.RequireFromString(price),
		Active:     true,
		CategoryID: cat.ID,
	}
	require.NoError(h.t, h.db.Create(&mi).Error)
	return &mi
}

func TestOrderEndpointsRequireAuth(t *testing.T) {
	h := newAPIHarness(t)
	rec, env := h.do(http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestCreateOrderOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	mi := h.seedMenuItem("10.00")
	token := h.token(entity.RoleManager, h.branch.ID, h.branch.Name)

	rec, env := h.do(http.MethodPost, "/api/orders", token, gin.H{
		"items":       []gin.H{{"menuItemId": mi.ID, "quantity": 2}},
		"orderType":   "DINE_IN",
		"tableNumber": "5",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "success", env.Status)

	data := env.Data.(map[string]any)
	assert.NotEmpty(t, data["orderNumber"])
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, "20", fmt.Sprint(data["subtotal"]))
}

func TestCreateOrderValidationOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	token := h.token(entity.RoleManager, h.branch.ID, h.branch.Name)

	// unknown order type is rejected by binding
	rec, env := h.do(http.MethodPost, "/api/orders", token, gin.H{
		"items":       []gin.H{{"menuItemId": 1, "quantity": 1}},
		"orderType":   "DRIVE_THROUGH",
		"tableNumber": "5",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", env.Status)

	// empty items list never reaches the service
	rec, _ = h.do(http.MethodPost, "/api/orders", token, gin.H{
		"items":       []gin.H{},
		"orderType":   "DINE_IN",
		"tableNumber": "5",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKitchenStaffCannotCreateOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	mi := h.seedMenuItem("10.00")
	token := h.token(entity.RoleKitchenStaff, h.branch.ID, h.branch.Name)

	rec, env := h.do(http.MethodPost, "/api/orders", token, gin.H{
		"items":       []gin.H{{"menuItemId": mi.ID, "quantity": 1}},
		"orderType":   "DINE_IN",
		"tableNumber": "5",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestInsufficientInventoryOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	mi := h.seedMenuItem("10.00")
	item := entity.InventoryItem{
		Name:     "Cheese",
		Quantity: decimal.RequireFromString("1"),
		Status:   entity.StockStatusIn,
		BranchID: h.branch.ID,
	}
	require.NoError(t, h.db.Create(&item).Error)
	require.NoError(t, h.db.Create(&entity.MenuItemIngredient{
		MenuItemID:      mi.ID,
		InventoryItemID: item.ID,
		QuantityPerUnit: decimal.RequireFromString("2"),
	}).Error)

	token := h.token(entity.RoleManager, h.branch.ID, h.branch.Name)
	rec, env := h.do(http.MethodPost, "/api/orders", token, gin.H{
		"items":       []gin.H{{"menuItemId": mi.ID, "quantity": 1}},
		"orderType":   "DINE_IN",
		"tableNumber": "5",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", env.Status)

	data := env.Data.(map[string]any)
	shortfalls := data["shortfalls"].([]any)
	require.Len(t, shortfalls, 1)
	first := shortfalls[0].(map[string]any)
	assert.Equal(t, "Cheese", first["ingredientName"])
}

func TestStatusUpdateOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	mi := h.seedMenuItem("10.00")
	token := h.token(entity.RoleManager, h.branch.ID, h.branch.Name)

	rec, env := h.do(http.MethodPost, "/api/orders", token, gin.H{
		"items":       []gin.H{{"menuItemId": mi.ID, "quantity": 1}},
		"orderType":   "DINE_IN",
		"tableNumber": "5",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := uint(env.Data.(map[string]any)["ID"].(float64))

	rec, env = h.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), token, gin.H{
		"status": "CONFIRMED",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "CONFIRMED", env.Data.(map[string]any)["status"])

	// strict mode refuses a jump from CONFIRMED to COMPLETED
	rec, _ = h.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), token, gin.H{
		"status": "COMPLETED",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	rec, env := h.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
}
