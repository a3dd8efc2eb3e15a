package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/configs"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/controllers"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/middlewares"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/ws"
)

// Deps carries the constructed services into route registration so nothing
// reaches for global state.
type Deps struct {
	Cfg       *configs.Config
	Auth      *services.AuthService
	Orders    *services.OrderService
	Menu      *services.MenuService
	Inventory *services.InventoryService
	Branches  *services.BranchService
	Printing  *services.PrintService
	Shifts    *services.ShiftService
	Reports   *services.ReportService
	Hub       *ws.NotificationHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware(d.Cfg))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "success", "message": "ok"}) })

	authCtrl := controllers.NewAuthController(d.Auth)
	orderCtrl := controllers.NewOrderController(d.Orders)
	menuCtrl := controllers.NewMenuController(d.Menu)
	invCtrl := controllers.NewInventoryController(d.Inventory)
	branchCtrl := controllers.NewBranchController(d.Branches)
	printerCtrl := controllers.NewPrinterController(d.Printing)
	shiftCtrl := controllers.NewShiftController(d.Shifts)
	reportCtrl := controllers.NewReportController(d.Reports)

	auth := middlewares.AuthMiddleware(d.Cfg)
	adminOnly := middlewares.AuthMiddleware(d.Cfg, entity.RoleAdmin)
	staff := middlewares.AuthMiddleware(d.Cfg, entity.RoleAdmin, entity.RoleManager)

	api := r.Group("/api")

	// Auth
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/auth/me", auth, authCtrl.Me)
	api.POST("/auth/register", adminOnly, authCtrl.Register)

	// Orders
	orders := api.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
		orders.PUT("/:id/payment-status", orderCtrl.UpdatePaymentStatus)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	// Menu
	api.GET("/menu-categories", auth, menuCtrl.ListCategories)
	api.POST("/menu-categories", staff, menuCtrl.CreateCategory)
	api.PUT("/menu-categories/:id", staff, menuCtrl.UpdateCategory)
	api.DELETE("/menu-categories/:id", staff, menuCtrl.DeleteCategory)

	api.GET("/menu-items", auth, menuCtrl.ListMenuItems)
	api.GET("/menu-items/:id", auth, menuCtrl.GetMenuItem)
	api.POST("/menu-items", staff, menuCtrl.CreateMenuItem)
	api.PUT("/menu-items/:id", staff, menuCtrl.UpdateMenuItem)
	api.DELETE("/menu-items/:id", staff, menuCtrl.DeleteMenuItem)

	api.GET("/modifiers", auth, menuCtrl.ListModifiers)
	api.POST("/modifiers", staff, menuCtrl.CreateModifier)
	api.DELETE("/modifiers/:id", staff, menuCtrl.DeleteModifier)

	// Inventory
	inv := api.Group("/inventory", auth)
	{
		inv.GET("", invCtrl.List)
		inv.GET("/low-stock", invCtrl.LowStock)
		inv.GET("/:id", invCtrl.Detail)
		inv.GET("/:id/transactions", invCtrl.Transactions)
	}
	invWrite := api.Group("/inventory", staff)
	{
		invWrite.POST("", invCtrl.Create)
		invWrite.PUT("/:id", invCtrl.Update)
		invWrite.DELETE("/:id", invCtrl.Delete)
		invWrite.POST("/:id/adjust", invCtrl.Adjust)
	}

	// Branches
	api.GET("/branches", auth, branchCtrl.List)
	api.GET("/branches/:id", auth, branchCtrl.Detail)
	api.POST("/branches", adminOnly, branchCtrl.Create)
	api.PUT("/branches/:id", adminOnly, branchCtrl.Update)
	api.DELETE("/branches/:id", adminOnly, branchCtrl.Delete)

	// Printers & jobs
	api.GET("/printers", auth, printerCtrl.List)
	api.POST("/printers", staff, printerCtrl.Create)
	api.PUT("/printers/:id", staff, printerCtrl.Update)
	api.DELETE("/printers/:id", staff, printerCtrl.Delete)
	api.GET("/print-jobs", auth, printerCtrl.ListJobs)
	api.POST("/print-jobs/:id/retry", staff, printerCtrl.RetryJob)

	// Shifts
	api.POST("/shifts/clock-in", auth, shiftCtrl.ClockIn)
	api.POST("/shifts/clock-out", auth, shiftCtrl.ClockOut)
	api.GET("/shifts", staff, shiftCtrl.List)

	// Reports
	api.GET("/reports/sales", staff, reportCtrl.Sales)
	api.GET("/reports/top-items", staff, reportCtrl.TopItems)

	// Real-time notifications
	r.GET("/ws/notifications", auth, d.Hub.HandleWebSocket)
}
