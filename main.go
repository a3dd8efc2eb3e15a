package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/configs"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/routes"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/ws"
)

func main() {
	cfg := configs.LoadConfig()
	configs.SetLogLevel(cfg.LogLevel)
	log := configs.GetLogger()

	configs.RegisterValidations()

	if err := configs.ConnectionDB(cfg); err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := configs.SetupDatabase(); err != nil {
		log.WithError(err).Fatal("database migration failed")
	}
	if err := configs.SeedLookups(); err != nil {
		log.WithError(err).Fatal("seeding defaults failed")
	}
	if err := configs.SeedAdmin(); err != nil {
		log.WithError(err).Fatal("seeding admin failed")
	}

	db := configs.DB()

	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	printerRepo := repository.NewPrinterRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	reportRepo := repository.NewReportRepository(db)

	hub := ws.NewNotificationHub(log)
	go hub.Run()

	authService := services.NewAuthService(userRepo, cfg)
	branchService := services.NewBranchService(branchRepo)
	menuService := services.NewMenuService(menuRepo)
	inventoryService := services.NewInventoryService(db, invRepo)
	printService := services.NewPrintService(printerRepo, orderRepo, log)
	go printService.Run(context.Background())
	shiftService := services.NewShiftService(shiftRepo)
	reportService := services.NewReportService(reportRepo)
	orderService := services.NewOrderService(
		db, orderRepo, branchRepo, inventoryService, printService, hub, log, cfg.StrictTransitions,
	)

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Cfg:       cfg,
		Auth:      authService,
		Orders:    orderService,
		Menu:      menuService,
		Inventory: inventoryService,
		Branches:  branchService,
		Printing:  printService,
		Shifts:    shiftService,
		Reports:   reportService,
		Hub:       hub,
	})

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
