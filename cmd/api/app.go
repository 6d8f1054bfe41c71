package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/route"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Repositórios
	seqRepo := repository.NewSequenceRepository()
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db, seqRepo)
	purchaseRepo := repository.NewPurchaseRepository(db, seqRepo)
	warehouseRepo := repository.NewWarehouseRepository(db, seqRepo)
	invoiceRepo := repository.NewInvoiceRepository(db, seqRepo)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Controllers
	authController := controller.NewAuthController(userRepo, auditRepo, log)
	productController := controller.NewProductController(productRepo, auditRepo, log)
	inventoryController := controller.NewInventoryController(inventoryRepo, auditRepo, log)
	customerController := controller.NewCustomerController(customerRepo, auditRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, auditRepo, log)
	orderController := controller.NewOrderController(orderRepo, customerRepo, productRepo, auditRepo, log)
	purchaseController := controller.NewPurchaseController(purchaseRepo, supplierRepo, productRepo, auditRepo, log)
	warehouseController := controller.NewWarehouseController(warehouseRepo, supplierRepo, auditRepo, log)
	invoiceController := controller.NewInvoiceController(invoiceRepo, orderRepo, auditRepo, log)
	userController := controller.NewUserController(userRepo, auditRepo, log)
	reportController := controller.NewReportController(reportRepo, log)
	auditController := controller.NewAuditController(auditRepo, log)

	// Router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Pool().Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas da API
	api := router.Group("/api/v1")
	route.SetupAuthRoutes(api, authController)
	route.SetupProductRoutes(api, productController)
	route.SetupInventoryRoutes(api, inventoryController)
	route.SetupCustomerRoutes(api, customerController)
	route.SetupSupplierRoutes(api, supplierController)
	route.SetupOrderRoutes(api, orderController)
	route.SetupPurchaseRoutes(api, purchaseController)
	route.SetupWarehouseRoutes(api, warehouseController)
	route.SetupInvoiceRoutes(api, invoiceController)
	route.SetupUserRoutes(api, userController)
	route.SetupReportRoutes(api, reportController)
	route.SetupAuditRoutes(api, auditController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP com desligamento gracioso
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("desligando servidor", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
