package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupWarehouseRoutes configura as rotas para os documentos de armazém
func SetupWarehouseRoutes(router *gin.RouterGroup, warehouseController *controller.WarehouseController) {
	warehouseRouter := router.Group("/warehouse")
	warehouseRouter.Use(middleware.AuthMiddleware())
	{
		warehouseRouter.GET("/documents", warehouseController.List)
		warehouseRouter.GET("/documents/:id", warehouseController.Get)

		create := middleware.RequirePermission(authz.PermDocumentCreate)
		warehouseRouter.POST("/receipts", create, warehouseController.CreateReceipt)
		warehouseRouter.POST("/issues", create, warehouseController.CreateIssue)
	}
}
