package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupSupplierRoutes configura as rotas para o módulo de fornecedores
func SetupSupplierRoutes(router *gin.RouterGroup, supplierController *controller.SupplierController) {
	supplierRouter := router.Group("/suppliers")
	supplierRouter.Use(middleware.AuthMiddleware())
	{
		supplierRouter.GET("", supplierController.List)
		supplierRouter.GET("/:id", supplierController.Get)

		manage := middleware.RequirePermission(authz.PermSupplierManage)
		supplierRouter.POST("", manage, supplierController.Create)
		supplierRouter.PUT("/:id", manage, supplierController.Update)
		supplierRouter.PATCH("/:id/status", manage, supplierController.SetActive)
	}
}
