package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupCustomerRoutes configura as rotas para o módulo de clientes
func SetupCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController) {
	customerRouter := router.Group("/customers")
	customerRouter.Use(middleware.AuthMiddleware())
	{
		customerRouter.GET("", customerController.List)
		customerRouter.GET("/:id", customerController.Get)

		manage := middleware.RequirePermission(authz.PermCustomerManage)
		customerRouter.POST("", manage, customerController.Create)
		customerRouter.PUT("/:id", manage, customerController.Update)
		customerRouter.PATCH("/:id/status", manage, customerController.SetActive)
	}
}
