package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupOrderRoutes configura as rotas para o módulo de pedidos de venda
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController) {
	orderRouter := router.Group("/orders")
	orderRouter.Use(middleware.AuthMiddleware())
	{
		orderRouter.GET("", orderController.List)
		orderRouter.GET("/:id", orderController.Get)

		create := middleware.RequirePermission(authz.PermOrderCreate)
		orderRouter.POST("", create, orderController.Create)
		orderRouter.POST("/:id/cancel", create, orderController.Cancel)

		// A separação é operação de armazém
		pick := middleware.RequirePermission(authz.PermOrderPick)
		orderRouter.POST("/:id/start-picking", pick, orderController.StartPicking)
		orderRouter.POST("/:id/items/:item_id/toggle", pick, orderController.ToggleItem)
		orderRouter.POST("/:id/complete", pick, orderController.Complete)
	}
}
