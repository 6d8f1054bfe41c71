package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupPurchaseRoutes configura as rotas para o módulo de ordens de compra
func SetupPurchaseRoutes(router *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchaseRouter := router.Group("/purchases")
	purchaseRouter.Use(middleware.AuthMiddleware())
	{
		purchaseRouter.GET("", purchaseController.List)
		purchaseRouter.GET("/:id", purchaseController.Get)

		manage := middleware.RequirePermission(authz.PermPurchaseManage)
		purchaseRouter.POST("", manage, purchaseController.Create)
		purchaseRouter.POST("/:id/send", manage, purchaseController.Send)
		purchaseRouter.POST("/:id/cancel", manage, purchaseController.Cancel)

		purchaseRouter.POST("/:id/deliver",
			middleware.RequirePermission(authz.PermPurchaseReceive),
			purchaseController.MarkDelivered)
	}
}
