package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupInventoryRoutes configura as rotas para o módulo de estoque
func SetupInventoryRoutes(router *gin.RouterGroup, inventoryController *controller.InventoryController) {
	inventoryRouter := router.Group("/inventory")
	inventoryRouter.Use(middleware.AuthMiddleware())
	{
		view := middleware.RequirePermission(authz.PermInventoryView)
		inventoryRouter.GET("", view, inventoryController.List)
		inventoryRouter.GET("/:product_id", view, inventoryController.Get)

		inventoryRouter.PATCH("/:product_id/location",
			middleware.RequirePermission(authz.PermDocumentCreate),
			inventoryController.UpdateLocation)
	}
}
