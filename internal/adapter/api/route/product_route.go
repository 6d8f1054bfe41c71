package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	productRouter.Use(middleware.AuthMiddleware())
	{
		// Leitura aberta a qualquer usuário autenticado
		productRouter.GET("", productController.List)
		productRouter.GET("/categories", productController.Categories)
		productRouter.GET("/:id", productController.Get)

		// Escrita exige a capacidade de gestão de produtos
		manage := middleware.RequirePermission(authz.PermProductManage)
		productRouter.POST("", manage, productController.Create)
		productRouter.PUT("/:id", manage, productController.Update)
		productRouter.PATCH("/:id/status", manage, productController.SetActive)
	}
}
