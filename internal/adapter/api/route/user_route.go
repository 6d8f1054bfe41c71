package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	userRouter.Use(middleware.AuthMiddleware())
	userRouter.Use(middleware.RequirePermission(authz.PermUserManage))
	{
		userRouter.POST("", userController.Create)
		userRouter.GET("", userController.List)
		userRouter.GET("/:id", userController.Get)
		userRouter.PUT("/:id", userController.Update)
		userRouter.PATCH("/:id/status", userController.SetActive)
	}
}
