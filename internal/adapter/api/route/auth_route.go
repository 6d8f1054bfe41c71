package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupAuthRoutes configura as rotas para o módulo de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/login", authController.Login)

		authRouter.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}
}
