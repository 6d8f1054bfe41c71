package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupAuditRoutes configura as rotas da trilha de auditoria
func SetupAuditRoutes(router *gin.RouterGroup, auditController *controller.AuditController) {
	auditRouter := router.Group("/audit")
	auditRouter.Use(middleware.AuthMiddleware())
	auditRouter.Use(middleware.RequirePermission(authz.PermAuditView))
	{
		auditRouter.GET("", auditController.List)
	}
}
