package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupReportRoutes configura as rotas para o módulo de relatórios. A visão
// de estoque é gated pela permissão de estoque, que o papel de armazém
// também possui; os demais relatórios exigem a permissão de relatórios.
func SetupReportRoutes(router *gin.RouterGroup, reportController *controller.ReportController) {
	reportRouter := router.Group("/reports")
	reportRouter.Use(middleware.AuthMiddleware())
	{
		reports := middleware.RequirePermission(authz.PermReportView)
		stock := middleware.RequirePermission(authz.PermInventoryView)

		reportRouter.GET("/sales", reports, reportController.Sales)
		reportRouter.GET("/stock", stock, reportController.Stock)
		reportRouter.GET("/stock/export", stock, reportController.StockExport)
		reportRouter.GET("/rotation", reports, reportController.Rotation)
		reportRouter.GET("/documents", reports, reportController.Documents)
		reportRouter.GET("/invoices", reports, reportController.Invoices)
	}
}
