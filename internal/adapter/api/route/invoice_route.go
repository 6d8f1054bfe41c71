package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/middleware"
)

// SetupInvoiceRoutes configura as rotas para o módulo de faturas
func SetupInvoiceRoutes(router *gin.RouterGroup, invoiceController *controller.InvoiceController) {
	invoiceRouter := router.Group("/invoices")
	invoiceRouter.Use(middleware.AuthMiddleware())
	{
		invoiceRouter.GET("", invoiceController.List)
		invoiceRouter.GET("/:id", invoiceController.Get)

		issue := middleware.RequirePermission(authz.PermInvoiceIssue)
		invoiceRouter.POST("", issue, invoiceController.Create)
		invoiceRouter.POST("/:id/pay", issue, invoiceController.MarkPaid)
	}
}
