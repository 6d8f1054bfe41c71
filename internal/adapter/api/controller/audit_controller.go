package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	auditdomain "github.com/hugohenrick/erp-armazem/internal/domain/audit"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// AuditController expõe a trilha de auditoria para consulta
type AuditController struct {
	auditRepo auditdomain.Repository
	logger    logger.Logger
}

// NewAuditController cria uma nova instância de AuditController
func NewAuditController(auditRepo auditdomain.Repository, logger logger.Logger) *AuditController {
	return &AuditController{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// List lista os registros mais recentes da trilha
// @Summary Listar auditoria
// @Description Lista os registros da trilha de auditoria, dos mais recentes aos mais antigos
// @Tags audit
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.AuditListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /audit [get]
func (c *AuditController) List(ctx *gin.Context) {
	p := pagination(ctx)

	entries, err := c.auditRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar auditoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditListResponse(entries, p.Page, p.PageSize))
}
