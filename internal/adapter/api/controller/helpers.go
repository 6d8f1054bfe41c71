package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// pagination extrai os parâmetros page e page_size da query string
func pagination(ctx *gin.Context) dto.Pagination {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	return dto.GetPagination(page, pageSize)
}

// recordAudit acrescenta um registro à trilha em nome do usuário autenticado.
// Falha de auditoria é logada e não interrompe a requisição.
func recordAudit(ctx *gin.Context, repo audit.Repository, log logger.Logger, action, description string) {
	entry := audit.NewEntry(ctx.GetString("user_id"), action, description, ctx.ClientIP())
	if err := repo.Create(ctx, entry); err != nil {
		log.Error("erro ao registrar auditoria", "action", action, "error", err)
	}
}
