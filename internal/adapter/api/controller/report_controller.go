package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	reportdomain "github.com/hugohenrick/erp-armazem/internal/domain/report"
	warehousedomain "github.com/hugohenrick/erp-armazem/internal/domain/warehouse"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// ReportController gerencia as consultas de relatório. Erros de agregação
// sempre chegam ao cliente como 500; nenhum relatório devolve resultado
// vazio no lugar de uma falha.
type ReportController struct {
	reportRepo reportdomain.Repository
	logger     logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepo reportdomain.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// period extrai o período from/to da query string, com padrão dos últimos
// 30 dias. O limite superior é exclusivo.
func period(ctx *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := ctx.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parâmetro from inválido: %w", err)
		}
		from = parsed
	}
	if v := ctx.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parâmetro to inválido: %w", err)
		}
		// Inclui o dia final inteiro
		to = parsed.AddDate(0, 0, 1)
	}

	return from, to, nil
}

// Sales resume as vendas do período
// @Summary Relatório de vendas
// @Description Resume os pedidos de venda do período, com totais por categoria
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início (YYYY-MM-DD)"
// @Param to query string false "Fim (YYYY-MM-DD)"
// @Success 200 {object} report.SalesSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	from, to, err := period(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	summary, err := c.reportRepo.Sales(ctx, from, to)
	if err != nil {
		c.logger.Error("erro no relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// Stock retorna a visão de estoque
// @Summary Relatório de estoque
// @Description Retorna o estoque atual, com valor total e contagem de baixos
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category query string false "Categoria"
// @Param low query bool false "Somente produtos com estoque baixo"
// @Success 200 {object} report.StockSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/stock [get]
func (c *ReportController) Stock(ctx *gin.Context) {
	lowOnly, _ := strconv.ParseBool(ctx.DefaultQuery("low", "false"))

	summary, err := c.reportRepo.Stock(ctx, ctx.Query("category"), lowOnly)
	if err != nil {
		c.logger.Error("erro no relatório de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// StockExport exporta o relatório de estoque em XLSX
// @Summary Exportar estoque em XLSX
// @Description Gera uma planilha com o estoque atual
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string true "Bearer token"
// @Param category query string false "Categoria"
// @Param low query bool false "Somente produtos com estoque baixo"
// @Success 200 {file} binary
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/stock/export [get]
func (c *ReportController) StockExport(ctx *gin.Context) {
	lowOnly, _ := strconv.ParseBool(ctx.DefaultQuery("low", "false"))

	summary, err := c.reportRepo.Stock(ctx, ctx.Query("category"), lowOnly)
	if err != nil {
		c.logger.Error("erro no relatório de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de estoque", err.Error()))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Estoque"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Código", "Nome", "Categoria", "Disponível", "Reservado",
		"Localização", "Preço unitário", "Estoque mínimo", "Baixo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range summary.Rows {
		values := []interface{}{row.Code, row.Name, row.Category, row.Available,
			row.Reserved, row.Location, row.UnitPrice.InexactFloat64(),
			row.MinimumStock, row.Low}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	totalRow := len(summary.Rows) + 3
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	f.SetCellValue(sheet, cell, "Valor total do estoque")
	cell, _ = excelize.CoordinatesToCellName(2, totalRow)
	f.SetCellValue(sheet, cell, summary.TotalValue.InexactFloat64())

	filename := "estoque_" + time.Now().Format("2006-01-02") + ".xlsx"
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(ctx.Writer); err != nil {
		c.logger.Error("erro ao escrever planilha", "error", err)
	}
}

// Rotation retorna as quantidades expedidas por produto no período
// @Summary Relatório de rotação
// @Description Quantidades expedidas por produto no período, em ordem decrescente
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início (YYYY-MM-DD)"
// @Param to query string false "Fim (YYYY-MM-DD)"
// @Success 200 {array} report.RotationRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/rotation [get]
func (c *ReportController) Rotation(ctx *gin.Context) {
	from, to, err := period(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	rows, err := c.reportRepo.Rotation(ctx, from, to)
	if err != nil {
		c.logger.Error("erro no relatório de rotação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de rotação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// Documents lista os documentos de armazém do período
// @Summary Relatório de documentos
// @Description Lista os documentos de armazém do período, com filtro de tipo
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início (YYYY-MM-DD)"
// @Param to query string false "Fim (YYYY-MM-DD)"
// @Param type query string false "Tipo (RECEIPT ou ISSUE)"
// @Success 200 {array} report.DocumentRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/documents [get]
func (c *ReportController) Documents(ctx *gin.Context) {
	from, to, err := period(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	docType := warehousedomain.Type(ctx.Query("type"))
	if docType != "" && !docType.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tipo inválido", string(docType)))
		return
	}

	rows, err := c.reportRepo.Documents(ctx, from, to, string(docType))
	if err != nil {
		c.logger.Error("erro no relatório de documentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de documentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// Invoices resume as faturas do período
// @Summary Relatório de faturas
// @Description Resume as faturas do período: contagem, pagas e totais
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início (YYYY-MM-DD)"
// @Param to query string false "Fim (YYYY-MM-DD)"
// @Success 200 {object} report.InvoiceSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/invoices [get]
func (c *ReportController) Invoices(ctx *gin.Context) {
	from, to, err := period(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	summary, err := c.reportRepo.Invoices(ctx, from, to)
	if err != nil {
		c.logger.Error("erro no relatório de faturas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de faturas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
