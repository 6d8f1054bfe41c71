package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	invoicedomain "github.com/hugohenrick/erp-armazem/internal/domain/invoice"
	orderdomain "github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// InvoiceController gerencia as requisições relacionadas a faturas
type InvoiceController struct {
	invoiceRepo invoicedomain.Repository
	orderRepo   orderdomain.Repository
	auditRepo   audit.Repository
	logger      logger.Logger
}

// NewInvoiceController cria uma nova instância de InvoiceController
func NewInvoiceController(
	invoiceRepo invoicedomain.Repository,
	orderRepo orderdomain.Repository,
	auditRepo audit.Repository,
	logger logger.Logger,
) *InvoiceController {
	return &InvoiceController{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

// Create emite a fatura de um pedido. Os valores vêm do pedido: IVA = líquido
// × 0,23, bruto = líquido × 1,23, vencimento em 14 dias.
// @Summary Emitir fatura
// @Description Emite a fatura de um pedido de venda; um pedido só pode ter uma fatura
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param invoice body dto.InvoiceRequest true "Pedido a faturar"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [post]
func (c *InvoiceController) Create(ctx *gin.Context) {
	var req dto.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	o, err := c.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pedido não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar pedido", err.Error()))
		return
	}

	if o.Status == orderdomain.StatusCancelled {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Pedido cancelado", "não é possível faturar pedido cancelado"))
		return
	}

	inv := invoicedomain.NewFromOrder(o)
	if err := c.invoiceRepo.Create(ctx, inv); err != nil {
		if errors.Is(err, invoicedomain.ErrAlreadyInvoiced) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Pedido já faturado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao emitir fatura", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "invoice_issued", "fatura "+inv.Number)
	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// List lista as faturas
// @Summary Listar faturas
// @Description Lista faturas com paginação
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [get]
func (c *InvoiceController) List(ctx *gin.Context) {
	p := pagination(ctx)

	invoices, err := c.invoiceRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar faturas", err.Error()))
		return
	}

	total, err := c.invoiceRepo.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar faturas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices, total, p.Page, p.PageSize))
}

// Get busca uma fatura pelo ID
// @Summary Buscar fatura
// @Description Busca uma fatura pelo ID
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da fatura"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [get]
func (c *InvoiceController) Get(ctx *gin.Context) {
	inv, err := c.invoiceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fatura não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// MarkPaid registra o pagamento de uma fatura
// @Summary Registrar pagamento
// @Description Marca a fatura como paga
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da fatura"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id}/pay [post]
func (c *InvoiceController) MarkPaid(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.invoiceRepo.MarkPaid(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fatura não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar pagamento", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "invoice_paid", "fatura "+id)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pagamento registrado", nil))
}
