package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	"github.com/hugohenrick/erp-armazem/internal/domain/inventory"
	supplierdomain "github.com/hugohenrick/erp-armazem/internal/domain/supplier"
	warehousedomain "github.com/hugohenrick/erp-armazem/internal/domain/warehouse"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// WarehouseController gerencia os documentos de entrada e saída de mercadoria
type WarehouseController struct {
	warehouseRepo warehousedomain.Repository
	supplierRepo  supplierdomain.Repository
	auditRepo     audit.Repository
	logger        logger.Logger
}

// NewWarehouseController cria uma nova instância de WarehouseController
func NewWarehouseController(
	warehouseRepo warehousedomain.Repository,
	supplierRepo supplierdomain.Repository,
	auditRepo audit.Repository,
	logger logger.Logger,
) *WarehouseController {
	return &WarehouseController{
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

// CreateReceipt cria um documento de recebimento. Cada posição soma ao
// disponível do produto, tudo na mesma transação.
// @Summary Criar recebimento
// @Description Registra a entrada de mercadoria de um fornecedor
// @Tags warehouse
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param receipt body dto.ReceiptRequest true "Dados do recebimento"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /warehouse/receipts [post]
func (c *WarehouseController) CreateReceipt(ctx *gin.Context) {
	var req dto.ReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if _, err := c.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}

	doc, err := warehousedomain.NewReceipt(req.SupplierID, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar recebimento", err.Error()))
		return
	}

	c.createDocument(ctx, doc, req.Items, "receipt_created")
}

// CreateIssue cria um documento de expedição. Cada posição exige disponível
// suficiente; na primeira falta a operação inteira é abortada. Expedição
// vinculada a um pedido READY muda o pedido para SHIPPED na mesma transação.
// @Summary Criar expedição
// @Description Registra a saída de mercadoria, opcionalmente expedindo um pedido de venda
// @Tags warehouse
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param issue body dto.IssueRequest true "Dados da expedição"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /warehouse/issues [post]
func (c *WarehouseController) CreateIssue(ctx *gin.Context) {
	var req dto.IssueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	doc := warehousedomain.NewIssue(req.OrderID, req.Notes)
	c.createDocument(ctx, doc, req.Items, "issue_created")
}

// createDocument adiciona as posições, persiste e mapeia os erros de negócio
func (c *WarehouseController) createDocument(ctx *gin.Context, doc *warehousedomain.Document, items []dto.DocumentItemRequest, auditAction string) {
	for _, item := range items {
		if err := doc.AddItem(item.ProductID, item.Quantity); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Posição inválida", err.Error()))
			return
		}
	}

	if err := c.warehouseRepo.Create(ctx, doc); err != nil {
		switch {
		case errors.Is(err, inventory.ErrInsufficientStock):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Estoque insuficiente", err.Error()))
		case errors.Is(err, repository.ErrOrderNotReady):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Pedido não está pronto", err.Error()))
		case errors.Is(err, repository.ErrOrderNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pedido não encontrado", ""))
		case errors.Is(err, repository.ErrProductNotFound), errors.Is(err, repository.ErrInventoryNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
		case errors.Is(err, warehousedomain.ErrNoItems), errors.Is(err, warehousedomain.ErrInvalidType):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Documento inválido", err.Error()))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar documento", err.Error()))
		}
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, auditAction, "documento "+doc.Number)
	ctx.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// List lista os documentos de armazém
// @Summary Listar documentos
// @Description Lista documentos de armazém com filtro de tipo
// @Tags warehouse
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param type query string false "Tipo (RECEIPT ou ISSUE)"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.DocumentListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /warehouse/documents [get]
func (c *WarehouseController) List(ctx *gin.Context) {
	p := pagination(ctx)

	docType := warehousedomain.Type(ctx.Query("type"))
	if docType != "" && !docType.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tipo inválido", string(docType)))
		return
	}

	docs, err := c.warehouseRepo.List(ctx, docType, p.PageSize, p.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar documentos", err.Error()))
		return
	}

	total, err := c.warehouseRepo.Count(ctx, docType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar documentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDocumentListResponse(docs, total, p.Page, p.PageSize))
}

// Get busca um documento pelo ID, com as posições
// @Summary Buscar documento
// @Description Busca um documento de armazém pelo ID
// @Tags warehouse
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /warehouse/documents/{id} [get]
func (c *WarehouseController) Get(ctx *gin.Context) {
	doc, err := c.warehouseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Documento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar documento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
