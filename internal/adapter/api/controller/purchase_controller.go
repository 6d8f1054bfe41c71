package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	productdomain "github.com/hugohenrick/erp-armazem/internal/domain/product"
	purchasedomain "github.com/hugohenrick/erp-armazem/internal/domain/purchase"
	supplierdomain "github.com/hugohenrick/erp-armazem/internal/domain/supplier"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// PurchaseController gerencia as requisições relacionadas a ordens de compra
type PurchaseController struct {
	purchaseRepo purchasedomain.Repository
	supplierRepo supplierdomain.Repository
	productRepo  productdomain.Repository
	auditRepo    audit.Repository
	logger       logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(
	purchaseRepo purchasedomain.Repository,
	supplierRepo supplierdomain.Repository,
	productRepo productdomain.Repository,
	auditRepo audit.Repository,
	logger logger.Logger,
) *PurchaseController {
	return &PurchaseController{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// Create cria uma nova ordem de compra
// @Summary Criar ordem de compra
// @Description Cria uma ordem de compra no status NEW com número sequencial anual
// @Tags purchases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param purchase body dto.PurchaseRequest true "Dados da ordem de compra"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := c.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}
	if !s.Active {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Fornecedor inativo", "não é possível comprar de fornecedor inativo"))
		return
	}

	o := purchasedomain.NewOrder(req.SupplierID, req.Notes, req.PlannedDelivery)
	for _, item := range req.Items {
		if _, err := c.productRepo.FindByID(ctx, item.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", item.ProductID))
				return
			}
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
			return
		}
		if err := o.AddItem(item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Posição inválida", err.Error()))
			return
		}
	}

	if err := c.purchaseRepo.Create(ctx, o); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar ordem de compra", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "purchase_created", "ordem de compra "+o.Number)
	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(o))
}

// List lista as ordens de compra
// @Summary Listar ordens de compra
// @Description Lista ordens de compra com filtro de status
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Status (NEW, SENT, DELIVERED, CANCELLED)"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.PurchaseListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	p := pagination(ctx)

	status := purchasedomain.Status(ctx.Query("status"))
	if status != "" && !status.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", string(status)))
		return
	}

	orders, err := c.purchaseRepo.List(ctx, status, p.PageSize, p.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar ordens de compra", err.Error()))
		return
	}

	total, err := c.purchaseRepo.Count(ctx, status)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar ordens de compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(orders, total, p.Page, p.PageSize))
}

// Get busca uma ordem de compra pelo ID
// @Summary Buscar ordem de compra
// @Description Busca uma ordem de compra pelo ID, com as posições
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id} [get]
func (c *PurchaseController) Get(ctx *gin.Context) {
	o, err := c.findPurchase(ctx)
	if err != nil {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// Send marca a ordem como enviada ao fornecedor
// @Summary Enviar ordem de compra
// @Description Move a ordem de NEW para SENT
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id}/send [post]
func (c *PurchaseController) Send(ctx *gin.Context) {
	o, err := c.findPurchase(ctx)
	if err != nil {
		return
	}

	if err := o.Send(); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Não foi possível enviar a ordem", err.Error()))
		return
	}

	if err := c.purchaseRepo.UpdateStatus(ctx, o.ID, o.Status, nil); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar ordem de compra", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "purchase_sent", "ordem de compra "+o.Number)
	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// MarkDelivered registra a entrega da ordem com a data real. A entrega não
// mexe no estoque; o recebimento físico é um documento de armazém separado.
// @Summary Registrar entrega
// @Description Move a ordem de SENT para DELIVERED e registra a data real de entrega
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id}/deliver [post]
func (c *PurchaseController) MarkDelivered(ctx *gin.Context) {
	o, err := c.findPurchase(ctx)
	if err != nil {
		return
	}

	if err := o.MarkDelivered(); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Não foi possível registrar a entrega", err.Error()))
		return
	}

	if err := c.purchaseRepo.UpdateStatus(ctx, o.ID, o.Status, o.ActualDelivery); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar ordem de compra", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "purchase_delivered", "ordem de compra "+o.Number)
	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// Cancel cancela uma ordem de compra em NEW ou SENT
// @Summary Cancelar ordem de compra
// @Description Cancela uma ordem que ainda não foi entregue
// @Tags purchases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da ordem de compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id}/cancel [post]
func (c *PurchaseController) Cancel(ctx *gin.Context) {
	o, err := c.findPurchase(ctx)
	if err != nil {
		return
	}

	if err := o.Cancel(); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Não foi possível cancelar a ordem", err.Error()))
		return
	}

	if err := c.purchaseRepo.UpdateStatus(ctx, o.ID, o.Status, nil); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar ordem de compra", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "purchase_cancelled", "ordem de compra "+o.Number)
	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(o))
}

// findPurchase busca a ordem do path e responde o erro quando não encontrada
func (c *PurchaseController) findPurchase(ctx *gin.Context) (*purchasedomain.Order, error) {
	o, err := c.purchaseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ordem de compra não encontrada", ""))
			return nil, err
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar ordem de compra", err.Error()))
		return nil, err
	}
	return o, nil
}
