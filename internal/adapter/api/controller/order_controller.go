package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	customerdomain "github.com/hugohenrick/erp-armazem/internal/domain/customer"
	orderdomain "github.com/hugohenrick/erp-armazem/internal/domain/order"
	productdomain "github.com/hugohenrick/erp-armazem/internal/domain/product"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// OrderController gerencia as requisições relacionadas a pedidos de venda
type OrderController struct {
	orderRepo    orderdomain.Repository
	customerRepo customerdomain.Repository
	productRepo  productdomain.Repository
	auditRepo    audit.Repository
	logger       logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(
	orderRepo orderdomain.Repository,
	customerRepo customerdomain.Repository,
	productRepo productdomain.Repository,
	auditRepo audit.Repository,
	logger logger.Logger,
) *OrderController {
	return &OrderController{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// Create cria um novo pedido de venda
// @Summary Criar pedido
// @Description Cria um pedido de venda no status NEW com número sequencial anual
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cust, err := c.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}
	if !cust.Active {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Cliente inativo", "não é possível criar pedido para cliente inativo"))
		return
	}

	o := orderdomain.NewOrder(req.CustomerID, req.Notes)
	for _, item := range req.Items {
		p, err := c.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", item.ProductID))
				return
			}
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
			return
		}
		if !p.Active {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Produto inativo", p.Code))
			return
		}

		// Preço informado vence; vazio usa o preço atual do catálogo
		price := item.UnitPrice
		if price.IsZero() {
			price = p.UnitPrice
		}
		if err := o.AddItem(item.ProductID, item.Quantity, price); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Posição inválida", err.Error()))
			return
		}
	}

	if err := c.orderRepo.Create(ctx, o); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar pedido", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "order_created", "pedido "+o.Number)
	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// List lista os pedidos
// @Summary Listar pedidos
// @Description Lista pedidos de venda com filtro de status
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Status (NEW, IN_PROGRESS, READY, SHIPPED, CANCELLED)"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	p := pagination(ctx)

	status := orderdomain.Status(ctx.Query("status"))
	if status != "" && !status.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", string(status)))
		return
	}

	orders, err := c.orderRepo.List(ctx, status, p.PageSize, p.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar pedidos", err.Error()))
		return
	}

	total, err := c.orderRepo.Count(ctx, status)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, total, p.Page, p.PageSize))
}

// Get busca um pedido pelo ID, com as posições
// @Summary Buscar pedido
// @Description Busca um pedido de venda pelo ID
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	o, err := c.findOrder(ctx)
	if err != nil {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// StartPicking move o pedido de NEW para IN_PROGRESS. Fora de NEW a chamada
// não tem efeito e o pedido é retornado como está.
// @Summary Iniciar separação
// @Description Move o pedido para IN_PROGRESS
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/start-picking [post]
func (c *OrderController) StartPicking(ctx *gin.Context) {
	o, err := c.findOrder(ctx)
	if err != nil {
		return
	}

	if o.StartPicking() {
		if err := c.orderRepo.UpdateStatus(ctx, o.ID, o.Status, nil); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar pedido", err.Error()))
			return
		}
		recordAudit(ctx, c.auditRepo, c.logger, "order_picking_started", "pedido "+o.Number)
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// ToggleItem inverte a marcação de separação de uma posição
// @Summary Marcar/desmarcar posição
// @Description Inverte a marcação de separação de uma posição do pedido
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Param item_id path string true "ID da posição"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/items/{item_id}/toggle [post]
func (c *OrderController) ToggleItem(ctx *gin.Context) {
	o, err := c.findOrder(ctx)
	if err != nil {
		return
	}

	itemID := ctx.Param("item_id")
	if err := o.TogglePicked(itemID); err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Posição não encontrada", itemID))
		return
	}

	var picked bool
	for _, item := range o.Items {
		if item.ID == itemID {
			picked = item.Picked
		}
	}

	if err := c.orderRepo.SetItemPicked(ctx, o.ID, itemID, picked); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao marcar posição", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Complete move o pedido de IN_PROGRESS para READY. Exige todas as posições
// separadas.
// @Summary Concluir separação
// @Description Move o pedido para READY quando todas as posições estão separadas
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/complete [post]
func (c *OrderController) Complete(ctx *gin.Context) {
	o, err := c.findOrder(ctx)
	if err != nil {
		return
	}

	if err := o.Complete(); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Não foi possível concluir o pedido", err.Error()))
		return
	}

	if err := c.orderRepo.UpdateStatus(ctx, o.ID, o.Status, o.FulfilledAt); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar pedido", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "order_completed", "pedido "+o.Number)
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Cancel cancela um pedido em NEW ou IN_PROGRESS
// @Summary Cancelar pedido
// @Description Cancela um pedido que ainda não está pronto nem expedido
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/cancel [post]
func (c *OrderController) Cancel(ctx *gin.Context) {
	o, err := c.findOrder(ctx)
	if err != nil {
		return
	}

	if err := o.Cancel(); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Não foi possível cancelar o pedido", err.Error()))
		return
	}

	if err := c.orderRepo.UpdateStatus(ctx, o.ID, o.Status, nil); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar pedido", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "order_cancelled", "pedido "+o.Number)
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// findOrder busca o pedido do path e responde o erro quando não encontrado
func (c *OrderController) findOrder(ctx *gin.Context) (*orderdomain.Order, error) {
	o, err := c.orderRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pedido não encontrado", ""))
			return nil, err
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar pedido", err.Error()))
		return nil, err
	}
	return o, nil
}
