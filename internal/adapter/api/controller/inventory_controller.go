package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	inventorydomain "github.com/hugohenrick/erp-armazem/internal/domain/inventory"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// InventoryController gerencia as requisições relacionadas ao estoque
type InventoryController struct {
	inventoryRepo inventorydomain.Repository
	auditRepo     audit.Repository
	logger        logger.Logger
}

// NewInventoryController cria uma nova instância de InventoryController
func NewInventoryController(inventoryRepo inventorydomain.Repository, auditRepo audit.Repository, logger logger.Logger) *InventoryController {
	return &InventoryController{
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

// List lista o estoque atual
// @Summary Listar estoque
// @Description Lista o estoque dos produtos ativos, com filtro de categoria e de somente-baixos
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category query string false "Categoria"
// @Param low query bool false "Somente produtos com estoque baixo"
// @Success 200 {object} dto.StockListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory [get]
func (c *InventoryController) List(ctx *gin.Context) {
	lowOnly, _ := strconv.ParseBool(ctx.DefaultQuery("low", "false"))

	items, err := c.inventoryRepo.List(ctx, ctx.Query("category"), lowOnly)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockListResponse(items))
}

// Get busca o registro de estoque de um produto
// @Summary Estoque de um produto
// @Description Busca o registro de estoque de um produto
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id path string true "ID do produto"
// @Success 200 {object} inventory.Record
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/{product_id} [get]
func (c *InventoryController) Get(ctx *gin.Context) {
	rec, err := c.inventoryRepo.FindByProduct(ctx, ctx.Param("product_id"))
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Registro de estoque não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

// UpdateLocation muda a localização de um produto no armazém
// @Summary Mudar localização
// @Description Atualiza a localização do produto no armazém
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id path string true "ID do produto"
// @Param location body dto.LocationUpdateRequest true "Nova localização"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/{product_id}/location [patch]
func (c *InventoryController) UpdateLocation(ctx *gin.Context) {
	var req dto.LocationUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	productID := ctx.Param("product_id")
	if err := c.inventoryRepo.UpdateLocation(ctx, productID, req.Location); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Registro de estoque não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar localização", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "location_changed", "produto "+productID+" para "+req.Location)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Localização atualizada", nil))
}
