package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	supplierdomain "github.com/hugohenrick/erp-armazem/internal/domain/supplier"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	auditRepo    audit.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, auditRepo audit.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor no sistema
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := supplierdomain.NewSupplier(req.Name, req.TaxID, req.Address,
		req.Phone, req.Email, req.ContactPerson)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Create(ctx, s); err != nil {
		if errors.Is(err, supplierdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Fornecedor já existe", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar fornecedor", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "supplier_created", "fornecedor "+s.Name)
	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(s))
}

// List lista os fornecedores
// @Summary Listar fornecedores
// @Description Lista fornecedores com busca por nome ou NIF
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param search query string false "Busca"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.SupplierListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	p := pagination(ctx)
	search := ctx.Query("search")

	suppliers, err := c.supplierRepo.List(ctx, search, p.PageSize, p.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar fornecedores", err.Error()))
		return
	}

	total, err := c.supplierRepo.Count(ctx, search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers, total, p.Page, p.PageSize))
}

// Get busca um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Busca um fornecedor pelo ID
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// Update atualiza um fornecedor
// @Summary Atualizar fornecedor
// @Description Atualiza os dados de um fornecedor existente
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}

	if err := s.Update(req.Name, req.TaxID, req.Address, req.Phone, req.Email,
		req.ContactPerson); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Update(ctx, s); err != nil {
		if errors.Is(err, supplierdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "NIF já cadastrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar fornecedor", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "supplier_updated", "fornecedor "+s.Name)
	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// SetActive ativa ou desativa um fornecedor
// @Summary Ativar/desativar fornecedor
// @Description Altera o status ativo do fornecedor
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param active query bool true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id}/status [patch]
func (c *SupplierController) SetActive(ctx *gin.Context) {
	active, err := strconv.ParseBool(ctx.DefaultQuery("active", "true"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetro inválido", err.Error()))
		return
	}

	id := ctx.Param("id")
	if err := c.supplierRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao alterar status do fornecedor", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "supplier_status_changed", "fornecedor "+id)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do fornecedor atualizado", nil))
}
