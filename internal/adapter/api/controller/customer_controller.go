package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	customerdomain "github.com/hugohenrick/erp-armazem/internal/domain/customer"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	auditRepo    audit.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, auditRepo audit.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cust, err := customerdomain.NewCustomer(req.Name, req.TaxID, req.Address,
		req.ZipCode, req.City, req.Phone, req.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, cust); err != nil {
		if errors.Is(err, customerdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Cliente já existe", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar cliente", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "customer_created", "cliente "+cust.Name)
	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// List lista os clientes
// @Summary Listar clientes
// @Description Lista clientes com busca por nome, NIF ou email
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param search query string false "Busca"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	p := pagination(ctx)
	search := ctx.Query("search")

	customers, err := c.customerRepo.List(ctx, search, p.PageSize, p.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.customerRepo.Count(ctx, search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, p.Page, p.PageSize))
}

// Get busca um cliente pelo ID
// @Summary Buscar cliente
// @Description Busca um cliente pelo ID
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	cust, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados de um cliente existente
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cust, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	if err := cust.Update(req.Name, req.TaxID, req.Address, req.ZipCode,
		req.City, req.Phone, req.Email); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Update(ctx, cust); err != nil {
		if errors.Is(err, customerdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "NIF já cadastrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar cliente", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "customer_updated", "cliente "+cust.Name)
	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// SetActive ativa ou desativa um cliente. Clientes nunca são removidos.
// @Summary Ativar/desativar cliente
// @Description Altera o status ativo do cliente
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param active query bool true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/status [patch]
func (c *CustomerController) SetActive(ctx *gin.Context) {
	active, err := strconv.ParseBool(ctx.DefaultQuery("active", "true"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetro inválido", err.Error()))
		return
	}

	id := ctx.Param("id")
	if err := c.customerRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao alterar status do cliente", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "customer_status_changed", "cliente "+id)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do cliente atualizado", nil))
}
