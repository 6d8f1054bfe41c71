package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	productdomain "github.com/hugohenrick/erp-armazem/internal/domain/product"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	auditRepo   audit.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, auditRepo audit.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto com registro de estoque zerado
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Code, req.Name, req.Category, req.Unit,
		req.UnitPrice, req.MinimumStock, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar produto", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, p, req.Location); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Produto já existe", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar produto", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "product_created", "produto "+p.Code)
	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// List lista os produtos
// @Summary Listar produtos
// @Description Lista produtos com busca e filtro de categoria
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param search query string false "Busca por código ou nome"
// @Param category query string false "Categoria"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := productdomain.ListFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		Limit:    p.PageSize,
		Offset:   p.Offset(),
	}

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p.Page, p.PageSize))
}

// Get busca um produto pelo ID
// @Summary Buscar produto
// @Description Busca um produto pelo ID
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Update atualiza um produto. O código não muda após a criação.
// @Summary Atualizar produto
// @Description Atualiza os dados de um produto existente
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductUpdateRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	if err := p.Update(req.Name, req.Category, req.Unit, req.UnitPrice,
		req.MinimumStock, req.Description); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar produto", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar produto", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "product_updated", "produto "+p.Code)
	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// SetActive ativa ou desativa um produto. Produtos nunca são removidos.
// @Summary Ativar/desativar produto
// @Description Altera o status ativo do produto
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param active query bool true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/status [patch]
func (c *ProductController) SetActive(ctx *gin.Context) {
	active, err := strconv.ParseBool(ctx.DefaultQuery("active", "true"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetro inválido", err.Error()))
		return
	}

	id := ctx.Param("id")
	if err := c.productRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao alterar status do produto", err.Error()))
		return
	}

	recordAudit(ctx, c.auditRepo, c.logger, "product_status_changed", "produto "+id)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do produto atualizado", nil))
}

// Categories lista as categorias distintas de produtos
// @Summary Listar categorias
// @Description Lista as categorias distintas dos produtos cadastrados
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/categories [get]
func (c *ProductController) Categories(ctx *gin.Context) {
	categories, err := c.productRepo.Categories(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Categorias", categories))
}
