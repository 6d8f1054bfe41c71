package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	"github.com/hugohenrick/erp-armazem/internal/domain/user"
	"github.com/hugohenrick/erp-armazem/pkg/jwt"
	"github.com/hugohenrick/erp-armazem/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	userRepo  user.Repository
	auditRepo audit.Repository
	logger    logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo user.Repository, auditRepo audit.Repository, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := c.userRepo.FindByLogin(ctx, request.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.recordAudit(ctx, "", "login_failed", "login desconhecido: "+request.Login)
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Login ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuário inativo", "Sua conta está desativada"))
		return
	}

	if !u.CheckPassword(request.Password) {
		c.recordAudit(ctx, u.ID, "login_failed", "senha incorreta")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Login ou senha incorretos"))
		return
	}

	duration := jwt.TokenDuration()
	token, err := jwt.GenerateToken(u.ID, u.Login, string(u.Role), duration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	c.recordAudit(ctx, u.ID, "login", "login bem-sucedido")

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(duration.Seconds()),
		User:        dto.ToUserResponse(u),
	})
}

// Me retorna os dados do usuário autenticado
// @Summary Usuário atual
// @Description Retorna os dados do usuário autenticado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// recordAudit acrescenta um registro à trilha; falha de auditoria não
// interrompe a requisição
func (c *AuthController) recordAudit(ctx *gin.Context, userID, action, description string) {
	entry := audit.NewEntry(userID, action, description, ctx.ClientIP())
	if err := c.auditRepo.Create(ctx, entry); err != nil {
		c.logger.Error("erro ao registrar auditoria", "action", action, "error", err)
	}
}
