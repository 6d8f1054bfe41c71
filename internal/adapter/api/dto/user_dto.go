package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/user"
)

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Login    string `json:"login" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// UserUpdateRequest representa a requisição de atualização de usuário
type UserUpdateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"` // Vazio mantém a senha atual
	Role     string `json:"role" binding:"required"`
}

// UserResponse representa a resposta de usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse representa a resposta de lista de usuários
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converte um usuário do domínio para DTO
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTO
func ToUserListResponse(users []*user.User, total, page, size int) UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = ToUserResponse(u)
	}

	return UserListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
