package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyLogin    = errors.New("login não pode ser vazio")
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyEmail    = errors.New("email não pode ser vazio")
	ErrInvalidRole   = errors.New("papel de usuário inválido")
	ErrDuplicateUser = errors.New("usuário com mesmo login ou email já existe")
)

// Role representa o papel/função do usuário
type Role string

// Papéis do sistema. Os valores coincidem com os usados pelo pacote authz.
const (
	RoleAdmin     Role = "admin"     // Administrador do sistema
	RoleSeller    Role = "seller"    // Vendedor
	RoleWarehouse Role = "warehouse" // Operador de armazém
	RoleManager   Role = "manager"   // Gerente
)

// IsValid verifica se o papel é um dos valores conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleWarehouse, RoleManager:
		return true
	}
	return false
}

// User representa um usuário do sistema
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Nunca retornado nas respostas JSON
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser cria um novo usuário com a senha já com hash
func NewUser(login, name, email, password string, role Role) (*User, error) {
	if login == "" {
		return nil, ErrEmptyLogin
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	u := &User{
		ID:        uuid.New().String(),
		Login:     login,
		Name:      name,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Active
}

// Activate ativa o usuário
func (u *User) Activate() {
	u.Active = true
}

// Deactivate desativa o usuário
func (u *User) Deactivate() {
	u.Active = false
}
