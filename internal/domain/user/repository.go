package user

import "context"

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByLogin busca um usuário pelo login
	FindByLogin(ctx context.Context, login string) (*User, error)

	// List lista usuários
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// SetActive ativa ou desativa o usuário
	SetActive(ctx context.Context, id string, active bool) error

	// ExistsByLogin verifica se já existe usuário com o login
	ExistsByLogin(ctx context.Context, login string) (bool, error)

	// ExistsByEmail verifica se já existe usuário com o email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
