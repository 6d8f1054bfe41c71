package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-armazem/internal/domain/user"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de usuários
var (
	ErrUserNotFound = errors.New("usuário não encontrado")
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *database.PostgresDB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *database.PostgresDB) user.Repository {
	return &UserRepository{db: db}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO users (
			id, login, name, email, password_hash, role, active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Login, u.Name, u.Email, u.PasswordHash, u.Role, u.Active,
		u.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return user.ErrDuplicateUser
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}
	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByLogin implementa user.Repository.FindByLogin
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	return r.findOne(ctx, "login = $1", login)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*user.User, error) {
	var u user.User
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, login, name, email, password_hash, role, active, created_at
		FROM users WHERE `+where,
		arg).Scan(
		&u.ID, &u.Login, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.Active, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	return &u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, login, name, email, password_hash, role, active, created_at
		FROM users
		ORDER BY login ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Login, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.Active, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE users SET
			name = $2, email = $3, password_hash = $4, role = $5, active = $6
		WHERE id = $1`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Active)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return user.ErrDuplicateUser
		}
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetActive implementa user.Repository.SetActive
func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE users SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("erro ao alterar status do usuário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ExistsByLogin implementa user.Repository.ExistsByLogin
func (r *UserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)`, login).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar login: %w", err)
	}
	return exists, nil
}

// ExistsByEmail implementa user.Repository.ExistsByEmail
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar email: %w", err)
	}
	return exists, nil
}
