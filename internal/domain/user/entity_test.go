package user

import (
	"errors"
	"testing"
)

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("jsilva", "João Silva", "jsilva@example.com", "segredo123", RoleSeller)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	if u.PasswordHash == "segredo123" || u.PasswordHash == "" {
		t.Error("senha não foi armazenada com hash")
	}
	if !u.CheckPassword("segredo123") {
		t.Error("CheckPassword rejeitou a senha correta")
	}
	if u.CheckPassword("outra") {
		t.Error("CheckPassword aceitou senha incorreta")
	}
	if !u.IsActive() {
		t.Error("usuário novo deveria estar ativo")
	}
}

func TestNewUserValidation(t *testing.T) {
	cases := []struct {
		login, name, email string
		role               Role
		want               error
	}{
		{"", "Nome", "a@b.com", RoleAdmin, ErrEmptyLogin},
		{"login", "", "a@b.com", RoleAdmin, ErrEmptyName},
		{"login", "Nome", "", RoleAdmin, ErrEmptyEmail},
		{"login", "Nome", "a@b.com", Role("root"), ErrInvalidRole},
	}
	for _, c := range cases {
		if _, err := NewUser(c.login, c.name, c.email, "x", c.role); !errors.Is(err, c.want) {
			t.Errorf("NewUser(%q,%q,%q,%s) = %v, esperado %v", c.login, c.name, c.email, c.role, err, c.want)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleSeller, RoleWarehouse, RoleManager} {
		if !r.IsValid() {
			t.Errorf("papel %s deveria ser válido", r)
		}
	}
	if Role("superuser").IsValid() {
		t.Error("papel desconhecido aceito como válido")
	}
}
