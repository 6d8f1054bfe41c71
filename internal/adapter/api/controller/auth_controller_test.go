package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/domain/user"
)

type authTestEnv struct {
	router *gin.Engine
	users  *fakeUserRepo
	audit  *fakeAuditRepo
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &authTestEnv{
		users: &fakeUserRepo{users: map[string]*user.User{}},
		audit: &fakeAuditRepo{},
	}

	c := NewAuthController(env.users, env.audit, nopLogger{})

	env.router = gin.New()
	env.router.POST("/auth/login", c.Login)
	return env
}

func (env *authTestEnv) seedUser(t *testing.T, login, password string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(login, "Usuário de Teste", login+"@teste.local", password, role)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	env.users.users[u.ID] = u
	return u
}

func (env *authTestEnv) login(t *testing.T, login, password string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(dto.LoginRequest{Login: login, Password: password}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	env := newAuthTestEnv(t)
	u := env.seedUser(t, "maria", "senha-forte", user.RoleSeller)

	w := env.login(t, "maria", "senha-forte")
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d, corpo %s", w.Code, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("resposta sem token de acesso")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token_type = %s, esperado Bearer", resp.TokenType)
	}

	if len(env.audit.entries) != 1 {
		t.Fatalf("registros de auditoria = %d, esperado 1", len(env.audit.entries))
	}
	if env.audit.entries[0].Action != "login" || env.audit.entries[0].UserID != u.ID {
		t.Errorf("auditoria = %q/%q, esperado login/%s",
			env.audit.entries[0].Action, env.audit.entries[0].UserID, u.ID)
	}
}

func TestLoginUnknownUserIsAudited(t *testing.T) {
	env := newAuthTestEnv(t)

	w := env.login(t, "desconhecido", "qualquer")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}

	// A tentativa entra na trilha mesmo sem usuário correspondente: o
	// registro é criado sem ator e precisa ser aceito pelo repositório
	if len(env.audit.entries) != 1 {
		t.Fatalf("registros de auditoria = %d, esperado 1", len(env.audit.entries))
	}
	entry := env.audit.entries[0]
	if entry.Action != "login_failed" {
		t.Errorf("ação = %q, esperado login_failed", entry.Action)
	}
	if entry.UserID != "" {
		t.Errorf("user_id = %q, esperado vazio para login desconhecido", entry.UserID)
	}
}

func TestLoginWrongPasswordIsAudited(t *testing.T) {
	env := newAuthTestEnv(t)
	u := env.seedUser(t, "maria", "senha-forte", user.RoleSeller)

	w := env.login(t, "maria", "senha-errada")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}

	if len(env.audit.entries) != 1 {
		t.Fatalf("registros de auditoria = %d, esperado 1", len(env.audit.entries))
	}
	if env.audit.entries[0].Action != "login_failed" || env.audit.entries[0].UserID != u.ID {
		t.Errorf("auditoria = %q/%q, esperado login_failed/%s",
			env.audit.entries[0].Action, env.audit.entries[0].UserID, u.ID)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	env := newAuthTestEnv(t)
	u := env.seedUser(t, "maria", "senha-forte", user.RoleSeller)
	u.Active = false

	w := env.login(t, "maria", "senha-forte")
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, esperado 403", w.Code)
	}
}
