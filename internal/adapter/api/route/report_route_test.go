package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-armazem/internal/domain/report"
	"github.com/hugohenrick/erp-armazem/pkg/authz"
	"github.com/hugohenrick/erp-armazem/pkg/jwt"
	"github.com/shopspring/decimal"
)

// stubReportRepo devolve resumos vazios; os testes de rota só exercitam o
// gating de permissões
type stubReportRepo struct{}

func (stubReportRepo) Sales(ctx context.Context, from, to time.Time) (*report.SalesSummary, error) {
	return &report.SalesSummary{From: from, To: to, TotalNet: decimal.Zero, TotalGross: decimal.Zero}, nil
}

func (stubReportRepo) Stock(ctx context.Context, category string, lowOnly bool) (*report.StockSummary, error) {
	return &report.StockSummary{TotalValue: decimal.Zero}, nil
}

func (stubReportRepo) Rotation(ctx context.Context, from, to time.Time) ([]report.RotationRow, error) {
	return nil, nil
}

func (stubReportRepo) Documents(ctx context.Context, from, to time.Time, docType string) ([]report.DocumentRow, error) {
	return nil, nil
}

func (stubReportRepo) Invoices(ctx context.Context, from, to time.Time) (*report.InvoiceSummary, error) {
	return &report.InvoiceSummary{From: from, To: to, TotalNet: decimal.Zero, TotalGross: decimal.Zero}, nil
}

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.GenerateToken("user-test", "teste", role, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return "Bearer " + token
}

func TestReportRoutePermissions(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api/v1")
	SetupReportRoutes(api, controller.NewReportController(stubReportRepo{}, nopLogger{}))

	cases := []struct {
		name string
		role string
		path string
		want int
	}{
		{"armazém acessa o relatório de estoque", authz.RoleWarehouse, "/api/v1/reports/stock", http.StatusOK},
		{"armazém exporta o estoque", authz.RoleWarehouse, "/api/v1/reports/stock/export", http.StatusOK},
		{"armazém não vê o relatório de vendas", authz.RoleWarehouse, "/api/v1/reports/sales", http.StatusForbidden},
		{"gerente acessa o relatório de estoque", authz.RoleManager, "/api/v1/reports/stock", http.StatusOK},
		{"gerente acessa o relatório de vendas", authz.RoleManager, "/api/v1/reports/sales", http.StatusOK},
		{"vendedor não acessa o relatório de estoque", authz.RoleSeller, "/api/v1/reports/stock", http.StatusForbidden},
		{"admin acessa tudo", authz.RoleAdmin, "/api/v1/reports/invoices", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", bearerToken(t, tc.role))
			router.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("%s como %s: status %d, esperado %d", tc.path, tc.role, w.Code, tc.want)
			}
		})
	}
}
