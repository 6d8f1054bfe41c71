package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/hugohenrick/erp-armazem/internal/domain/supplier"
	"github.com/hugohenrick/erp-armazem/internal/domain/warehouse"
)

type warehouseTestEnv struct {
	router    *gin.Engine
	warehouse *fakeWarehouseRepo
	suppliers *fakeSupplierRepo
	orders    *fakeOrderRepo
}

func newWarehouseTestEnv(t *testing.T) *warehouseTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orders := &fakeOrderRepo{orders: map[string]*order.Order{}}
	env := &warehouseTestEnv{
		warehouse: &fakeWarehouseRepo{
			docs:   map[string]*warehouse.Document{},
			stock:  map[string]int{},
			names:  map[string]string{},
			orders: orders,
		},
		suppliers: &fakeSupplierRepo{suppliers: map[string]*supplier.Supplier{}},
		orders:    orders,
	}

	c := NewWarehouseController(env.warehouse, env.suppliers, &fakeAuditRepo{}, nopLogger{})

	env.router = gin.New()
	env.router.Use(testUser("warehouse"))
	env.router.POST("/warehouse/receipts", c.CreateReceipt)
	env.router.POST("/warehouse/issues", c.CreateIssue)
	env.router.GET("/warehouse/documents", c.List)
	env.router.GET("/warehouse/documents/:id", c.Get)
	return env
}

func (env *warehouseTestEnv) seedSupplier(t *testing.T, name string) *supplier.Supplier {
	t.Helper()
	s, err := supplier.NewSupplier(name, "", "", "", "", "")
	if err != nil {
		t.Fatalf("NewSupplier: %v", err)
	}
	env.suppliers.suppliers[s.ID] = s
	return s
}

func (env *warehouseTestEnv) seedStock(productID, name string, available int) {
	env.warehouse.names[productID] = name
	env.warehouse.stock[productID] = available
}

func (env *warehouseTestEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestReceiptAddsStock(t *testing.T) {
	env := newWarehouseTestEnv(t)
	sup := env.seedSupplier(t, "Distribuidora Sul")
	env.seedStock("prod-1", "Arroz 5kg", 2)

	w := env.post(t, "/warehouse/receipts", dto.ReceiptRequest{
		SupplierID: sup.ID,
		Items:      []dto.DocumentItemRequest{{ProductID: "prod-1", Quantity: 10}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("criar recebimento: status %d, corpo %s", w.Code, w.Body.String())
	}

	var resp dto.DocumentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Type != string(warehouse.TypeReceipt) {
		t.Errorf("tipo = %s, esperado RECEIPT", resp.Type)
	}
	if resp.Number == "" {
		t.Error("documento criado sem número")
	}
	if got := env.warehouse.stock["prod-1"]; got != 12 {
		t.Errorf("disponível após recebimento = %d, esperado 12", got)
	}
}

func TestReceiptUnknownSupplier(t *testing.T) {
	env := newWarehouseTestEnv(t)

	w := env.post(t, "/warehouse/receipts", dto.ReceiptRequest{
		SupplierID: "inexistente",
		Items:      []dto.DocumentItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404", w.Code)
	}
}

func TestIssueInsufficientStock(t *testing.T) {
	env := newWarehouseTestEnv(t)
	env.seedStock("prod-1", "Arroz 5kg", 8)
	env.seedStock("prod-2", "Feijão 1kg", 3)

	// A segunda posição não tem disponível; nada pode ser aplicado
	w := env.post(t, "/warehouse/issues", dto.IssueRequest{
		Items: []dto.DocumentItemRequest{
			{ProductID: "prod-1", Quantity: 5},
			{ProductID: "prod-2", Quantity: 5},
		},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, esperado 422, corpo %s", w.Code, w.Body.String())
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Details, "Feijão 1kg") {
		t.Errorf("erro deveria nomear o produto em falta, obteve %q", resp.Details)
	}

	if env.warehouse.stock["prod-1"] != 8 || env.warehouse.stock["prod-2"] != 3 {
		t.Errorf("falha na expedição não deveria alterar o estoque: %v", env.warehouse.stock)
	}
	if len(env.warehouse.docs) != 0 {
		t.Error("falha na expedição não deveria persistir documento")
	}
}

func TestIssueMissingInventoryRecord(t *testing.T) {
	env := newWarehouseTestEnv(t)
	// Produto existe no catálogo mas nunca ganhou registro de estoque
	env.warehouse.names["prod-1"] = "Arroz 5kg"

	w := env.post(t, "/warehouse/issues", dto.IssueRequest{
		Items: []dto.DocumentItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("registro de estoque ausente: status %d, esperado 404, corpo %s", w.Code, w.Body.String())
	}

	// Ausência de registro não é falta de disponível
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message == "Estoque insuficiente" {
		t.Error("registro ausente não deveria ser reportado como estoque insuficiente")
	}
	if len(env.warehouse.docs) != 0 {
		t.Error("falha na expedição não deveria persistir documento")
	}
}

func TestIssueUnknownProduct(t *testing.T) {
	env := newWarehouseTestEnv(t)

	w := env.post(t, "/warehouse/issues", dto.IssueRequest{
		Items: []dto.DocumentItemRequest{{ProductID: "inexistente", Quantity: 1}},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404", w.Code)
	}
}

func TestIssueShipsLinkedOrder(t *testing.T) {
	env := newWarehouseTestEnv(t)
	env.seedStock("prod-1", "Arroz 5kg", 10)

	o := order.NewOrder("cust-1", "")
	o.Status = order.StatusReady
	env.orders.orders[o.ID] = o

	w := env.post(t, "/warehouse/issues", dto.IssueRequest{
		OrderID: o.ID,
		Items:   []dto.DocumentItemRequest{{ProductID: "prod-1", Quantity: 4}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, corpo %s", w.Code, w.Body.String())
	}
	if o.Status != order.StatusShipped {
		t.Errorf("pedido vinculado = %s, esperado SHIPPED", o.Status)
	}
	if got := env.warehouse.stock["prod-1"]; got != 6 {
		t.Errorf("disponível após expedição = %d, esperado 6", got)
	}
}

func TestIssueOrderNotReady(t *testing.T) {
	env := newWarehouseTestEnv(t)
	env.seedStock("prod-1", "Arroz 5kg", 10)

	o := order.NewOrder("cust-1", "")
	env.orders.orders[o.ID] = o

	w := env.post(t, "/warehouse/issues", dto.IssueRequest{
		OrderID: o.ID,
		Items:   []dto.DocumentItemRequest{{ProductID: "prod-1", Quantity: 4}},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expedir pedido NEW: status %d, esperado 422", w.Code)
	}
	if o.Status != order.StatusNew {
		t.Errorf("status do pedido alterado indevidamente para %s", o.Status)
	}
}
