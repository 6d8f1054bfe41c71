package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-armazem/internal/domain/customer"
	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/hugohenrick/erp-armazem/internal/domain/product"
	"github.com/shopspring/decimal"
)

type orderTestEnv struct {
	router    *gin.Engine
	orders    *fakeOrderRepo
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	audit     *fakeAuditRepo
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &orderTestEnv{
		orders:    &fakeOrderRepo{orders: map[string]*order.Order{}},
		customers: &fakeCustomerRepo{customers: map[string]*customer.Customer{}},
		products:  &fakeProductRepo{products: map[string]*product.Product{}},
		audit:     &fakeAuditRepo{},
	}

	c := NewOrderController(env.orders, env.customers, env.products, env.audit, nopLogger{})

	env.router = gin.New()
	env.router.Use(testUser("seller"))
	env.router.POST("/orders", c.Create)
	env.router.GET("/orders/:id", c.Get)
	env.router.POST("/orders/:id/start-picking", c.StartPicking)
	env.router.POST("/orders/:id/items/:item_id/toggle", c.ToggleItem)
	env.router.POST("/orders/:id/complete", c.Complete)
	env.router.POST("/orders/:id/cancel", c.Cancel)
	return env
}

func (env *orderTestEnv) seedCustomer(t *testing.T, name string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, "", "", "", "", "", "")
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}
	env.customers.customers[c.ID] = c
	return c
}

func (env *orderTestEnv) seedProduct(t *testing.T, code, name, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(code, name, "geral", "un", decimal.RequireFromString(price), 0, "")
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	env.products.products[p.ID] = p
	return p
}

func (env *orderTestEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeOrder(t *testing.T, w *httptest.ResponseRecorder) dto.OrderResponse {
	t.Helper()
	var resp dto.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode resposta: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestOrderLifecycle(t *testing.T) {
	env := newOrderTestEnv(t)
	cust := env.seedCustomer(t, "Mercearia Central")
	p1 := env.seedProduct(t, "P-001", "Arroz 5kg", "20.00")
	p2 := env.seedProduct(t, "P-002", "Feijão 1kg", "8.00")

	// Segunda posição sem preço informado usa o preço do catálogo
	w := env.do(t, http.MethodPost, "/orders", dto.OrderRequest{
		CustomerID: cust.ID,
		Items: []dto.OrderItemRequest{
			{ProductID: p1.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("19.50")},
			{ProductID: p2.ID, Quantity: 3},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("criar pedido: status %d, corpo %s", w.Code, w.Body.String())
	}
	created := decodeOrder(t, w)
	if created.Status != string(order.StatusNew) {
		t.Errorf("status inicial = %s, esperado NEW", created.Status)
	}
	if created.Number == "" {
		t.Error("pedido criado sem número")
	}
	// líquido = 2×19,50 + 3×8,00 = 63,00; bruto = 63,00 × 1,23 = 77,49
	if !created.NetValue.Equal(decimal.RequireFromString("63.00")) {
		t.Errorf("líquido = %s, esperado 63.00", created.NetValue)
	}
	if !created.GrossValue.Equal(decimal.RequireFromString("77.49")) {
		t.Errorf("bruto = %s, esperado 77.49", created.GrossValue)
	}
	if len(created.Items) != 2 {
		t.Fatalf("posições = %d, esperado 2", len(created.Items))
	}
	if !created.Items[1].UnitPrice.Equal(decimal.RequireFromString("8.00")) {
		t.Errorf("preço da posição sem valor informado = %s, esperado o do catálogo (8.00)", created.Items[1].UnitPrice)
	}

	w = env.do(t, http.MethodPost, "/orders/"+created.ID+"/start-picking", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start-picking: status %d", w.Code)
	}
	if got := decodeOrder(t, w).Status; got != string(order.StatusInProgress) {
		t.Errorf("status após start-picking = %s, esperado IN_PROGRESS", got)
	}

	// Concluir antes de separar tudo é rejeitado e o estado não muda
	w = env.do(t, http.MethodPost, "/orders/"+created.ID+"/complete", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("complete sem separação: status %d, esperado 422", w.Code)
	}
	if env.orders.orders[created.ID].Status != order.StatusInProgress {
		t.Errorf("falha em complete alterou o status para %s", env.orders.orders[created.ID].Status)
	}

	w = env.do(t, http.MethodPost, "/orders/"+created.ID+"/items/"+created.Items[0].ID+"/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status %d", w.Code)
	}

	// Ainda falta uma posição
	w = env.do(t, http.MethodPost, "/orders/"+created.ID+"/complete", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("complete com separação parcial: status %d, esperado 422", w.Code)
	}

	w = env.do(t, http.MethodPost, "/orders/"+created.ID+"/items/"+created.Items[1].ID+"/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/orders/"+created.ID+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete: status %d, corpo %s", w.Code, w.Body.String())
	}
	done := decodeOrder(t, w)
	if done.Status != string(order.StatusReady) {
		t.Errorf("status final = %s, esperado READY", done.Status)
	}
	if done.FulfilledAt == nil {
		t.Error("complete deveria registrar a data de realização")
	}
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	env := newOrderTestEnv(t)
	p := env.seedProduct(t, "P-001", "Arroz 5kg", "20.00")

	w := env.do(t, http.MethodPost, "/orders", dto.OrderRequest{
		CustomerID: "inexistente",
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404", w.Code)
	}
}

func TestCreateOrderInactiveCustomer(t *testing.T) {
	env := newOrderTestEnv(t)
	cust := env.seedCustomer(t, "Cliente Desativado")
	cust.Deactivate()
	p := env.seedProduct(t, "P-001", "Arroz 5kg", "20.00")

	w := env.do(t, http.MethodPost, "/orders", dto.OrderRequest{
		CustomerID: cust.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400", w.Code)
	}
}

func TestCreateOrderInactiveProduct(t *testing.T) {
	env := newOrderTestEnv(t)
	cust := env.seedCustomer(t, "Mercearia Central")
	p := env.seedProduct(t, "P-001", "Produto Fora de Linha", "20.00")
	p.Deactivate()

	w := env.do(t, http.MethodPost, "/orders", dto.OrderRequest{
		CustomerID: cust.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400", w.Code)
	}
}

func TestCreateOrderWithoutItems(t *testing.T) {
	env := newOrderTestEnv(t)
	cust := env.seedCustomer(t, "Mercearia Central")

	w := env.do(t, http.MethodPost, "/orders", dto.OrderRequest{CustomerID: cust.ID})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400", w.Code)
	}
}

func TestCancelReadyOrderRejected(t *testing.T) {
	env := newOrderTestEnv(t)
	cust := env.seedCustomer(t, "Mercearia Central")
	o := order.NewOrder(cust.ID, "")
	_ = o.AddItem("prod-1", 1, decimal.RequireFromString("10.00"))
	o.Status = order.StatusReady
	env.orders.orders[o.ID] = o

	w := env.do(t, http.MethodPost, "/orders/"+o.ID+"/cancel", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("cancelar pedido READY: status %d, esperado 422", w.Code)
	}
	if o.Status != order.StatusReady {
		t.Errorf("status alterado indevidamente para %s", o.Status)
	}
}

func TestStartPickingIsIdempotent(t *testing.T) {
	env := newOrderTestEnv(t)
	cust := env.seedCustomer(t, "Mercearia Central")
	o := order.NewOrder(cust.ID, "")
	_ = o.AddItem("prod-1", 1, decimal.RequireFromString("10.00"))
	o.Status = order.StatusInProgress
	env.orders.orders[o.ID] = o

	w := env.do(t, http.MethodPost, "/orders/"+o.ID+"/start-picking", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}
	if got := decodeOrder(t, w).Status; got != string(order.StatusInProgress) {
		t.Errorf("status = %s, esperado IN_PROGRESS inalterado", got)
	}
}
