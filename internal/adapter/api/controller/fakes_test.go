package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-armazem/internal/adapter/repository"
	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	"github.com/hugohenrick/erp-armazem/internal/domain/customer"
	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/hugohenrick/erp-armazem/internal/domain/product"
	"github.com/hugohenrick/erp-armazem/internal/domain/supplier"
	"github.com/hugohenrick/erp-armazem/internal/domain/user"
	"github.com/hugohenrick/erp-armazem/internal/domain/warehouse"
)

// nopLogger descarta as mensagens nos testes
type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// testUser injeta as claims que o AuthMiddleware colocaria no contexto
func testUser(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "user-test")
		c.Set("user_login", "teste")
		c.Set("user_role", role)
		c.Next()
	}
}

type fakeAuditRepo struct {
	entries []*audit.Entry
}

func (f *fakeAuditRepo) Create(ctx context.Context, e *audit.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context, limit, offset int) ([]*audit.Entry, error) {
	return f.entries, nil
}

type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, search string, limit, offset int) ([]*customer.Customer, error) {
	var out []*customer.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Count(ctx context.Context, search string) (int, error) {
	return len(f.customers), nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) SetActive(ctx context.Context, id string, active bool) error {
	c, ok := f.customers[id]
	if !ok {
		return repository.ErrCustomerNotFound
	}
	c.Active = active
	return nil
}

func (f *fakeCustomerRepo) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	for _, c := range f.customers {
		if c.TaxID == taxID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products map[string]*product.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *product.Product, location string) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	for _, p := range f.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, filter product.ListFilter) (int, error) {
	return len(f.products), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	p, ok := f.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.Active = active
	return nil
}

func (f *fakeProductRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := f.FindByCode(ctx, code)
	return err == nil, nil
}

func (f *fakeProductRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range f.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*supplier.Supplier
}

func (f *fakeSupplierRepo) Create(ctx context.Context, s *supplier.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, repository.ErrSupplierNotFound
	}
	return s, nil
}

func (f *fakeSupplierRepo) List(ctx context.Context, search string, limit, offset int) ([]*supplier.Supplier, error) {
	var out []*supplier.Supplier
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Count(ctx context.Context, search string) (int, error) {
	return len(f.suppliers), nil
}

func (f *fakeSupplierRepo) Update(ctx context.Context, s *supplier.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) SetActive(ctx context.Context, id string, active bool) error {
	s, ok := f.suppliers[id]
	if !ok {
		return repository.ErrSupplierNotFound
	}
	s.Active = active
	return nil
}

func (f *fakeSupplierRepo) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	for _, s := range f.suppliers {
		if s.TaxID == taxID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	for _, u := range f.users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	var out []*user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Active = active
	return nil
}

func (f *fakeUserRepo) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	_, err := f.FindByLogin(ctx, login)
	return err == nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeOrderRepo struct {
	orders map[string]*order.Order
	seq    int
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	f.seq++
	o.Number = fmt.Sprintf("PED/%d/%05d", o.PlacedAt.Year(), f.seq)
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, status order.Status, limit, offset int) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Count(ctx context.Context, status order.Status) (int, error) {
	list, _ := f.List(ctx, status, 0, 0)
	return len(list), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status order.Status, fulfilledAt *time.Time) error {
	o, ok := f.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	o.Status = status
	if fulfilledAt != nil {
		o.FulfilledAt = fulfilledAt
	}
	return nil
}

func (f *fakeOrderRepo) SetItemPicked(ctx context.Context, orderID, itemID string, picked bool) error {
	o, ok := f.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	for _, item := range o.Items {
		if item.ID == itemID {
			item.Picked = picked
			return nil
		}
	}
	return order.ErrItemNotFound
}

// fakeWarehouseRepo reproduz a semântica tudo-ou-nada da criação de
// documentos sobre um estoque em memória
type fakeWarehouseRepo struct {
	docs   map[string]*warehouse.Document
	stock  map[string]int
	names  map[string]string
	orders *fakeOrderRepo
	seq    int
}

func (f *fakeWarehouseRepo) Create(ctx context.Context, d *warehouse.Document) error {
	if err := d.Validate(); err != nil {
		return err
	}

	// Primeira verificação completa antes de aplicar qualquer ajuste
	if d.Type == warehouse.TypeIssue {
		for _, item := range d.Items {
			name, ok := f.names[item.ProductID]
			if !ok {
				return repository.ErrProductNotFound
			}
			available, ok := f.stock[item.ProductID]
			if !ok {
				return repository.ErrInventoryNotFound
			}
			if available < item.Quantity {
				return &repository.InsufficientStockError{
					ProductID:   item.ProductID,
					ProductName: name,
					Requested:   item.Quantity,
				}
			}
		}
		if d.OrderID != nil {
			o, ok := f.orders.orders[*d.OrderID]
			if !ok {
				return repository.ErrOrderNotFound
			}
			if !o.Status.CanTransitionTo(order.StatusShipped) {
				return repository.ErrOrderNotReady
			}
			o.Status = order.StatusShipped
		}
		for _, item := range d.Items {
			f.stock[item.ProductID] -= item.Quantity
		}
	} else {
		for _, item := range d.Items {
			if _, ok := f.names[item.ProductID]; !ok {
				return repository.ErrProductNotFound
			}
			if _, ok := f.stock[item.ProductID]; !ok {
				return repository.ErrInventoryNotFound
			}
			f.stock[item.ProductID] += item.Quantity
		}
	}

	f.seq++
	prefix := "REC"
	if d.Type == warehouse.TypeIssue {
		prefix = "EXP"
	}
	d.Number = fmt.Sprintf("%s/%d/%05d", prefix, d.IssuedAt.Year(), f.seq)
	f.docs[d.ID] = d
	return nil
}

func (f *fakeWarehouseRepo) FindByID(ctx context.Context, id string) (*warehouse.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}
	return d, nil
}

func (f *fakeWarehouseRepo) List(ctx context.Context, docType warehouse.Type, limit, offset int) ([]*warehouse.Document, error) {
	var out []*warehouse.Document
	for _, d := range f.docs {
		if docType == "" || d.Type == docType {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeWarehouseRepo) Count(ctx context.Context, docType warehouse.Type) (int, error) {
	list, _ := f.List(ctx, docType, 0, 0)
	return len(list), nil
}
