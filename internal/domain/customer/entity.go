package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrDuplicateTaxID = errors.New("cliente com mesmo NIF já existe")
)

// Customer representa um cliente do sistema
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"` // NIF; único quando informado
	Address   string    `json:"address"`
	ZipCode   string    `json:"zip_code"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(name, taxID, address, zipCode, city, phone, email string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		TaxID:     taxID,
		Address:   address,
		ZipCode:   zipCode,
		City:      city,
		Phone:     phone,
		Email:     email,
		Active:    true,
		CreatedAt: time.Now(),
	}, nil
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, taxID, address, zipCode, city, phone, email string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.TaxID = taxID
	c.Address = address
	c.ZipCode = zipCode
	c.City = city
	c.Phone = phone
	c.Email = email
	return nil
}

// Activate ativa o cliente
func (c *Customer) Activate() {
	c.Active = true
}

// Deactivate desativa o cliente; clientes nunca são removidos
func (c *Customer) Deactivate() {
	c.Active = false
}
