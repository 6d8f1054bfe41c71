package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrDuplicateTaxID = errors.New("fornecedor com mesmo NIF já existe")
)

// Supplier representa um fornecedor de mercadoria
type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TaxID         string    `json:"tax_id"` // NIF; único quando informado
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ContactPerson string    `json:"contact_person"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(name, taxID, address, phone, email, contactPerson string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Supplier{
		ID:            uuid.New().String(),
		Name:          name,
		TaxID:         taxID,
		Address:       address,
		Phone:         phone,
		Email:         email,
		ContactPerson: contactPerson,
		Active:        true,
		CreatedAt:     time.Now(),
	}, nil
}

// Update atualiza os dados do fornecedor
func (s *Supplier) Update(name, taxID, address, phone, email, contactPerson string) error {
	if name == "" {
		return ErrEmptyName
	}

	s.Name = name
	s.TaxID = taxID
	s.Address = address
	s.Phone = phone
	s.Email = email
	s.ContactPerson = contactPerson
	return nil
}

// Activate ativa o fornecedor
func (s *Supplier) Activate() {
	s.Active = true
}

// Deactivate desativa o fornecedor
func (s *Supplier) Deactivate() {
	s.Active = false
}
