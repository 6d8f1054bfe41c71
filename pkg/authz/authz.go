package authz

import "errors"

// ErrForbidden é retornado quando o papel do usuário não possui a permissão
var ErrForbidden = errors.New("usuário não possui permissão para esta operação")

// Permission representa uma capacidade concedida a um papel
type Permission string

const (
	PermProductManage   Permission = "product:manage"
	PermCustomerManage  Permission = "customer:manage"
	PermSupplierManage  Permission = "supplier:manage"
	PermOrderCreate     Permission = "order:create"
	PermOrderPick       Permission = "order:pick"
	PermPurchaseManage  Permission = "purchase:manage"
	PermPurchaseReceive Permission = "purchase:receive"
	PermDocumentCreate  Permission = "document:create"
	PermInvoiceIssue    Permission = "invoice:issue"
	PermReportView      Permission = "report:view"
	PermInventoryView   Permission = "inventory:view"
	PermUserManage      Permission = "user:manage"
	PermAuditView       Permission = "audit:view"
)

// Papéis reconhecidos pelo sistema. Os valores precisam coincidir com os
// armazenados na tabela de usuários.
const (
	RoleAdmin     = "admin"
	RoleSeller    = "seller"
	RoleWarehouse = "warehouse"
	RoleManager   = "manager"
)

// rolePermissions define o conjunto de capacidades de cada papel
var rolePermissions = map[string]map[Permission]bool{
	RoleAdmin: {
		PermProductManage:   true,
		PermCustomerManage:  true,
		PermSupplierManage:  true,
		PermOrderCreate:     true,
		PermOrderPick:       true,
		PermPurchaseManage:  true,
		PermPurchaseReceive: true,
		PermDocumentCreate:  true,
		PermInvoiceIssue:    true,
		PermReportView:      true,
		PermInventoryView:   true,
		PermUserManage:      true,
		PermAuditView:       true,
	},
	RoleSeller: {
		PermCustomerManage: true,
		PermOrderCreate:    true,
		PermInvoiceIssue:   true,
	},
	RoleWarehouse: {
		PermOrderPick:       true,
		PermDocumentCreate:  true,
		PermInventoryView:   true,
		PermPurchaseReceive: true,
	},
	RoleManager: {
		PermSupplierManage:  true,
		PermPurchaseManage:  true,
		PermPurchaseReceive: true,
		PermReportView:      true,
		PermInventoryView:   true,
	},
}

// Can verifica se o papel possui a permissão informada
func Can(role string, perm Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[perm]
}

// Check retorna ErrForbidden quando o papel não possui a permissão
func Check(role string, perm Permission) error {
	if !Can(role, perm) {
		return ErrForbidden
	}
	return nil
}
