package authz

import (
	"errors"
	"testing"
)

func TestAdminHasAllPermissions(t *testing.T) {
	perms := []Permission{
		PermProductManage, PermCustomerManage, PermSupplierManage,
		PermOrderCreate, PermOrderPick, PermPurchaseManage,
		PermDocumentCreate, PermInvoiceIssue, PermReportView,
		PermInventoryView, PermUserManage, PermAuditView,
	}
	for _, p := range perms {
		if !Can(RoleAdmin, p) {
			t.Errorf("admin deveria possuir a permissão %s", p)
		}
	}
}

func TestRoleBoundaries(t *testing.T) {
	cases := []struct {
		role string
		perm Permission
		want bool
	}{
		{RoleSeller, PermOrderCreate, true},
		{RoleSeller, PermInvoiceIssue, true},
		{RoleSeller, PermDocumentCreate, false},
		{RoleSeller, PermUserManage, false},
		{RoleWarehouse, PermDocumentCreate, true},
		{RoleWarehouse, PermOrderPick, true},
		{RoleWarehouse, PermOrderCreate, false},
		{RoleWarehouse, PermReportView, false},
		{RoleManager, PermPurchaseManage, true},
		{RoleManager, PermReportView, true},
		{RoleManager, PermOrderPick, false},
	}

	for _, c := range cases {
		if got := Can(c.role, c.perm); got != c.want {
			t.Errorf("Can(%s, %s) = %v, esperado %v", c.role, c.perm, got, c.want)
		}
	}
}

func TestCheckUnknownRole(t *testing.T) {
	if err := Check("intruder", PermInventoryView); !errors.Is(err, ErrForbidden) {
		t.Errorf("papel desconhecido deveria retornar ErrForbidden, obteve %v", err)
	}
	if err := Check(RoleManager, PermReportView); err != nil {
		t.Errorf("permissão concedida não deveria retornar erro, obteve %v", err)
	}
}
