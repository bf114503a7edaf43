package middleware

import "testing"

func TestHasPermission(t *testing.T) {
	t.Parallel()

	user := &AppUser{Permissions: []string{"case.create", "subject.update"}}

	if !HasPermission(user, "case.create") {
		t.Error("expected case.create to be granted")
	}
	if HasPermission(user, "case.delete") {
		t.Error("expected case.delete to be denied")
	}
	if HasPermission(nil, "case.create") {
		t.Error("nil user should have no permissions")
	}
}

func TestHasAnyPermission(t *testing.T) {
	t.Parallel()

	user := &AppUser{Permissions: []string{"invoice.manage"}}

	if !HasAnyPermission(user, "expense.manage", "invoice.manage") {
		t.Error("expected invoice.manage to satisfy the check")
	}
	if HasAnyPermission(user, "case.create", "case.delete") {
		t.Error("expected no match")
	}
	if HasAnyPermission(user) {
		t.Error("empty permission list should never match")
	}
	if HasAnyPermission(nil, "invoice.manage") {
		t.Error("nil user should have no permissions")
	}
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	if !IsAdmin(&AppUser{Role: "admin"}) {
		t.Error("admin role should be admin")
	}
	if IsAdmin(&AppUser{Role: "user"}) {
		t.Error("user role should not be admin")
	}
	if IsAdmin(nil) {
		t.Error("nil user should not be admin")
	}
}
