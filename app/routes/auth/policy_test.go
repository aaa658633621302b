package auth

import (
	"testing"

	"staff-portal/app/models"
)

func claimsFor(role string, branch *string) *Claims {
	return &Claims{UserID: "user-1", Email: "u@example.com", Role: role, Branch: branch}
}

func strPtr(s string) *string { return &s }

func TestAuthorize(t *testing.T) {
	branch := strPtr("kampala")
	tests := []struct {
		name   string
		role   string
		cap    Capability
		allow  bool
	}{
		{"employee any", models.RoleEmployee, AnyAuthenticated, true},
		{"employee admin tier", models.RoleEmployee, AdminTier, false},
		{"employee elevated tier", models.RoleEmployee, ElevatedTier, false},
		{"manager elevated tier", models.RoleManager, ElevatedTier, true},
		{"manager content tier", models.RoleManager, ContentTier, false},
		{"manager admin tier", models.RoleManager, AdminTier, false},
		{"hr elevated tier", models.RoleHR, ElevatedTier, true},
		{"hr content tier", models.RoleHR, ContentTier, true},
		{"hr admin tier", models.RoleHR, AdminTier, false},
		{"admin admin tier", models.RoleAdmin, AdminTier, true},
		{"admin content tier", models.RoleAdmin, ContentTier, true},
		{"superadmin admin tier", models.RoleSuperadmin, AdminTier, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(claimsFor(tt.role, branch), tt.cap); got != tt.allow {
				t.Errorf("Authorize = %v, want %v", got, tt.allow)
			}
		})
	}
}

func TestAuthorizeNilClaims(t *testing.T) {
	if Authorize(nil, AnyAuthenticated) {
		t.Error("nil claims must never be authorized")
	}
}

func TestScopeBranch(t *testing.T) {
	kampala := strPtr("kampala")

	t.Run("admin pinned to own branch", func(t *testing.T) {
		got := ScopeBranch(claimsFor(models.RoleAdmin, kampala), "jinja")
		if got == nil || *got != "kampala" {
			t.Errorf("ScopeBranch = %v, want kampala", got)
		}
	})

	t.Run("employee pinned to own branch", func(t *testing.T) {
		got := ScopeBranch(claimsFor(models.RoleEmployee, kampala), "")
		if got == nil || *got != "kampala" {
			t.Errorf("ScopeBranch = %v, want kampala", got)
		}
	})

	t.Run("superadmin request honored", func(t *testing.T) {
		got := ScopeBranch(claimsFor(models.RoleSuperadmin, nil), "jinja")
		if got == nil || *got != "jinja" {
			t.Errorf("ScopeBranch = %v, want jinja", got)
		}
	})

	t.Run("superadmin empty request is unrestricted", func(t *testing.T) {
		if got := ScopeBranch(claimsFor(models.RoleSuperadmin, nil), ""); got != nil {
			t.Errorf("ScopeBranch = %v, want nil", got)
		}
	})
}

func TestInScope(t *testing.T) {
	kampala := strPtr("kampala")
	jinja := strPtr("jinja")

	if !InScope(claimsFor(models.RoleAdmin, kampala), kampala) {
		t.Error("same branch should be in scope")
	}
	if InScope(claimsFor(models.RoleAdmin, kampala), jinja) {
		t.Error("other branch should be out of scope")
	}
	if !InScope(claimsFor(models.RoleAdmin, kampala), nil) {
		t.Error("branch-independent resource should be in scope")
	}
	if !InScope(claimsFor(models.RoleSuperadmin, nil), jinja) {
		t.Error("superadmin should see every branch")
	}
}
