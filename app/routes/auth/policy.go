package auth

import "staff-portal/app/models"

// Capability is a named set of roles an operation requires. Authorization
// lives here rather than in per-handler role string comparisons so the rules
// cannot drift between call sites.
type Capability struct {
	anyAuthenticated bool
	roles            []string
}

// AnyAuthenticated admits every verified principal.
var AnyAuthenticated = Capability{anyAuthenticated: true}

// AdminTier admits admins and superadmins.
var AdminTier = RoleSet(models.RoleAdmin, models.RoleSuperadmin)

// ElevatedTier admits every role that may view other people's attendance.
var ElevatedTier = RoleSet(models.RoleAdmin, models.RoleSuperadmin, models.RoleHR, models.RoleManager)

// ContentTier admits roles allowed to publish announcements and policies.
var ContentTier = RoleSet(models.RoleAdmin, models.RoleSuperadmin, models.RoleHR)

// RoleSet builds a capability admitting exactly the given roles.
func RoleSet(roles ...string) Capability {
	return Capability{roles: roles}
}

// Authorize decides allow/deny for the claims against a required capability.
// Deny is an ordinary outcome surfaced as 403, never a fault.
func Authorize(claims *Claims, cap Capability) bool {
	if claims == nil {
		return false
	}
	if cap.anyAuthenticated {
		return true
	}
	for _, role := range cap.roles {
		if claims.Role == role {
			return true
		}
	}
	return false
}

// ScopeBranch resolves the effective branch filter for a query.
//
// A superadmin's requested branch is honored as given (empty request means
// unrestricted). Everyone else is pinned to their own branch regardless of
// what they asked for, so a branch parameter can never widen visibility.
func ScopeBranch(claims *Claims, requested string) *string {
	if claims.Role == models.RoleSuperadmin {
		if requested == "" {
			return nil
		}
		return &requested
	}
	return claims.Branch
}

// InScope reports whether a single branch-owned resource is visible to the
// claims holder. Resources with a nil branch are branch-independent.
func InScope(claims *Claims, resourceBranch *string) bool {
	if claims.Role == models.RoleSuperadmin {
		return true
	}
	if resourceBranch == nil {
		return true
	}
	return claims.Branch != nil && *claims.Branch == *resourceBranch
}
