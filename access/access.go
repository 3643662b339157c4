// Package access is the pure decision core for authorization: it
// evaluates permission flags and country scoping for an already
// resolved identity and never touches storage. Callers pass in the
// resolved country id of the resource they are checking.
package access

import (
	"github.com/tarak510605/restaurant-ordering-system/errs"
	"github.com/tarak510605/restaurant-ordering-system/models"
)

// Action names one guarded operation. Each maps to a single flag in
// models.Permissions.
type Action string

const (
	ActionViewRestaurants     Action = "viewRestaurants"
	ActionCreateOrder         Action = "createOrder"
	ActionCheckout            Action = "checkout"
	ActionCancelOrder         Action = "cancelOrder"
	ActionUpdatePaymentMethod Action = "updatePaymentMethod"
)

// HasPermission reports whether the identity's permission set has the
// flag for action. Unknown actions are denied.
func HasPermission(identity models.Identity, action Action) bool {
	p := identity.Permissions
	switch action {
	case ActionViewRestaurants:
		return p.ViewRestaurants
	case ActionCreateOrder:
		return p.CreateOrder
	case ActionCheckout:
		return p.Checkout
	case ActionCancelOrder:
		return p.CancelOrder
	case ActionUpdatePaymentMethod:
		return p.UpdatePaymentMethod
	}
	return false
}

// RequirePermission fails with PermissionDenied when the flag is absent.
func RequirePermission(identity models.Identity, action Action) error {
	if !HasPermission(identity, action) {
		return errs.PermissionDenied(string(action))
	}
	return nil
}

// CanAccessCountry reports whether the identity may touch a resource
// owned by the given country. Admin bypasses scoping; everyone else is
// confined to their home country.
func CanAccessCountry(identity models.Identity, resourceCountryID uint) bool {
	if identity.IsAdmin() {
		return true
	}
	return identity.CountryID == resourceCountryID
}

// RequireCountryAccess fails with ForbiddenCountry when CanAccessCountry
// is false.
func RequireCountryAccess(identity models.Identity, resourceCountryID uint) error {
	if !CanAccessCountry(identity, resourceCountryID) {
		return errs.ForbiddenCountry()
	}
	return nil
}

// Filter is the country restriction a list query must apply. This is
// the only place country scoping for list reads lives.
type Filter struct {
	// Unrestricted is true for Admin: no country clause at all.
	Unrestricted bool
	// CountryID is the required country when Unrestricted is false.
	CountryID uint
}

// ScopeFilter returns the list-query restriction for the identity.
func ScopeFilter(identity models.Identity) Filter {
	if identity.IsAdmin() {
		return Filter{Unrestricted: true}
	}
	return Filter{CountryID: identity.CountryID}
}

// RequireRole fails with PermissionDenied unless the identity holds one
// of the allowed roles. Used for boundary gates that are role-based
// rather than flag-based.
func RequireRole(identity models.Identity, allowed ...models.RoleName) error {
	for _, r := range allowed {
		if identity.Role == r {
			return nil
		}
	}
	return errs.PermissionDenied("perform this operation")
}
