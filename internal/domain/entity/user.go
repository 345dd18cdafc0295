package entity

import "time"

// User is the core identity entity, shared across every role in the
// marketplace. Supplier-specific business fields are carried on a separate
// profile struct so a customer account stays free of them.
type User struct {
	ID              int64            `json:"user_id"`
	Email           string           `json:"email"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Role            Role             `json:"role"`
	LoyaltyPoints   int              `json:"loyalty_points"`
	IsVerified      bool             `json:"is_verified"`
	SupplierProfile *SupplierProfile `json:"supplier_profile,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// SupplierProfile holds data specific to the supplier role.
type SupplierProfile struct {
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone"`
}

// FullName returns the display name used across the storefront.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
