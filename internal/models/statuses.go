package models

type RoleName string
type VendorStatus string

const (
	RoleAdmin    RoleName = "admin"
	RoleVendor   RoleName = "vendor"
	RoleCustomer RoleName = "customer"

	VendorStatusPending  VendorStatus = "pending"
	VendorStatusApproved VendorStatus = "approved"
	VendorStatusRejected VendorStatus = "rejected"
)

// Valid reports whether the role name is one of the three seeded roles.
func (r RoleName) Valid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleCustomer:
		return true
	}
	return false
}

// DashboardURL is the post-login landing route for the role.
func (r RoleName) DashboardURL() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleVendor:
		return "/vendor/dashboard"
	case RoleCustomer:
		return "/customer/dashboard"
	default:
		return "/customer/dashboard"
	}
}

func (s VendorStatus) Valid() bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusRejected:
		return true
	}
	return false
}
