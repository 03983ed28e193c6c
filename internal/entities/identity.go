package entities

type Role string

const (
	RoleUser       Role = "user"
	RoleVendor     Role = "vendor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Identity is the verified caller extracted from a credential.
type Identity struct {
	SubjectID string
	Email     string
	Role      Role
	Verified  bool
}

// RequiredRole is the access level an entry point demands.
type RequiredRole int

const (
	// RequireAuthenticated accepts any identity, verified email or not.
	RequireAuthenticated RequiredRole = iota
	// RequireCustomer accepts any identity that passes the verified-email check.
	RequireCustomer
	RequireVendor
	RequireAdmin
)

func (r RequiredRole) String() string {
	switch r {
	case RequireAuthenticated:
		return "authenticated"
	case RequireCustomer:
		return "customer"
	case RequireVendor:
		return "vendor"
	case RequireAdmin:
		return "admin"
	}
	return "unknown"
}
