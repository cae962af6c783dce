package domain

type UserRole string

const (
	UserRoleOwner    UserRole = "owner"
	UserRoleOperator UserRole = "operator"
	UserRoleGuest    UserRole = "guest"
)

// Valid reports whether the role is one of the three known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleOwner, UserRoleOperator, UserRoleGuest:
		return true
	}
	return false
}

type User struct {
	ID   int32    `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}
