package model

// Role represents user roles in the system
type Role struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Code        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // ADMIN, OPERATOR
	Name        string       `gorm:"type:varchar(100)" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// Role codes as constants
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// DefaultRoles defines the default roles in the system.
// ADMIN is seeded with the wildcard permission, OPERATOR with the
// read-only subset (assigned in cmd/api at seed time).
var DefaultRoles = []Role{
	{
		Code:        RoleAdmin,
		Name:        "Administrator",
		Description: "Full system access (wildcard permission)",
	},
	{
		Code:        RoleOperator,
		Name:        "Operator",
		Description: "Read-only access to dashboard and master data",
	},
}
