package role

import (
	roleDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/role"
)

// Permission is one token from the closed permission set. The stored
// representation and the API representation use the same strings.
type Permission string

const (
	PermissionUserAdmin    Permission = "user_admin"
	PermissionManageTicket Permission = "manage_ticket"
	PermissionUpdateTicket Permission = "update_ticket"
)

// AllPermissions lists every valid permission token.
var AllPermissions = []Permission{
	PermissionUserAdmin,
	PermissionManageTicket,
	PermissionUpdateTicket,
}

func (p Permission) IsValid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

type Role struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type RolePermission struct {
	ID         int64      `json:"id"`
	RoleID     int64      `json:"role_id"`
	Permission Permission `json:"permission"`
}

func ToDataModel(r *Role) *roleDatamodel.Role {
	return &roleDatamodel.Role{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

func FromDataModel(r *roleDatamodel.Role) *Role {
	return &Role{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

func PermissionFromDataModel(rp *roleDatamodel.RolePermission) *RolePermission {
	return &RolePermission{
		ID:         rp.ID,
		RoleID:     rp.RoleID,
		Permission: Permission(rp.Permission),
	}
}
