package role

import (
	"github.com/saifuldipak/eoffice/internal"
)

type CreateRoleDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (d *CreateRoleDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type CreateRolePermissionDTO struct {
	RoleID     int64  `json:"role_id"`
	Permission string `json:"permission"`
}

func (d *CreateRolePermissionDTO) Validate() error {
	if d.RoleID <= 0 {
		return internal.NewValidationError("role_id is required", internal.ErrCodeValidationFailed)
	}
	if !Permission(d.Permission).IsValid() {
		return internal.NewValidationError("unknown permission token", internal.ErrCodeInvalidPermission)
	}
	return nil
}
