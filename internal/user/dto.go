package user

import (
	"encoding/json"
	"strings"

	"github.com/saifuldipak/eoffice/internal"
)

type CreateUserDTO struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    *int64 `json:"role"`
}

func (d *CreateUserDTO) Validate() error {
	var missing []string
	if d.Username == "" {
		missing = append(missing, "username")
	}
	if d.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if d.LastName == "" {
		missing = append(missing, "last_name")
	}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return internal.NewValidationError(
			"missing required fields: "+strings.Join(missing, ", "),
			internal.ErrCodeValidationFailed,
		)
	}
	return nil
}

// UpdateUserDTO carries a partial update as raw JSON fields. Only keys in
// the allow-list are applied; anything else is silently ignored.
type UpdateUserDTO map[string]json.RawMessage

func (d UpdateUserDTO) IsEmpty() bool {
	return len(d) == 0
}

type DeleteUserResponse struct {
	Message string `json:"message"`
}
