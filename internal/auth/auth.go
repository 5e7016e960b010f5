package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated caller as seen by the guard: identity plus
// the permission tokens granted through its role.
type User struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions,omitempty"`
}

func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (u *User) IsUserAdmin() bool {
	return u.HasPermission("user_admin")
}

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type RepositoryAPI interface {
	GetUserWithPermissions(userID int64) (*User, error)
}

type TokenValidatorAPI interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type TokenValidator struct {
	Secret []byte
	TTL    time.Duration
}
