package user

import (
	"time"

	roleDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/role"
)

// User rows carry a compound unique index on (username, email) in
// addition to the per-column unique indexes, matching the table schema.
type User struct {
	ID           int64               `gorm:"primaryKey"`
	Username     string              `gorm:"column:username;not null;uniqueIndex;uniqueIndex:idx_username_email"`
	Email        string              `gorm:"column:email;not null;uniqueIndex;uniqueIndex:idx_username_email"`
	FirstName    string              `gorm:"column:first_name;not null"`
	LastName     string              `gorm:"column:last_name;not null"`
	PasswordHash string              `gorm:"column:password;not null"`
	RoleID       *int64              `gorm:"column:role"`
	Role         *roleDatamodel.Role `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
	IsActive     bool                `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time           `gorm:"column:created_at"`
	UpdatedAt    time.Time           `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
