package role

// Role is a named grant target. Rows are never updated or deleted once
// created; users and role_permissions reference them with RESTRICT.
type Role struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"column:name;uniqueIndex;not null"`
	Description *string `gorm:"column:description"`
}

func (Role) TableName() string {
	return "roles"
}

// RolePermission attaches one permission token to a role. The
// (role_id, permission) pair is unique at the storage level.
type RolePermission struct {
	ID         int64  `gorm:"primaryKey"`
	RoleID     int64  `gorm:"column:role_id;not null;uniqueIndex:idx_role_permission"`
	Permission string `gorm:"column:permission;not null;uniqueIndex:idx_role_permission"`
	Role       Role   `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
