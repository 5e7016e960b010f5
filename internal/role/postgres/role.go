package postgres

import (
	"errors"

	"github.com/saifuldipak/eoffice/internal"
	roleDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/role"
	"github.com/saifuldipak/eoffice/internal/role"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleRepository requires a gorm session opened with TranslateError so
// that integrity violations surface as gorm sentinel errors.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(data *roleDatamodel.Role) error {
	if err := r.db.Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrRoleExists.WithCause(err)
		}
		return err
	}
	return nil
}

func (r *RoleRepository) GetByID(id int64) (*roleDatamodel.Role, error) {
	var data roleDatamodel.Role
	err := r.db.Where("id = ?", id).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

func (r *RoleRepository) GetPermission(roleID int64, permission string) (*roleDatamodel.RolePermission, error) {
	var data roleDatamodel.RolePermission
	err := r.db.Where("role_id = ? AND permission = ?", roleID, permission).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

func (r *RoleRepository) CreatePermission(data *roleDatamodel.RolePermission) error {
	if err := r.db.Omit(clause.Associations).Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrPermissionExists.WithCause(err)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return internal.ErrRoleNotFound.WithCause(err)
		}
		return err
	}
	return nil
}
