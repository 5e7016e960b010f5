package postgres

import (
	"errors"

	"github.com/saifuldipak/eoffice/internal"
	userDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/user"
	"github.com/saifuldipak/eoffice/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(data *userDatamodel.User) error {
	if err := r.db.Omit(clause.Associations).Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrUserExists.WithCause(err)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return internal.ErrRoleNotFound.WithCause(err)
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByUsernamePrefix(prefix string) ([]*userDatamodel.User, error) {
	var rows []*userDatamodel.User
	err := r.db.Where("username LIKE ?", prefix+"%").Find(&rows).Error
	return rows, err
}

func (r *UserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	var data userDatamodel.User
	err := r.db.Where("username = ?", username).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

func (r *UserRepository) Save(data *userDatamodel.User) error {
	if err := r.db.Omit(clause.Associations).Save(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrUserExists.WithCause(err)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return internal.ErrRoleNotFound.WithCause(err)
		}
		return err
	}
	return nil
}

func (r *UserRepository) Delete(data *userDatamodel.User) error {
	return r.db.Delete(data).Error
}
