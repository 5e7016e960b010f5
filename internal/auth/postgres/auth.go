package postgres

import (
	"database/sql"
	"errors"

	"github.com/saifuldipak/eoffice/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.RepositoryAPI {
	return &Repository{db: db}
}

func (r *Repository) GetUserWithPermissions(userID int64) (*auth.User, error) {
	var u auth.User

	row := r.db.Raw(
		`SELECT id, username FROM users WHERE id = ? AND is_active = ?`,
		userID, true,
	).Row()
	if err := row.Scan(&u.ID, &u.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.Raw(
		`SELECT rp.permission
		 FROM role_permissions rp
		 JOIN users u ON u.role = rp.role_id
		 WHERE u.id = ?`,
		userID,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var perm string
		if err := rows.Scan(&perm); err != nil {
			return nil, err
		}
		u.Permissions = append(u.Permissions, perm)
	}

	return &u, rows.Err()
}
