package role

import (
	"log/slog"

	"github.com/saifuldipak/eoffice/internal"
	roleDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/role"
)

type RepositoryAPI interface {
	Create(role *roleDatamodel.Role) error
	GetByID(id int64) (*roleDatamodel.Role, error)
	GetPermission(roleID int64, permission string) (*roleDatamodel.RolePermission, error)
	CreatePermission(rp *roleDatamodel.RolePermission) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateRole(dto CreateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("role validation failed", "error", err)
		return nil, err
	}

	data := &roleDatamodel.Role{
		Name:        dto.Name,
		Description: dto.Description,
	}
	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create role", "name", dto.Name, "error", err)
		return nil, err
	}

	s.logger.Info("role created", "role_id", data.ID, "name", data.Name)
	return FromDataModel(data), nil
}

// AddPermission attaches a permission token to a role. The existence
// pre-check gives a clean conflict message on the common path; the unique
// index on (role_id, permission) remains the arbiter when two callers race
// past it.
func (s *Service) AddPermission(dto CreateRolePermissionDTO) (*RolePermission, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("role permission validation failed", "error", err)
		return nil, err
	}

	existing, err := s.repo.GetPermission(dto.RoleID, dto.Permission)
	if err != nil {
		s.logger.Error("failed to check existing permission", "role_id", dto.RoleID, "error", err)
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("permission already attached", "role_id", dto.RoleID, "permission", dto.Permission)
		return nil, internal.ErrPermissionExists
	}

	data := &roleDatamodel.RolePermission{
		RoleID:     dto.RoleID,
		Permission: dto.Permission,
	}
	if err := s.repo.CreatePermission(data); err != nil {
		s.logger.Error("failed to create role permission", "role_id", dto.RoleID, "permission", dto.Permission, "error", err)
		return nil, err
	}

	s.logger.Info("role permission created", "id", data.ID, "role_id", data.RoleID, "permission", data.Permission)
	return PermissionFromDataModel(data), nil
}
