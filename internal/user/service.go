package user

import (
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/saifuldipak/eoffice/internal"
	userDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	Create(u *userDatamodel.User) error
	FindByUsernamePrefix(prefix string) ([]*userDatamodel.User, error)
	GetByUsername(username string) (*userDatamodel.User, error)
	Save(u *userDatamodel.User) error
	Delete(u *userDatamodel.User) error
}

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	data := &userDatamodel.User{
		Username:     dto.Username,
		Email:        dto.Email,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		PasswordHash: string(hash),
		RoleID:       dto.RoleID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create user", "username", dto.Username, "error", err)
		return nil, err
	}

	s.logger.Info("user created", "user_id", data.ID, "username", data.Username)
	return FromDataModel(data), nil
}

// SearchByUsernamePrefix returns every user whose username starts with
// prefix, in storage order. An empty prefix matches all users; no match is
// an empty slice, not an error.
func (s *Service) SearchByUsernamePrefix(prefix string) ([]*User, error) {
	rows, err := s.repo.FindByUsernamePrefix(prefix)
	if err != nil {
		s.logger.Error("failed to search users", "prefix", prefix, "error", err)
		return nil, err
	}

	users := make([]*User, 0, len(rows))
	for _, row := range rows {
		users = append(users, FromDataModel(row))
	}
	return users, nil
}

func (s *Service) DeleteByUsername(username string) (*User, error) {
	data, err := s.repo.GetByUsername(username)
	if err != nil {
		s.logger.Error("failed to look up user for delete", "username", username, "error", err)
		return nil, err
	}
	if data == nil {
		return nil, internal.ErrUserNotFound
	}

	if err := s.repo.Delete(data); err != nil {
		s.logger.Error("failed to delete user", "username", username, "error", err)
		return nil, err
	}

	s.logger.Info("user deleted", "user_id", data.ID, "username", data.Username)
	return FromDataModel(data), nil
}

// fieldSetters is the allow-list for partial updates. A patch key missing
// from this map is ignored without error.
var fieldSetters = map[string]func(s *Service, u *userDatamodel.User, raw json.RawMessage) error{
	"first_name": func(_ *Service, u *userDatamodel.User, raw json.RawMessage) error {
		return json.Unmarshal(raw, &u.FirstName)
	},
	"last_name": func(_ *Service, u *userDatamodel.User, raw json.RawMessage) error {
		return json.Unmarshal(raw, &u.LastName)
	},
	"email": func(_ *Service, u *userDatamodel.User, raw json.RawMessage) error {
		return json.Unmarshal(raw, &u.Email)
	},
	"role": func(_ *Service, u *userDatamodel.User, raw json.RawMessage) error {
		return json.Unmarshal(raw, &u.RoleID)
	},
	"is_active": func(_ *Service, u *userDatamodel.User, raw json.RawMessage) error {
		return json.Unmarshal(raw, &u.IsActive)
	},
	"password": func(s *Service, u *userDatamodel.User, raw json.RawMessage) error {
		var plain string
		if err := json.Unmarshal(raw, &plain); err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.bcryptCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
		return nil
	},
}

// UpdateUser applies a partial update to the user with the exact username.
// UpdatedAt is refreshed even when the patch changes nothing.
func (s *Service) UpdateUser(username string, patch UpdateUserDTO) (*User, error) {
	data, err := s.repo.GetByUsername(username)
	if err != nil {
		s.logger.Error("failed to look up user for update", "username", username, "error", err)
		return nil, err
	}
	if data == nil {
		return nil, internal.ErrUserNotFound
	}

	for key, raw := range patch {
		setter, known := fieldSetters[key]
		if !known {
			s.logger.Debug("ignoring unknown patch field", "username", username, "field", key)
			continue
		}
		if err := setter(s, data, raw); err != nil {
			return nil, internal.NewValidationError("invalid value for field "+key, internal.ErrCodeValidationFailed).WithCause(err)
		}
	}
	data.UpdatedAt = time.Now()

	if err := s.repo.Save(data); err != nil {
		s.logger.Error("failed to update user", "username", username, "error", err)
		return nil, err
	}

	s.logger.Info("user updated", "user_id", data.ID, "username", data.Username)
	return FromDataModel(data), nil
}
