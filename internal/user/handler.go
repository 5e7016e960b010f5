package user

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/saifuldipak/eoffice/internal/transport"
)

type ServiceAPI interface {
	CreateUser(dto CreateUserDTO) (*User, error)
	SearchByUsernamePrefix(prefix string) ([]*User, error)
	DeleteByUsername(username string) (*User, error)
	UpdateUser(username string, patch UpdateUserDTO) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateUser(dto)
	if err != nil {
		h.Logger.Error("CreateUser: service error", "username", dto.Username, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

// GetUsers treats the path segment as a username prefix. An empty result
// is reported as 404 here; the persistence layer itself returns an empty
// list without error.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	prefix := chi.URLParam(r, "username")

	users, err := h.Service.SearchByUsernamePrefix(prefix)
	if err != nil {
		h.Logger.Error("GetUsers: service error", "prefix", prefix, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if len(users) == 0 {
		h.WriteError(w, http.StatusNotFound, "no users found")
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if _, err := h.Service.DeleteByUsername(username); err != nil {
		h.Logger.Error("DeleteUser: service error", "username", username, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteUserResponse{
		Message: fmt.Sprintf("User %s successfully deleted", username),
	})
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var patch UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.Logger.Error("UpdateUser: invalid request body", "username", username, "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if patch.IsEmpty() {
		h.WriteError(w, http.StatusBadRequest, "no valid fields to update")
		return
	}

	updated, err := h.Service.UpdateUser(username, patch)
	if err != nil {
		h.Logger.Error("UpdateUser: service error", "username", username, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}
