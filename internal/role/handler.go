package role

import (
	"encoding/json"
	"net/http"

	"github.com/saifuldipak/eoffice/internal/transport"
)

type ServiceAPI interface {
	CreateRole(dto CreateRoleDTO) (*Role, error)
	AddPermission(dto CreateRolePermissionDTO) (*RolePermission, error)
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

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var dto CreateRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRole: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateRole(dto)
	if err != nil {
		h.Logger.Error("CreateRole: service error", "name", dto.Name, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) AddPermission(w http.ResponseWriter, r *http.Request) {
	var dto CreateRolePermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddPermission: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.AddPermission(dto)
	if err != nil {
		h.Logger.Error("AddPermission: service error", "role_id", dto.RoleID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}
