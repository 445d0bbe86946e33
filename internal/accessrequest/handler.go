package accessrequest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/vesotel/worklog-management/internal/transport"
	"github.com/vesotel/worklog-management/pkg/logger"
)

type ServiceAPI interface {
	CreateRequest(dto CreateAccessRequestDTO) (*AccessRequest, error)
	ListRequests(skip, limit int) ([]*AccessRequest, error)
	ApproveRequest(id uuid.UUID) (*AccessRequest, error)
	RejectRequest(id uuid.UUID) (*AccessRequest, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var dto CreateAccessRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.CreateRequest(dto)
	if err != nil {
		h.Logger.Error("CreateRequest: service error", "error", err, "email", dto.Email)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, request)
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	skip := 0
	limit := 100

	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil && s >= 0 {
			skip = s
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	requests, err := h.Service.ListRequests(skip, limit)
	if err != nil {
		h.Logger.Error("ListRequests: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list access requests")
		return
	}

	if requests == nil {
		requests = []*AccessRequest{}
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.resolveRequest(w, r, h.Service.ApproveRequest)
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.resolveRequest(w, r, h.Service.RejectRequest)
}

func (h *Handler) resolveRequest(w http.ResponseWriter, r *http.Request, resolve func(uuid.UUID) (*AccessRequest, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Error("resolveRequest: invalid request ID", "id", chi.URLParam(r, "id"))
		h.WriteError(w, http.StatusBadRequest, "invalid request ID")
		return
	}

	request, err := resolve(id)
	if err != nil {
		h.Logger.Error("resolveRequest: service error", "error", err, "request_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, request)
}
