package worklog

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

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

type ServiceAPI interface {
	CreateWorkLog(dto CreateWorkLogDTO) (*WorkLog, error)
	GetWorkLogByID(id uuid.UUID) (*WorkLog, error)
	ListWorkLogs(skip, limit int) ([]*WorkLog, error)
	ListUserWorkLogs(userID uuid.UUID, skip, limit int) ([]*WorkLog, error)
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

func (h *Handler) CreateWorkLog(w http.ResponseWriter, r *http.Request) {
	var dto CreateWorkLogDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateWorkLog: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.Service.CreateWorkLog(dto)
	if err != nil {
		h.Logger.Error("CreateWorkLog: service error", "error", err, "user_id", dto.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateWorkLog: work log created",
		"work_log_id", log.ID,
		"user_id", log.UserID,
		"amount", log.Amount)

	h.WriteJSON(w, http.StatusCreated, log)
}

func (h *Handler) GetWorkLog(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Error("GetWorkLog: invalid work log ID", "id", chi.URLParam(r, "id"))
		h.WriteError(w, http.StatusBadRequest, "invalid work log ID")
		return
	}

	log, err := h.Service.GetWorkLogByID(id)
	if err != nil {
		h.Logger.Error("GetWorkLog: service error", "error", err, "work_log_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) ListWorkLogs(w http.ResponseWriter, r *http.Request) {
	skip, limit := paging(r)

	logs, err := h.Service.ListWorkLogs(skip, limit)
	if err != nil {
		h.Logger.Error("ListWorkLogs: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list work logs")
		return
	}

	if logs == nil {
		logs = []*WorkLog{}
	}
	h.WriteJSON(w, http.StatusOK, logs)
}

func (h *Handler) ListUserWorkLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.Logger.Error("ListUserWorkLogs: invalid user ID", "user_id", chi.URLParam(r, "userID"))
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	skip, limit := paging(r)

	logs, err := h.Service.ListUserWorkLogs(userID, skip, limit)
	if err != nil {
		h.Logger.Error("ListUserWorkLogs: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to list work logs")
		return
	}

	if logs == nil {
		logs = []*WorkLog{}
	}
	h.WriteJSON(w, http.StatusOK, logs)
}

func paging(r *http.Request) (skip, limit int) {
	skip = 0
	limit = defaultListLimit

	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil && s >= 0 {
			skip = s
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= maxListLimit {
			limit = l
		}
	}

	return skip, limit
}
