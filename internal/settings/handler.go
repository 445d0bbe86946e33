package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/vesotel/worklog-management/internal/transport"
	"github.com/vesotel/worklog-management/pkg/logger"
)

type ServiceAPI interface {
	GetSettings(userID uuid.UUID) (*UserSettings, error)
	UpsertSettings(userID uuid.UUID, dto UpsertSettingsDTO) (*UserSettings, error)
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

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.Logger.Error("GetSettings: invalid user ID", "user_id", chi.URLParam(r, "userID"))
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	settings, err := h.Service.GetSettings(userID)
	if err != nil {
		h.Logger.Error("GetSettings: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, settings)
}

func (h *Handler) UpsertSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.Logger.Error("UpsertSettings: invalid user ID", "user_id", chi.URLParam(r, "userID"))
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var dto UpsertSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpsertSettings: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.Service.UpsertSettings(userID, dto)
	if err != nil {
		h.Logger.Error("UpsertSettings: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UpsertSettings: settings saved", "user_id", userID)
	h.WriteJSON(w, http.StatusOK, settings)
}
