package company

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
	CreateCompany(dto CreateCompanyDTO) (*Company, error)
	GetCompanyByID(id uuid.UUID) (*Company, error)
	ListCompanies(skip, limit int) ([]*Company, error)
	AddMember(companyID uuid.UUID, dto AddMemberDTO) (*Member, error)
	ListMembers(companyID uuid.UUID) ([]*Member, error)
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

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var dto CreateCompanyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCompany: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.Service.CreateCompany(dto)
	if err != nil {
		h.Logger.Error("CreateCompany: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, company)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Error("GetCompany: invalid company ID", "id", chi.URLParam(r, "id"))
		h.WriteError(w, http.StatusBadRequest, "invalid company ID")
		return
	}

	company, err := h.Service.GetCompanyByID(id)
	if err != nil {
		h.Logger.Error("GetCompany: service error", "error", err, "company_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, company)
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
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

	companies, err := h.Service.ListCompanies(skip, limit)
	if err != nil {
		h.Logger.Error("ListCompanies: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	if companies == nil {
		companies = []*Company{}
	}
	h.WriteJSON(w, http.StatusOK, companies)
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Error("AddMember: invalid company ID", "id", chi.URLParam(r, "id"))
		h.WriteError(w, http.StatusBadRequest, "invalid company ID")
		return
	}

	var dto AddMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddMember: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.Service.AddMember(companyID, dto)
	if err != nil {
		h.Logger.Error("AddMember: service error", "error", err, "company_id", companyID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, member)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Error("ListMembers: invalid company ID", "id", chi.URLParam(r, "id"))
		h.WriteError(w, http.StatusBadRequest, "invalid company ID")
		return
	}

	members, err := h.Service.ListMembers(companyID)
	if err != nil {
		h.Logger.Error("ListMembers: service error", "error", err, "company_id", companyID)
		h.HandleServiceError(w, err)
		return
	}

	if members == nil {
		members = []*Member{}
	}
	h.WriteJSON(w, http.StatusOK, members)
}
