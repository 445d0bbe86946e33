package accessrequest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/vesotel/worklog-management/internal"
	requestDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/accessrequest"
	"github.com/vesotel/worklog-management/internal/core/events"
)

// RepositoryAPI defines the data access methods for access requests.
type RepositoryAPI interface {
	Create(request *requestDatamodel.AccessRequest) error
	GetByID(id uuid.UUID) (*requestDatamodel.AccessRequest, error)
	List(offset, limit int) ([]*requestDatamodel.AccessRequest, error)
	UpdateStatus(id uuid.UUID, status string) error
}

type Service struct {
	repo   RepositoryAPI
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) CreateRequest(dto CreateAccessRequestDTO) (*AccessRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("access request validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	now := time.Now()
	request := &AccessRequest{
		ID:        uuid.New(),
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ToDataModel(request)); err != nil {
		s.logger.Error("failed to create access request", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("access request created", "request_id", request.ID, "email", request.Email)
	return request, nil
}

func (s *Service) ListRequests(skip, limit int) ([]*AccessRequest, error) {
	records, err := s.repo.List(skip, limit)
	if err != nil {
		s.logger.Error("failed to list access requests", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) ApproveRequest(id uuid.UUID) (*AccessRequest, error) {
	return s.resolve(id, StatusApproved)
}

func (s *Service) RejectRequest(id uuid.UUID) (*AccessRequest, error) {
	return s.resolve(id, StatusRejected)
}

func (s *Service) resolve(id uuid.UUID, status string) (*AccessRequest, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("access request not found", "error", err, "request_id", id)
		return nil, err
	}

	request := FromDataModel(record)
	allowed := request.CanBeApproved()
	if status == StatusRejected {
		allowed = request.CanBeRejected()
	}
	if !allowed {
		s.logger.Warn("cannot resolve access request in current status",
			"request_id", id,
			"current_status", request.Status)
		return nil, apperrors.ErrInvalidRequestStatus
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		s.logger.Error("failed to update access request status", "error", err, "request_id", id)
		return nil, err
	}

	request.Status = status
	request.UpdatedAt = time.Now()

	s.logger.Info("access request resolved", "request_id", id, "status", status)

	if s.bus != nil {
		event := events.NewAccessRequestResolvedEvent(id, request.Email, status)
		_ = s.bus.Publish(context.Background(), event)
	}

	return request, nil
}
