package worklog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vesotel/worklog-management/internal/core/common/datatypes"
	settingsDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/settings"
	worklogDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/worklog"
	"github.com/vesotel/worklog-management/internal/core/events"
)

// RepositoryAPI defines the data access methods for work logs.
type RepositoryAPI interface {
	Create(log *worklogDatamodel.WorkLog) error
	GetByID(id uuid.UUID) (*worklogDatamodel.WorkLog, error)
	List(offset, limit int) ([]*worklogDatamodel.WorkLog, error)
	ListByUser(userID uuid.UUID, offset, limit int) ([]*worklogDatamodel.WorkLog, error)
}

// SettingsGetter is the settings-store lookup feeding rate resolution.
// A nil record with nil error means the user has no settings configured.
type SettingsGetter interface {
	GetByUserID(userID uuid.UUID) (*settingsDatamodel.UserSettings, error)
}

type Service struct {
	repo     RepositoryAPI
	settings SettingsGetter
	bus      *events.EventBus
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, settings SettingsGetter, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		bus:      bus,
		logger:   logger,
	}
}

// CreateWorkLog validates the submission, computes the amount from the
// submitter's rate settings and persists the record. The computation happens
// exactly once, at insert time; the stored row carries the resolved gross
// flag, not the raw submission.
func (s *Service) CreateWorkLog(dto CreateWorkLogDTO) (*WorkLog, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("work log validation failed", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	cfg, err := s.settings.GetByUserID(dto.UserID)
	if err != nil {
		s.logger.Error("failed to load user settings", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	rates := ResolveRates(cfg)
	result := Compute(dto.Basis(), dto.Extras(), dto.IsGrossCalculation, rates)

	now := time.Now()
	log := &WorkLog{
		ID:                 uuid.New(),
		UserID:             dto.UserID,
		CompanyID:          dto.CompanyID,
		Type:               dto.Type,
		Date:               dto.Date,
		StartTime:          toClockTime(dto.StartTime),
		EndTime:            toClockTime(dto.EndTime),
		StartDate:          dto.StartDate,
		EndDate:            dto.EndDate,
		DurationHours:      dto.DurationHours,
		Amount:             result.Amount,
		RateApplied:        result.RateApplied,
		IsGrossCalculation: result.IsGross,
		HasCoordination:    dto.HasCoordination,
		HasNight:           dto.HasNight,
		Description:        dto.Description,
		Client:             dto.Client,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ToDataModel(log)); err != nil {
		s.logger.Error("failed to create work log", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	s.logger.Info("work log created",
		"work_log_id", log.ID,
		"user_id", log.UserID,
		"type", log.Type,
		"amount", log.Amount,
		"rate_applied", log.RateApplied)

	if s.bus != nil {
		event := events.NewWorkLogCreatedEvent(log.ID, log.UserID, log.Type, log.Amount, log.RateApplied)
		_ = s.bus.Publish(context.Background(), event)
	}

	return log, nil
}

func (s *Service) GetWorkLogByID(id uuid.UUID) (*WorkLog, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get work log", "error", err, "work_log_id", id)
		return nil, err
	}
	return FromDataModel(record), nil
}

func (s *Service) ListWorkLogs(skip, limit int) ([]*WorkLog, error) {
	records, err := s.repo.List(skip, limit)
	if err != nil {
		s.logger.Error("failed to list work logs", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) ListUserWorkLogs(userID uuid.UUID, skip, limit int) ([]*WorkLog, error) {
	records, err := s.repo.ListByUser(userID, skip, limit)
	if err != nil {
		s.logger.Error("failed to list user work logs", "error", err, "user_id", userID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func toClockTime(s *string) *datatypes.ClockTime {
	if s == nil {
		return nil
	}
	// validated upstream; parse normalizes away seconds
	parsed, err := datatypes.ParseClockTime(*s)
	if err != nil {
		return nil
	}
	return &parsed
}
