package settings

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/vesotel/worklog-management/internal"
	settingsDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/settings"
)

// RepositoryAPI defines the data access methods for user settings. GetByUserID
// returns (nil, nil) when the user has no settings row.
type RepositoryAPI interface {
	GetByUserID(userID uuid.UUID) (*settingsDatamodel.UserSettings, error)
	Upsert(settings *settingsDatamodel.UserSettings) error
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

// GetByUserID exposes the raw lookup for the work-log calculator: absence is
// not an error there, the rates default.
func (s *Service) GetByUserID(userID uuid.UUID) (*settingsDatamodel.UserSettings, error) {
	return s.repo.GetByUserID(userID)
}

// GetSettings returns the user's settings for display; absence is a 404.
func (s *Service) GetSettings(userID uuid.UUID) (*UserSettings, error) {
	record, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to get settings", "error", err, "user_id", userID)
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrSettingsNotFound
	}
	return FromDataModel(record), nil
}

// UpsertSettings creates or replaces the user's settings row, keeping the
// at-most-one-record-per-user invariant.
func (s *Service) UpsertSettings(userID uuid.UUID, dto UpsertSettingsDTO) (*UserSettings, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("settings validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	settings := &UserSettings{
		UserID:           userID,
		HourlyRate:       dto.HourlyRate,
		DailyRate:        dto.DailyRate,
		CoordinationRate: dto.CoordinationRate,
		NightRate:        dto.NightRate,
		IsGross:          dto.IsGross,
		UpdatedAt:        time.Now(),
	}

	if err := s.repo.Upsert(ToDataModel(settings)); err != nil {
		s.logger.Error("failed to upsert settings", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("settings upserted",
		"user_id", userID,
		"hourly_rate", settings.HourlyRate,
		"daily_rate", settings.DailyRate,
		"is_gross", settings.IsGross)

	return settings, nil
}
