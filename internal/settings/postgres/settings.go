package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingsDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/settings"
	"github.com/vesotel/worklog-management/internal/settings"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) settings.RepositoryAPI {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetByUserID(userID uuid.UUID) (*settingsDatamodel.UserSettings, error) {
	var s settingsDatamodel.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Upsert inserts or replaces the settings row keyed by user_id, so a user can
// never accumulate more than one record.
func (r *SettingsRepository) Upsert(s *settingsDatamodel.UserSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(s).Error
}
