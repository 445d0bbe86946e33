package settings

import (
	"time"

	"github.com/google/uuid"

	settingsDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/settings"
)

type UserSettings struct {
	UserID           uuid.UUID `json:"user_id"`
	HourlyRate       float64   `json:"hourly_rate"`
	DailyRate        float64   `json:"daily_rate"`
	CoordinationRate float64   `json:"coordination_rate"`
	NightRate        float64   `json:"night_rate"`
	IsGross          bool      `json:"is_gross"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToDataModel(s *UserSettings) *settingsDatamodel.UserSettings {
	return &settingsDatamodel.UserSettings{
		UserID:           s.UserID,
		HourlyRate:       s.HourlyRate,
		DailyRate:        s.DailyRate,
		CoordinationRate: s.CoordinationRate,
		NightRate:        s.NightRate,
		IsGross:          s.IsGross,
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromDataModel(s *settingsDatamodel.UserSettings) *UserSettings {
	return &UserSettings{
		UserID:           s.UserID,
		HourlyRate:       s.HourlyRate,
		DailyRate:        s.DailyRate,
		CoordinationRate: s.CoordinationRate,
		NightRate:        s.NightRate,
		IsGross:          s.IsGross,
		UpdatedAt:        s.UpdatedAt,
	}
}
