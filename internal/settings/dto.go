package settings

import (
	errors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/core/common/validation"
)

// UpsertSettingsDTO replaces a user's rate configuration in full.
type UpsertSettingsDTO struct {
	HourlyRate       float64 `json:"hourly_rate"`
	DailyRate        float64 `json:"daily_rate"`
	CoordinationRate float64 `json:"coordination_rate"`
	NightRate        float64 `json:"night_rate"`
	IsGross          bool    `json:"is_gross"`
}

func (dto UpsertSettingsDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("hourly_rate", dto.HourlyRate).NonNegative(errors.ErrCodeInvalidRate)
	v.Field("daily_rate", dto.DailyRate).NonNegative(errors.ErrCodeInvalidRate)
	v.Field("coordination_rate", dto.CoordinationRate).NonNegative(errors.ErrCodeInvalidRate)
	v.Field("night_rate", dto.NightRate).NonNegative(errors.ErrCodeInvalidRate)
	return v.Validate()
}
