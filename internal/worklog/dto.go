package worklog

import (
	"github.com/google/uuid"

	errors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/core/common/datatypes"
	"github.com/vesotel/worklog-management/internal/core/common/validation"
)

// CreateWorkLogDTO is the submission payload for a work log. Amount and
// rate_applied are derived server-side and never accepted from the caller.
type CreateWorkLogDTO struct {
	UserID    uuid.UUID  `json:"user_id"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`

	Type string `json:"type"`

	Date      *datatypes.Date `json:"date,omitempty"`
	StartTime *string         `json:"start_time,omitempty"`
	EndTime   *string         `json:"end_time,omitempty"`

	StartDate *datatypes.Date `json:"start_date,omitempty"`
	EndDate   *datatypes.Date `json:"end_date,omitempty"`

	DurationHours *float64 `json:"duration_hours,omitempty"`

	IsGrossCalculation *bool `json:"is_gross_calculation,omitempty"`
	HasCoordination    bool  `json:"has_coordination"`
	HasNight           bool  `json:"has_night"`

	Description *string `json:"description,omitempty"`
	Client      *string `json:"client,omitempty"`
}

// Validate is the gate in front of the calculator: unknown types, malformed
// clock times and negative durations are rejected here so the computation
// never sees them.
func (dto CreateWorkLogDTO) Validate() *errors.AppError {
	v := validation.NewValidator()

	v.Field("user_id", dto.UserID).Custom(func(value interface{}) *errors.AppError {
		if id, ok := value.(uuid.UUID); ok && id == uuid.Nil {
			return errors.NewValidationFieldError("user_id", "user_id is required", errors.ErrCodeValidationFailed)
		}
		return nil
	})

	v.Field("type", dto.Type).
		Required().
		OneOf([]string{TypeParticular, TypeTutorial}, errors.ErrCodeInvalidLogType)

	v.Field("duration_hours", dto.DurationHours).
		NonNegative(errors.ErrCodeInvalidDuration)

	v.Field("start_time", dto.StartTime).Custom(validClockTime("start_time"))
	v.Field("end_time", dto.EndTime).Custom(validClockTime("end_time"))

	v.Field("description", dto.Description).MaxLength(2000)
	v.Field("client", dto.Client).MaxLength(255)

	return v.Validate()
}

func validClockTime(field string) func(interface{}) *errors.AppError {
	return func(value interface{}) *errors.AppError {
		if s, ok := value.(*string); ok && s != nil {
			if _, err := datatypes.ParseClockTime(*s); err != nil {
				return errors.NewValidationFieldError(field, err.Error(), errors.ErrCodeInvalidTime)
			}
		}
		return nil
	}
}

// Basis builds the calculator input for the submitted type.
func (dto CreateWorkLogDTO) Basis() Basis {
	switch dto.Type {
	case TypeParticular:
		return ParticularBasis{DurationHours: dto.DurationHours}
	case TypeTutorial:
		return TutorialBasis{StartDate: dto.StartDate, EndDate: dto.EndDate}
	default:
		return nil
	}
}

func (dto CreateWorkLogDTO) Extras() Extras {
	return Extras{
		Coordination: dto.HasCoordination,
		Night:        dto.HasNight,
	}
}
