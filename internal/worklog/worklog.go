package worklog

import (
	"time"

	"github.com/google/uuid"

	"github.com/vesotel/worklog-management/internal/core/common/datatypes"
	worklogDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/worklog"
)

const (
	TypeParticular = "particular"
	TypeTutorial   = "tutorial"
)

type WorkLog struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`

	Type string `json:"type"`

	Date      *datatypes.Date      `json:"date,omitempty"`
	StartTime *datatypes.ClockTime `json:"start_time,omitempty"`
	EndTime   *datatypes.ClockTime `json:"end_time,omitempty"`

	StartDate *datatypes.Date `json:"start_date,omitempty"`
	EndDate   *datatypes.Date `json:"end_date,omitempty"`

	DurationHours *float64 `json:"duration_hours,omitempty"`

	Amount      float64 `json:"amount"`
	RateApplied float64 `json:"rate_applied"`

	// IsGrossCalculation holds the resolved value: submissions that omit the
	// flag are persisted with the user's default, never with null.
	IsGrossCalculation bool `json:"is_gross_calculation"`
	HasCoordination    bool `json:"has_coordination"`
	HasNight           bool `json:"has_night"`

	Description *string `json:"description,omitempty"`
	Client      *string `json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDataModel(w *WorkLog) *worklogDatamodel.WorkLog {
	return &worklogDatamodel.WorkLog{
		ID:                 w.ID,
		UserID:             w.UserID,
		CompanyID:          w.CompanyID,
		Type:               w.Type,
		Date:               w.Date,
		StartTime:          w.StartTime,
		EndTime:            w.EndTime,
		StartDate:          w.StartDate,
		EndDate:            w.EndDate,
		DurationHours:      w.DurationHours,
		Amount:             w.Amount,
		RateApplied:        w.RateApplied,
		IsGrossCalculation: w.IsGrossCalculation,
		HasCoordination:    w.HasCoordination,
		HasNight:           w.HasNight,
		Description:        w.Description,
		Client:             w.Client,
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
	}
}

func FromDataModel(w *worklogDatamodel.WorkLog) *WorkLog {
	return &WorkLog{
		ID:                 w.ID,
		UserID:             w.UserID,
		CompanyID:          w.CompanyID,
		Type:               w.Type,
		Date:               w.Date,
		StartTime:          w.StartTime,
		EndTime:            w.EndTime,
		StartDate:          w.StartDate,
		EndDate:            w.EndDate,
		DurationHours:      w.DurationHours,
		Amount:             w.Amount,
		RateApplied:        w.RateApplied,
		IsGrossCalculation: w.IsGrossCalculation,
		HasCoordination:    w.HasCoordination,
		HasNight:           w.HasNight,
		Description:        w.Description,
		Client:             w.Client,
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
	}
}

func FromDataModelSlice(logs []*worklogDatamodel.WorkLog) []*WorkLog {
	result := make([]*WorkLog, len(logs))
	for i, w := range logs {
		result[i] = FromDataModel(w)
	}
	return result
}
