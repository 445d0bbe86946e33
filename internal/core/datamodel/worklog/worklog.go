package worklog

import (
	"time"

	"github.com/google/uuid"

	"github.com/vesotel/worklog-management/internal/core/common/datatypes"
)

type WorkLog struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:uuid"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	CompanyID *uuid.UUID `gorm:"column:company_id;type:uuid"`

	Type string `gorm:"column:type;not null"`

	Date      *datatypes.Date      `gorm:"column:date"`
	StartTime *datatypes.ClockTime `gorm:"column:start_time"`
	EndTime   *datatypes.ClockTime `gorm:"column:end_time"`

	StartDate *datatypes.Date `gorm:"column:start_date"`
	EndDate   *datatypes.Date `gorm:"column:end_date"`

	DurationHours *float64 `gorm:"column:duration_hours;type:numeric(5,2)"`

	Amount      float64 `gorm:"column:amount;type:numeric(10,2)"`
	RateApplied float64 `gorm:"column:rate_applied;type:numeric(10,2)"`

	IsGrossCalculation bool `gorm:"column:is_gross_calculation;not null"`
	HasCoordination    bool `gorm:"column:has_coordination;default:false"`
	HasNight           bool `gorm:"column:has_night;default:false"`

	Description *string `gorm:"column:description;type:text"`
	Client      *string `gorm:"column:client"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}
