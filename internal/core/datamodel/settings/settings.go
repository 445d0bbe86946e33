package settings

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds the per-user rate configuration. The user_id primary
// key enforces the one-row-per-user invariant at the store level.
type UserSettings struct {
	UserID           uuid.UUID `gorm:"primaryKey;column:user_id;type:uuid"`
	HourlyRate       float64   `gorm:"column:hourly_rate;type:numeric(10,2);default:0"`
	DailyRate        float64   `gorm:"column:daily_rate;type:numeric(10,2);default:0"`
	CoordinationRate float64   `gorm:"column:coordination_rate;type:numeric(10,2);default:0"`
	NightRate        float64   `gorm:"column:night_rate;type:numeric(10,2);default:0"`
	IsGross          bool      `gorm:"column:is_gross;default:true"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
