package accessrequest

import (
	"time"

	"github.com/google/uuid"
)

type AccessRequest struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email     string    `gorm:"column:email;not null"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Status    string    `gorm:"column:status;default:pending"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AccessRequest) TableName() string {
	return "access_requests"
}
