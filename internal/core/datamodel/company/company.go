package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"column:name;not null"`
	FiscalID  *string   `gorm:"column:fiscal_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}

type CompanyMember struct {
	UserID    uuid.UUID `gorm:"primaryKey;column:user_id;type:uuid"`
	CompanyID uuid.UUID `gorm:"primaryKey;column:company_id;type:uuid"`
	Role      string    `gorm:"column:role;default:worker"`
	JoinedAt  time.Time `gorm:"column:joined_at;autoCreateTime"`
}

func (CompanyMember) TableName() string {
	return "company_members"
}
