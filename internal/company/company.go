package company

import (
	"time"

	"github.com/google/uuid"

	companyDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/company"
)

const (
	MemberRoleAdmin  = "admin"
	MemberRoleWorker = "worker"
)

type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	FiscalID  *string   `json:"fiscal_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Member struct {
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

func ToDataModel(c *Company) *companyDatamodel.Company {
	return &companyDatamodel.Company{
		ID:        c.ID,
		Name:      c.Name,
		FiscalID:  c.FiscalID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDataModel(c *companyDatamodel.Company) *Company {
	return &Company{
		ID:        c.ID,
		Name:      c.Name,
		FiscalID:  c.FiscalID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDataModelSlice(companies []*companyDatamodel.Company) []*Company {
	result := make([]*Company, len(companies))
	for i, c := range companies {
		result[i] = FromDataModel(c)
	}
	return result
}

func MemberFromDataModel(m *companyDatamodel.CompanyMember) *Member {
	return &Member{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
	}
}

func MembersFromDataModelSlice(members []*companyDatamodel.CompanyMember) []*Member {
	result := make([]*Member, len(members))
	for i, m := range members {
		result[i] = MemberFromDataModel(m)
	}
	return result
}
