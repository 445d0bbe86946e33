package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/company"
	companyDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/company"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.RepositoryAPI {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(c *companyDatamodel.Company) error {
	return r.db.Create(c).Error
}

func (r *CompanyRepository) GetByID(id uuid.UUID) (*companyDatamodel.Company, error) {
	var c companyDatamodel.Company
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) List(offset, limit int) ([]*companyDatamodel.Company, error) {
	var companies []*companyDatamodel.Company
	err := r.db.Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) AddMember(m *companyDatamodel.CompanyMember) error {
	return r.db.Create(m).Error
}

func (r *CompanyRepository) GetMember(companyID, userID uuid.UUID) (*companyDatamodel.CompanyMember, error) {
	var m companyDatamodel.CompanyMember
	err := r.db.Where("company_id = ? AND user_id = ?", companyID, userID).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *CompanyRepository) ListMembers(companyID uuid.UUID) ([]*companyDatamodel.CompanyMember, error) {
	var members []*companyDatamodel.CompanyMember
	err := r.db.Where("company_id = ?", companyID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}
