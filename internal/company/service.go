package company

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/vesotel/worklog-management/internal"
	companyDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/company"
)

// RepositoryAPI defines the data access methods for companies and their
// memberships. GetMember returns (nil, nil) when the pair is not linked.
type RepositoryAPI interface {
	Create(company *companyDatamodel.Company) error
	GetByID(id uuid.UUID) (*companyDatamodel.Company, error)
	List(offset, limit int) ([]*companyDatamodel.Company, error)
	AddMember(member *companyDatamodel.CompanyMember) error
	GetMember(companyID, userID uuid.UUID) (*companyDatamodel.CompanyMember, error)
	ListMembers(companyID uuid.UUID) ([]*companyDatamodel.CompanyMember, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateCompany(dto CreateCompanyDTO) (*Company, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("company validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	company := &Company{
		ID:        uuid.New(),
		Name:      dto.Name,
		FiscalID:  dto.FiscalID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ToDataModel(company)); err != nil {
		s.logger.Error("failed to create company", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("company created", "company_id", company.ID, "name", company.Name)
	return company, nil
}

func (s *Service) GetCompanyByID(id uuid.UUID) (*Company, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get company", "error", err, "company_id", id)
		return nil, err
	}
	return FromDataModel(record), nil
}

func (s *Service) ListCompanies(skip, limit int) ([]*Company, error) {
	records, err := s.repo.List(skip, limit)
	if err != nil {
		s.logger.Error("failed to list companies", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) AddMember(companyID uuid.UUID, dto AddMemberDTO) (*Member, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("member validation failed", "error", err, "company_id", companyID)
		return nil, err
	}

	if _, err := s.repo.GetByID(companyID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMember(companyID, dto.UserID)
	if err != nil {
		s.logger.Error("failed to check membership", "error", err, "company_id", companyID, "user_id", dto.UserID)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrMemberAlreadyExists
	}

	role := dto.Role
	if role == "" {
		role = MemberRoleWorker
	}

	member := &Member{
		UserID:    dto.UserID,
		CompanyID: companyID,
		Role:      role,
		JoinedAt:  time.Now(),
	}

	if err := s.repo.AddMember(&companyDatamodel.CompanyMember{
		UserID:    member.UserID,
		CompanyID: member.CompanyID,
		Role:      member.Role,
		JoinedAt:  member.JoinedAt,
	}); err != nil {
		s.logger.Error("failed to add member", "error", err, "company_id", companyID, "user_id", dto.UserID)
		return nil, err
	}

	s.logger.Info("member added", "company_id", companyID, "user_id", dto.UserID, "role", role)
	return member, nil
}

func (s *Service) ListMembers(companyID uuid.UUID) ([]*Member, error) {
	if _, err := s.repo.GetByID(companyID); err != nil {
		return nil, err
	}

	records, err := s.repo.ListMembers(companyID)
	if err != nil {
		s.logger.Error("failed to list members", "error", err, "company_id", companyID)
		return nil, err
	}
	return MembersFromDataModelSlice(records), nil
}
