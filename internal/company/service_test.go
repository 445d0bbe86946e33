package company_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	apperrors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/company"
	companyDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/company"
)

func TestCompany(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Company Suite")
}

type memberKey struct {
	companyID uuid.UUID
	userID    uuid.UUID
}

// Mock repository for testing
type mockCompanyRepository struct {
	companies   map[uuid.UUID]*companyDatamodel.Company
	members     map[memberKey]*companyDatamodel.CompanyMember
	createError error
}

func newMockCompanyRepository() *mockCompanyRepository {
	return &mockCompanyRepository{
		companies: make(map[uuid.UUID]*companyDatamodel.Company),
		members:   make(map[memberKey]*companyDatamodel.CompanyMember),
	}
}

func (m *mockCompanyRepository) Create(c *companyDatamodel.Company) error {
	if m.createError != nil {
		return m.createError
	}
	m.companies[c.ID] = c
	return nil
}

func (m *mockCompanyRepository) GetByID(id uuid.UUID) (*companyDatamodel.Company, error) {
	c, exists := m.companies[id]
	if !exists {
		return nil, apperrors.ErrCompanyNotFound
	}
	return c, nil
}

func (m *mockCompanyRepository) List(offset, limit int) ([]*companyDatamodel.Company, error) {
	all := make([]*companyDatamodel.Company, 0, len(m.companies))
	for _, c := range m.companies {
		all = append(all, c)
	}
	if offset >= len(all) {
		return []*companyDatamodel.Company{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *mockCompanyRepository) AddMember(member *companyDatamodel.CompanyMember) error {
	m.members[memberKey{member.CompanyID, member.UserID}] = member
	return nil
}

func (m *mockCompanyRepository) GetMember(companyID, userID uuid.UUID) (*companyDatamodel.CompanyMember, error) {
	return m.members[memberKey{companyID, userID}], nil
}

func (m *mockCompanyRepository) ListMembers(companyID uuid.UUID) ([]*companyDatamodel.CompanyMember, error) {
	result := make([]*companyDatamodel.CompanyMember, 0)
	for key, member := range m.members {
		if key.companyID == companyID {
			result = append(result, member)
		}
	}
	return result, nil
}

var _ = Describe("CompanyService", func() {
	var (
		service  *company.Service
		mockRepo *mockCompanyRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockCompanyRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = company.NewService(mockRepo, logger)
	})

	Describe("CreateCompany", func() {
		It("should create a company", func() {
			dto := company.CreateCompanyDTO{Name: "Vesotel"}

			result, err := service.CreateCompany(dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Name).To(Equal("Vesotel"))
			Expect(mockRepo.companies).To(HaveLen(1))
		})

		It("should reject an empty name", func() {
			dto := company.CreateCompanyDTO{}

			result, err := service.CreateCompany(dto)

			Expect(err).To(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})

	Describe("AddMember", func() {
		var companyID uuid.UUID

		BeforeEach(func() {
			created, err := service.CreateCompany(company.CreateCompanyDTO{Name: "Vesotel"})
			Expect(err).ToNot(HaveOccurred())
			companyID = created.ID
		})

		It("should add a member with the default worker role", func() {
			dto := company.AddMemberDTO{UserID: uuid.New()}

			result, err := service.AddMember(companyID, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Role).To(Equal(company.MemberRoleWorker))
			Expect(result.CompanyID).To(Equal(companyID))
		})

		It("should reject a duplicate membership", func() {
			dto := company.AddMemberDTO{UserID: uuid.New()}
			_, err := service.AddMember(companyID, dto)
			Expect(err).ToNot(HaveOccurred())

			result, err := service.AddMember(companyID, dto)

			Expect(err).To(Equal(apperrors.ErrMemberAlreadyExists))
			Expect(result).To(BeNil())
		})

		It("should return the not-found sentinel for an unknown company", func() {
			dto := company.AddMemberDTO{UserID: uuid.New()}

			result, err := service.AddMember(uuid.New(), dto)

			Expect(err).To(Equal(apperrors.ErrCompanyNotFound))
			Expect(result).To(BeNil())
		})

		It("should reject an unknown member role", func() {
			dto := company.AddMemberDTO{UserID: uuid.New(), Role: "owner"}

			result, err := service.AddMember(companyID, dto)

			Expect(err).To(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})

	Describe("ListMembers", func() {
		It("should list the company's members", func() {
			created, err := service.CreateCompany(company.CreateCompanyDTO{Name: "Vesotel"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.AddMember(created.ID, company.AddMemberDTO{UserID: uuid.New()})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.AddMember(created.ID, company.AddMemberDTO{UserID: uuid.New(), Role: company.MemberRoleAdmin})
			Expect(err).ToNot(HaveOccurred())

			members, err := service.ListMembers(created.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(members).To(HaveLen(2))
		})
	})
})
