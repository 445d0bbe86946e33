package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "github.com/vesotel/worklog-management/internal"
	worklogDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/worklog"
	"github.com/vesotel/worklog-management/internal/worklog"
)

func TestWorkLogRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "WorkLogRepository Suite")
}

type SQLiteWorkLog struct {
	ID                 uuid.UUID `gorm:"primaryKey"`
	UserID             uuid.UUID `gorm:"column:user_id;not null"`
	CompanyID          *uuid.UUID
	Type               string `gorm:"column:type;not null"`
	Date               *time.Time
	StartTime          *string `gorm:"column:start_time"`
	EndTime            *string `gorm:"column:end_time"`
	StartDate          *time.Time
	EndDate            *time.Time
	DurationHours      *float64
	Amount             float64
	RateApplied        float64 `gorm:"column:rate_applied"`
	IsGrossCalculation bool    `gorm:"column:is_gross_calculation"`
	HasCoordination    bool    `gorm:"column:has_coordination"`
	HasNight           bool    `gorm:"column:has_night"`
	Description        *string
	Client             *string
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (SQLiteWorkLog) TableName() string {
	return "work_logs"
}

var _ = Describe("WorkLogRepository", func() {
	var (
		db   *gorm.DB
		repo worklog.RepositoryAPI
	)

	newLog := func(userID uuid.UUID, amount float64, createdAt time.Time) *worklogDatamodel.WorkLog {
		return &worklogDatamodel.WorkLog{
			ID:                 uuid.New(),
			UserID:             userID,
			Type:               worklog.TypeParticular,
			Amount:             amount,
			RateApplied:        25,
			IsGrossCalculation: true,
			CreatedAt:          createdAt,
			UpdatedAt:          createdAt,
		}
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteWorkLog{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewWorkLogRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("should persist a work log", func() {
			log := newLog(uuid.New(), 50, time.Now())

			err := repo.Create(log)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := repo.GetByID(log.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Amount).To(Equal(50.0))
			Expect(retrieved.RateApplied).To(Equal(25.0))
			Expect(retrieved.IsGrossCalculation).To(BeTrue())
		})
	})

	Describe("GetByID", func() {
		It("should return ErrWorkLogNotFound for a non-existent id", func() {
			retrieved, err := repo.GetByID(uuid.New())
			Expect(err).To(Equal(apperrors.ErrWorkLogNotFound))
			Expect(retrieved).To(BeNil())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
			for i := 0; i < 5; i++ {
				log := newLog(uuid.New(), float64(i*10), base.Add(time.Duration(i)*time.Hour))
				Expect(repo.Create(log)).To(Succeed())
			}
		})

		It("should order by creation time ascending", func() {
			logs, err := repo.List(0, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(5))
			for i := 1; i < len(logs); i++ {
				Expect(logs[i].CreatedAt.Before(logs[i-1].CreatedAt)).To(BeFalse())
			}
		})

		It("should apply offset and limit", func() {
			logs, err := repo.List(1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(2))
			Expect(logs[0].Amount).To(Equal(10.0))
			Expect(logs[1].Amount).To(Equal(20.0))
		})

		It("should return an empty slice past the end", func() {
			logs, err := repo.List(10, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(BeEmpty())
		})
	})

	Describe("ListByUser", func() {
		It("should return only the given user's logs", func() {
			userID := uuid.New()
			otherID := uuid.New()
			base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

			Expect(repo.Create(newLog(userID, 10, base))).To(Succeed())
			Expect(repo.Create(newLog(otherID, 20, base.Add(time.Hour)))).To(Succeed())
			Expect(repo.Create(newLog(userID, 30, base.Add(2*time.Hour)))).To(Succeed())

			logs, err := repo.ListByUser(userID, 0, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(2))
			for _, log := range logs {
				Expect(log.UserID).To(Equal(userID))
			}
		})
	})
})
