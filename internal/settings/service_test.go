package settings_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	apperrors "github.com/vesotel/worklog-management/internal"
	settingsDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/settings"
	"github.com/vesotel/worklog-management/internal/settings"
)

func TestSettings(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Settings Suite")
}

// Mock repository for testing
type mockSettingsRepository struct {
	records     map[uuid.UUID]*settingsDatamodel.UserSettings
	getError    error
	upsertError error
}

func newMockSettingsRepository() *mockSettingsRepository {
	return &mockSettingsRepository{
		records: make(map[uuid.UUID]*settingsDatamodel.UserSettings),
	}
}

func (m *mockSettingsRepository) GetByUserID(userID uuid.UUID) (*settingsDatamodel.UserSettings, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.records[userID], nil
}

func (m *mockSettingsRepository) Upsert(s *settingsDatamodel.UserSettings) error {
	if m.upsertError != nil {
		return m.upsertError
	}
	m.records[s.UserID] = s
	return nil
}

var _ = Describe("SettingsService", func() {
	var (
		service  *settings.Service
		mockRepo *mockSettingsRepository
		logger   *slog.Logger
		userID   uuid.UUID
	)

	BeforeEach(func() {
		mockRepo = newMockSettingsRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = settings.NewService(mockRepo, logger)
		userID = uuid.New()
	})

	Describe("UpsertSettings", func() {
		It("should create settings for a user without any", func() {
			dto := settings.UpsertSettingsDTO{
				HourlyRate:       25,
				DailyRate:        120,
				CoordinationRate: 15,
				NightRate:        10,
				IsGross:          true,
			}

			result, err := service.UpsertSettings(userID, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.UserID).To(Equal(userID))
			Expect(result.HourlyRate).To(Equal(25.0))
			Expect(mockRepo.records).To(HaveLen(1))
		})

		It("should replace existing settings instead of adding a second row", func() {
			first := settings.UpsertSettingsDTO{HourlyRate: 25, IsGross: true}
			_, err := service.UpsertSettings(userID, first)
			Expect(err).ToNot(HaveOccurred())

			second := settings.UpsertSettingsDTO{HourlyRate: 30, IsGross: false}
			result, err := service.UpsertSettings(userID, second)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.HourlyRate).To(Equal(30.0))
			Expect(result.IsGross).To(BeFalse())
			Expect(mockRepo.records).To(HaveLen(1))
		})

		It("should reject a negative rate", func() {
			dto := settings.UpsertSettingsDTO{HourlyRate: -5}

			result, err := service.UpsertSettings(userID, dto)

			Expect(err).To(HaveOccurred())
			Expect(result).To(BeNil())
			Expect(mockRepo.records).To(BeEmpty())
		})

		It("should accept zero rates", func() {
			dto := settings.UpsertSettingsDTO{}

			result, err := service.UpsertSettings(userID, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.HourlyRate).To(BeZero())
		})

		It("should propagate repository errors", func() {
			mockRepo.upsertError = errors.New("database error")
			dto := settings.UpsertSettingsDTO{HourlyRate: 25}

			result, err := service.UpsertSettings(userID, dto)

			Expect(err).To(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})

	Describe("GetSettings", func() {
		It("should return the settings when configured", func() {
			mockRepo.records[userID] = &settingsDatamodel.UserSettings{
				UserID:     userID,
				HourlyRate: 25,
				IsGross:    true,
			}

			result, err := service.GetSettings(userID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.HourlyRate).To(Equal(25.0))
		})

		It("should return ErrSettingsNotFound when absent", func() {
			result, err := service.GetSettings(uuid.New())

			Expect(err).To(Equal(apperrors.ErrSettingsNotFound))
			Expect(result).To(BeNil())
		})
	})

	Describe("GetByUserID", func() {
		It("should expose absence as (nil, nil) for the calculator", func() {
			record, err := service.GetByUserID(uuid.New())

			Expect(err).ToNot(HaveOccurred())
			Expect(record).To(BeNil())
		})
	})
})
