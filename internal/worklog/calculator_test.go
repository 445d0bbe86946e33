package worklog_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vesotel/worklog-management/internal/core/common/datatypes"
	settingsDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/settings"
	"github.com/vesotel/worklog-management/internal/worklog"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func datePtr(s string) *datatypes.Date {
	d, err := datatypes.ParseDate(s)
	Expect(err).NotTo(HaveOccurred())
	return &d
}

var _ = Describe("ResolveRates", func() {
	Context("when the user has settings", func() {
		It("should carry every rate and the gross default over", func() {
			cfg := &settingsDatamodel.UserSettings{
				HourlyRate:       25,
				DailyRate:        120,
				CoordinationRate: 15,
				NightRate:        10,
				IsGross:          false,
			}

			rates := worklog.ResolveRates(cfg)

			Expect(rates.Hourly).To(Equal(25.0))
			Expect(rates.Daily).To(Equal(120.0))
			Expect(rates.Coordination).To(Equal(15.0))
			Expect(rates.Night).To(Equal(10.0))
			Expect(rates.DefaultIsGross).To(BeFalse())
		})
	})

	Context("when the user has no settings", func() {
		It("should default to zero rates and gross interpretation", func() {
			rates := worklog.ResolveRates(nil)

			Expect(rates.Hourly).To(BeZero())
			Expect(rates.Daily).To(BeZero())
			Expect(rates.Coordination).To(BeZero())
			Expect(rates.Night).To(BeZero())
			Expect(rates.DefaultIsGross).To(BeTrue())
		})
	})
})

var _ = Describe("Compute", func() {
	var rates worklog.RateTable

	BeforeEach(func() {
		rates = worklog.RateTable{
			Hourly:         25,
			Daily:          120,
			Coordination:   15,
			Night:          10,
			DefaultIsGross: true,
		}
	})

	Describe("particular sessions", func() {
		It("should multiply duration by the hourly rate", func() {
			basis := worklog.ParticularBasis{DurationHours: floatPtr(3.5)}

			result := worklog.Compute(basis, worklog.Extras{}, nil, rates)

			Expect(result.Amount).To(BeNumerically("~", 87.5, 1e-9))
			Expect(result.RateApplied).To(Equal(25.0))
		})

		It("should contribute nothing for a missing duration but still record the hourly rate", func() {
			basis := worklog.ParticularBasis{DurationHours: nil}

			result := worklog.Compute(basis, worklog.Extras{}, nil, rates)

			Expect(result.Amount).To(BeZero())
			Expect(result.RateApplied).To(Equal(25.0))
		})

		It("should yield a zero amount for a zero duration", func() {
			basis := worklog.ParticularBasis{DurationHours: floatPtr(0)}

			result := worklog.Compute(basis, worklog.Extras{}, nil, rates)

			Expect(result.Amount).To(BeZero())
			Expect(result.RateApplied).To(Equal(25.0))
		})
	})

	Describe("tutorial sessions", func() {
		It("should count calendar days inclusively", func() {
			// 2026-03-02 to 2026-03-04 spans three days
			basis := worklog.TutorialBasis{
				StartDate: datePtr("2026-03-02"),
				EndDate:   datePtr("2026-03-04"),
			}

			result := worklog.Compute(basis, worklog.Extras{}, nil, rates)

			Expect(result.Amount).To(Equal(360.0))
			Expect(result.RateApplied).To(Equal(120.0))
		})

		It("should price a single-day range as one day", func() {
			basis := worklog.TutorialBasis{
				StartDate: datePtr("2026-03-02"),
				EndDate:   datePtr("2026-03-02"),
			}

			result := worklog.Compute(basis, worklog.Extras{}, nil, rates)

			Expect(result.Amount).To(Equal(120.0))
		})

		It("should store the computed non-positive amount for an inverted range", func() {
			basis := worklog.TutorialBasis{
				StartDate: datePtr("2026-03-04"),
				EndDate:   datePtr("2026-03-02"),
			}

			result := worklog.Compute(basis, worklog.Extras{}, nil, rates)

			Expect(result.Amount).To(Equal(-120.0))
			Expect(result.RateApplied).To(Equal(120.0))
		})

		It("should contribute nothing when either date is missing", func() {
			basis := worklog.TutorialBasis{StartDate: datePtr("2026-03-02")}

			result := worklog.Compute(basis, worklog.Extras{}, nil, rates)

			Expect(result.Amount).To(BeZero())
			Expect(result.RateApplied).To(Equal(120.0))
		})
	})

	Describe("extras", func() {
		It("should add the coordination rate on top of the base", func() {
			basis := worklog.ParticularBasis{DurationHours: floatPtr(2)}

			result := worklog.Compute(basis, worklog.Extras{Coordination: true}, nil, rates)

			Expect(result.Amount).To(Equal(65.0))
		})

		It("should add both extras independently", func() {
			basis := worklog.ParticularBasis{DurationHours: floatPtr(2)}

			result := worklog.Compute(basis, worklog.Extras{Coordination: true, Night: true}, nil, rates)

			Expect(result.Amount).To(Equal(75.0))
		})

		It("should apply extras even without a base contribution", func() {
			result := worklog.Compute(nil, worklog.Extras{Night: true}, nil, rates)

			Expect(result.Amount).To(Equal(10.0))
			Expect(result.RateApplied).To(BeZero())
		})
	})

	Describe("gross resolution", func() {
		It("should fall back to the user's default when the submission omits the flag", func() {
			result := worklog.Compute(nil, worklog.Extras{}, nil, rates)

			Expect(result.IsGross).To(BeTrue())
		})

		It("should honor an explicit override", func() {
			result := worklog.Compute(nil, worklog.Extras{}, boolPtr(false), rates)

			Expect(result.IsGross).To(BeFalse())
		})

		It("should honor an explicit override matching the default", func() {
			rates.DefaultIsGross = false

			result := worklog.Compute(nil, worklog.Extras{}, boolPtr(false), rates)

			Expect(result.IsGross).To(BeFalse())
		})
	})

	Describe("determinism", func() {
		It("should produce the same result for the same inputs", func() {
			basis := worklog.TutorialBasis{
				StartDate: datePtr("2026-03-02"),
				EndDate:   datePtr("2026-03-06"),
			}
			extras := worklog.Extras{Coordination: true}

			first := worklog.Compute(basis, extras, nil, rates)
			second := worklog.Compute(basis, extras, nil, rates)

			Expect(first).To(Equal(second))
		})
	})
})
