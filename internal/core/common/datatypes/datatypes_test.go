package datatypes_test

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vesotel/worklog-management/internal/core/common/datatypes"
)

func TestDatatypes(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Datatypes Suite")
}

var _ = Describe("Date", func() {
	Describe("ParseDate", func() {
		It("should parse a YYYY-MM-DD string", func() {
			d, err := datatypes.ParseDate("2026-03-02")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.String()).To(Equal("2026-03-02"))
		})

		It("should reject other layouts", func() {
			_, err := datatypes.ParseDate("02/03/2026")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("DaysUntil", func() {
		It("should count days inclusively", func() {
			start := datatypes.NewDate(2026, time.March, 2)
			end := datatypes.NewDate(2026, time.March, 4)
			Expect(start.DaysUntil(end)).To(Equal(3))
		})

		It("should count a same-day range as one day", func() {
			d := datatypes.NewDate(2026, time.March, 2)
			Expect(d.DaysUntil(d)).To(Equal(1))
		})

		It("should yield zero when end is the day before start", func() {
			start := datatypes.NewDate(2026, time.March, 3)
			end := datatypes.NewDate(2026, time.March, 2)
			Expect(start.DaysUntil(end)).To(Equal(0))
		})

		It("should go non-positive for an inverted range", func() {
			start := datatypes.NewDate(2026, time.March, 4)
			end := datatypes.NewDate(2026, time.March, 2)
			Expect(start.DaysUntil(end)).To(Equal(-1))
		})

		It("should span month boundaries", func() {
			start := datatypes.NewDate(2026, time.February, 27)
			end := datatypes.NewDate(2026, time.March, 2)
			Expect(start.DaysUntil(end)).To(Equal(4))
		})
	})

	Describe("JSON round trip", func() {
		It("should marshal as a quoted YYYY-MM-DD string", func() {
			d := datatypes.NewDate(2026, time.March, 2)
			data, err := json.Marshal(d)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`"2026-03-02"`))
		})

		It("should unmarshal from a quoted string", func() {
			var d datatypes.Date
			err := json.Unmarshal([]byte(`"2026-03-02"`), &d)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.String()).To(Equal("2026-03-02"))
		})

		It("should reject a malformed string", func() {
			var d datatypes.Date
			err := json.Unmarshal([]byte(`"yesterday"`), &d)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Scan", func() {
		It("should accept a time.Time and drop the time component", func() {
			var d datatypes.Date
			err := d.Scan(time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC))
			Expect(err).NotTo(HaveOccurred())
			Expect(d.String()).To(Equal("2026-03-02"))
		})

		It("should accept a date string with a trailing time component", func() {
			var d datatypes.Date
			err := d.Scan("2026-03-02T00:00:00Z")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.String()).To(Equal("2026-03-02"))
		})
	})
})

var _ = Describe("ClockTime", func() {
	Describe("ParseClockTime", func() {
		It("should accept HH:MM", func() {
			ct, err := datatypes.ParseClockTime("09:30")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(ct)).To(Equal("09:30"))
		})

		It("should normalize HH:MM:SS down to HH:MM", func() {
			ct, err := datatypes.ParseClockTime("09:30:45")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(ct)).To(Equal("09:30"))
		})

		It("should reject an out-of-range hour", func() {
			_, err := datatypes.ParseClockTime("25:00")
			Expect(err).To(HaveOccurred())
		})

		It("should reject an out-of-range minute", func() {
			_, err := datatypes.ParseClockTime("10:75")
			Expect(err).To(HaveOccurred())
		})

		It("should reject a bare hour", func() {
			_, err := datatypes.ParseClockTime("10")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Scan", func() {
		It("should accept a time string from the driver", func() {
			var ct datatypes.ClockTime
			err := ct.Scan("09:30:00")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(ct)).To(Equal("09:30"))
		})

		It("should accept a time.Time from the driver", func() {
			var ct datatypes.ClockTime
			err := ct.Scan(time.Date(0, time.January, 1, 9, 30, 0, 0, time.UTC))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(ct)).To(Equal("09:30"))
		})
	})
})
