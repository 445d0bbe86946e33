package worklog

import (
	"github.com/vesotel/worklog-management/internal/core/common/datatypes"
	settingsDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/settings"
)

// RateTable is the resolved per-user rate configuration the calculator works
// from. Resolution is a separate step from the amount computation so the
// defaulting policy can be tested on its own.
type RateTable struct {
	Hourly         float64
	Daily          float64
	Coordination   float64
	Night          float64
	DefaultIsGross bool
}

// ResolveRates maps a settings record, or its absence, onto a RateTable.
// Users without settings get zero rates and gross interpretation by default.
func ResolveRates(s *settingsDatamodel.UserSettings) RateTable {
	if s == nil {
		return RateTable{DefaultIsGross: true}
	}
	return RateTable{
		Hourly:         s.HourlyRate,
		Daily:          s.DailyRate,
		Coordination:   s.CoordinationRate,
		Night:          s.NightRate,
		DefaultIsGross: s.IsGross,
	}
}

// Basis is the type-dependent component of a work log's amount. Each log type
// carries exactly the fields that are meaningful for it.
type Basis interface {
	base(rates RateTable) (amount, rateApplied float64)
}

// ParticularBasis prices an hourly session. A missing duration contributes
// nothing, but the hourly rate is still recorded as the rate applied.
type ParticularBasis struct {
	DurationHours *float64
}

func (b ParticularBasis) base(rates RateTable) (float64, float64) {
	if b.DurationHours == nil {
		return 0, rates.Hourly
	}
	return *b.DurationHours * rates.Hourly, rates.Hourly
}

// TutorialBasis prices a daily session over an inclusive calendar-day span.
// An inverted range yields a non-positive day count and the amount follows;
// the submission is stored as computed.
type TutorialBasis struct {
	StartDate *datatypes.Date
	EndDate   *datatypes.Date
}

func (b TutorialBasis) base(rates RateTable) (float64, float64) {
	if b.StartDate == nil || b.EndDate == nil {
		return 0, rates.Daily
	}
	days := b.StartDate.DaysUntil(*b.EndDate)
	return float64(days) * rates.Daily, rates.Daily
}

// Extras are flat add-ons applied on top of the base component regardless of
// log type. They are independent of each other.
type Extras struct {
	Coordination bool
	Night        bool
}

type Result struct {
	Amount      float64
	RateApplied float64
	IsGross     bool
}

// Compute derives the amount owed for a submission. It is pure: no field is
// range-checked here (the DTO validation stage runs first) and a nil basis
// contributes nothing.
func Compute(basis Basis, extras Extras, isGrossOverride *bool, rates RateTable) Result {
	result := Result{IsGross: rates.DefaultIsGross}
	if isGrossOverride != nil {
		result.IsGross = *isGrossOverride
	}

	if basis != nil {
		result.Amount, result.RateApplied = basis.base(rates)
	}

	if extras.Coordination {
		result.Amount += rates.Coordination
	}
	if extras.Night {
		result.Amount += rates.Night
	}

	return result
}
