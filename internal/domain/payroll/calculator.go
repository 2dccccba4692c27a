// Package payroll turns attendance and KPI evaluation records into monetary
// deltas. All amounts are decimal to keep repeated division (daily rates,
// hourly rates) exact enough for money.
package payroll

import (
	"fmt"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultOvertimeRate applies when an overtime entry does not carry its own rate
const DefaultOvertimeRate = 1.5

// standardShiftHours converts between daily and hourly pay
var standardShiftHours = decimal.NewFromInt(8)

var hundred = decimal.NewFromInt(100)

// DailySalary computes the amount one attendance record contributes to the
// user's pay for the month.
//
// TIME entries earn a fraction of the daily base rate by hours worked,
// PIECEWORK entries earn output times unit price (the record's own price, or
// the user's default when absent), DAILY entries earn their flat catalog
// price, and paid-leave categories earn exactly one standard day of base
// salary. Overtime is added on top, and a probation rate below 100 scales
// the whole total as the final step.
func DailySalary(user *entity.User, rec *entity.AttendanceRecord, standardWorkDays int, base *entity.MonthlySalary) (decimal.Decimal, error) {
	if standardWorkDays <= 0 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrNoStandardDays, standardWorkDays)
	}
	days := decimal.NewFromInt(int64(standardWorkDays))

	var total decimal.Decimal
	switch {
	case rec.Type == entity.AttendanceTime:
		daily, err := dailyBaseRate(base, days)
		if err != nil {
			return decimal.Zero, err
		}
		hours := decimal.NewFromFloat(rec.HoursWorked)
		total = daily.Mul(hours.Div(standardShiftHours))

	case rec.Type == entity.AttendancePiecework:
		price := rec.UnitPrice
		if price == 0 {
			price = user.DefaultUnitPrice
		}
		total = decimal.NewFromFloat(rec.OutputQuantity).Mul(decimal.NewFromFloat(price))

	case rec.Type == entity.AttendanceDaily:
		total = rec.DailyUnitPrice

	case rec.Type.IsPaidLeave():
		daily, err := dailyBaseRate(base, days)
		if err != nil {
			return decimal.Zero, err
		}
		total = daily

	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownAttendanceType, rec.Type)
	}

	overtime, err := overtimeAmount(user, rec, days, base)
	if err != nil {
		return decimal.Zero, err
	}
	total = total.Add(overtime)

	// Probation scaling is multiplicative and always last.
	if user.ProbationRate > 0 && user.ProbationRate < 100 {
		total = total.Mul(decimal.NewFromFloat(user.ProbationRate).Div(hundred))
	}
	return total, nil
}

func overtimeAmount(user *entity.User, rec *entity.AttendanceRecord, days decimal.Decimal, base *entity.MonthlySalary) (decimal.Decimal, error) {
	if rec.OvertimeOutput == 0 && rec.OvertimeHours == 0 {
		return decimal.Zero, nil
	}

	rate := rec.OvertimeRate
	if rate == 0 {
		rate = DefaultOvertimeRate
	}
	rateDec := decimal.NewFromFloat(rate)

	if rec.OvertimeOutput != 0 {
		price := rec.UnitPrice
		if price == 0 {
			price = user.DefaultUnitPrice
		}
		return decimal.NewFromFloat(rec.OvertimeOutput).
			Mul(decimal.NewFromFloat(price)).
			Mul(rateDec), nil
	}

	daily, err := dailyBaseRate(base, days)
	if err != nil {
		return decimal.Zero, err
	}
	hourly := daily.Div(standardShiftHours)
	return hourly.Mul(decimal.NewFromFloat(rec.OvertimeHours)).Mul(rateDec), nil
}

func dailyBaseRate(base *entity.MonthlySalary, days decimal.Decimal) (decimal.Decimal, error) {
	if base == nil {
		return decimal.Zero, ErrMissingBaseSalary
	}
	return base.BaseSalary.Div(days), nil
}

// EvaluationDelta computes the signed monetary effect of one KPI evaluation
// record: positive for bonus entries, negative for penalties.
//
// The regular formula is (criterionValue/100) * (groupWeight/100) *
// targetBase. Entries targeting the reserved-bonus pool bypass the
// percentage formula: their points are already currency-denominated and are
// applied raw.
func EvaluationDelta(rec *entity.EvaluationRecord, base *entity.MonthlySalary) (decimal.Decimal, error) {
	if base == nil {
		return decimal.Zero, ErrMissingBaseSalary
	}

	var amount decimal.Decimal
	if rec.Target == entity.TargetReservedBonus {
		amount = rec.CriterionValue
	} else {
		amount = rec.CriterionValue.Div(hundred).
			Mul(rec.GroupWeight.Div(hundred)).
			Mul(base.KPITargetBase)
	}

	if rec.Kind == entity.EvaluationPenalty {
		return amount.Neg(), nil
	}
	return amount, nil
}
