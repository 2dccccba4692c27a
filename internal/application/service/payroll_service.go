package service

import (
	"fmt"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/formula"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Payroll formula variables exposed to configured salary rules. Every rule is
// validated against this set before it may be stored.
const (
	VarBaseSalary       = "base_salary"
	VarInsuranceSalary  = "insurance_salary"
	VarKPITargetBase    = "kpi_target_base"
	VarReservedBonus    = "reserved_bonus"
	VarStandardWorkDays = "standard_work_days"
	VarProbationRate    = "probation_rate"
)

// FormulaVariables lists the variable names available to salary formulas
func FormulaVariables() []string {
	return []string{
		VarBaseSalary,
		VarInsuranceSalary,
		VarKPITargetBase,
		VarReservedBonus,
		VarStandardWorkDays,
		VarProbationRate,
	}
}

// PayrollService computes monetary amounts for attendance and evaluation
// records, and evaluates configured salary formulas against a user's live
// payroll variables
type PayrollService interface {
	// DailyAmount computes the pay contributed by one attendance record,
	// using the configured standard work day count for the month
	DailyAmount(user *entity.User, rec *entity.AttendanceRecord, base *entity.MonthlySalary) (decimal.Decimal, error)

	// EvaluationAmount computes the signed KPI delta for one evaluation record
	EvaluationAmount(rec *entity.EvaluationRecord, base *entity.MonthlySalary) (decimal.Decimal, error)

	// EvaluateFormula evaluates a configured salary formula against the
	// user's payroll variables
	EvaluateFormula(expression string, user *entity.User, base *entity.MonthlySalary) (float64, error)

	// CheckFormula validates a formula before it is stored as configuration
	CheckFormula(expression string) formula.ValidationResult
}

type payrollServiceImpl struct {
	standardWorkDays int
	logger           Logger
}

// NewPayrollService creates a new PayrollService. standardWorkDays is the
// configured number of standard work days per month.
func NewPayrollService(standardWorkDays int, logger Logger) PayrollService {
	return &payrollServiceImpl{
		standardWorkDays: standardWorkDays,
		logger:           logger,
	}
}

func (s *payrollServiceImpl) DailyAmount(user *entity.User, rec *entity.AttendanceRecord, base *entity.MonthlySalary) (decimal.Decimal, error) {
	amount, err := payroll.DailySalary(user, rec, s.standardWorkDays, base)
	if err != nil {
		s.logger.Error("Failed to compute daily salary",
			"error", err,
			"user_id", user.ID,
			"attendance_type", rec.Type)
		return decimal.Zero, err
	}
	return amount, nil
}

func (s *payrollServiceImpl) EvaluationAmount(rec *entity.EvaluationRecord, base *entity.MonthlySalary) (decimal.Decimal, error) {
	amount, err := payroll.EvaluationDelta(rec, base)
	if err != nil {
		s.logger.Error("Failed to compute evaluation delta",
			"error", err,
			"user_id", rec.UserID,
			"target", rec.Target)
		return decimal.Zero, err
	}
	return amount, nil
}

func (s *payrollServiceImpl) EvaluateFormula(expression string, user *entity.User, base *entity.MonthlySalary) (float64, error) {
	if base == nil {
		return 0, payroll.ErrMissingBaseSalary
	}

	result, err := formula.Evaluate(expression, s.buildContext(user, base))
	if err != nil {
		s.logger.Error("Formula evaluation failed",
			"error", err,
			"user_id", user.ID,
			"expression", expression)
		return 0, fmt.Errorf("evaluate formula for user %s: %w", user.ID, err)
	}
	return result, nil
}

func (s *payrollServiceImpl) CheckFormula(expression string) formula.ValidationResult {
	return formula.Validate(expression, FormulaVariables())
}

func (s *payrollServiceImpl) buildContext(user *entity.User, base *entity.MonthlySalary) formula.Context {
	return formula.Context{
		VarBaseSalary:       base.BaseSalary.InexactFloat64(),
		VarInsuranceSalary:  base.InsuranceSalary.InexactFloat64(),
		VarKPITargetBase:    base.KPITargetBase.InexactFloat64(),
		VarReservedBonus:    base.ReservedBonus.InexactFloat64(),
		VarStandardWorkDays: s.standardWorkDays,
		VarProbationRate:    user.ProbationRate,
	}
}
