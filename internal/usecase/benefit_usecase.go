package usecase

import "github.com/shopspring/decimal"

// Universal Credit taper parameters. The award is reduced by the taper rate
// for every pound of earned income above the work allowance.
var (
	defaultTaperRatePercent = decimal.NewFromInt(55)
	defaultWorkAllowance    = decimal.NewFromInt(411)
	percentageDivisor       = decimal.NewFromInt(100)
)

// BenefitUseCase computes the Universal Credit taper deduction. The snowball
// engine never sees the formula; it only receives the resulting deduction
// folded into disposable income.
type BenefitUseCase struct {
	taperRatePercent decimal.Decimal
	workAllowance    decimal.Decimal
}

// NewBenefitUseCase creates a BenefitUseCase with the standard taper
// parameters.
func NewBenefitUseCase() *BenefitUseCase {
	return &BenefitUseCase{
		taperRatePercent: defaultTaperRatePercent,
		workAllowance:    defaultWorkAllowance,
	}
}

// MonthlyDeduction returns how much of a monthly benefit award is withdrawn
// given monthly earned income. The deduction is linear above the work
// allowance and never exceeds the award itself.
func (uc *BenefitUseCase) MonthlyDeduction(earnedMonthly, award decimal.Decimal) decimal.Decimal {
	if award.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	excess := earnedMonthly.Sub(uc.workAllowance)
	if excess.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	deduction := excess.Mul(uc.taperRatePercent).Div(percentageDivisor).Round(2)
	if deduction.GreaterThan(award) {
		return award
	}
	return deduction
}
