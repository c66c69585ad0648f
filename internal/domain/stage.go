package domain

import "github.com/shopspring/decimal"

// Stage is one step of the seven-stage financial progress tracker.
type Stage struct {
	Number int
	Name   string
}

var stages = []Stage{
	{1, "Save a starter emergency fund"},
	{2, "Clear your priority (CCJ) debts"},
	{3, "Pay off all remaining debts"},
	{4, "Build a full emergency fund"},
	{5, "Grow a regular monthly surplus"},
	{6, "Save for long-term goals"},
	{7, "Financial freedom"},
}

// Stages returns all seven stages in order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// Starter fund and full fund thresholds, in whole currency units.
var (
	starterFundTarget = decimal.NewFromInt(1000)
	fullFundMonths    = decimal.NewFromInt(3)
)

// StageInput is the financial snapshot the tracker evaluates.
type StageInput struct {
	EmergencyFund   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	MonthlySurplus  decimal.Decimal
	ActiveCCJDebts  int
	ActiveDebts     int // total active, including CCJ
	LongTermSavings decimal.Decimal
	LongTermTarget  decimal.Decimal
}

// CurrentStage evaluates the tracker. The stages are strictly sequential: a
// household is at the first stage whose condition it has not yet met.
func CurrentStage(in StageInput) Stage {
	switch {
	case in.EmergencyFund.LessThan(starterFundTarget):
		return stages[0]
	case in.ActiveCCJDebts > 0:
		return stages[1]
	case in.ActiveDebts > 0:
		return stages[2]
	case in.EmergencyFund.LessThan(in.MonthlyExpenses.Mul(fullFundMonths)):
		return stages[3]
	case in.MonthlySurplus.LessThanOrEqual(decimal.Zero):
		return stages[4]
	case in.LongTermTarget.IsPositive() && in.LongTermSavings.LessThan(in.LongTermTarget):
		return stages[5]
	default:
		return stages[6]
	}
}
