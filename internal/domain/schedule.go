package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentScheduleEntry is one debt's allocation for a single month.
type PaymentScheduleEntry struct {
	DebtID           string
	DebtName         string
	SnowballPosition int
	MinimumPayment   decimal.Decimal
	MonthlyPayment   decimal.Decimal
}

// PaymentSchedule is the full allocation of one month's disposable income
// across an ordered debt set.
type PaymentSchedule struct {
	Entries []PaymentScheduleEntry
	// TotalMonthlyPayment equals the disposable income when funds cover all
	// minimums. When they do not, it equals the sum of minimums instead and
	// therefore exceeds the supplied income: the household is underfunded.
	TotalMonthlyPayment decimal.Decimal
}

// Underfunded reports whether the schedule's total exceeds the given
// disposable income.
func (s *PaymentSchedule) Underfunded(disposable decimal.Decimal) bool {
	return s.TotalMonthlyPayment.GreaterThan(disposable)
}

// MonthlyProjectionEntry is one debt's state for one simulated month.
type MonthlyProjectionEntry struct {
	DebtID          string
	Month           time.Time
	StartingBalance decimal.Decimal
	InterestCharged decimal.Decimal
	PaymentApplied  decimal.Decimal
	EndingBalance   decimal.Decimal
	IsPaidOff       bool
}

// Projection is the outcome of a debt-free-date simulation. DebtFreeDate and
// MonthsToDebtFree are nil when the projection is infeasible: either the
// monthly payment does not cover the minimums or the simulation failed to
// converge within the safety cap. Infeasibility is a result, not an error.
type Projection struct {
	DebtFreeDate     *time.Time
	MonthsToDebtFree *int
	Schedule         [][]MonthlyProjectionEntry
}

// Feasible reports whether the projection reached a debt-free date.
func (p *Projection) Feasible() bool {
	return p.DebtFreeDate != nil
}
