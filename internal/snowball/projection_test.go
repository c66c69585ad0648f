package snowball_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/snowball"
)

var projectionStart = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

func withRate(rate float64) func(*domain.Debt) {
	return func(d *domain.Debt) {
		d.AnnualRatePercent = decimal.NewFromFloat(rate)
	}
}

func TestProjectDebtFreeDate_EmptyIsDebtFreeToday(t *testing.T) {
	p := snowball.ProjectDebtFreeDate(nil, decimal.NewFromInt(500), projectionStart)

	require.True(t, p.Feasible())
	assert.Equal(t, projectionStart, *p.DebtFreeDate)
	assert.Equal(t, 0, *p.MonthsToDebtFree)
	assert.Empty(t, p.Schedule)
}

func TestProjectDebtFreeDate_PaymentBelowMinimumsIsInfeasible(t *testing.T) {
	ordered := snowball.Order([]domain.Debt{
		debt("a", 500, withMinimum(100)),
		debt("b", 900, withMinimum(150)),
	})

	p := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(200), projectionStart)

	assert.False(t, p.Feasible())
	assert.Nil(t, p.DebtFreeDate)
	assert.Nil(t, p.MonthsToDebtFree)
}

func TestProjectDebtFreeDate_SingleZeroInterestDebt(t *testing.T) {
	// 500 at 0% with 100/month clears in exactly ceil(500/100) = 5 months.
	ordered := snowball.Order([]domain.Debt{
		debt("only", 500, withMinimum(50)),
	})

	p := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(100), projectionStart)

	require.True(t, p.Feasible())
	assert.Equal(t, 5, *p.MonthsToDebtFree)
	assert.Len(t, p.Schedule, 5)
	assert.Equal(t, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), *p.DebtFreeDate)

	final := p.Schedule[4][0]
	assert.True(t, final.IsPaidOff)
	assert.True(t, final.EndingBalance.IsZero())
	// Final payment capped at the remaining 100, exactly.
	assert.True(t, final.PaymentApplied.Equal(decimal.NewFromInt(100)))
}

func TestProjectDebtFreeDate_FinalPaymentCappedAtBalance(t *testing.T) {
	// 130 at 0% with 100/month: month 2 pays only the remaining 30.
	ordered := snowball.Order([]domain.Debt{
		debt("only", 130, withMinimum(50)),
	})

	p := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(100), projectionStart)

	require.True(t, p.Feasible())
	require.Equal(t, 2, *p.MonthsToDebtFree)
	last := p.Schedule[1][0]
	assert.True(t, last.PaymentApplied.Equal(decimal.NewFromInt(30)), "got %s", last.PaymentApplied)
	assert.True(t, last.EndingBalance.IsZero())
}

func TestProjectDebtFreeDate_RolloverShiftsToNextDebt(t *testing.T) {
	// Focused debt clears in month 2; from month 3 its 50 minimum plus the
	// standing surplus roll onto the second debt permanently.
	ordered := snowball.Order([]domain.Debt{
		debt("small", 150, withMinimum(50)),
		debt("large", 600, withMinimum(50)),
	})

	p := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(150), projectionStart)

	require.True(t, p.Feasible())

	// Month 1: focused pays 100 (min 50 + surplus 50), other pays its 50.
	m1 := p.Schedule[0]
	assert.True(t, m1[0].PaymentApplied.Equal(decimal.NewFromInt(100)))
	assert.True(t, m1[1].PaymentApplied.Equal(decimal.NewFromInt(50)))

	// Month 2: focused owes only 50, payment capped there; the freed-up 50
	// does not cascade within the month.
	m2 := p.Schedule[1]
	assert.True(t, m2[0].PaymentApplied.Equal(decimal.NewFromInt(50)))
	assert.True(t, m2[0].IsPaidOff)
	assert.True(t, m2[1].PaymentApplied.Equal(decimal.NewFromInt(50)))

	// Month 3 onward: the second debt receives the full 150.
	m3 := p.Schedule[2]
	assert.True(t, m3[0].IsPaidOff)
	assert.True(t, m3[0].PaymentApplied.IsZero())
	assert.True(t, m3[1].PaymentApplied.Equal(decimal.NewFromInt(150)))

	// small: 150 -> 50 -> 0 (2 months); large: 600 - 2*50 = 500, then
	// 500/150 -> 4 more months, plus the rounding-free tail. Total 6.
	assert.Equal(t, 6, *p.MonthsToDebtFree)
	for _, e := range p.Schedule[5] {
		assert.True(t, e.IsPaidOff)
	}
}

func TestProjectDebtFreeDate_BalancesNeverNegative(t *testing.T) {
	ordered := snowball.Order([]domain.Debt{
		debt("a", 333.33, withMinimum(25), withRate(19.9)),
		debt("b", 1210.01, withMinimum(40), withRate(9.5)),
		debt("c", 87.50, withMinimum(10), withRate(29.9)),
	})

	p := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(200), projectionStart)

	require.True(t, p.Feasible())
	for _, month := range p.Schedule {
		for _, e := range month {
			assert.False(t, e.EndingBalance.IsNegative(),
				"debt %s went negative in %s", e.DebtID, e.Month)
		}
	}
	for _, e := range p.Schedule[len(p.Schedule)-1] {
		assert.True(t, e.IsPaidOff)
	}
}

func TestProjectDebtFreeDate_InterestAccrual(t *testing.T) {
	// 1000 at 12% accrues 10.00 the first month; payment 110 leaves 900.
	ordered := snowball.Order([]domain.Debt{
		debt("card", 1000, withMinimum(30), withRate(12)),
	})

	p := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(110), projectionStart)

	require.True(t, p.Feasible())
	first := p.Schedule[0][0]
	assert.True(t, first.InterestCharged.Equal(decimal.NewFromInt(10)), "got %s", first.InterestCharged)
	assert.True(t, first.EndingBalance.Equal(decimal.NewFromInt(900)), "got %s", first.EndingBalance)
}

func TestProjectDebtFreeDate_NeverConvergesHitsCap(t *testing.T) {
	// Minimum covers the payment check but interest outruns it forever:
	// 10000 at 60% accrues 500/month against a 500 payment.
	ordered := snowball.Order([]domain.Debt{
		debt("trap", 10000, withMinimum(500), withRate(60)),
	})

	p := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(500), projectionStart)

	assert.False(t, p.Feasible())
	assert.Nil(t, p.MonthsToDebtFree)
}

func TestProjectDebtFreeDate_Deterministic(t *testing.T) {
	ordered := snowball.Order([]domain.Debt{
		debt("a", 750.25, withMinimum(35), withRate(22.9)),
		debt("b", 2100, withMinimum(65), withRate(6.9)),
	})

	p1 := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(300), projectionStart)
	p2 := snowball.ProjectDebtFreeDate(ordered, decimal.NewFromInt(300), projectionStart)

	assert.Equal(t, p1, p2)
}
