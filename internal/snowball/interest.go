package snowball

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/calendar"
)

// DefaultMaxProjectionMonths bounds every balance projection. A debt set that
// has not cleared within 50 years is treated as never clearing.
const DefaultMaxProjectionMonths = 600

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// MonthlyInterest returns one month's interest charge on a balance at the
// given annual percentage rate, rounded to 2 decimal places half-up.
// Non-positive balances or rates charge nothing.
func MonthlyInterest(balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) || annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Mul(annualRatePercent).Div(hundred).Div(monthsInYear).Round(2)
}

// DailyInterest returns one day's interest charge on a balance, dividing the
// annual rate by the actual day count of date's year (365 or 366). Used where
// exact-date interest is required; the standard monthly projection uses
// MonthlyInterest.
func DailyInterest(balance, annualRatePercent decimal.Decimal, date time.Time) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) || annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	days := decimal.NewFromInt(int64(calendar.DaysInYear(date.Year())))
	return balance.Mul(annualRatePercent).Div(hundred).Div(days).Round(2)
}

// ForecastBalance projects a single balance forward the given number of
// months under a fixed payment, compounding monthly interest. The result
// never goes below zero.
func ForecastBalance(balance, annualRatePercent, payment decimal.Decimal, months int) decimal.Decimal {
	for i := 0; i < months && balance.IsPositive(); i++ {
		balance = balance.Add(MonthlyInterest(balance, annualRatePercent)).Sub(payment)
	}
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// MonthsToClear returns how many months a single balance takes to reach zero
// under a fixed monthly payment. The second return is false when the payment
// never clears the balance within DefaultMaxProjectionMonths (interest
// outruns the payment, or the payment is not positive).
func MonthsToClear(balance, annualRatePercent, payment decimal.Decimal) (int, bool) {
	if balance.LessThanOrEqual(decimal.Zero) {
		return 0, true
	}
	if payment.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}
	for month := 1; month <= DefaultMaxProjectionMonths; month++ {
		balance = balance.Add(MonthlyInterest(balance, annualRatePercent)).Sub(payment)
		if balance.LessThanOrEqual(decimal.Zero) {
			return month, true
		}
	}
	return 0, false
}
