package snowball

import (
	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
)

// MonthlyPayments allocates one month's disposable income across an ordered
// debt set. Every debt receives its minimum payment; the focused debt at
// position 1 additionally receives whatever is left over.
//
// When disposable income does not cover the minimums, every debt still
// receives its full minimum and the returned total exceeds the supplied
// income. That is deliberate: the oversized total signals an underfunded
// household to the caller rather than silently shrinking payments.
func MonthlyPayments(ordered []domain.Debt, disposable decimal.Decimal) domain.PaymentSchedule {
	if len(ordered) == 0 {
		return domain.PaymentSchedule{TotalMonthlyPayment: decimal.Zero}
	}

	totalMinimums := decimal.Zero
	for i := range ordered {
		totalMinimums = totalMinimums.Add(ordered[i].MinimumPayment)
	}

	entries := make([]domain.PaymentScheduleEntry, len(ordered))
	for i := range ordered {
		d := &ordered[i]
		entries[i] = domain.PaymentScheduleEntry{
			DebtID:           d.ID,
			DebtName:         d.Name,
			SnowballPosition: d.SnowballPosition,
			MinimumPayment:   d.MinimumPayment,
			MonthlyPayment:   d.MinimumPayment,
		}
	}

	total := totalMinimums
	if disposable.GreaterThanOrEqual(totalMinimums) {
		surplus := disposable.Sub(totalMinimums)
		entries[0].MonthlyPayment = entries[0].MonthlyPayment.Add(surplus)
		total = disposable
	}

	return domain.PaymentSchedule{
		Entries:             entries,
		TotalMonthlyPayment: total,
	}
}

// Rollover folds a cleared debt's freed-up payment capacity into the next
// debt's allocation. It is an exact sum, commutative by construction.
func Rollover(currentPayment, nextMinimum decimal.Decimal) decimal.Decimal {
	return currentPayment.Add(nextMinimum)
}
