package snowball

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/calendar"
	"github.com/debtwise/debtwise/internal/domain"
)

// ProjectDebtFreeDate simulates paying down an ordered debt set month by
// month from today and reports when the household becomes debt free.
//
// monthlyPayment is the household's total payment capacity for all debts
// combined. Each simulated month every active debt accrues interest on its
// starting balance and then receives its minimum payment; the focused debt
// (lowest still-active snowball position from the one up-front ordering, the
// order never changes mid-run) additionally receives all capacity freed up by
// cleared debts. A debt's final payment is capped at its remaining balance
// plus that month's interest, so balances never go negative.
//
// An empty debt set is already debt free today. A payment below the sum of
// minimums can never converge and yields an infeasible projection, as does a
// simulation still running after DefaultMaxProjectionMonths. Infeasibility is
// reported through nil date and month count, never an error.
func ProjectDebtFreeDate(ordered []domain.Debt, monthlyPayment decimal.Decimal, today time.Time) domain.Projection {
	if len(ordered) == 0 {
		months := 0
		return domain.Projection{
			DebtFreeDate:     &today,
			MonthsToDebtFree: &months,
			Schedule:         [][]domain.MonthlyProjectionEntry{},
		}
	}

	totalMinimums := decimal.Zero
	for i := range ordered {
		totalMinimums = totalMinimums.Add(ordered[i].MinimumPayment)
	}
	if monthlyPayment.LessThan(totalMinimums) {
		return domain.Projection{}
	}

	balances := make([]decimal.Decimal, len(ordered))
	for i := range ordered {
		balances[i] = ordered[i].Balance
	}

	schedule := make([][]domain.MonthlyProjectionEntry, 0, 12)

	for month := 1; month <= DefaultMaxProjectionMonths; month++ {
		monthDate := calendar.AddMonths(today, month)

		// Capacity freed by cleared debts plus the standing surplus: the
		// payment pool minus every still-active minimum.
		activeMinimums := decimal.Zero
		focused := -1
		for i := range ordered {
			if balances[i].IsPositive() {
				activeMinimums = activeMinimums.Add(ordered[i].MinimumPayment)
				if focused < 0 {
					focused = i
				}
			}
		}
		rollover := monthlyPayment.Sub(activeMinimums)

		entries := make([]domain.MonthlyProjectionEntry, len(ordered))
		for i := range ordered {
			starting := balances[i]
			entry := domain.MonthlyProjectionEntry{
				DebtID:          ordered[i].ID,
				Month:           monthDate,
				StartingBalance: starting,
				InterestCharged: decimal.Zero,
				PaymentApplied:  decimal.Zero,
				EndingBalance:   starting,
				IsPaidOff:       !starting.IsPositive(),
			}

			if starting.IsPositive() {
				interest := MonthlyInterest(starting, ordered[i].AnnualRatePercent)
				owed := starting.Add(interest)

				payment := ordered[i].MinimumPayment
				if i == focused {
					payment = Rollover(payment, rollover)
				}
				if payment.GreaterThan(owed) {
					payment = owed
				}

				ending := owed.Sub(payment)
				balances[i] = ending

				entry.InterestCharged = interest
				entry.PaymentApplied = payment
				entry.EndingBalance = ending
				entry.IsPaidOff = ending.IsZero()
			}

			entries[i] = entry
		}
		schedule = append(schedule, entries)

		allClear := true
		for i := range balances {
			if balances[i].IsPositive() {
				allClear = false
				break
			}
		}
		if allClear {
			m := month
			return domain.Projection{
				DebtFreeDate:     &monthDate,
				MonthsToDebtFree: &m,
				Schedule:         schedule,
			}
		}
	}

	// Never converged within the cap.
	return domain.Projection{}
}
