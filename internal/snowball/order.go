// Package snowball implements the debt snowball engine: the ordering policy,
// the monthly payment allocation, and the month-by-month debt-free-date
// projection. Every function here is pure and deterministic; identical inputs
// always produce identical outputs, so results are safe to memoize.
package snowball

import (
	"sort"

	"github.com/debtwise/debtwise/internal/domain"
)

// Order sorts a debt set into snowball priority and assigns contiguous
// 1-based snowball positions to the returned copy. The input slice is not
// modified.
//
// Priority is two-tier: CCJ debts come before everything else because they
// carry a court deadline, ordered by earliest deadline first. Non-CCJ debts
// follow, smallest balance first. The sort is stable, so debts with equal
// keys keep their relative input order, and re-ordering an already ordered
// list is a no-op.
func Order(debts []domain.Debt) []domain.Debt {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := &ordered[i], &ordered[j]
		if a.IsCCJ != b.IsCCJ {
			return a.IsCCJ
		}
		if a.IsCCJ {
			return a.CCJDeadline.Before(*b.CCJDeadline)
		}
		return a.Balance.LessThan(b.Balance)
	})

	for i := range ordered {
		ordered[i].SnowballPosition = i + 1
	}

	return ordered
}
