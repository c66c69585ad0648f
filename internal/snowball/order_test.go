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

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func debt(id string, balance float64, opts ...func(*domain.Debt)) domain.Debt {
	d := domain.Debt{
		ID:             id,
		Name:           id,
		Balance:        decimal.NewFromFloat(balance),
		MinimumPayment: decimal.NewFromInt(50),
		Status:         domain.DebtStatusActive,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func withCCJ(deadline string) func(*domain.Debt) {
	return func(d *domain.Debt) {
		d.IsCCJ = true
		d.CCJDeadline = date(deadline)
	}
}

func TestOrder_SmallestBalanceFirst(t *testing.T) {
	debts := []domain.Debt{
		debt("big", 5000),
		debt("small", 200),
		debt("mid", 1200),
	}

	ordered := snowball.Order(debts)

	require.Len(t, ordered, 3)
	assert.Equal(t, "small", ordered[0].ID)
	assert.Equal(t, "mid", ordered[1].ID)
	assert.Equal(t, "big", ordered[2].ID)
	for i, d := range ordered {
		assert.Equal(t, i+1, d.SnowballPosition)
	}
}

func TestOrder_CCJBeforeNonCCJ(t *testing.T) {
	// The CCJ debt is far larger but still comes first.
	debts := []domain.Debt{
		debt("personal", 500),
		debt("ccj", 2000, withCCJ("2026-06-01")),
	}

	ordered := snowball.Order(debts)

	require.Len(t, ordered, 2)
	assert.Equal(t, "ccj", ordered[0].ID)
	assert.Equal(t, 1, ordered[0].SnowballPosition)
	assert.Equal(t, "personal", ordered[1].ID)
}

func TestOrder_CCJByEarliestDeadline(t *testing.T) {
	debts := []domain.Debt{
		debt("late", 100, withCCJ("2027-01-15")),
		debt("early", 9000, withCCJ("2026-03-01")),
		debt("mid", 300, withCCJ("2026-09-30")),
	}

	ordered := snowball.Order(debts)

	assert.Equal(t, []string{"early", "mid", "late"},
		[]string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

func TestOrder_StableOnTies(t *testing.T) {
	debts := []domain.Debt{
		debt("first", 1000),
		debt("second", 1000),
		debt("third", 1000),
	}

	ordered := snowball.Order(debts)

	assert.Equal(t, []string{"first", "second", "third"},
		[]string{ordered[0].ID, ordered[1].ID, ordered[2].ID})

	sameDeadline := []domain.Debt{
		debt("a", 700, withCCJ("2026-06-01")),
		debt("b", 100, withCCJ("2026-06-01")),
	}
	ordered = snowball.Order(sameDeadline)
	assert.Equal(t, "a", ordered[0].ID)
	assert.Equal(t, "b", ordered[1].ID)
}

func TestOrder_Idempotent(t *testing.T) {
	debts := []domain.Debt{
		debt("c", 300, withCCJ("2026-01-01")),
		debt("a", 100),
		debt("b", 900),
	}

	once := snowball.Order(debts)
	twice := snowball.Order(once)

	assert.Equal(t, once, twice)
}

func TestOrder_Permutation(t *testing.T) {
	debts := []domain.Debt{
		debt("a", 900),
		debt("b", 100, withCCJ("2026-06-01")),
		debt("c", 450),
		debt("d", 450),
	}

	ordered := snowball.Order(debts)

	require.Len(t, ordered, len(debts))
	seen := map[string]bool{}
	for _, d := range ordered {
		seen[d.ID] = true
	}
	for _, d := range debts {
		assert.True(t, seen[d.ID], "debt %s missing from output", d.ID)
	}
	// Input slice untouched.
	assert.Zero(t, debts[0].SnowballPosition)
}

func TestOrder_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, snowball.Order(nil))

	ordered := snowball.Order([]domain.Debt{debt("only", 42)})
	require.Len(t, ordered, 1)
	assert.Equal(t, 1, ordered[0].SnowballPosition)
}
