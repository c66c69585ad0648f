package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often an income or expense recurs.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyAnnually    Frequency = "annually"
)

var (
	weeksPerMonth = decimal.NewFromFloat(4.33)
	two           = decimal.NewFromInt(2)
	twelve        = decimal.NewFromInt(12)
)

// MonthlyAmount normalises an amount at the given frequency to a monthly
// figure. Weekly amounts use the conventional 4.33 weeks-per-month factor.
func MonthlyAmount(amount decimal.Decimal, freq Frequency) (decimal.Decimal, error) {
	switch freq {
	case FrequencyWeekly:
		return amount.Mul(weeksPerMonth), nil
	case FrequencyFortnightly:
		return amount.Mul(weeksPerMonth).Div(two), nil
	case FrequencyMonthly:
		return amount, nil
	case FrequencyAnnually:
		return amount.Div(twelve), nil
	default:
		return decimal.Zero, ErrInvalidFrequency
	}
}

// Income is a recurring income record for an organization.
type Income struct {
	ID             string
	OrganizationID string
	Name           string
	Amount         decimal.Decimal
	Frequency      Frequency
	// Earned marks employment income, which is subject to the
	// Universal Credit taper; benefit income is not.
	Earned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks income invariants.
func (i *Income) Validate() error {
	if i.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if _, err := MonthlyAmount(i.Amount, i.Frequency); err != nil {
		return err
	}
	return nil
}

// Expense is a recurring expense record for an organization.
type Expense struct {
	ID             string
	OrganizationID string
	Name           string
	Amount         decimal.Decimal
	Frequency      Frequency
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks expense invariants.
func (e *Expense) Validate() error {
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if _, err := MonthlyAmount(e.Amount, e.Frequency); err != nil {
		return err
	}
	return nil
}
