package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

const (
	DebtStatusActive DebtStatus = "active"
	DebtStatusPaid   DebtStatus = "paid"
)

// Debt represents a single debt owed by an organization's household.
type Debt struct {
	ID                string
	OrganizationID    string
	Name              string
	Balance           decimal.Decimal
	AnnualRatePercent decimal.Decimal
	MinimumPayment    decimal.Decimal
	IsCCJ             bool
	CCJDeadline       *time.Time
	Status            DebtStatus
	SnowballPosition  int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the construction-time invariants. The snowball engine does
// not re-validate these; callers must only hand it debts that passed here.
func (d *Debt) Validate() error {
	if d.Balance.IsNegative() {
		return ErrNegativeBalance
	}
	if d.MinimumPayment.IsNegative() {
		return ErrNegativeMinimumPayment
	}
	if d.IsCCJ && d.CCJDeadline == nil {
		return ErrCCJDeadlineRequired
	}
	if !d.IsCCJ && d.CCJDeadline != nil {
		return ErrCCJDeadlineNotAllowed
	}
	return nil
}

// IsActive reports whether the debt still carries a balance to be paid.
func (d *Debt) IsActive() bool {
	return d.Status == DebtStatusActive
}
