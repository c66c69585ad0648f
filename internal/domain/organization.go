package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrOrganizationNotFound = errors.New("organization not found")

// Organization is the tenant boundary. Every financial record belongs to
// exactly one organization, and no calculation crosses organizations.
type Organization struct {
	ID              string
	Name            string
	EmergencyFund   decimal.Decimal
	LongTermSavings decimal.Decimal
	LongTermTarget  decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
