package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

// CreateDebtRequest represents a debt creation request.
type CreateDebtRequest struct {
	Name              string          `json:"name"`
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MinimumPayment    decimal.Decimal `json:"minimum_payment"`
	IsCCJ             bool            `json:"is_ccj"`
	CCJDeadline       *time.Time      `json:"ccj_deadline,omitempty"`
}

// ToUseCaseInput converts the request to use case input.
func (r *CreateDebtRequest) ToUseCaseInput(orgID string) usecase.CreateDebtInput {
	return usecase.CreateDebtInput{
		OrganizationID:    orgID,
		Name:              r.Name,
		Balance:           r.Balance,
		AnnualRatePercent: r.AnnualRatePercent,
		MinimumPayment:    r.MinimumPayment,
		IsCCJ:             r.IsCCJ,
		CCJDeadline:       r.CCJDeadline,
	}
}

// UpdateDebtRequest represents a partial debt update. Absent fields are left
// unchanged.
type UpdateDebtRequest struct {
	Name              *string          `json:"name,omitempty"`
	Balance           *decimal.Decimal `json:"balance,omitempty"`
	AnnualRatePercent *decimal.Decimal `json:"annual_rate_percent,omitempty"`
	MinimumPayment    *decimal.Decimal `json:"minimum_payment,omitempty"`
}

// ToUseCaseInput converts the request to use case input.
func (r *UpdateDebtRequest) ToUseCaseInput(orgID, id string) usecase.UpdateDebtInput {
	return usecase.UpdateDebtInput{
		OrganizationID:    orgID,
		ID:                id,
		Name:              r.Name,
		Balance:           r.Balance,
		AnnualRatePercent: r.AnnualRatePercent,
		MinimumPayment:    r.MinimumPayment,
	}
}

// CreateIncomeRequest represents an income creation request.
type CreateIncomeRequest struct {
	Name      string           `json:"name"`
	Amount    decimal.Decimal  `json:"amount"`
	Frequency domain.Frequency `json:"frequency"`
	Earned    bool             `json:"earned"`
}

// ToUseCaseInput converts the request to use case input.
func (r *CreateIncomeRequest) ToUseCaseInput(orgID string) usecase.CreateIncomeInput {
	return usecase.CreateIncomeInput{
		OrganizationID: orgID,
		Name:           r.Name,
		Amount:         r.Amount,
		Frequency:      r.Frequency,
		Earned:         r.Earned,
	}
}

// CreateExpenseRequest represents an expense creation request.
type CreateExpenseRequest struct {
	Name      string           `json:"name"`
	Amount    decimal.Decimal  `json:"amount"`
	Frequency domain.Frequency `json:"frequency"`
}

// ToUseCaseInput converts the request to use case input.
func (r *CreateExpenseRequest) ToUseCaseInput(orgID string) usecase.CreateExpenseInput {
	return usecase.CreateExpenseInput{
		OrganizationID: orgID,
		Name:           r.Name,
		Amount:         r.Amount,
		Frequency:      r.Frequency,
	}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	OrganizationName string `json:"organization_name"`
}

// ToUseCaseInput converts the request to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:            r.Email,
		Password:         r.Password,
		OrganizationName: r.OrganizationName,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts the request to use case input.
func (r *LoginRequest) ToUseCaseInput() usecase.LoginInput {
	return usecase.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// UpdateSavingsRequest represents a partial savings update for the stage
// tracker. Absent fields are left unchanged.
type UpdateSavingsRequest struct {
	EmergencyFund   *decimal.Decimal `json:"emergency_fund,omitempty"`
	LongTermSavings *decimal.Decimal `json:"long_term_savings,omitempty"`
	LongTermTarget  *decimal.Decimal `json:"long_term_target,omitempty"`
}

// ToUseCaseInput converts the request to use case input.
func (r *UpdateSavingsRequest) ToUseCaseInput(orgID string) usecase.UpdateSavingsInput {
	return usecase.UpdateSavingsInput{
		OrganizationID:  orgID,
		EmergencyFund:   r.EmergencyFund,
		LongTermSavings: r.LongTermSavings,
		LongTermTarget:  r.LongTermTarget,
	}
}
