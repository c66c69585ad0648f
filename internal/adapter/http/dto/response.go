package dto

import (
	"time"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Monetary values cross the API boundary as strings with exactly two decimal
// places, so clients never see float artefacts.

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Balance           string     `json:"balance"`
	AnnualRatePercent string     `json:"annual_rate_percent"`
	MinimumPayment    string     `json:"minimum_payment"`
	IsCCJ             bool       `json:"is_ccj"`
	CCJDeadline       *time.Time `json:"ccj_deadline,omitempty"`
	Status            string     `json:"status"`
	SnowballPosition  int        `json:"snowball_position"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// DebtFromDomain converts a domain debt to a response.
func DebtFromDomain(d *domain.Debt) *DebtResponse {
	return &DebtResponse{
		ID:                d.ID,
		Name:              d.Name,
		Balance:           d.Balance.StringFixed(2),
		AnnualRatePercent: d.AnnualRatePercent.StringFixed(2),
		MinimumPayment:    d.MinimumPayment.StringFixed(2),
		IsCCJ:             d.IsCCJ,
		CCJDeadline:       d.CCJDeadline,
		Status:            string(d.Status),
		SnowballPosition:  d.SnowballPosition,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// DebtsFromDomain converts domain debts to responses.
func DebtsFromDomain(debts []domain.Debt) []*DebtResponse {
	result := make([]*DebtResponse, len(debts))
	for i := range debts {
		result[i] = DebtFromDomain(&debts[i])
	}
	return result
}

// ListDebtsResponse wraps a debt listing.
type ListDebtsResponse struct {
	Debts []*DebtResponse `json:"debts"`
	Total int64           `json:"total"`
}

// PayoffEstimateResponse reports how long a single debt takes to clear at
// its minimum payment.
type PayoffEstimateResponse struct {
	DebtID   string `json:"debt_id"`
	Months   int    `json:"months"`
	Feasible bool   `json:"feasible"`
}

// IncomeResponse represents an income record in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	Frequency string    `json:"frequency"`
	Earned    bool      `json:"earned"`
	CreatedAt time.Time `json:"created_at"`
}

// IncomeFromDomain converts a domain income to a response.
func IncomeFromDomain(in *domain.Income) *IncomeResponse {
	return &IncomeResponse{
		ID:        in.ID,
		Name:      in.Name,
		Amount:    in.Amount.StringFixed(2),
		Frequency: string(in.Frequency),
		Earned:    in.Earned,
		CreatedAt: in.CreatedAt,
	}
}

// IncomesFromDomain converts domain incomes to responses.
func IncomesFromDomain(incomes []domain.Income) []*IncomeResponse {
	result := make([]*IncomeResponse, len(incomes))
	for i := range incomes {
		result[i] = IncomeFromDomain(&incomes[i])
	}
	return result
}

// ExpenseResponse represents an expense record in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	Frequency string    `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:        e.ID,
		Name:      e.Name,
		Amount:    e.Amount.StringFixed(2),
		Frequency: string(e.Frequency),
		CreatedAt: e.CreatedAt,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i := range expenses {
		result[i] = ExpenseFromDomain(&expenses[i])
	}
	return result
}

// DisposableIncomeResponse breaks down the monthly surplus.
type DisposableIncomeResponse struct {
	TotalIncome    string `json:"total_income"`
	TotalExpenses  string `json:"total_expenses"`
	TaperDeduction string `json:"taper_deduction"`
	Disposable     string `json:"disposable"`
}

// DisposableIncomeFromUseCase converts the use case breakdown to a response.
func DisposableIncomeFromUseCase(d *usecase.DisposableIncome) *DisposableIncomeResponse {
	return &DisposableIncomeResponse{
		TotalIncome:    d.TotalIncome.StringFixed(2),
		TotalExpenses:  d.TotalExpenses.StringFixed(2),
		TaperDeduction: d.TaperDeduction.StringFixed(2),
		Disposable:     d.Disposable.StringFixed(2),
	}
}

// ScheduleEntryResponse is one debt's allocation in a payment schedule.
type ScheduleEntryResponse struct {
	DebtID           string `json:"debt_id"`
	DebtName         string `json:"debt_name"`
	SnowballPosition int    `json:"snowball_position"`
	MinimumPayment   string `json:"minimum_payment"`
	MonthlyPayment   string `json:"monthly_payment"`
}

// PaymentScheduleResponse is the current month's allocation across debts.
type PaymentScheduleResponse struct {
	Entries             []ScheduleEntryResponse   `json:"entries"`
	TotalMonthlyPayment string                    `json:"total_monthly_payment"`
	Underfunded         bool                      `json:"underfunded"`
	Income              *DisposableIncomeResponse `json:"income"`
}

// PaymentScheduleFromDomain converts a schedule and its income breakdown to
// a response.
func PaymentScheduleFromDomain(s *domain.PaymentSchedule, income *usecase.DisposableIncome) *PaymentScheduleResponse {
	entries := make([]ScheduleEntryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = ScheduleEntryResponse{
			DebtID:           e.DebtID,
			DebtName:         e.DebtName,
			SnowballPosition: e.SnowballPosition,
			MinimumPayment:   e.MinimumPayment.StringFixed(2),
			MonthlyPayment:   e.MonthlyPayment.StringFixed(2),
		}
	}

	return &PaymentScheduleResponse{
		Entries:             entries,
		TotalMonthlyPayment: s.TotalMonthlyPayment.StringFixed(2),
		Underfunded:         s.Underfunded(income.Disposable),
		Income:              DisposableIncomeFromUseCase(income),
	}
}

// ProjectionEntryResponse is one debt's state for one simulated month.
type ProjectionEntryResponse struct {
	DebtID          string `json:"debt_id"`
	Month           string `json:"month"`
	StartingBalance string `json:"starting_balance"`
	InterestCharged string `json:"interest_charged"`
	PaymentApplied  string `json:"payment_applied"`
	EndingBalance   string `json:"ending_balance"`
	PaidOff         bool   `json:"paid_off"`
}

// ProjectionResponse is the debt-free-date simulation outcome. Date and
// month fields are null when the plan cannot converge.
type ProjectionResponse struct {
	Feasible         bool                        `json:"feasible"`
	DebtFreeDate     *string                     `json:"debt_free_date"`
	MonthsToDebtFree *int                        `json:"months_to_debt_free"`
	Schedule         [][]ProjectionEntryResponse `json:"schedule"`
}

const dateLayout = "2006-01-02"

// ProjectionFromDomain converts a domain projection to a response.
func ProjectionFromDomain(p *domain.Projection) *ProjectionResponse {
	resp := &ProjectionResponse{
		Feasible: p.Feasible(),
		Schedule: make([][]ProjectionEntryResponse, len(p.Schedule)),
	}
	if p.DebtFreeDate != nil {
		date := p.DebtFreeDate.Format(dateLayout)
		resp.DebtFreeDate = &date
	}
	if p.MonthsToDebtFree != nil {
		months := *p.MonthsToDebtFree
		resp.MonthsToDebtFree = &months
	}

	for i, month := range p.Schedule {
		entries := make([]ProjectionEntryResponse, len(month))
		for j, e := range month {
			entries[j] = ProjectionEntryResponse{
				DebtID:          e.DebtID,
				Month:           e.Month.Format(dateLayout),
				StartingBalance: e.StartingBalance.StringFixed(2),
				InterestCharged: e.InterestCharged.StringFixed(2),
				PaymentApplied:  e.PaymentApplied.StringFixed(2),
				EndingBalance:   e.EndingBalance.StringFixed(2),
				PaidOff:         e.IsPaidOff,
			}
		}
		resp.Schedule[i] = entries
	}

	return resp
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		Role:           string(u.Role),
		CreatedAt:      u.CreatedAt,
	}
}

// AuthResponse carries a signed token alongside the authenticated user.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// OrganizationResponse represents an organization's savings figures.
type OrganizationResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EmergencyFund   string `json:"emergency_fund"`
	LongTermSavings string `json:"long_term_savings"`
	LongTermTarget  string `json:"long_term_target"`
}

// OrganizationFromDomain converts a domain organization to a response.
func OrganizationFromDomain(o *domain.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:              o.ID,
		Name:            o.Name,
		EmergencyFund:   o.EmergencyFund.StringFixed(2),
		LongTermSavings: o.LongTermSavings.StringFixed(2),
		LongTermTarget:  o.LongTermTarget.StringFixed(2),
	}
}

// StageResponse reports the tracker outcome with the snapshot it was
// derived from.
type StageResponse struct {
	StageNumber int            `json:"stage_number"`
	StageName   string         `json:"stage_name"`
	Snapshot    *StageSnapshot `json:"snapshot"`
}

// StageSnapshot is the financial snapshot behind a tracker evaluation.
type StageSnapshot struct {
	EmergencyFund   string `json:"emergency_fund"`
	MonthlyExpenses string `json:"monthly_expenses"`
	MonthlySurplus  string `json:"monthly_surplus"`
	ActiveCCJDebts  int    `json:"active_ccj_debts"`
	ActiveDebts     int    `json:"active_debts"`
	LongTermSavings string `json:"long_term_savings"`
	LongTermTarget  string `json:"long_term_target"`
}

// StageFromUseCase converts a stage evaluation to a response.
func StageFromUseCase(r *usecase.StageResult) *StageResponse {
	return &StageResponse{
		StageNumber: r.Stage.Number,
		StageName:   r.Stage.Name,
		Snapshot: &StageSnapshot{
			EmergencyFund:   r.Input.EmergencyFund.StringFixed(2),
			MonthlyExpenses: r.Input.MonthlyExpenses.StringFixed(2),
			MonthlySurplus:  r.Input.MonthlySurplus.StringFixed(2),
			ActiveCCJDebts:  r.Input.ActiveCCJDebts,
			ActiveDebts:     r.Input.ActiveDebts,
			LongTermSavings: r.Input.LongTermSavings.StringFixed(2),
			LongTermTarget:  r.Input.LongTermTarget.StringFixed(2),
		},
	}
}

// StageListEntry is one stage definition.
type StageListEntry struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// StagesFromDomain converts the stage definitions to responses.
func StagesFromDomain(stages []domain.Stage) []StageListEntry {
	result := make([]StageListEntry, len(stages))
	for i, s := range stages {
		result[i] = StageListEntry{Number: s.Number, Name: s.Name}
	}
	return result
}
