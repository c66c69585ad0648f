package usecase

import (
	"context"
	"time"

	"github.com/debtwise/debtwise/internal/domain"
)

// DebtRepository defines data access for debts.
type DebtRepository interface {
	Create(ctx context.Context, debt *domain.Debt) error
	GetByID(ctx context.Context, orgID, id string) (*domain.Debt, error)
	ListActive(ctx context.Context, orgID string) ([]domain.Debt, error)
	List(ctx context.Context, orgID string, limit, offset int) ([]domain.Debt, error)
	Update(ctx context.Context, debt *domain.Debt) error
	UpdatePositionTx(ctx context.Context, tx Transaction, orgID, id string, position int, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, orgID, id string, status domain.DebtStatus, updatedAt time.Time) error
	Delete(ctx context.Context, orgID, id string) error
}

// IncomeRepository defines data access for income records.
type IncomeRepository interface {
	Create(ctx context.Context, income *domain.Income) error
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Income, error)
	Delete(ctx context.Context, orgID, id string) error
}

// ExpenseRepository defines data access for expense records.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Expense, error)
	Delete(ctx context.Context, orgID, id string) error
}

// OrganizationRepository defines data access for organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	UpdateSavings(ctx context.Context, org *domain.Organization) error
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations for memoized calculations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TokenIssuer issues auth tokens for users.
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}
