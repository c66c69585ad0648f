package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/snowball"
)

// DebtUseCase handles debt record management and snowball position
// assignment. Any mutation invalidates the organization's memoized
// projection.
type DebtUseCase struct {
	debtRepo  DebtRepository
	txManager TransactionManager
	retrier   Retrier
	idGen     IDGenerator
	cache     Cache
}

// NewDebtUseCase creates a new DebtUseCase.
func NewDebtUseCase(debtRepo DebtRepository, txManager TransactionManager, retrier Retrier, idGen IDGenerator, cache Cache) *DebtUseCase {
	return &DebtUseCase{
		debtRepo:  debtRepo,
		txManager: txManager,
		retrier:   retrier,
		idGen:     idGen,
		cache:     cache,
	}
}

// CreateDebtInput represents input for creating a debt.
type CreateDebtInput struct {
	OrganizationID    string
	Name              string
	Balance           decimal.Decimal
	AnnualRatePercent decimal.Decimal
	MinimumPayment    decimal.Decimal
	IsCCJ             bool
	CCJDeadline       *time.Time
}

// CreateDebt validates and persists a new debt, then reassigns snowball
// positions across the organization's active debts.
func (uc *DebtUseCase) CreateDebt(ctx context.Context, input CreateDebtInput) (*domain.Debt, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	debt := &domain.Debt{
		ID:                uc.idGen.Generate(),
		OrganizationID:    input.OrganizationID,
		Name:              input.Name,
		Balance:           input.Balance,
		AnnualRatePercent: input.AnnualRatePercent,
		MinimumPayment:    input.MinimumPayment,
		IsCCJ:             input.IsCCJ,
		CCJDeadline:       input.CCJDeadline,
		Status:            domain.DebtStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := debt.Validate(); err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	if _, err := uc.Reorder(ctx, input.OrganizationID); err != nil {
		return nil, err
	}

	return uc.debtRepo.GetByID(ctx, input.OrganizationID, debt.ID)
}

// GetDebt retrieves a debt by ID within an organization.
func (uc *DebtUseCase) GetDebt(ctx context.Context, orgID, id string) (*domain.Debt, error) {
	return uc.debtRepo.GetByID(ctx, orgID, id)
}

// ListDebts lists an organization's debts with pagination.
func (uc *DebtUseCase) ListDebts(ctx context.Context, orgID string, limit, offset int) ([]domain.Debt, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.debtRepo.List(ctx, orgID, limit, offset)
}

// UpdateDebtInput represents input for updating a debt.
type UpdateDebtInput struct {
	OrganizationID    string
	ID                string
	Name              *string
	Balance           *decimal.Decimal
	AnnualRatePercent *decimal.Decimal
	MinimumPayment    *decimal.Decimal
}

// UpdateDebt applies a partial update and reassigns positions, since a
// balance change can move the debt within the snowball order.
func (uc *DebtUseCase) UpdateDebt(ctx context.Context, input UpdateDebtInput) (*domain.Debt, error) {
	debt, err := uc.debtRepo.GetByID(ctx, input.OrganizationID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		debt.Name = *input.Name
	}
	if input.Balance != nil {
		debt.Balance = *input.Balance
	}
	if input.AnnualRatePercent != nil {
		debt.AnnualRatePercent = *input.AnnualRatePercent
	}
	if input.MinimumPayment != nil {
		debt.MinimumPayment = *input.MinimumPayment
	}

	if err := debt.Validate(); err != nil {
		return nil, err
	}

	debt.UpdatedAt = time.Now().UTC()
	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}

	if _, err := uc.Reorder(ctx, input.OrganizationID); err != nil {
		return nil, err
	}

	return uc.debtRepo.GetByID(ctx, input.OrganizationID, input.ID)
}

// MarkPaid marks a debt as fully paid and reassigns positions among the
// remaining active debts.
func (uc *DebtUseCase) MarkPaid(ctx context.Context, orgID, id string) error {
	debt, err := uc.debtRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if debt.Status == domain.DebtStatusPaid {
		return domain.ErrDebtAlreadyPaid
	}

	if err := uc.debtRepo.UpdateStatus(ctx, orgID, id, domain.DebtStatusPaid, time.Now().UTC()); err != nil {
		return err
	}

	_, err = uc.Reorder(ctx, orgID)
	return err
}

// DeleteDebt removes a debt and reassigns positions.
func (uc *DebtUseCase) DeleteDebt(ctx context.Context, orgID, id string) error {
	if err := uc.debtRepo.Delete(ctx, orgID, id); err != nil {
		return err
	}
	_, err := uc.Reorder(ctx, orgID)
	return err
}

// Reorder applies the snowball ordering policy to the organization's active
// debts and persists the assigned positions atomically. Position updates for
// the whole set commit together or not at all; transient serialization
// failures are retried.
func (uc *DebtUseCase) Reorder(ctx context.Context, orgID string) ([]domain.Debt, error) {
	debts, err := uc.debtRepo.ListActive(ctx, orgID)
	if err != nil {
		return nil, err
	}

	ordered := snowball.Order(debts)

	now := time.Now().UTC()
	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}

		for i := range ordered {
			if err := uc.debtRepo.UpdatePositionTx(ctx, tx, orgID, ordered[i].ID, ordered[i].SnowballPosition, now); err != nil {
				_ = tx.Rollback(ctx)
				return err
			}
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateProjection(ctx, orgID)
	return ordered, nil
}

// EstimatePayoff returns the number of months the debt takes to clear at its
// own minimum payment, ignoring the rest of the snowball. The second return
// is false for a debt the minimum payment never clears.
func (uc *DebtUseCase) EstimatePayoff(ctx context.Context, orgID, id string) (int, bool, error) {
	debt, err := uc.debtRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return 0, false, err
	}

	months, ok := snowball.MonthsToClear(debt.Balance, debt.AnnualRatePercent, debt.MinimumPayment)
	return months, ok, nil
}

func (uc *DebtUseCase) invalidateProjection(ctx context.Context, orgID string) {
	// Best effort: a stale cache entry self-expires via TTL.
	_ = uc.cache.Delete(ctx, projectionCacheKey(orgID))
}
