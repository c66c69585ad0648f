package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

// MockDebtRepository is a mock implementation of DebtRepository backed by an
// in-memory map. Any Func field, when set, overrides the default behavior.
type MockDebtRepository struct {
	mu    sync.RWMutex
	debts map[string]*domain.Debt

	CreateFunc           func(ctx context.Context, debt *domain.Debt) error
	GetByIDFunc          func(ctx context.Context, orgID, id string) (*domain.Debt, error)
	ListActiveFunc       func(ctx context.Context, orgID string) ([]domain.Debt, error)
	ListFunc             func(ctx context.Context, orgID string, limit, offset int) ([]domain.Debt, error)
	UpdateFunc           func(ctx context.Context, debt *domain.Debt) error
	UpdatePositionTxFunc func(ctx context.Context, tx usecase.Transaction, orgID, id string, position int, updatedAt time.Time) error
	UpdateStatusFunc     func(ctx context.Context, orgID, id string, status domain.DebtStatus, updatedAt time.Time) error
	DeleteFunc           func(ctx context.Context, orgID, id string) error
}

func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{debts: make(map[string]*domain.Debt)}
}

func (m *MockDebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *debt
	m.debts[debt.ID] = &copied
	return nil
}

func (m *MockDebtRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Debt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, orgID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.debts[id]; ok && d.OrganizationID == orgID {
		copied := *d
		return &copied, nil
	}
	return nil, domain.ErrDebtNotFound
}

func (m *MockDebtRepository) ListActive(ctx context.Context, orgID string) ([]domain.Debt, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, orgID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Debt
	for _, d := range m.debts {
		if d.OrganizationID == orgID && d.Status == domain.DebtStatusActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *MockDebtRepository) List(ctx context.Context, orgID string, limit, offset int) ([]domain.Debt, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Debt
	for _, d := range m.debts {
		if d.OrganizationID == orgID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *MockDebtRepository) Update(ctx context.Context, debt *domain.Debt) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.debts[debt.ID]; !ok {
		return domain.ErrDebtNotFound
	}
	copied := *debt
	m.debts[debt.ID] = &copied
	return nil
}

func (m *MockDebtRepository) UpdatePositionTx(ctx context.Context, tx usecase.Transaction, orgID, id string, position int, updatedAt time.Time) error {
	if m.UpdatePositionTxFunc != nil {
		return m.UpdatePositionTxFunc(ctx, tx, orgID, id, position, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.debts[id]
	if !ok || d.OrganizationID != orgID {
		return domain.ErrDebtNotFound
	}
	d.SnowballPosition = position
	d.UpdatedAt = updatedAt
	return nil
}

func (m *MockDebtRepository) UpdateStatus(ctx context.Context, orgID, id string, status domain.DebtStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, orgID, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.debts[id]
	if !ok || d.OrganizationID != orgID {
		return domain.ErrDebtNotFound
	}
	d.Status = status
	d.UpdatedAt = updatedAt
	return nil
}

func (m *MockDebtRepository) Delete(ctx context.Context, orgID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, orgID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.debts[id]
	if !ok || d.OrganizationID != orgID {
		return domain.ErrDebtNotFound
	}
	delete(m.debts, id)
	return nil
}

// MockIncomeRepository is an in-memory mock of IncomeRepository.
type MockIncomeRepository struct {
	mu      sync.RWMutex
	incomes map[string]*domain.Income

	CreateFunc func(ctx context.Context, income *domain.Income) error
	ListFunc   func(ctx context.Context, orgID string) ([]domain.Income, error)
	DeleteFunc func(ctx context.Context, orgID, id string) error
}

func NewMockIncomeRepository() *MockIncomeRepository {
	return &MockIncomeRepository{incomes: make(map[string]*domain.Income)}
}

func (m *MockIncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, income)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *income
	m.incomes[income.ID] = &copied
	return nil
}

func (m *MockIncomeRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.Income, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Income
	for _, inc := range m.incomes {
		if inc.OrganizationID == orgID {
			out = append(out, *inc)
		}
	}
	return out, nil
}

func (m *MockIncomeRepository) Delete(ctx context.Context, orgID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, orgID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	inc, ok := m.incomes[id]
	if !ok || inc.OrganizationID != orgID {
		return domain.ErrIncomeNotFound
	}
	delete(m.incomes, id)
	return nil
}

// MockExpenseRepository is an in-memory mock of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense

	CreateFunc func(ctx context.Context, expense *domain.Expense) error
	ListFunc   func(ctx context.Context, orgID string) ([]domain.Expense, error)
	DeleteFunc func(ctx context.Context, orgID, id string) error
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{expenses: make(map[string]*domain.Expense)}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *expense
	m.expenses[expense.ID] = &copied
	return nil
}

func (m *MockExpenseRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Expense
	for _, e := range m.expenses {
		if e.OrganizationID == orgID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, orgID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, orgID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.expenses[id]
	if !ok || e.OrganizationID != orgID {
		return domain.ErrExpenseNotFound
	}
	delete(m.expenses, id)
	return nil
}

// MockOrganizationRepository is an in-memory mock of OrganizationRepository.
type MockOrganizationRepository struct {
	mu   sync.RWMutex
	orgs map[string]*domain.Organization

	GetByIDFunc func(ctx context.Context, id string) (*domain.Organization, error)
}

func NewMockOrganizationRepository() *MockOrganizationRepository {
	return &MockOrganizationRepository{orgs: make(map[string]*domain.Organization)}
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *org
	m.orgs[org.ID] = &copied
	return nil
}

func (m *MockOrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if org, ok := m.orgs[id]; ok {
		copied := *org
		return &copied, nil
	}
	return nil, domain.ErrOrganizationNotFound
}

func (m *MockOrganizationRepository) UpdateSavings(ctx context.Context, org *domain.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orgs[org.ID]; !ok {
		return domain.ErrOrganizationNotFound
	}
	copied := *org
	m.orgs[org.ID] = &copied
	return nil
}

// MockUserRepository is an in-memory mock of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// MockIDGenerator returns sequential IDs unless GenerateFunc is set.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// MockTransaction is a no-op transaction recording commit/rollback calls.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.RolledBack = true
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc    func(ctx context.Context) (usecase.Transaction, error)
	Transactions []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// NopRetrier runs the operation once with no retries.
type NopRetrier struct{}

func (NopRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MemoryCache is a trivial in-memory Cache for tests that only care that
// entries appear and disappear.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("cache miss: %s", key)
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Contains reports whether a key currently exists.
func (c *MemoryCache) Contains(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// MockTokenIssuer issues a fixed token.
type MockTokenIssuer struct {
	Token string
	Err   error
}

func (m *MockTokenIssuer) Generate(user *domain.User) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Token == "" {
		return "token-" + user.ID, nil
	}
	return m.Token, nil
}
