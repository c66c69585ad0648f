package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/debtwise/debtwise/internal/domain"
)

// UserUseCase handles registration and authentication. Each registration
// creates a fresh organization with the registering user as its owner.
type UserUseCase struct {
	userRepo UserRepository
	orgRepo  OrganizationRepository
	idGen    IDGenerator
	tokens   TokenIssuer
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, orgRepo OrganizationRepository, idGen IDGenerator, tokens TokenIssuer) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		idGen:    idGen,
		tokens:   tokens,
	}
}

// RegisterInput represents input for registering a user and organization.
type RegisterInput struct {
	Email            string
	Password         string
	OrganizationName string
}

// Register creates an organization and its owning user, returning the user
// and a signed auth token.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, "", err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, "", err
	}
	if err := domain.ValidateName(input.OrganizationName); err != nil {
		return nil, "", err
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	org := &domain.Organization{
		ID:              uc.idGen.Generate(),
		Name:            input.OrganizationName,
		EmergencyFund:   decimal.Zero,
		LongTermSavings: decimal.Zero,
		LongTermTarget:  decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.orgRepo.Create(ctx, org); err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:             uc.idGen.Generate(),
		OrganizationID: org.ID,
		Email:          input.Email,
		PasswordHash:   string(hash),
		Role:           domain.RoleOwner,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// LoginInput represents authentication input.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user and a signed auth token.
func (uc *UserUseCase) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", domain.ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", domain.ErrInvalidPassword
	}

	token, err := uc.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateSavingsInput represents input for updating tracker savings figures.
type UpdateSavingsInput struct {
	OrganizationID  string
	EmergencyFund   *decimal.Decimal
	LongTermSavings *decimal.Decimal
	LongTermTarget  *decimal.Decimal
}

// UpdateSavings applies a partial update to an organization's savings
// figures, which feed the stage tracker.
func (uc *UserUseCase) UpdateSavings(ctx context.Context, input UpdateSavingsInput) (*domain.Organization, error) {
	org, err := uc.orgRepo.GetByID(ctx, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	if input.EmergencyFund != nil {
		org.EmergencyFund = *input.EmergencyFund
	}
	if input.LongTermSavings != nil {
		org.LongTermSavings = *input.LongTermSavings
	}
	if input.LongTermTarget != nil {
		org.LongTermTarget = *input.LongTermTarget
	}
	org.UpdatedAt = time.Now().UTC()

	if err := uc.orgRepo.UpdateSavings(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}
