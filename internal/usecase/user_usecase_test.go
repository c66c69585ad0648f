package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
	"github.com/debtwise/debtwise/internal/usecase/mocks"
)

func newUserUseCase() (*usecase.UserUseCase, *mocks.MockUserRepository, *mocks.MockOrganizationRepository) {
	userRepo := mocks.NewMockUserRepository()
	orgRepo := mocks.NewMockOrganizationRepository()
	uc := usecase.NewUserUseCase(userRepo, orgRepo, mocks.NewMockIDGenerator(), &mocks.MockTokenIssuer{})
	return uc, userRepo, orgRepo
}

func TestUserUseCase_Register(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.RegisterInput
		expectError bool
	}{
		{
			name: "successful registration",
			input: usecase.RegisterInput{
				Email:            "jo@example.com",
				Password:         "correct-horse-1",
				OrganizationName: "jo household",
			},
			expectError: false,
		},
		{
			name: "invalid email",
			input: usecase.RegisterInput{
				Email:            "not-an-email",
				Password:         "correct-horse-1",
				OrganizationName: "household",
			},
			expectError: true,
		},
		{
			name: "weak password",
			input: usecase.RegisterInput{
				Email:            "jo@example.com",
				Password:         "short",
				OrganizationName: "household",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, orgRepo := newUserUseCase()

			user, token, err := uc.Register(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token == "" {
				t.Error("expected a token")
			}
			if user.PasswordHash != "" {
				t.Error("password hash must not be returned")
			}
			if user.Role != domain.RoleOwner {
				t.Errorf("registering user should own the organization, got %s", user.Role)
			}
			if _, err := orgRepo.GetByID(context.Background(), user.OrganizationID); err != nil {
				t.Errorf("organization was not created: %v", err)
			}
		})
	}
}

func TestUserUseCase_RegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newUserUseCase()
	ctx := context.Background()

	input := usecase.RegisterInput{
		Email:            "jo@example.com",
		Password:         "correct-horse-1",
		OrganizationName: "household",
	}
	if _, _, err := uc.Register(ctx, input); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	if _, _, err := uc.Register(ctx, input); err != domain.ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserUseCase_Login(t *testing.T) {
	uc, _, _ := newUserUseCase()
	ctx := context.Background()

	if _, _, err := uc.Register(ctx, usecase.RegisterInput{
		Email:            "jo@example.com",
		Password:         "correct-horse-1",
		OrganizationName: "household",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := uc.Login(ctx, usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "correct-horse-1",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user.Email != "jo@example.com" {
		t.Errorf("unexpected login result: user=%+v token=%q", user, token)
	}

	if _, _, err := uc.Login(ctx, usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "wrong-password-1",
	}); err != domain.ErrInvalidPassword {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}

	if _, _, err := uc.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever-123",
	}); err != domain.ErrInvalidPassword {
		t.Errorf("expected ErrInvalidPassword for unknown user, got %v", err)
	}
}

func TestUserUseCase_UpdateSavings(t *testing.T) {
	uc, _, _ := newUserUseCase()
	ctx := context.Background()

	user, _, err := uc.Register(ctx, usecase.RegisterInput{
		Email:            "jo@example.com",
		Password:         "correct-horse-1",
		OrganizationName: "household",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	fund := decimal.NewFromInt(2500)
	org, err := uc.UpdateSavings(ctx, usecase.UpdateSavingsInput{
		OrganizationID: user.OrganizationID,
		EmergencyFund:  &fund,
	})
	if err != nil {
		t.Fatalf("update savings: %v", err)
	}
	if !org.EmergencyFund.Equal(fund) {
		t.Errorf("emergency fund: want %s, got %s", fund, org.EmergencyFund)
	}
	if !org.LongTermSavings.IsZero() {
		t.Errorf("untouched field changed: %s", org.LongTermSavings)
	}
}
