package domain

import "errors"

var (
	// Debt errors
	ErrDebtNotFound           = errors.New("debt not found")
	ErrNegativeBalance        = errors.New("debt balance cannot be negative")
	ErrNegativeMinimumPayment = errors.New("minimum payment cannot be negative")
	ErrCCJDeadlineRequired    = errors.New("ccj debt requires a deadline")
	ErrCCJDeadlineNotAllowed  = errors.New("non-ccj debt cannot carry a deadline")
	ErrDebtAlreadyPaid        = errors.New("debt is already paid off")

	// Income/expense errors
	ErrIncomeNotFound   = errors.New("income not found")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidFrequency = errors.New("unknown payment frequency")

	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidPassword = errors.New("invalid credentials")
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrForbidden       = errors.New("not a member of this organization")
)
