package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/debtwise/debtwise/internal/adapter/http/dto"
	"github.com/debtwise/debtwise/internal/adapter/http/middleware"
	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, input usecase.LoginInput) (*domain.User, string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateSavings(ctx context.Context, input usecase.UpdateSavingsInput) (*domain.Organization, error)
}

// AuthHandler handles registration, login and account endpoints.
type AuthHandler struct {
	userUC UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register creates an organization with its owning user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, token, err := h.userUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "registration failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Login authenticates a user and returns a signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, token, err := h.userUC.Login(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "login failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	authed, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), authed.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// UpdateSavings updates the organization's savings figures for the stage
// tracker.
func (h *AuthHandler) UpdateSavings(w http.ResponseWriter, r *http.Request) {
	authed, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.UpdateSavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	org, err := h.userUC.UpdateSavings(r.Context(), req.ToUseCaseInput(authed.OrganizationID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update savings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrganizationFromDomain(org))
}
