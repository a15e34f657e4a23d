// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"persona/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
// Validation mirrors the account constraints: login 3-15 characters,
// password at least 6, both non-blank.
type SignUpInput struct {
	Login    string `json:"login" validate:"required,min=3,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdatePersonInput defines a full-replace update of an existing account.
type UpdatePersonInput struct {
	ID       int    `json:"id" validate:"required"`
	Login    string `json:"login" validate:"required,min=3,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

// ChangePasswordInput defines a password change addressed by login.
type ChangePasswordInput struct {
	Login    string `json:"login" validate:"required,min=3,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the raw credentials presented at the login endpoint.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token after a successful login.
// The token already carries the "Bearer " prefix.
type LoginOutput struct {
	Token string `json:"token"`
}

// PersonUsecase defines the account-management operations the delivery layer
// depends on.
type PersonUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
	Get(ctx context.Context, id int) (*entity.Person, error)
	Update(ctx context.Context, input *UpdatePersonInput) (*entity.Person, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	Delete(ctx context.Context, id int) error
}

// AuthUsecase defines the authentication entry point.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
