package usecase

import (
	"context"

	"storerating/internal/domain/policy"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to self-register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
	User        *policy.UserView `json:"user"`
}

// UserUsecase defines the interface for account registration and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates an account with the user role.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*policy.UserView, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// ResolveActor validates a bearer token and loads the caller's current role.
	ResolveActor(ctx context.Context, token string) (*policy.Actor, error)
}
