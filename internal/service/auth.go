package service

import (
	"context"
	"errors"
	"strings"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/auth"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

// loginFailedMessage is deliberately the same for unknown email and wrong
// password so login cannot be used to enumerate accounts.
const loginFailedMessage = "invalid email or password"

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the public user view plus a fresh token. It never carries
// the password hash.
type AuthResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func Signup(ctx context.Context, users storage.UserRepository, tokens *auth.TokenManager, bcryptCost int, req *SignupRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	hash, err := auth.HashPassword(req.Password, bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &internal.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}
	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, internal.NewConflict("email already registered")
		}
		return nil, err
	}
	token, err := tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}

func Login(ctx context.Context, users storage.UserRepository, tokens *auth.TokenManager, req *LoginRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	user, err := users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewUnauthorized(loginFailedMessage)
		}
		return nil, err
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, internal.NewUnauthorized(loginFailedMessage)
	}
	token, err := tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}
