package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/store"
)

const (
	minPasswordLength  = 8
	msgBadCredentials  = "Invalid email or password"
	msgUserNotFound    = "User not found"
	msgEmailRegistered = "Email is already registered"
)

// TokenIssuer signs access tokens for users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID) (string, error)
}

// UserService registers and authenticates the accounts that own articles.
type UserService struct {
	store  store.UserStore
	tokens TokenIssuer
	opts   Options
}

func NewUserService(st store.UserStore, tokens TokenIssuer, opts Options) *UserService {
	return &UserService{store: st, tokens: tokens, opts: opts.withDefaults()}
}

func (s *UserService) Register(ctx context.Context, in models.RegisterUserInput) (models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return models.AuthResponse{}, &Error{Kind: KindValidation, Message: "Email is required", Field: "email"}
	}
	if blank(in.Name) {
		return models.AuthResponse{}, &Error{Kind: KindValidation, Message: "Name is required", Field: "name"}
	}
	if len(in.Password) < minPasswordLength {
		return models.AuthResponse{}, &Error{Kind: KindValidation, Message: "Password must be at least 8 characters", Field: "password"}
	}

	var password models.Password
	if err := password.Set(in.Password); err != nil {
		return models.AuthResponse{}, internal("Failed to hash password", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: password.Hash,
		CreatedAt:    s.opts.Now(),
	}
	if err := s.store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.AuthResponse{}, &Error{Kind: KindConflict, Message: msgEmailRegistered, Field: "email", Err: err}
		}
		return models.AuthResponse{}, internal("Error registering user", err)
	}
	return s.respond(user)
}

// Login checks the credentials and issues a fresh token. Unknown emails and
// wrong passwords fail the same way.
func (s *UserService) Login(ctx context.Context, in models.LoginInput) (models.AuthResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if errors.Is(err, store.ErrNotFound) {
		return models.AuthResponse{}, unauthorized(msgBadCredentials)
	}
	if err != nil {
		return models.AuthResponse{}, internal("Error fetching user", err)
	}

	password := models.Password{Hash: user.PasswordHash}
	ok, err := password.Matches(in.Password)
	if err != nil {
		return models.AuthResponse{}, internal("Error checking password", err)
	}
	if !ok {
		return models.AuthResponse{}, unauthorized(msgBadCredentials)
	}
	return s.respond(user)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fromStore(err, msgUserNotFound, "Error fetching user")
	}
	return user, nil
}

func (s *UserService) respond(user models.User) (models.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return models.AuthResponse{}, internal("Failed to generate token", err)
	}
	return models.AuthResponse{User: user, Token: token}, nil
}
