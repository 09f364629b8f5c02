// Package auth registers accounts and exchanges credentials for signed
// access tokens. Nothing is kept server-side between calls.
package auth

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"sgo/models"
)

var (
	// ErrDuplicateEmail is returned by Register when the email already has an account.
	ErrDuplicateEmail = errors.New("email is already registered")
	// ErrInvalidCredentials is returned by Login for an unknown email and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the part of the user repository the auth flow needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Phone      string `json:"phone" validate:"required,max=15"`
	Address    string `json:"address" validate:"required,max=255"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required,max=100"`
	CreatedBy  string `json:"created_by" validate:"required,max=100"`
	ModifiedBy string `json:"modified_by" validate:"required,max=100"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Service struct {
	users  UserStore
	hasher PasswordHasher
	tokens *TokenIssuer
	logger *log.Entry
}

func NewService(users UserStore, hasher PasswordHasher, tokens *TokenIssuer, logger *log.Entry) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an account and returns its id.
func (s *Service) Register(ctx context.Context, in RegisterInput) (int, error) {
	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Password:   hash,
		Role:       in.Role,
		CreatedBy:  in.CreatedBy,
		ModifiedBy: in.ModifiedBy,
	}
	if err := s.users.Add(ctx, user); err != nil {
		return 0, err
	}

	s.logger.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	return user.ID, nil
}

// Login returns a signed access token for valid credentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Verify(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}
	s.logger.WithField("user_id", user.ID).Info("user logged in")
	return token, nil
}
