package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"betpix-backend/internal/domain/entity"
	"betpix-backend/internal/domain/repository"
	"betpix-backend/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account not found")
)

// AuthService owns registration, login, and identity lookup.
type AuthService struct {
	Repo   repository.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Tokens: tokens, Logger: logger}
}

// Register creates a new account with a zero balance and issues a token.
// The returned user carries the hash internally; handlers project it out.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.logError("password hash failed", err, email)
		return nil, "", err
	}

	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailAlreadyExists
		}
		s.logError("user create failed", err, email)
		return nil, "", err
	}

	token, _, err := s.Tokens.Generate(u.ID, u.Email)
	if err != nil {
		s.logError("token issue failed", err, email)
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logError("user lookup failed", err, email)
		}
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.Tokens.Generate(u.ID, u.Email)
	if err != nil {
		s.logError("token issue failed", err, email)
		return nil, "", err
	}
	return u, token, nil
}

// GetSelf resolves the authenticated caller's own record. A valid token whose
// id no longer resolves means the account is gone.
func (s *AuthService) GetSelf(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logError("user lookup failed", err, "")
		return nil, err
	}
	return u, nil
}

func (s *AuthService) logError(msg string, err error, email string) {
	if s.Logger == nil {
		return
	}
	fields := logrus.Fields{}
	if email != "" {
		fields["email"] = email
	}
	s.Logger.WithError(err).WithFields(fields).Error(msg)
}
