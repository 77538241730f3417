package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"betpix-backend/internal/domain/entity"
	"betpix-backend/internal/domain/repository"
	"betpix-backend/pkg/helpers"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User

	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newAuthService(repo repository.UserRepository) *AuthService {
	return NewAuthService(repo, helpers.NewTokenManager("test-secret", time.Hour), nil)
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	s := newAuthService(repo)
	ctx := context.Background()

	u, token, err := s.Register(ctx, "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" || token == "" {
		t.Fatalf("missing id or token: id=%q token=%q", u.ID, token)
	}
	if u.Balance != 0 {
		t.Fatalf("new account balance must be zero, got %v", u.Balance)
	}

	claims, err := s.Tokens.Parse(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != u.ID {
		t.Fatalf("token uid mismatch: got %q want %q", claims.UserID, u.ID)
	}

	lu, ltoken, err := s.Login(ctx, "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if lu.ID != u.ID || ltoken == "" {
		t.Fatalf("login mismatch: id=%q want %q", lu.ID, u.ID)
	}
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	s := newAuthService(repo)

	if _, _, err := s.Register(context.Background(), "bob@example.com", "plaintext-pw"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	stored := repo.byEmail["bob@example.com"]
	if stored.PasswordHash == "plaintext-pw" || strings.Contains(stored.PasswordHash, "plaintext-pw") {
		t.Fatalf("plaintext password stored: %q", stored.PasswordHash)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	s := newAuthService(repo)
	ctx := context.Background()

	if _, _, err := s.Register(ctx, "carol@example.com", "pw1"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	_, _, err := s.Register(ctx, "carol@example.com", "pw2")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("store mutated on duplicate create: %d records", len(repo.byEmail))
	}
}

func TestLogin_EnumerationSafe(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	s := newAuthService(repo)
	ctx := context.Background()

	if _, _, err := s.Register(ctx, "dave@example.com", "right-pw"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, _, wrongPw := s.Login(ctx, "dave@example.com", "wrong-pw")
	_, _, noUser := s.Login(ctx, "ghost@example.com", "whatever")

	if !errors.Is(wrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(noUser, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
}

func TestLogin_StoreFailureStaysGeneric(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.getErr = errors.New("connection refused")
	s := newAuthService(repo)

	_, _, err := s.Login(context.Background(), "x@example.com", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("store failure must not leak: got %v", err)
	}
}

func TestGetSelf(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	s := newAuthService(repo)
	ctx := context.Background()

	u, _, err := s.Register(ctx, "erin@example.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, err := s.GetSelf(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetSelf error: %v", err)
	}
	if got.Email != "erin@example.com" {
		t.Fatalf("email mismatch: %q", got.Email)
	}

	_, err = s.GetSelf(ctx, uuid.NewString())
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
