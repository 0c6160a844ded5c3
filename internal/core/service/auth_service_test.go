package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

type stubAuthRepo struct {
	users  map[string]*domain.User // keyed by normalized email
	nextID int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (*AuthService, *stubAuthRepo, *TokenService) {
	t.Helper()
	repo := newStubAuthRepo()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return NewAuthService(repo, tokens), repo, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	token, user, err := svc.Register(context.Background(), "a@b.com", "123456")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected created user with id, got %+v", user)
	}
	if user.PasswordHash == "123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("token subject %q does not match user id %q", subject, user.ID)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, _, err := svc.Register(context.Background(), "a@b.com", "12345"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateAnyCasing(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	if _, _, err := svc.Register(context.Background(), "a@b.com", "123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), " A@B.COM ", "123456"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single record, got %d", len(repo.users))
	}
}

func TestAuthService_Register_DistinctHashesForSamePassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	if _, _, err := svc.Register(context.Background(), "a@b.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "c@d.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if repo.users["a@b.com"].PasswordHash == repo.users["c@d.com"].PasswordHash {
		t.Fatalf("expected per-record salts to produce distinct hashes")
	}
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	_, created, err := svc.Register(context.Background(), "a@b.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), " A@B.COM ", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("login resolved a different user: %s vs %s", user.ID, created.ID)
	}

	subject, err := tokens.Verify(token)
	if err != nil || subject != created.ID {
		t.Fatalf("token does not verify to the created identity: %v", err)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, _, err := svc.Register(context.Background(), "a@b.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "a@b.com", "654321")
	_, _, unknown := svc.Login(context.Background(), "ghost@b.com", "123456")

	if wrongPass != domain.ErrInvalidCredentials || unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", wrongPass, unknown)
	}
}

func TestAuthService_GetUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, created, err := svc.Register(context.Background(), "a@b.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.GetUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetUser(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
