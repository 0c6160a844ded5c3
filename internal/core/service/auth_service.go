package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vitalrack/vitalrack-api/internal/api/metrics"
	"github.com/vitalrack/vitalrack-api/internal/core/domain"
	"github.com/vitalrack/vitalrack-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration and login on top of the credential
// store and the token issuer.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenIssuer
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a credential record and returns a freshly issued session
// token for it. The email is normalized before the duplicate check and the
// insert; bcrypt salts each hash, so equal passwords never share a stored
// hash. The duplicate check itself is left to the repository's unique index
// so that two concurrent registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || len(password) < minPasswordLen {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.Inc()
	return token, created, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password both come back as domain.ErrInvalidCredentials; the
// caller never learns which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// GetUser resolves the account behind a verified token subject.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
