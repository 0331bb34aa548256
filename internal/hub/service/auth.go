package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/domain"
	"github.com/sprinkles1113/community-hub/internal/hub/store"
	"github.com/sprinkles1113/community-hub/pkg/cryptox"
	"github.com/sprinkles1113/community-hub/pkg/idx"
	"github.com/sprinkles1113/community-hub/pkg/jwtx"
)

var (
	ErrMissingFields      = errors.New("missing_fields")
	ErrEmailTaken         = errors.New("email_taken")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// AuthService owns registration, login and token issuance.
type AuthService struct {
	Store     store.Store
	Tokens    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration

	decoyOnce sync.Once
	decoy     string
}

// Register creates a new account with the default starting balance.
// The plaintext password never reaches the store.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" || password == "" {
		return domain.Account{}, ErrMissingFields
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		TokenBalance: domain.DefaultTokenBalance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, s.classifyConflict(ctx, email)
		}
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// classifyConflict decides which unique column the insert tripped over. The
// constraint check and this lookup aren't atomic, but the answer only
// shapes the error message.
func (s *AuthService) classifyConflict(ctx context.Context, email string) error {
	if _, err := s.Store.Accounts().GetAccountByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login verifies the credentials and issues a signed bearer token.
// Unknown email and wrong password are indistinguishable to the caller;
// the unknown-email path verifies against a decoy hash so both do the same
// amount of work.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Account, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, s.decoyHash())
			return domain.Account{}, "", ErrInvalidCredentials
		}
		return domain.Account{}, "", fmt.Errorf("load account: %w", err)
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		return domain.Account{}, "", ErrInvalidCredentials
	}

	ttl := s.AccessTTL
	if ttl == 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(account.ID, account.Username, s.Issuer, ttl, time.Now())
	token, err := s.Tokens.Sign(claims)
	if err != nil {
		return domain.Account{}, "", fmt.Errorf("sign token: %w", err)
	}

	return account, token, nil
}

// GetAccountByID fetches an account by id.
func (s *AuthService) GetAccountByID(ctx context.Context, accountID string) (domain.Account, error) {
	return s.Store.Accounts().GetAccountByID(ctx, accountID)
}

func (s *AuthService) decoyHash() string {
	s.decoyOnce.Do(func() {
		s.decoy, _ = cryptox.DecoyHash()
	})
	return s.decoy
}
