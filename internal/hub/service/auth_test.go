package service

import (
	"context"
	"testing"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/domain"
	"github.com/sprinkles1113/community-hub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("test-secret-at-least-16b"), "community-hub-test")
	require.NoError(t, err)

	return &AuthService{
		Store:  newTestStore(t),
		Tokens: signer,
		Issuer: "community-hub-test",
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t)

	t.Run("creates account with starting balance", func(t *testing.T) {
		account, err := svc.Register(ctx, "alice", "alice@example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, account.ID)
		require.Equal(t, "alice", account.Username)
		require.Equal(t, int64(domain.DefaultTokenBalance), account.TokenBalance)
		require.Nil(t, account.LastClaimed)

		stored, err := svc.Store.Accounts().GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotEqual(t, "hunter22", stored.PasswordHash)
	})

	t.Run("normalises email case", func(t *testing.T) {
		account, err := svc.Register(ctx, "bob", "Bob@Example.COM", "hunter22")
		require.NoError(t, err)
		require.Equal(t, "bob@example.com", account.Email)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice2", "alice@example.com", "hunter22")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "alice+other@example.com", "hunter22")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "carol@example.com", "hunter22")
		require.ErrorIs(t, err, ErrMissingFields)

		_, err = svc.Register(ctx, "carol", "", "hunter22")
		require.ErrorIs(t, err, ErrMissingFields)

		_, err = svc.Register(ctx, "carol", "carol@example.com", "")
		require.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t)

	registered, err := svc.Register(ctx, "dave", "dave@example.com", "hunter22")
	require.NoError(t, err)

	t.Run("issues a verifiable token", func(t *testing.T) {
		account, token, err := svc.Login(ctx, "dave@example.com", "hunter22")
		require.NoError(t, err)
		require.Equal(t, registered.ID, account.ID)
		require.NotEmpty(t, token)

		claims, err := svc.Tokens.(*jwtx.HS256).Verify(token)
		require.NoError(t, err)
		require.Equal(t, registered.ID, claims.Subject)
		require.Equal(t, "dave", claims.Username)

		expiry := claims.ExpiresAt.Time
		require.WithinDuration(t, time.Now().Add(jwtx.DefaultAccessTokenTTL), expiry, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "dave@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email matches wrong-password error", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, token, err := svc.Login(ctx, "DAVE@example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})
}
