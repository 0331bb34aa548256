package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "community-hub"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256([]byte("short"), testIssuer)
	require.Error(t, err)
}

func TestHS256_SignAndVerify(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	claims := NewAccessClaims("01ARZ3NDEKTSV4RRFFQ69G5FAV", "daisy", testIssuer, DefaultAccessTokenTTL, time.Now())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", got.Subject)
	require.Equal(t, "daisy", got.Username)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestHS256_Verify(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := h.Verify("definitely.not.a.jwt")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), testIssuer)
		require.NoError(t, err)

		token, err := other.Sign(NewAccessClaims("acc", "u", testIssuer, time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := h.Sign(NewAccessClaims("acc", "u", testIssuer, time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("rejects a wrong issuer", func(t *testing.T) {
		token, err := h.Sign(NewAccessClaims("acc", "u", "someone-else", time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrIssuer)
	})
}

func TestClaims_ValidateExpiry(t *testing.T) {
	t.Parallel()

	fresh := NewAccessClaims("a", "u", testIssuer, time.Hour, time.Now())
	require.NoError(t, fresh.ValidateExpiry())

	stale := NewAccessClaims("a", "u", testIssuer, time.Minute, time.Now().Add(-time.Hour))
	require.ErrorIs(t, stale.ValidateExpiry(), ErrExpired)

	future := NewAccessClaims("a", "u", testIssuer, time.Hour, time.Now().Add(time.Hour))
	require.ErrorIs(t, future.ValidateExpiry(), ErrNotYetValid)
}
