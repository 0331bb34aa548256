package hubsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	client := NewClient("http://localhost:5000")
	session := newSession(client, &LoginResponse{
		ID:           "acc-1",
		Username:     "alice",
		Email:        "alice@example.com",
		TokenBalance: 100,
		Token:        "signed-token",
	})

	t.Run("fresh session holds a valid token", func(t *testing.T) {
		token, err := session.Token()
		require.NoError(t, err)
		require.Equal(t, "signed-token", token)
		require.Equal(t, "acc-1", session.AccountID())
		require.Equal(t, int64(100), session.TokenBalance())
		require.False(t, session.Expired())

		account := session.Account()
		require.Equal(t, "alice", account.Username)
		require.Equal(t, "alice@example.com", account.Email)
	})

	t.Run("logout returns the session to anonymous", func(t *testing.T) {
		session.Logout()

		require.True(t, session.Expired())

		_, err := session.Token()
		require.ErrorIs(t, err, ErrSessionExpired)

		_, err = session.ClaimDaily(context.Background())
		require.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("expired token is rejected locally", func(t *testing.T) {
		stale := newSession(client, &LoginResponse{ID: "acc-2", Token: "old"})
		stale.expiresAt = time.Now().Add(-time.Minute)

		_, err := stale.Token()
		require.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestSessionAgainstServer(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(LoginResponse{
			ID: "acc-1", Username: "alice", TokenBalance: 100, Token: "tok",
		})
	})
	mux.HandleFunc("POST /api/users/earn", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Message: "Missing bearer token"})
			return
		}
		_ = json.NewEncoder(w).Encode(EarnResponse{Message: "You earned 10 tokens!", TokenBalance: 110})
	})
	mux.HandleFunc("POST /api/proposals/p1/vote", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Message: "Not enough tokens to vote"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	session, err := client.Login(t.Context(), "alice@example.com", "hunter22")
	require.NoError(t, err)

	t.Run("claim updates the cached balance", func(t *testing.T) {
		earn, err := session.ClaimDaily(t.Context())
		require.NoError(t, err)
		require.Equal(t, int64(110), earn.TokenBalance)
		require.Equal(t, int64(110), session.TokenBalance())
	})

	t.Run("failed vote surfaces the server message", func(t *testing.T) {
		_, err := session.Vote(t.Context(), "p1")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Not enough tokens to vote", apiErr.Message)
	})
}
