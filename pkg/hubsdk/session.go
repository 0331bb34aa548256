package hubsdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// sessionTokenTTL mirrors the server's token validity window. Tokens are
// not refreshable, so the session expires with the token and the caller
// logs in again.
const sessionTokenTTL = 2 * time.Hour

// Session is an authenticated view of the hub after a successful login.
// It is safe for concurrent use. Logout transitions it back to the
// anonymous state.
type Session struct {
	client *Client

	mu           sync.RWMutex
	token        string
	expiresAt    time.Time
	accountID    string
	username     string
	email        string
	tokenBalance int64
}

func newSession(client *Client, login *LoginResponse) *Session {
	return &Session{
		client:       client,
		token:        login.Token,
		expiresAt:    time.Now().Add(sessionTokenTTL - 30*time.Second),
		accountID:    login.ID,
		username:     login.Username,
		email:        login.Email,
		tokenBalance: login.TokenBalance,
	}
}

// AccountID returns the id of the logged-in account.
func (s *Session) AccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

// Username returns the username of the logged-in account.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Account returns the cached public projection of the logged-in account.
// The balance reflects the last server response that reported one.
func (s *Session) Account() AccountResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AccountResponse{
		ID:           s.accountID,
		Username:     s.username,
		Email:        s.email,
		TokenBalance: s.tokenBalance,
	}
}

// Expired reports whether the session can still make authenticated calls.
func (s *Session) Expired() bool {
	_, err := s.validToken()
	return err != nil
}

// TokenBalance returns the balance as of the last server response that
// reported one.
func (s *Session) TokenBalance() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokenBalance
}

// Token returns the raw bearer token, e.g. for persisting across runs.
func (s *Session) Token() (string, error) {
	return s.validToken()
}

// Logout drops the token, returning the session to the anonymous state.
// Further authenticated calls fail with ErrSessionExpired.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
}

func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || time.Now().After(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

// ClaimDaily claims the daily token reward and updates the cached balance.
func (s *Session) ClaimDaily(ctx context.Context) (*EarnResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/users/earn", nil)
	if err != nil {
		return nil, err
	}

	var earn EarnResponse
	if err := decodeJSON(resp, &earn, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tokenBalance = earn.TokenBalance
	s.mu.Unlock()

	return &earn, nil
}

// CreateProposal submits a new proposal.
func (s *Session) CreateProposal(ctx context.Context, title, description string) (*ProposalResponse, error) {
	body := map[string]string{
		"title":       title,
		"description": description,
	}

	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/proposals", body)
	if err != nil {
		return nil, err
	}

	var proposal ProposalResponse
	if err := decodeJSON(resp, &proposal, http.StatusCreated); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// Vote spends tokens to vote on a proposal and returns the new tally.
// The cached balance is decremented on success.
func (s *Session) Vote(ctx context.Context, proposalID string) (*VoteResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/proposals/"+proposalID+"/vote", nil)
	if err != nil {
		return nil, err
	}

	var vote VoteResponse
	if err := decodeJSON(resp, &vote, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tokenBalance -= 10
	s.mu.Unlock()

	return &vote, nil
}

// ListProposals is a convenience wrapper over the anonymous listing.
func (s *Session) ListProposals(ctx context.Context) ([]ProposalResponse, error) {
	return s.client.ListProposals(ctx)
}
