package store

import (
	"context"
	"errors"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres some day) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
type Store interface {
	Accounts() Accounts
	Proposals() Proposals

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., casting
	// a vote). The caller MUST call Commit() or Rollback() on the result.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx; it cannot leak an open transaction.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during login.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by the app via
	// ULID). A duplicate username or email yields ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	// DebitTokenBalance atomically subtracts amount from the balance,
	// guarded by balance >= amount. Returns false when the guard failed,
	// leaving the row untouched.
	DebitTokenBalance(ctx context.Context, accountID string, amount int64) (bool, error)

	// ClaimReward atomically credits amount and stamps last_claimed = now,
	// guarded by "never claimed or last claim at most now-window". Returns
	// false when the guard failed. The guard is what makes two concurrent
	// claims impossible, regardless of what the caller read beforehand.
	ClaimReward(ctx context.Context, accountID string, amount int64, now time.Time, window time.Duration) (bool, error)
}

type Proposals interface {
	// GetProposalByID returns a proposal with its voter set.
	GetProposalByID(ctx context.Context, id string) (domain.Proposal, error)

	// ListProposals returns all proposals with voter sets, newest first.
	ListProposals(ctx context.Context) ([]domain.Proposal, error)

	// CreateProposal inserts a new proposal with zero votes.
	CreateProposal(ctx context.Context, p domain.Proposal) error

	// HasVoted reports voter-set membership for the (proposal, account) pair.
	HasVoted(ctx context.Context, proposalID, accountID string) (bool, error)

	// AddVote inserts the voter-set row and increments the vote counter.
	// The composite primary key turns a duplicate vote into
	// ErrAlreadyExists even when two requests race. Run inside a Tx
	// together with the balance debit.
	AddVote(ctx context.Context, proposalID, accountID string, now time.Time) error

	// CountVotes returns the current vote counter.
	CountVotes(ctx context.Context, proposalID string) (int64, error)
}
