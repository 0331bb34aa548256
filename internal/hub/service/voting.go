package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/domain"
	"github.com/sprinkles1113/community-hub/internal/hub/store"
	"github.com/sprinkles1113/community-hub/pkg/idx"
)

const DefaultVoteCost = 10

var (
	ErrEmptyTitle         = errors.New("empty_title")
	ErrProposalNotFound   = errors.New("proposal_not_found")
	ErrAlreadyVoted       = errors.New("already_voted")
	ErrInsufficientTokens = errors.New("insufficient_tokens")
)

// VotingService owns proposal listing, creation and token-weighted voting.
type VotingService struct {
	Store    store.Store
	VoteCost int64
}

func (s *VotingService) voteCost() int64 {
	if s.VoteCost == 0 {
		return DefaultVoteCost
	}
	return s.VoteCost
}

// ListProposals returns every proposal, newest first.
func (s *VotingService) ListProposals(ctx context.Context) ([]domain.Proposal, error) {
	return s.Store.Proposals().ListProposals(ctx)
}

// CreateProposal records a new proposal on behalf of the account.
func (s *VotingService) CreateProposal(ctx context.Context, accountID, title, description string) (domain.Proposal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Proposal{}, ErrEmptyTitle
	}

	if _, err := s.Store.Accounts().GetAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Proposal{}, ErrAccountNotFound
		}
		return domain.Proposal{}, fmt.Errorf("load account: %w", err)
	}

	now := time.Now().UTC()
	proposal := domain.Proposal{
		ID:          idx.New().String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedBy:   accountID,
		Votes:       0,
		Voters:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Proposals().CreateProposal(ctx, proposal); err != nil {
		return domain.Proposal{}, fmt.Errorf("create proposal: %w", err)
	}

	return proposal, nil
}

// Vote spends the vote cost from the account and records the vote. The
// whole exchange runs in one transaction so the debit and the vote land
// together or not at all. A repeat vote is reported before an empty
// balance: someone who already voted hears that, not a token complaint.
func (s *VotingService) Vote(ctx context.Context, accountID, proposalID string) (int64, error) {
	var votes int64

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		account, err := tx.Accounts().GetAccountByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("load account: %w", err)
		}

		if _, err := tx.Proposals().GetProposalByID(ctx, proposalID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProposalNotFound
			}
			return fmt.Errorf("load proposal: %w", err)
		}

		voted, err := tx.Proposals().HasVoted(ctx, proposalID, accountID)
		if err != nil {
			return fmt.Errorf("check vote: %w", err)
		}
		if voted {
			return ErrAlreadyVoted
		}

		cost := s.voteCost()
		if account.TokenBalance < cost {
			return ErrInsufficientTokens
		}

		debited, err := tx.Accounts().DebitTokenBalance(ctx, accountID, cost)
		if err != nil {
			return fmt.Errorf("debit tokens: %w", err)
		}
		if !debited {
			return ErrInsufficientTokens
		}

		if err := tx.Proposals().AddVote(ctx, proposalID, accountID, time.Now().UTC()); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyVoted
			}
			return fmt.Errorf("record vote: %w", err)
		}

		votes, err = tx.Proposals().CountVotes(ctx, proposalID)
		if err != nil {
			return fmt.Errorf("count votes: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return votes, nil
}
