package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVotingService_CreateProposal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	svc := &VotingService{Store: s}
	author := createAccount(t, s, "author", 100, nil)

	t.Run("creates proposal with zero votes", func(t *testing.T) {
		proposal, err := svc.CreateProposal(ctx, author.ID, "Bike racks", "More racks near the library")
		require.NoError(t, err)
		require.NotEmpty(t, proposal.ID)
		require.Equal(t, author.ID, proposal.CreatedBy)
		require.Zero(t, proposal.Votes)
		require.Empty(t, proposal.Voters)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		proposal, err := svc.CreateProposal(ctx, author.ID, "  Street lights  ", "  near the park ")
		require.NoError(t, err)
		require.Equal(t, "Street lights", proposal.Title)
		require.Equal(t, "near the park", proposal.Description)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := svc.CreateProposal(ctx, author.ID, "   ", "desc")
		require.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("rejects unknown creator", func(t *testing.T) {
		_, err := svc.CreateProposal(ctx, "missing", "Title", "desc")
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestVotingService_ListProposals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	svc := &VotingService{Store: s}
	author := createAccount(t, s, "lister", 100, nil)

	first, err := svc.CreateProposal(ctx, author.ID, "First", "")
	require.NoError(t, err)
	second, err := svc.CreateProposal(ctx, author.ID, "Second", "")
	require.NoError(t, err)

	proposals, err := svc.ListProposals(ctx)
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	require.Equal(t, second.ID, proposals[0].ID)
	require.Equal(t, first.ID, proposals[1].ID)
	require.NotNil(t, proposals[0].Voters)
}

func TestVotingService_Vote(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("debits tokens and records voter", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &VotingService{Store: s}
		voter := createAccount(t, s, "voter", 100, nil)
		proposal := createProposal(t, s, voter.ID, "Compost bins")

		votes, err := svc.Vote(ctx, voter.ID, proposal.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), votes)

		account, err := s.Accounts().GetAccountByID(ctx, voter.ID)
		require.NoError(t, err)
		require.Equal(t, int64(90), account.TokenBalance)

		stored, err := s.Proposals().GetProposalByID(ctx, proposal.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), stored.Votes)
		require.Contains(t, stored.Voters, voter.ID)
	})

	t.Run("repeat vote is rejected before balance is checked", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &VotingService{Store: s}
		// Balance of 5 can't cover a second vote either way; the error
		// must still be the repeat-vote one.
		voter := createAccount(t, s, "repeat", 15, nil)
		proposal := createProposal(t, s, voter.ID, "Dog park")

		_, err := svc.Vote(ctx, voter.ID, proposal.ID)
		require.NoError(t, err)

		_, err = svc.Vote(ctx, voter.ID, proposal.ID)
		require.ErrorIs(t, err, ErrAlreadyVoted)

		account, err := s.Accounts().GetAccountByID(ctx, voter.ID)
		require.NoError(t, err)
		require.Equal(t, int64(5), account.TokenBalance)
	})

	t.Run("insufficient tokens leaves everything untouched", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &VotingService{Store: s}
		voter := createAccount(t, s, "broke", 9, nil)
		proposal := createProposal(t, s, voter.ID, "Fountain repair")

		_, err := svc.Vote(ctx, voter.ID, proposal.ID)
		require.ErrorIs(t, err, ErrInsufficientTokens)

		account, err := s.Accounts().GetAccountByID(ctx, voter.ID)
		require.NoError(t, err)
		require.Equal(t, int64(9), account.TokenBalance)

		stored, err := s.Proposals().GetProposalByID(ctx, proposal.ID)
		require.NoError(t, err)
		require.Zero(t, stored.Votes)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &VotingService{Store: s}
		voter := createAccount(t, s, "lost", 100, nil)

		_, err := svc.Vote(ctx, voter.ID, "missing")
		require.ErrorIs(t, err, ErrProposalNotFound)
	})

	t.Run("unknown account", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &VotingService{Store: s}
		author := createAccount(t, s, "host", 100, nil)
		proposal := createProposal(t, s, author.ID, "Mural")

		_, err := svc.Vote(ctx, "missing", proposal.ID)
		require.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("three votes spend thirty tokens", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &VotingService{Store: s}
		voter := createAccount(t, s, "engaged", 100, nil)

		for i := 0; i < 3; i++ {
			proposal := createProposal(t, s, voter.ID, fmt.Sprintf("Proposal %d", i))
			_, err := svc.Vote(ctx, voter.ID, proposal.ID)
			require.NoError(t, err)
		}

		account, err := s.Accounts().GetAccountByID(ctx, voter.ID)
		require.NoError(t, err)
		require.Equal(t, int64(70), account.TokenBalance)
	})
}

// Concurrent duplicate votes must collapse to a single debit and a single
// recorded voter, no matter how the goroutines interleave.
func TestVotingService_VoteConcurrentDuplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	svc := &VotingService{Store: s}
	voter := createAccount(t, s, "racer", 100, nil)
	proposal := createProposal(t, s, voter.ID, "Crosswalk")

	const attempts = 8

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Vote(ctx, voter.ID, proposal.ID)
		}(i)
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyVoted):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, attempts-1, duplicates)

	account, err := s.Accounts().GetAccountByID(ctx, voter.ID)
	require.NoError(t, err)
	require.Equal(t, int64(90), account.TokenBalance)

	stored, err := s.Proposals().GetProposalByID(ctx, proposal.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), stored.Votes)
	require.Equal(t, []string{voter.ID}, stored.Voters)
}
