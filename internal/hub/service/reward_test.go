package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRewardService_ClaimDaily(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first claim credits the reward", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &RewardService{Store: s}
		account := createAccount(t, s, "fresh", 100, nil)

		balance, err := svc.ClaimDaily(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, int64(110), balance)

		stored, err := s.Accounts().GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastClaimed)
	})

	t.Run("claim after window elapses", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &RewardService{Store: s}
		last := time.Now().UTC().Add(-25 * time.Hour)
		account := createAccount(t, s, "eligible", 40, &last)

		balance, err := svc.ClaimDaily(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, int64(50), balance)
	})

	t.Run("claim inside window reports hours remaining", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &RewardService{Store: s}
		last := time.Now().UTC().Add(-2*time.Hour - 30*time.Minute)
		account := createAccount(t, s, "impatient", 40, &last)

		_, err := svc.ClaimDaily(ctx, account.ID)

		var tooSoon *TooSoonError
		require.ErrorAs(t, err, &tooSoon)
		// 2.5h elapsed floors to 2, leaving 22 whole hours.
		require.Equal(t, int64(22), tooSoon.HoursRemaining)
	})

	t.Run("just under the window still waits an hour", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &RewardService{Store: s}
		last := time.Now().UTC().Add(-23*time.Hour - 54*time.Minute)
		account := createAccount(t, s, "almost", 40, &last)

		_, err := svc.ClaimDaily(ctx, account.ID)

		var tooSoon *TooSoonError
		require.ErrorAs(t, err, &tooSoon)
		require.Equal(t, int64(1), tooSoon.HoursRemaining)
	})

	t.Run("back-to-back claims only credit once", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		svc := &RewardService{Store: s}
		account := createAccount(t, s, "greedy", 100, nil)

		balance, err := svc.ClaimDaily(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, int64(110), balance)

		_, err = svc.ClaimDaily(ctx, account.ID)
		var tooSoon *TooSoonError
		require.ErrorAs(t, err, &tooSoon)
		require.Equal(t, int64(24), tooSoon.HoursRemaining)

		stored, err := s.Accounts().GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.Equal(t, int64(110), stored.TokenBalance)
	})

	t.Run("unknown account", func(t *testing.T) {
		t.Parallel()

		svc := &RewardService{Store: newTestStore(t)}
		_, err := svc.ClaimDaily(ctx, "missing")
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}
