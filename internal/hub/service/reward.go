package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/store"
)

const (
	DefaultRewardAmount = 10
	DefaultRewardWindow = 24 * time.Hour
)

var ErrAccountNotFound = errors.New("account_not_found")

// TooSoonError reports a claim attempt inside the cooldown window.
type TooSoonError struct {
	HoursRemaining int64
}

func (e *TooSoonError) Error() string {
	return fmt.Sprintf("reward already claimed, eligible again in %d hours", e.HoursRemaining)
}

// RewardService hands out the periodic token grant.
type RewardService struct {
	Store  store.Store
	Amount int64
	Window time.Duration
}

// RewardAmount reports the configured grant size.
func (s *RewardService) RewardAmount() int64 { return s.amount() }

func (s *RewardService) amount() int64 {
	if s.Amount == 0 {
		return DefaultRewardAmount
	}
	return s.Amount
}

func (s *RewardService) window() time.Duration {
	if s.Window == 0 {
		return DefaultRewardWindow
	}
	return s.Window
}

// ClaimDaily credits the reward if the account has not claimed within the
// window, and returns the balance after crediting. Eligibility is enforced
// twice: a pre-read produces the remaining-hours figure for the error, and
// the credit itself is a conditional update so concurrent claims can't
// both land.
func (s *RewardService) ClaimDaily(ctx context.Context, accountID string) (int64, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrAccountNotFound
		}
		return 0, fmt.Errorf("load account: %w", err)
	}

	now := time.Now().UTC()
	if account.LastClaimed != nil {
		if remaining, ok := s.remainingHours(*account.LastClaimed, now); ok {
			return 0, &TooSoonError{HoursRemaining: remaining}
		}
	}

	claimed, err := s.Store.Accounts().ClaimReward(ctx, accountID, s.amount(), now, s.window())
	if err != nil {
		return 0, fmt.Errorf("claim reward: %w", err)
	}
	if !claimed {
		// Lost a race against another claim on the same account. Re-read
		// to report an accurate cooldown.
		account, err = s.Store.Accounts().GetAccountByID(ctx, accountID)
		if err != nil {
			return 0, fmt.Errorf("load account: %w", err)
		}
		remaining := int64(1)
		if account.LastClaimed != nil {
			if r, ok := s.remainingHours(*account.LastClaimed, now); ok {
				remaining = r
			}
		}
		return 0, &TooSoonError{HoursRemaining: remaining}
	}

	account, err = s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("load account: %w", err)
	}
	return account.TokenBalance, nil
}

// remainingHours reports how many whole hours are left in the cooldown,
// or ok=false when the window has elapsed. Elapsed time is floored, so
// 23.9h since the last claim still leaves 1 hour remaining.
func (s *RewardService) remainingHours(lastClaimed, now time.Time) (int64, bool) {
	windowHours := int64(s.window() / time.Hour)
	elapsed := int64(now.Sub(lastClaimed).Hours())
	if elapsed >= windowHours {
		return 0, false
	}
	return windowHours - elapsed, true
}
