package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sprinkles1113/community-hub/internal/hub/service"
	"github.com/sprinkles1113/community-hub/pkg/httpx"
	"github.com/sprinkles1113/community-hub/pkg/hubsdk"
	"github.com/sprinkles1113/community-hub/pkg/slogx"
)

type EarnHandler struct {
	RewardService *service.RewardService
}

// ServeHTTP godoc
//
//	@Summary		Daily Reward Endpoint
//	@Description	Claim the daily token reward for the authenticated account
//	@Description	A claim inside the 24-hour window fails and reports the whole hours remaining
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	hubsdk.EarnResponse		"message, tokenBalance"
//	@Failure		400	{object}	hubsdk.ErrorResponse	"message"
//	@Failure		401	{object}	hubsdk.ErrorResponse	"message"
//	@Failure		404	{object}	hubsdk.ErrorResponse	"message"
//	@Failure		500	{object}	hubsdk.ErrorResponse	"message"
//	@Security		BearerAuth
//	@Router			/api/users/earn [post].
func (h *EarnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	accountID := httpx.AccountIDFromContext(ctx)

	balance, err := h.RewardService.ClaimDaily(ctx, accountID)
	if err != nil {
		var tooSoon *service.TooSoonError
		switch {
		case errors.As(err, &tooSoon):
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: fmt.Sprintf(
					"You already claimed your reward. Come back in %d hour%s.",
					tooSoon.HoursRemaining, plural(tooSoon.HoursRemaining),
				),
			})
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, hubsdk.ErrorResponse{
				Message: "User not found",
			})
		default:
			log.Error("failed to claim reward", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, hubsdk.ErrorResponse{
				Message: "Server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.EarnResponse{
		Message:      fmt.Sprintf("You earned %d tokens!", h.RewardService.RewardAmount()),
		TokenBalance: balance,
	})
}

func plural(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}
