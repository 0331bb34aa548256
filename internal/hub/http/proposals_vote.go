package http

import (
	"errors"
	"net/http"

	"github.com/sprinkles1113/community-hub/internal/hub/service"
	"github.com/sprinkles1113/community-hub/pkg/httpx"
	"github.com/sprinkles1113/community-hub/pkg/hubsdk"
	"github.com/sprinkles1113/community-hub/pkg/slogx"
)

type ProposalsVoteHandler struct {
	VotingService *service.VotingService
}

// ServeHTTP godoc
//
//	@Summary		Vote Endpoint
//	@Description	Spend tokens to cast a vote on a proposal
//	@Description	Each account can vote at most once per proposal
//	@Tags			Proposals
//	@Produce		json
//	@Param			id	path		string					true	"Proposal id"
//	@Success		200	{object}	hubsdk.VoteResponse		"message, votes"
//	@Failure		400	{object}	hubsdk.ErrorResponse	"message"
//	@Failure		401	{object}	hubsdk.ErrorResponse	"message"
//	@Failure		404	{object}	hubsdk.ErrorResponse	"message"
//	@Failure		500	{object}	hubsdk.ErrorResponse	"message"
//	@Security		BearerAuth
//	@Router			/api/proposals/{id}/vote [post].
func (h *ProposalsVoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	accountID := httpx.AccountIDFromContext(ctx)
	proposalID := r.PathValue("id")

	votes, err := h.VotingService.Vote(ctx, accountID, proposalID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyVoted):
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: "You already voted on this proposal",
			})
		case errors.Is(err, service.ErrInsufficientTokens):
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: "Not enough tokens to vote",
			})
		case errors.Is(err, service.ErrProposalNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, hubsdk.ErrorResponse{
				Message: "Proposal not found",
			})
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, hubsdk.ErrorResponse{
				Message: "User not found",
			})
		default:
			log.Error("failed to cast vote", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, hubsdk.ErrorResponse{
				Message: "Server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.VoteResponse{
		Message: "Vote cast successfully",
		Votes:   votes,
	})
}
