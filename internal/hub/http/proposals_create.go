package http

import (
	"errors"
	"net/http"

	"github.com/sprinkles1113/community-hub/internal/hub/service"
	"github.com/sprinkles1113/community-hub/pkg/httpx"
	"github.com/sprinkles1113/community-hub/pkg/hubsdk"
	"github.com/sprinkles1113/community-hub/pkg/slogx"
)

type ProposalsCreateHandler struct {
	VotingService *service.VotingService
}

// ServeHTTP godoc
//
//	@Summary		Create Proposal Endpoint
//	@Description	Submit a new proposal on behalf of the authenticated account
//	@Tags			Proposals
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{title=string,description=string}	true	"Proposal details, title is required"
//	@Success		201		{object}	hubsdk.ProposalResponse						"the created proposal"
//	@Failure		400		{object}	hubsdk.ErrorResponse						"message"
//	@Failure		401		{object}	hubsdk.ErrorResponse						"message"
//	@Failure		404		{object}	hubsdk.ErrorResponse						"message"
//	@Failure		500		{object}	hubsdk.ErrorResponse						"message"
//	@Security		BearerAuth
//	@Router			/api/proposals [post].
func (h *ProposalsCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	accountID := httpx.AccountIDFromContext(ctx)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	proposal, err := h.VotingService.CreateProposal(ctx, accountID, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTitle):
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: "Title is required",
			})
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, hubsdk.ErrorResponse{
				Message: "User not found",
			})
		default:
			log.Error("failed to create proposal", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, hubsdk.ErrorResponse{
				Message: "Server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProposalResponse(proposal))
}
