package http

import (
	"net/http"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/domain"
	"github.com/sprinkles1113/community-hub/internal/hub/service"
	"github.com/sprinkles1113/community-hub/pkg/httpx"
	"github.com/sprinkles1113/community-hub/pkg/hubsdk"
	"github.com/sprinkles1113/community-hub/pkg/slogx"
)

type ProposalsListHandler struct {
	VotingService *service.VotingService
}

// ServeHTTP godoc
//
//	@Summary		List Proposals Endpoint
//	@Description	List every proposal, newest first, including current vote tallies and voter sets
//	@Tags			Proposals
//	@Produce		json
//	@Success		200	{array}		hubsdk.ProposalResponse	"_id, title, description, createdBy, votes, voters, createdAt, updatedAt"
//	@Failure		500	{object}	hubsdk.ErrorResponse	"message"
//	@Router			/api/proposals [get].
func (h *ProposalsListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	proposals, err := h.VotingService.ListProposals(ctx)
	if err != nil {
		log.Error("failed to list proposals", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, hubsdk.ErrorResponse{
			Message: "Server error",
		})
		return
	}

	response := make([]hubsdk.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		response = append(response, toProposalResponse(p))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

func toProposalResponse(p domain.Proposal) hubsdk.ProposalResponse {
	voters := p.Voters
	if voters == nil {
		voters = []string{}
	}
	return hubsdk.ProposalResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		Votes:       p.Votes,
		Voters:      voters,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
