package http

import (
	"errors"
	"net/http"

	"github.com/sprinkles1113/community-hub/internal/hub/service"
	"github.com/sprinkles1113/community-hub/pkg/httpx"
	"github.com/sprinkles1113/community-hub/pkg/hubsdk"
	"github.com/sprinkles1113/community-hub/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account with the default starting token balance
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{username=string,email=string,password=string}	true	"Registration details"
//	@Success		201		{object}	hubsdk.AccountResponse									"id, username, email, tokenBalance"
//	@Failure		400		{object}	hubsdk.ErrorResponse									"message"
//	@Failure		500		{object}	hubsdk.ErrorResponse									"message"
//	@Router			/api/users/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	account, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: "Username, email and password are required",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: "Email already in use",
			})
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: "Username already in use",
			})
		default:
			log.Error("failed to register account", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, hubsdk.ErrorResponse{
				Message: "Server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, hubsdk.AccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		TokenBalance: account.TokenBalance,
	})
}
