package http

import (
	"errors"
	"net/http"

	"github.com/sprinkles1113/community-hub/internal/hub/service"
	"github.com/sprinkles1113/community-hub/pkg/httpx"
	"github.com/sprinkles1113/community-hub/pkg/hubsdk"
	"github.com/sprinkles1113/community-hub/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a time-limited bearer token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{email=string,password=string}	true	"Credentials"
//	@Success		200		{object}	hubsdk.LoginResponse					"id, username, email, tokenBalance, token"
//	@Failure		400		{object}	hubsdk.ErrorResponse					"message"
//	@Failure		500		{object}	hubsdk.ErrorResponse					"message"
//	@Router			/api/users/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	account, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown email and wrong password share one message.
			httpx.WriteJSON(w, http.StatusBadRequest, hubsdk.ErrorResponse{
				Message: "Invalid credentials",
			})
			return
		}
		log.Error("failed to log in", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, hubsdk.ErrorResponse{
			Message: "Server error",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.LoginResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		TokenBalance: account.TokenBalance,
		Token:        token,
	})
}
