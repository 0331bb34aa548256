package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/service"
	"github.com/sprinkles1113/community-hub/internal/hub/store"
	"github.com/sprinkles1113/community-hub/pkg/httpx"
	"github.com/sprinkles1113/community-hub/pkg/jwtx"
	"github.com/sprinkles1113/community-hub/pkg/slogx"

	_ "github.com/sprinkles1113/community-hub/api/hub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	AuthService   *service.AuthService
	RewardService *service.RewardService
	VotingService *service.VotingService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerProposals()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Community Hub API
//	@version		0.1.0
//	@description	Community engagement service: accounts earn a daily token grant and spend tokens voting on community proposals.
//	@description
//	@description				Bearer tokens are HS256-signed JWTs with a two hour validity window.
//
//	@contact.name				sprinkles1113
//	@contact.url				https://github.com/sprinkles1113/community-hub
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	r.Mux.Handle("POST /api/users/register", &RegisterHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/users/login", &LoginHandler{AuthService: r.AuthService})

	earnHandler := &EarnHandler{RewardService: r.RewardService}
	r.Mux.Handle("POST /api/users/earn",
		httpx.Chain(earnHandler,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerProposals() {
	r.Mux.Handle("GET /api/proposals", &ProposalsListHandler{VotingService: r.VotingService})

	createHandler := &ProposalsCreateHandler{VotingService: r.VotingService}
	r.Mux.Handle("POST /api/proposals",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
		),
	)

	voteHandler := &ProposalsVoteHandler{VotingService: r.VotingService}
	r.Mux.Handle("POST /api/proposals/{id}/vote",
		httpx.Chain(voteHandler,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
