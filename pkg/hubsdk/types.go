package hubsdk

// ErrorResponse is the body every failed request carries.
type ErrorResponse struct {
	// Message is a human-readable description of what went wrong
	Message string `json:"message"`
}

// AccountResponse is the public projection of an account. The password
// hash and claim timestamp never leave the server.
type AccountResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	TokenBalance int64  `json:"tokenBalance"`
}

// LoginResponse is the account projection plus the bearer token issued
// for the session.
type LoginResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	TokenBalance int64  `json:"tokenBalance"`
	Token        string `json:"token"`
}

// EarnResponse reports the outcome of a daily claim.
type EarnResponse struct {
	Message      string `json:"message"`
	TokenBalance int64  `json:"tokenBalance"`
}

// ProposalResponse is the full wire form of a proposal. The identifier is
// published as "_id" and clients depend on that spelling.
type ProposalResponse struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CreatedBy   string   `json:"createdBy"`
	Votes       int64    `json:"votes"`
	Voters      []string `json:"voters"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// VoteResponse reports a successful vote and the proposal's new tally.
type VoteResponse struct {
	Message string `json:"message"`
	Votes   int64  `json:"votes"`
}

// HealthChecks reports the status of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned from the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
