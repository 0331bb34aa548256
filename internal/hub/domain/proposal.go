package domain

import "time"

type Proposal struct {
	ID          string
	Title       string
	Description string
	CreatedBy   string // Foreign key to accounts
	Votes       int64
	Voters      []string // Account ids; len(Voters) == Votes at all times
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasVoter reports whether the account already appears in the voter set.
func (p Proposal) HasVoter(accountID string) bool {
	for _, v := range p.Voters {
		if v == accountID {
			return true
		}
	}
	return false
}
