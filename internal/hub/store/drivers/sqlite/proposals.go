package sqlite

import (
	"context"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/domain"
	"github.com/sprinkles1113/community-hub/internal/hub/store"
)

type proposalsRepo struct {
	db dbtx
}

func (r *proposalsRepo) GetProposalByID(ctx context.Context, id string) (domain.Proposal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, created_by, votes, created_at, updated_at
		FROM proposals WHERE id = ?`, id)

	var p domain.Proposal
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedBy, &p.Votes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Proposal{}, mapNotFound(err)
	}

	p.Voters, err = r.listVoters(ctx, p.ID)
	if err != nil {
		return domain.Proposal{}, err
	}
	return p, nil
}

func (r *proposalsRepo) ListProposals(ctx context.Context) ([]domain.Proposal, error) {
	// ULIDs sort by creation time, so the id tie-breaker keeps
	// same-timestamp proposals in stable newest-first order.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, created_by, votes, created_at, updated_at
		FROM proposals
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Proposal
	for rows.Next() {
		var p domain.Proposal
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedBy, &p.Votes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Voters = []string{}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachVoters(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *proposalsRepo) CreateProposal(ctx context.Context, p domain.Proposal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO proposals (id, title, description, created_by, votes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.CreatedBy, p.Votes, p.CreatedAt, p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *proposalsRepo) HasVoted(ctx context.Context, proposalID, accountID string) (bool, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM proposal_voters
		WHERE proposal_id = ? AND account_id = ?`,
		proposalID, accountID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *proposalsRepo) AddVote(ctx context.Context, proposalID, accountID string, now time.Time) error {
	// The composite primary key rejects a second row for the same pair, so
	// a racing duplicate surfaces as ErrAlreadyExists before the counter
	// moves.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO proposal_voters (proposal_id, account_id, created_at)
		VALUES (?, ?, ?)`,
		proposalID, accountID, now,
	)
	if err := mapConstraint(err); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE proposals SET votes = votes + 1, updated_at = ? WHERE id = ?`,
		now, proposalID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *proposalsRepo) CountVotes(ctx context.Context, proposalID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT votes FROM proposals WHERE id = ?`, proposalID,
	).Scan(&n)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return n, nil
}

func (r *proposalsRepo) listVoters(ctx context.Context, proposalID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT account_id FROM proposal_voters
		WHERE proposal_id = ?
		ORDER BY created_at, account_id`, proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voters := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		voters = append(voters, id)
	}
	return voters, rows.Err()
}

// attachVoters fills the voter sets for a page of proposals in one query.
func (r *proposalsRepo) attachVoters(ctx context.Context, proposals []domain.Proposal) error {
	if len(proposals) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT proposal_id, account_id FROM proposal_voters
		ORDER BY created_at, account_id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProposal := make(map[string][]string)
	for rows.Next() {
		var proposalID, accountID string
		if err := rows.Scan(&proposalID, &accountID); err != nil {
			return err
		}
		byProposal[proposalID] = append(byProposal[proposalID], accountID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range proposals {
		if voters, ok := byProposal[proposals[i].ID]; ok {
			proposals[i].Voters = voters
		}
	}
	return nil
}
