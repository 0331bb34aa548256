package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sprinkles1113/community-hub/internal/hub/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, username, email, password_hash, token_balance, last_claimed, created_at, updated_at`

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a           domain.Account
		lastClaimed sql.NullTime
	)
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.TokenBalance,
		&lastClaimed,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.LastClaimed = mapNullTimePtr(lastClaimed)
	return a, nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, username, email, password_hash, token_balance, last_claimed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.Username,
		a.Email,
		a.PasswordHash,
		a.TokenBalance,
		mapOptionalTime(a.LastClaimed),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *accountsRepo) DebitTokenBalance(ctx context.Context, accountID string, amount int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET token_balance = token_balance - ?, updated_at = ?
		WHERE id = ? AND token_balance >= ?`,
		amount, time.Now().UTC(), accountID, amount,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *accountsRepo) ClaimReward(
	ctx context.Context,
	accountID string,
	amount int64,
	now time.Time,
	window time.Duration,
) (bool, error) {
	// Single conditional update: credit and stamp only when the previous
	// claim is old enough. Two racing claims cannot both satisfy the guard.
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET token_balance = token_balance + ?, last_claimed = ?, updated_at = ?
		WHERE id = ? AND (last_claimed IS NULL OR last_claimed <= ?)`,
		amount, now, now, accountID, now.Add(-window),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
