package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

const creditsColumns = `user_id, credits_balance, trial_status, trial_credits_used, updated_at`

func scanCredits(row repository.RowScanner) (*model.UserCredits, error) {
	var c model.UserCredits
	if err := row.Scan(&c.UserID, &c.CreditsBalance, &c.TrialStatus, &c.TrialCreditsUsed, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCredits returns the balance, seeding a trial row on first access
func (pdb *PostgresDB) GetOrCreateCredits(ctx context.Context, userID string, trialCredits int) (*model.UserCredits, error) {
	query := `INSERT INTO user_credits (user_id, credits_balance, trial_status, trial_credits_used, updated_at)
		VALUES ($1, $2, 'active', 0, NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + creditsColumns
	c, err := scanCredits(pdb.db.QueryRowContext(ctx, query, userID, trialCredits))
	if err != nil {
		return nil, dbError(apperrors.ErrUpdateFailed, "get or create credits", err)
	}
	return c, nil
}

// DebitCredits relies on a single conditional UPDATE so concurrent debits
// can never drive the balance negative.
func (pdb *PostgresDB) DebitCredits(ctx context.Context, userID string, credits int) (*model.UserCredits, error) {
	query := `UPDATE user_credits
		SET credits_balance = credits_balance - $2,
		    trial_credits_used = CASE WHEN trial_status = 'active' THEN trial_credits_used + $2 ELSE trial_credits_used END,
		    trial_status = CASE WHEN trial_status = 'active' AND credits_balance - $2 = 0 THEN 'exhausted' ELSE trial_status END,
		    updated_at = NOW()
		WHERE user_id = $1 AND credits_balance >= $2
		RETURNING ` + creditsColumns
	c, err := scanCredits(pdb.db.QueryRowContext(ctx, query, userID, credits))
	if err == sql.ErrNoRows {
		return nil, apperrors.Wrapf(apperrors.ErrInsufficientCredits, "user %s needs %d", userID, credits)
	}
	if err != nil {
		return nil, dbError(apperrors.ErrUpdateFailed, "debit credits", err)
	}
	return c, nil
}

func (pdb *PostgresDB) RefundCredits(ctx context.Context, userID string, credits int) error {
	query := `UPDATE user_credits SET credits_balance = credits_balance + $2, updated_at = NOW() WHERE user_id = $1`
	return pdb.execOne(ctx, "user credits", userID, query, userID, credits)
}

func (pdb *PostgresDB) RecordUsage(ctx context.Context, usage *model.CreditUsage) error {
	if usage.ID == "" {
		usage.ID = uuid.New().String()
	}
	if usage.CreatedAt.IsZero() {
		usage.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO credit_usage (id, user_id, transcription_id, credits_used, duration, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`
	_, err := pdb.db.ExecContext(ctx, query,
		usage.ID, usage.UserID, usage.TranscriptionID, usage.CreditsUsed, usage.Duration, usage.CreatedAt)
	if err != nil {
		return dbError(apperrors.ErrInsertFailed, "insert credit usage", err)
	}
	return nil
}

func (pdb *PostgresDB) ListTransactions(ctx context.Context, userID string, limit int) ([]model.CreditTransaction, error) {
	query := `SELECT id, user_id, transaction_id, credits, amount, currency, status, created_at
		FROM credit_transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := pdb.db.QueryContext(ctx, query, userID, repository.NormalizeLimit(limit, 20, 100))
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "list credit transactions", err)
	}
	defer rows.Close()

	txs := make([]model.CreditTransaction, 0)
	for rows.Next() {
		var tx model.CreditTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.TransactionID, &tx.Credits, &tx.Amount, &tx.Currency, &tx.Status, &tx.CreatedAt); err != nil {
			return nil, dbError(apperrors.ErrScanFailed, "scan row", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (pdb *PostgresDB) ListUsage(ctx context.Context, userID string, limit int) ([]model.CreditUsage, error) {
	query := `SELECT id, user_id, COALESCE(transcription_id, ''), credits_used, duration, created_at
		FROM credit_usage WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := pdb.db.QueryContext(ctx, query, userID, repository.NormalizeLimit(limit, 20, 100))
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "list credit usage", err)
	}
	defer rows.Close()

	usage := make([]model.CreditUsage, 0)
	for rows.Next() {
		var u model.CreditUsage
		if err := rows.Scan(&u.ID, &u.UserID, &u.TranscriptionID, &u.CreditsUsed, &u.Duration, &u.CreatedAt); err != nil {
			return nil, dbError(apperrors.ErrScanFailed, "scan row", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (pdb *PostgresDB) ApplyPurchase(ctx context.Context, event model.WebhookEvent, tx *model.CreditTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	if event.ProcessedAt.IsZero() {
		event.ProcessedAt = time.Now().UTC()
	}

	return repository.WithTx(ctx, pdb.db, func(sqlTx *sql.Tx) error {
		res, err := sqlTx.ExecContext(ctx,
			`INSERT INTO webhook_events (event_id, event_type, processed_at) VALUES ($1, $2, $3)
			 ON CONFLICT (event_id) DO NOTHING`,
			event.EventID, event.EventType, event.ProcessedAt)
		if err != nil {
			return dbError(apperrors.ErrInsertFailed, "insert webhook event", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return dbError(apperrors.ErrQueryFailed, "rows affected", err)
		} else if n == 0 {
			return apperrors.Wrapf(apperrors.ErrDuplicateEvent, "event %s", event.EventID)
		}

		res, err = sqlTx.ExecContext(ctx,
			`INSERT INTO credit_transactions (id, user_id, transaction_id, credits, amount, currency, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (transaction_id) DO NOTHING`,
			tx.ID, tx.UserID, tx.TransactionID, tx.Credits, tx.Amount, tx.Currency, tx.Status, tx.CreatedAt)
		if err != nil {
			return dbError(apperrors.ErrInsertFailed, "insert credit transaction", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return dbError(apperrors.ErrQueryFailed, "rows affected", err)
		} else if n == 0 {
			return apperrors.Wrapf(apperrors.ErrDuplicateEvent, "transaction %s", tx.TransactionID)
		}

		if _, err := sqlTx.ExecContext(ctx, `SELECT add_user_credits($1, $2)`, tx.UserID, tx.Credits); err != nil {
			return dbError(apperrors.ErrUpdateFailed, "add user credits", err)
		}
		return nil
	})
}
