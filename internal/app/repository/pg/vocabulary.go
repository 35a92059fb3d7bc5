package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

const vocabularyColumns = `id, user_id, name, terms, is_default, created_at, updated_at`

func scanVocabulary(row repository.RowScanner) (*model.CustomVocabulary, error) {
	var v model.CustomVocabulary
	var terms pq.StringArray
	if err := row.Scan(&v.ID, &v.UserID, &v.Name, &terms, &v.IsDefault, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Terms = []string(terms)
	if v.Terms == nil {
		v.Terms = []string{}
	}
	return &v, nil
}

// unsetDefaults clears is_default on every other vocabulary of the user.
// Callers run it in the same transaction that sets the new default.
func unsetDefaults(ctx context.Context, tx *sql.Tx, userID, keepID string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE custom_vocabularies SET is_default = FALSE, updated_at = NOW()
		 WHERE user_id = $1 AND id <> $2 AND is_default = TRUE`,
		userID, keepID)
	if err != nil {
		return dbError(apperrors.ErrUpdateFailed, "unset default vocabulary", err)
	}
	return nil
}

func (pdb *PostgresDB) CreateVocabulary(ctx context.Context, v *model.CustomVocabulary) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	return repository.WithTx(ctx, pdb.db, func(tx *sql.Tx) error {
		if v.IsDefault {
			if err := unsetDefaults(ctx, tx, v.UserID, v.ID); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO custom_vocabularies (`+vocabularyColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			v.ID, v.UserID, v.Name, pq.Array(v.Terms), v.IsDefault, v.CreatedAt, v.UpdatedAt)
		if err != nil {
			return dbError(apperrors.ErrInsertFailed, "insert vocabulary", err)
		}
		return nil
	})
}

func (pdb *PostgresDB) UpdateVocabulary(ctx context.Context, v *model.CustomVocabulary) error {
	v.UpdatedAt = time.Now().UTC()

	return repository.WithTx(ctx, pdb.db, func(tx *sql.Tx) error {
		if v.IsDefault {
			if err := unsetDefaults(ctx, tx, v.UserID, v.ID); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE custom_vocabularies SET name = $3, terms = $4, is_default = $5, updated_at = $6
			 WHERE id = $1 AND user_id = $2`,
			v.ID, v.UserID, v.Name, pq.Array(v.Terms), v.IsDefault, v.UpdatedAt)
		if err != nil {
			return dbError(apperrors.ErrUpdateFailed, "update vocabulary", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return dbError(apperrors.ErrQueryFailed, "rows affected", err)
		} else if n == 0 {
			return apperrors.NotFound("vocabulary", v.ID)
		}
		return nil
	})
}

func (pdb *PostgresDB) DeleteVocabulary(ctx context.Context, id, userID string) error {
	query := `DELETE FROM custom_vocabularies WHERE id = $1 AND user_id = $2`
	return pdb.execOne(ctx, "vocabulary", id, query, id, userID)
}

func (pdb *PostgresDB) GetVocabulary(ctx context.Context, id, userID string) (*model.CustomVocabulary, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM custom_vocabularies WHERE id = $1 AND user_id = $2`
	v, err := scanVocabulary(pdb.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("vocabulary", id)
	}
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "get vocabulary", err)
	}
	return v, nil
}

func (pdb *PostgresDB) GetDefaultVocabulary(ctx context.Context, userID string) (*model.CustomVocabulary, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM custom_vocabularies
		WHERE user_id = $1 AND is_default = TRUE ORDER BY updated_at DESC LIMIT 1`
	v, err := scanVocabulary(pdb.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("default vocabulary", userID)
	}
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "get default vocabulary", err)
	}
	return v, nil
}

func (pdb *PostgresDB) ListVocabularies(ctx context.Context, userID string) ([]model.CustomVocabulary, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM custom_vocabularies WHERE user_id = $1 ORDER BY is_default DESC, name ASC`
	rows, err := pdb.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "list vocabularies", err)
	}
	defer rows.Close()

	vocabularies := make([]model.CustomVocabulary, 0)
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, dbError(apperrors.ErrScanFailed, "scan row", err)
		}
		vocabularies = append(vocabularies, *v)
	}
	return vocabularies, rows.Err()
}
