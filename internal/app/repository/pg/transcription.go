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

const transcriptionColumns = `id, user_id, transcript_id, status, file_name, file_size, file_type, audio_url,
	transcription_text, duration, quality_score, reviewed, error_message, metadata, credits_charged,
	created_at, updated_at`

func scanTranscription(row repository.RowScanner) (*model.Transcription, error) {
	var t model.Transcription
	var quality sql.NullFloat64
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TranscriptID,
		&t.Status,
		&t.FileName,
		&t.FileSize,
		&t.FileType,
		&t.AudioURL,
		&t.TranscriptionText,
		&t.Duration,
		&quality,
		&t.Reviewed,
		&t.ErrorMessage,
		&t.Metadata,
		&t.CreditsCharged,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if quality.Valid {
		q := quality.Float64
		t.QualityScore = &q
	}
	return &t, nil
}

func scanTranscriptions(rows *sql.Rows) ([]model.Transcription, error) {
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		t, err := scanTranscription(rows)
		if err != nil {
			return nil, dbError(apperrors.ErrScanFailed, "scan row", err)
		}
		transcriptions = append(transcriptions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(apperrors.ErrScanFailed, "iterate rows", err)
	}
	return transcriptions, nil
}

func (pdb *PostgresDB) CreateTranscription(ctx context.Context, t *model.Transcription) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = model.StatusProcessing
	}

	query := `INSERT INTO transcriptions (` + transcriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := pdb.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.TranscriptID, t.Status, t.FileName, t.FileSize, t.FileType, t.AudioURL,
		t.TranscriptionText, t.Duration, t.QualityScore, t.Reviewed, t.ErrorMessage, t.Metadata, t.CreditsCharged,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return dbError(apperrors.ErrInsertFailed, "insert transcription", err)
	}
	return nil
}

func (pdb *PostgresDB) GetTranscription(ctx context.Context, id string) (*model.Transcription, error) {
	query := `SELECT ` + transcriptionColumns + ` FROM transcriptions WHERE id = $1`
	t, err := scanTranscription(pdb.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("transcription", id)
	}
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "get transcription", err)
	}
	return t, nil
}

func (pdb *PostgresDB) GetTranscriptionForUser(ctx context.Context, id, userID string) (*model.Transcription, error) {
	query := `SELECT ` + transcriptionColumns + ` FROM transcriptions WHERE id = $1 AND user_id = $2`
	t, err := scanTranscription(pdb.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("transcription", id)
	}
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "get transcription", err)
	}
	return t, nil
}

// GetTranscriptionByTranscriptID returns the oldest row for a provider job
func (pdb *PostgresDB) GetTranscriptionByTranscriptID(ctx context.Context, transcriptID string) (*model.Transcription, error) {
	query := `SELECT ` + transcriptionColumns + ` FROM transcriptions
		WHERE transcript_id = $1 ORDER BY created_at ASC LIMIT 1`
	t, err := scanTranscription(pdb.db.QueryRowContext(ctx, query, transcriptID))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("transcription for job", transcriptID)
	}
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "get transcription by job", err)
	}
	return t, nil
}

func (pdb *PostgresDB) ListTranscriptions(ctx context.Context, filter repository.TranscriptionFilter) ([]model.Transcription, int, error) {
	limit := repository.NormalizeLimit(filter.Limit, 20, 100)

	var total int
	countQuery := `SELECT COUNT(*) FROM transcriptions WHERE user_id = $1 AND ($2::text = '' OR status = $2::text)`
	if err := pdb.db.QueryRowContext(ctx, countQuery, filter.UserID, string(filter.Status)).Scan(&total); err != nil {
		return nil, 0, dbError(apperrors.ErrQueryFailed, "count transcriptions", err)
	}

	query := `SELECT ` + transcriptionColumns + ` FROM transcriptions
		WHERE user_id = $1 AND ($2::text = '' OR status = $2::text)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := pdb.db.QueryContext(ctx, query, filter.UserID, string(filter.Status), limit, filter.Offset)
	if err != nil {
		return nil, 0, dbError(apperrors.ErrQueryFailed, "list transcriptions", err)
	}
	transcriptions, err := scanTranscriptions(rows)
	if err != nil {
		return nil, 0, err
	}
	return transcriptions, total, nil
}

func (pdb *PostgresDB) ListProcessing(ctx context.Context, limit int) ([]model.Transcription, error) {
	query := `SELECT ` + transcriptionColumns + ` FROM transcriptions
		WHERE status = 'processing' AND transcript_id <> ''
		ORDER BY created_at ASC
		LIMIT $1`
	rows, err := pdb.db.QueryContext(ctx, query, repository.NormalizeLimit(limit, 500, 5000))
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "list processing transcriptions", err)
	}
	return scanTranscriptions(rows)
}

func (pdb *PostgresDB) ListForQualityReview(ctx context.Context, userID string, threshold float64, limit int) ([]model.Transcription, error) {
	query := `SELECT ` + transcriptionColumns + ` FROM transcriptions
		WHERE user_id = $1 AND status = 'completed' AND reviewed = FALSE
		  AND quality_score IS NOT NULL AND quality_score < $2
		ORDER BY quality_score ASC
		LIMIT $3`
	rows, err := pdb.db.QueryContext(ctx, query, userID, threshold, repository.NormalizeLimit(limit, 50, 200))
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "list quality review", err)
	}
	return scanTranscriptions(rows)
}

func (pdb *PostgresDB) UpdateFromProvider(ctx context.Context, id string, update model.TranscriptionUpdate) (bool, error) {
	query := `UPDATE transcriptions
		SET status = $2, transcription_text = $3, duration = $4, quality_score = $5, error_message = $6, updated_at = NOW()
		WHERE id = $1 AND status = 'processing'`
	res, err := pdb.db.ExecContext(ctx, query,
		id, update.Status, update.TranscriptionText, update.Duration, update.QualityScore, update.ErrorMessage)
	if err != nil {
		return false, dbError(apperrors.ErrUpdateFailed, "update transcription from provider", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, dbError(apperrors.ErrQueryFailed, "rows affected", err)
	}
	return n > 0, nil
}

func (pdb *PostgresDB) UpdateText(ctx context.Context, id, userID, text string) error {
	query := `UPDATE transcriptions SET transcription_text = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`
	return pdb.execOne(ctx, "transcription", id, query, id, userID, text)
}

func (pdb *PostgresDB) UpdateReview(ctx context.Context, id, userID string, reviewed bool, qualityScore *float64) error {
	query := `UPDATE transcriptions
		SET reviewed = $3, quality_score = COALESCE($4, quality_score), updated_at = NOW()
		WHERE id = $1 AND user_id = $2`
	return pdb.execOne(ctx, "transcription", id, query, id, userID, reviewed, qualityScore)
}

func (pdb *PostgresDB) UpdateMetadata(ctx context.Context, id string, metadata model.TranscriptionMetadata) error {
	query := `UPDATE transcriptions SET metadata = $2, updated_at = NOW() WHERE id = $1`
	return pdb.execOne(ctx, "transcription", id, query, id, metadata)
}

func (pdb *PostgresDB) DeleteDuplicates(ctx context.Context, transcriptID, keepID string) (int64, error) {
	query := `DELETE FROM transcriptions WHERE transcript_id = $1 AND id <> $2`
	res, err := pdb.db.ExecContext(ctx, query, transcriptID, keepID)
	if err != nil {
		return 0, dbError(apperrors.ErrUpdateFailed, "delete duplicate transcriptions", err)
	}
	return res.RowsAffected()
}

// execOne runs an update that must touch exactly one row
func (pdb *PostgresDB) execOne(ctx context.Context, item, id, query string, args ...interface{}) error {
	res, err := pdb.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbError(apperrors.ErrUpdateFailed, "update "+item, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(apperrors.ErrQueryFailed, "rows affected", err)
	}
	if n == 0 {
		return apperrors.NotFound(item, id)
	}
	return nil
}
