package pg

import (
	"context"
	"database/sql"
	"time"

	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/model"
)

func (pdb *PostgresDB) GetAnalytics(ctx context.Context, userID string, since time.Time) (*model.UserAnalytics, error) {
	a := &model.UserAnalytics{Daily: make([]model.DailyCount, 0)}
	var avgQuality sql.NullFloat64

	summary := `SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'processing'),
			COUNT(*) FILTER (WHERE status = 'error'),
			COALESCE(SUM(duration) FILTER (WHERE status = 'completed'), 0) / 60.0,
			AVG(quality_score) FILTER (WHERE quality_score IS NOT NULL)
		FROM transcriptions WHERE user_id = $1`
	err := pdb.db.QueryRowContext(ctx, summary, userID).Scan(
		&a.Total, &a.Completed, &a.Processing, &a.Failed, &a.TotalMinutes, &avgQuality)
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "transcription summary", err)
	}
	if avgQuality.Valid {
		q := avgQuality.Float64
		a.AverageQuality = &q
	}

	usage := `SELECT COALESCE(SUM(credits_used), 0) FROM credit_usage WHERE user_id = $1 AND created_at >= $2`
	if err := pdb.db.QueryRowContext(ctx, usage, userID, since).Scan(&a.CreditsUsed30d); err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "credit usage summary", err)
	}

	daily := `SELECT date_trunc('day', created_at) AS day, COUNT(*)
		FROM transcriptions WHERE user_id = $1 AND created_at >= $2
		GROUP BY day ORDER BY day ASC`
	rows, err := pdb.db.QueryContext(ctx, daily, userID, since)
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "daily transcription counts", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d model.DailyCount
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, dbError(apperrors.ErrScanFailed, "scan row", err)
		}
		a.Daily = append(a.Daily, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(apperrors.ErrScanFailed, "iterate rows", err)
	}
	return a, nil
}
