package pg

import (
	"context"
	"database/sql"
	"time"

	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

const integrationColumns = `id, user_id, provider, status, settings, created_at, updated_at`

func scanIntegration(row repository.RowScanner) (*model.Integration, error) {
	var i model.Integration
	if err := row.Scan(&i.ID, &i.UserID, &i.Provider, &i.Status, &i.Settings, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func (pdb *PostgresDB) UpsertIntegration(ctx context.Context, integration *model.Integration) error {
	if integration.ID == "" {
		integration.ID = model.IntegrationID(integration.Provider, integration.UserID)
	}
	now := time.Now().UTC()
	if integration.CreatedAt.IsZero() {
		integration.CreatedAt = now
	}
	integration.UpdatedAt = now

	query := `INSERT INTO integrations (` + integrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, settings = EXCLUDED.settings, updated_at = EXCLUDED.updated_at`
	_, err := pdb.db.ExecContext(ctx, query,
		integration.ID, integration.UserID, integration.Provider, integration.Status, integration.Settings,
		integration.CreatedAt, integration.UpdatedAt)
	if err != nil {
		return dbError(apperrors.ErrUpdateFailed, "upsert integration", err)
	}
	return nil
}

func (pdb *PostgresDB) GetIntegration(ctx context.Context, userID, provider string) (*model.Integration, error) {
	query := `SELECT ` + integrationColumns + ` FROM integrations WHERE user_id = $1 AND provider = $2`
	i, err := scanIntegration(pdb.db.QueryRowContext(ctx, query, userID, provider))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("integration", model.IntegrationID(provider, userID))
	}
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "get integration", err)
	}
	return i, nil
}

func (pdb *PostgresDB) ListIntegrations(ctx context.Context, userID string) ([]model.Integration, error) {
	query := `SELECT ` + integrationColumns + ` FROM integrations WHERE user_id = $1 ORDER BY provider`
	rows, err := pdb.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dbError(apperrors.ErrQueryFailed, "list integrations", err)
	}
	defer rows.Close()

	integrations := make([]model.Integration, 0)
	for rows.Next() {
		i, err := scanIntegration(rows)
		if err != nil {
			return nil, dbError(apperrors.ErrScanFailed, "scan row", err)
		}
		integrations = append(integrations, *i)
	}
	return integrations, rows.Err()
}

func (pdb *PostgresDB) UpdateIntegrationSettings(ctx context.Context, id string, settings model.IntegrationSettings) error {
	query := `UPDATE integrations SET settings = $2, updated_at = NOW() WHERE id = $1`
	return pdb.execOne(ctx, "integration", id, query, id, settings)
}

func (pdb *PostgresDB) SetIntegrationStatus(ctx context.Context, id string, status model.IntegrationStatus) error {
	query := `UPDATE integrations SET status = $2, updated_at = NOW() WHERE id = $1`
	return pdb.execOne(ctx, "integration", id, query, id, status)
}
