package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/revoa-app/support-api/infrastructure/database/postgres"
	"github.com/revoa-app/support-api/internal/domain"
)

const (
	capiSettingsTable = "capi_settings cs"
)

type CapiSettingsRepository interface {
	GetByStore(storeID string) (*domain.CapiSettings, error)
	SaveOrUpdate(settings *domain.CapiSettings) error
}

type capiSettingsRepository struct {
	conn *postgres.Connection
}

func NewCapiSettingsRepository(conn *postgres.Connection) CapiSettingsRepository {
	return &capiSettingsRepository{
		conn: conn,
	}
}

func (r *capiSettingsRepository) GetByStore(storeID string) (*domain.CapiSettings, error) {
	query, args, err := squirrel.
		Select("cs.store_id, cs.pixel_id, cs.access_token, cs.enabled, cs.test_event_code, cs.updated_at").
		From(capiSettingsTable).
		Where(squirrel.Eq{"cs.store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	settings := &domain.CapiSettings{}
	var testEventCode sql.NullString
	if err := row.Scan(
		&settings.StoreID,
		&settings.PixelID,
		&settings.AccessToken,
		&settings.Enabled,
		&testEventCode,
		&settings.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração de CAPI: %w", err)
	}

	if testEventCode.Valid {
		settings.TestEventCode = testEventCode.String
	}

	return settings, nil
}

func (r *capiSettingsRepository) SaveOrUpdate(settings *domain.CapiSettings) error {
	query := squirrel.StatementBuilder.
		Insert("capi_settings").
		Columns("store_id", "pixel_id", "access_token", "enabled", "test_event_code").
		Values(
			settings.StoreID,
			settings.PixelID,
			settings.AccessToken,
			settings.Enabled,
			settings.TestEventCode,
		).
		Suffix(`
			ON CONFLICT (store_id) DO UPDATE SET
				pixel_id = EXCLUDED.pixel_id,
				access_token = EXCLUDED.access_token,
				enabled = EXCLUDED.enabled,
				test_event_code = EXCLUDED.test_event_code,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
