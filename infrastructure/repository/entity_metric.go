package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/revoa-app/support-api/infrastructure/database/postgres"
	"github.com/revoa-app/support-api/internal/domain"
)

const (
	entityMetricsTable = "entity_metrics em"
)

type EntityMetricRepository interface {
	SaveMetricsAtomic(metrics []*domain.EntityMetric) error
	GetByEntityAndDateRange(entityType domain.EntityType, entityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error)
}

type entityMetricRepository struct {
	conn *postgres.Connection
}

func NewEntityMetricRepository(conn *postgres.Connection) EntityMetricRepository {
	return &entityMetricRepository{
		conn: conn,
	}
}

// SaveMetricsAtomic grava o lote inteiro em um único INSERT com upsert na
// chave (entity_type, entity_id, date): ou todas as linhas são persistidas ou
// nenhuma é. Lote vazio é sucesso trivial.
func (r *entityMetricRepository) SaveMetricsAtomic(metrics []*domain.EntityMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("entity_metrics").
		Columns(
			"entity_type", "entity_id", "date",
			"impressions", "clicks", "spend", "reach",
			"conversions", "conversion_value",
			"cpc", "cpm", "ctr", "roas",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, metric := range metrics {
		query = query.Values(
			metric.EntityType,
			metric.EntityID,
			metric.Date.Format("2006-01-02"),
			metric.Impressions,
			metric.Clicks,
			metric.Spend,
			metric.Reach,
			metric.Conversions,
			metric.ConversionValue,
			metric.CPC,
			metric.CPM,
			metric.CTR,
			metric.ROAS,
		)
	}

	// Execuções repetidas da mesma janela sobrescrevem o dia em vez de duplicar
	query = query.Suffix(`
		ON CONFLICT (entity_type, entity_id, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			spend = EXCLUDED.spend,
			reach = EXCLUDED.reach,
			conversions = EXCLUDED.conversions,
			conversion_value = EXCLUDED.conversion_value,
			cpc = EXCLUDED.cpc,
			cpm = EXCLUDED.cpm,
			ctr = EXCLUDED.ctr,
			roas = EXCLUDED.roas,
			updated_at = NOW()
	`)

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

func (r *entityMetricRepository) GetByEntityAndDateRange(entityType domain.EntityType, entityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
	query, args, err := squirrel.
		Select("em.entity_type, em.entity_id, em.date, em.impressions, em.clicks, em.spend, em.reach, em.conversions, em.conversion_value, em.cpc, em.cpm, em.ctr, em.roas, em.created_at, em.updated_at").
		From(entityMetricsTable).
		Where(squirrel.Eq{"em.entity_type": entityType, "em.entity_id": entityID}).
		Where(squirrel.GtOrEq{"em.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"em.date": endDate.Format("2006-01-02")}).
		OrderBy("em.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.EntityMetric, 0)
	for rows.Next() {
		metric := &domain.EntityMetric{}
		err := rows.Scan(
			&metric.EntityType,
			&metric.EntityID,
			&metric.Date,
			&metric.Impressions,
			&metric.Clicks,
			&metric.Spend,
			&metric.Reach,
			&metric.Conversions,
			&metric.ConversionValue,
			&metric.CPC,
			&metric.CPM,
			&metric.CTR,
			&metric.ROAS,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
