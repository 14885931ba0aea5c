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
	statusChangeLogTable = "status_change_log scl"
)

// Transições que exigem coleta final de métricas. Mantidas em sincronia com
// domain.RequiresFinalSync; o filtro SQL evita varrer o log inteiro em memória.
var (
	finalSyncNewStatuses   = []string{"paused", "deleted", "archived"}
	sweepNewStatuses       = []string{"paused", "deleted"}
	statusChangeLogColumns = "scl.log_id, scl.ad_account_id, scl.user_id, scl.platform, scl.entity_type, scl.entity_id, scl.platform_entity_id, scl.old_status, scl.new_status, scl.created_at, scl.final_sync_completed, scl.final_sync_error"
)

type StatusChangeLogRepository interface {
	ListPendingFinalSync(adAccountID string, entityType *domain.EntityType) ([]*domain.StatusChangeEntry, error)
	ListPendingFinalSyncAllAccounts() ([]*domain.StatusChangeEntry, error)
	MarkFinalSyncCompleted(logID string, success bool, syncErr *string) error
}

type statusChangeLogRepository struct {
	conn *postgres.Connection
}

func NewStatusChangeLogRepository(conn *postgres.Connection) StatusChangeLogRepository {
	return &statusChangeLogRepository{
		conn: conn,
	}
}

// ListPendingFinalSync retorna as entradas de uma conta que ainda precisam de
// final sync: transições ACTIVE -> {PAUSED, DELETED, ARCHIVED} não concluídas
func (r *statusChangeLogRepository) ListPendingFinalSync(adAccountID string, entityType *domain.EntityType) ([]*domain.StatusChangeEntry, error) {
	queryBuilder := squirrel.
		Select(statusChangeLogColumns).
		From(statusChangeLogTable).
		Where(squirrel.Eq{"scl.ad_account_id": adAccountID}).
		Where(squirrel.Eq{"scl.final_sync_completed": false}).
		Where(squirrel.Eq{"LOWER(scl.old_status)": "active"}).
		Where(squirrel.Eq{"LOWER(scl.new_status)": finalSyncNewStatuses}).
		PlaceholderFormat(squirrel.Dollar)

	if entityType != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"scl.entity_type": string(*entityType)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listEntries(query, args)
}

// ListPendingFinalSyncAllAccounts retorna as pendências de todas as contas e
// plataformas, para a varredura de segurança. O padrão de transição é o da
// varredura (PAUSED e DELETED), mais restrito que o do caminho inline.
func (r *statusChangeLogRepository) ListPendingFinalSyncAllAccounts() ([]*domain.StatusChangeEntry, error) {
	query, args, err := squirrel.
		Select(statusChangeLogColumns).
		From(statusChangeLogTable).
		Where(squirrel.Eq{"scl.final_sync_completed": false}).
		Where(squirrel.Eq{"LOWER(scl.old_status)": "active"}).
		Where(squirrel.Eq{"LOWER(scl.new_status)": sweepNewStatuses}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listEntries(query, args)
}

// MarkFinalSyncCompleted registra o resultado de uma tentativa de final sync.
// Em caso de falha o flag permanece falso e apenas o erro é gravado, de modo
// que a varredura de segurança volte a tentar a entidade.
func (r *statusChangeLogRepository) MarkFinalSyncCompleted(logID string, success bool, syncErr *string) error {
	queryBuilder := squirrel.
		Update("status_change_log").
		Set("final_sync_completed", success).
		Set("final_sync_error", syncErr).
		Where(squirrel.Eq{"log_id": logID}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("entrada de log não encontrada: %s", logID)
	}

	return nil
}

func (r *statusChangeLogRepository) listEntries(query string, args []interface{}) ([]*domain.StatusChangeEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.StatusChangeEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada do log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *statusChangeLogRepository) scanEntry(rows *sql.Rows) (*domain.StatusChangeEntry, error) {
	entry := &domain.StatusChangeEntry{}
	var createdAt time.Time

	err := rows.Scan(
		&entry.LogID,
		&entry.AdAccountID,
		&entry.UserID,
		&entry.Platform,
		&entry.EntityType,
		&entry.EntityID,
		&entry.PlatformEntityID,
		&entry.OldStatus,
		&entry.NewStatus,
		&createdAt,
		&entry.FinalSyncCompleted,
		&entry.FinalSyncError,
	)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt = createdAt

	return entry, nil
}
