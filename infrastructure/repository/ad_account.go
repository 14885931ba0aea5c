package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/revoa-app/support-api/infrastructure/database/postgres"
	"github.com/revoa-app/support-api/internal/domain"
)

const (
	adAccountsTable          = "accounts a"
	platformCredentialsTable = "platform_credentials pc"
)

type AdAccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	GetCredential(accountID string, platform domain.Platform) (*domain.PlatformCredential, error)
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.external_id, a.name, a.platform, a.user_id, a.status").
		From(adAccountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account := &domain.AdAccount{}
	if err := row.Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Platform,
		&account.UserID,
		&account.Status,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *adAccountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.external_id, a.name, a.platform, a.user_id, a.status").
		From(adAccountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{}
		if err := rows.Scan(
			&account.ID,
			&account.ExternalID,
			&account.Name,
			&account.Platform,
			&account.UserID,
			&account.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// GetCredential busca o token de acesso de uma conta em uma plataforma.
// Retorna nil sem erro quando a conta não tem credencial cadastrada.
func (r *adAccountRepository) GetCredential(accountID string, platform domain.Platform) (*domain.PlatformCredential, error) {
	query, args, err := squirrel.
		Select("pc.account_id, pc.platform, pc.access_token, pc.expires_at").
		From(platformCredentialsTable).
		Where(squirrel.Eq{"pc.account_id": accountID, "pc.platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	credential := &domain.PlatformCredential{}
	var expiresAt sql.NullTime
	if err := row.Scan(
		&credential.AccountID,
		&credential.Platform,
		&credential.AccessToken,
		&expiresAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear credencial: %w", err)
	}

	if expiresAt.Valid {
		credential.ExpiresAt = expiresAt.Time
	}

	return credential, nil
}
