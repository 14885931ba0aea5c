package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/revoa-app/support-api/infrastructure/database/postgres"
	"github.com/revoa-app/support-api/internal/domain"
)

const (
	storesTable = "stores s"
)

type StoreRepository interface {
	GetStoreByID(storeID string) (*domain.Store, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select("s.id, s.shop_domain, s.access_token, s.user_id, s.status, s.created_at").
		From(storesTable).
		Where(squirrel.Eq{"s.id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	store := &domain.Store{}
	if err := row.Scan(
		&store.ID,
		&store.ShopDomain,
		&store.AccessToken,
		&store.UserID,
		&store.Status,
		&store.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}
