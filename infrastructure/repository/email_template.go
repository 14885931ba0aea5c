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
	emailTemplatesTable = "email_templates et"
)

type EmailTemplateRepository interface {
	ListByStore(storeID string) ([]*domain.EmailTemplate, error)
	GetByID(templateID string) (*domain.EmailTemplate, error)
	Create(template *domain.EmailTemplate) error
	Update(template *domain.EmailTemplate) error
	Delete(templateID string) error
}

type emailTemplateRepository struct {
	conn *postgres.Connection
}

func NewEmailTemplateRepository(conn *postgres.Connection) EmailTemplateRepository {
	return &emailTemplateRepository{
		conn: conn,
	}
}

func (r *emailTemplateRepository) ListByStore(storeID string) ([]*domain.EmailTemplate, error) {
	query, args, err := squirrel.
		Select("et.id, et.store_id, et.name, et.subject, et.body, et.updated_at").
		From(emailTemplatesTable).
		Where(squirrel.Eq{"et.store_id": storeID}).
		OrderBy("et.name ASC").
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

	templates := make([]*domain.EmailTemplate, 0)
	for rows.Next() {
		template := &domain.EmailTemplate{}
		if err := rows.Scan(
			&template.ID,
			&template.StoreID,
			&template.Name,
			&template.Subject,
			&template.Body,
			&template.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear modelo de e-mail: %w", err)
		}
		templates = append(templates, template)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return templates, nil
}

func (r *emailTemplateRepository) GetByID(templateID string) (*domain.EmailTemplate, error) {
	query, args, err := squirrel.
		Select("et.id, et.store_id, et.name, et.subject, et.body, et.updated_at").
		From(emailTemplatesTable).
		Where(squirrel.Eq{"et.id": templateID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	template := &domain.EmailTemplate{}
	if err := row.Scan(
		&template.ID,
		&template.StoreID,
		&template.Name,
		&template.Subject,
		&template.Body,
		&template.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear modelo de e-mail: %w", err)
	}

	return template, nil
}

func (r *emailTemplateRepository) Create(template *domain.EmailTemplate) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("email_templates").
		Columns("id", "store_id", "name", "subject", "body").
		Values(template.ID, template.StoreID, template.Name, template.Subject, template.Body).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *emailTemplateRepository) Update(template *domain.EmailTemplate) error {
	query, args, err := squirrel.
		Update("email_templates").
		Set("name", template.Name).
		Set("subject", template.Subject).
		Set("body", template.Body).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": template.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("modelo de e-mail não encontrado: %s", template.ID)
	}

	return nil
}

func (r *emailTemplateRepository) Delete(templateID string) error {
	query, args, err := squirrel.
		Delete("email_templates").
		Where(squirrel.Eq{"id": templateID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
