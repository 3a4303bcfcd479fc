package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
)

const (
	itemsTable = "items"
)

type ItemRepository interface {
	ListByOwner(ownerID int) ([]*domain.Item, error)
	GetByID(id string, ownerID int) (*domain.Item, error)
	Create(item *domain.Item) error
	Update(item *domain.Item) error
	Delete(id string, ownerID int) error
	CountByOwner(ownerID int) (int, error)
}

type itemRepository struct {
	conn *postgres.Connection
}

func NewItemRepository(conn *postgres.Connection) ItemRepository {
	return &itemRepository{
		conn: conn,
	}
}

func (r *itemRepository) ListByOwner(ownerID int) ([]*domain.Item, error) {
	query, args, err := squirrel.
		Select("id, name, unit_price, created_by, created_at, updated_at").
		From(itemsTable).
		Where(squirrel.Eq{"created_by": ownerID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item := &domain.Item{}
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.UnitPrice,
			&item.CreatedBy,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *itemRepository) GetByID(id string, ownerID int) (*domain.Item, error) {
	query, args, err := squirrel.
		Select("id, name, unit_price, created_by, created_at, updated_at").
		From(itemsTable).
		Where(squirrel.Eq{"id": id, "created_by": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item := &domain.Item{}
	err = r.conn.QueryRow(query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.UnitPrice,
		&item.CreatedBy,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear item: %w", err)
	}

	return item, nil
}

func (r *itemRepository) Create(item *domain.Item) error {
	query, args, err := squirrel.
		Insert(itemsTable).
		Columns("id", "name", "unit_price", "created_by").
		Values(item.ID, item.Name, item.UnitPrice, item.CreatedBy).
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

func (r *itemRepository) Update(item *domain.Item) error {
	query, args, err := squirrel.
		Update(itemsTable).
		Set("name", item.Name).
		Set("unit_price", item.UnitPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID, "created_by": item.CreatedBy}).
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

func (r *itemRepository) Delete(id string, ownerID int) error {
	query, args, err := squirrel.
		Delete(itemsTable).
		Where(squirrel.Eq{"id": id, "created_by": ownerID}).
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

func (r *itemRepository) CountByOwner(ownerID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(itemsTable).
		Where(squirrel.Eq{"created_by": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar itens: %w", err)
	}

	return count, nil
}
