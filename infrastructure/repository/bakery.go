package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
)

const (
	bakeriesTable = "bakeries"
)

type BakeryRepository interface {
	ListByOwner(ownerID int) ([]*domain.Bakery, error)
	GetByID(id string, ownerID int) (*domain.Bakery, error)
	GetByPhone(phone string, ownerID int) (*domain.Bakery, error)
	Create(bakery *domain.Bakery) error
	Update(bakery *domain.Bakery) error
	Delete(id string, ownerID int) error
	TouchLastUsed(id string, ownerID int, usedAt time.Time) error
	CountByOwner(ownerID int) (int, error)
}

type bakeryRepository struct {
	conn *postgres.Connection
}

func NewBakeryRepository(conn *postgres.Connection) BakeryRepository {
	return &bakeryRepository{
		conn: conn,
	}
}

func (r *bakeryRepository) ListByOwner(ownerID int) ([]*domain.Bakery, error) {
	// Ordenado por uso mais recente: a padaria do último commit aparece primeiro
	query, args, err := squirrel.
		Select("id, name, phone, address, last_used_at, created_by, created_at, updated_at").
		From(bakeriesTable).
		Where(squirrel.Eq{"created_by": ownerID}).
		OrderBy("last_used_at DESC").
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

	bakeries := make([]*domain.Bakery, 0)
	for rows.Next() {
		bakery, err := r.scanBakery(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear padaria: %w", err)
		}
		bakeries = append(bakeries, bakery)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return bakeries, nil
}

func (r *bakeryRepository) GetByID(id string, ownerID int) (*domain.Bakery, error) {
	query, args, err := squirrel.
		Select("id, name, phone, address, last_used_at, created_by, created_at, updated_at").
		From(bakeriesTable).
		Where(squirrel.Eq{"id": id, "created_by": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	bakery := &domain.Bakery{}
	err = r.conn.QueryRow(query, args...).Scan(
		&bakery.ID,
		&bakery.Name,
		&bakery.Phone,
		&bakery.Address,
		&bakery.LastUsedAt,
		&bakery.CreatedBy,
		&bakery.CreatedAt,
		&bakery.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear padaria: %w", err)
	}

	return bakery, nil
}

func (r *bakeryRepository) GetByPhone(phone string, ownerID int) (*domain.Bakery, error) {
	query, args, err := squirrel.
		Select("id, name, phone, address, last_used_at, created_by, created_at, updated_at").
		From(bakeriesTable).
		Where(squirrel.Eq{"phone": phone, "created_by": ownerID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	bakery := &domain.Bakery{}
	err = r.conn.QueryRow(query, args...).Scan(
		&bakery.ID,
		&bakery.Name,
		&bakery.Phone,
		&bakery.Address,
		&bakery.LastUsedAt,
		&bakery.CreatedBy,
		&bakery.CreatedAt,
		&bakery.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear padaria: %w", err)
	}

	return bakery, nil
}

func (r *bakeryRepository) Create(bakery *domain.Bakery) error {
	query, args, err := squirrel.
		Insert(bakeriesTable).
		Columns("id", "name", "phone", "address", "last_used_at", "created_by").
		Values(bakery.ID, bakery.Name, bakery.Phone, bakery.Address, bakery.LastUsedAt, bakery.CreatedBy).
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

func (r *bakeryRepository) Update(bakery *domain.Bakery) error {
	queryBuilder := squirrel.
		Update(bakeriesTable).
		Set("name", bakery.Name).
		Set("phone", bakery.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bakery.ID, "created_by": bakery.CreatedBy})

	if bakery.Address != nil {
		queryBuilder = queryBuilder.Set("address", bakery.Address)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *bakeryRepository) Delete(id string, ownerID int) error {
	// Exclusão explícita remove só da seleção futura; vendas históricas mantêm
	// a cópia desnormalizada de nome/telefone
	query, args, err := squirrel.
		Delete(bakeriesTable).
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

func (r *bakeryRepository) TouchLastUsed(id string, ownerID int, usedAt time.Time) error {
	query, args, err := squirrel.
		Update(bakeriesTable).
		Set("last_used_at", usedAt).
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

func (r *bakeryRepository) CountByOwner(ownerID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(bakeriesTable).
		Where(squirrel.Eq{"created_by": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar padarias: %w", err)
	}

	return count, nil
}

func (r *bakeryRepository) scanBakery(rows *sql.Rows) (*domain.Bakery, error) {
	bakery := &domain.Bakery{}

	err := rows.Scan(
		&bakery.ID,
		&bakery.Name,
		&bakery.Phone,
		&bakery.Address,
		&bakery.LastUsedAt,
		&bakery.CreatedBy,
		&bakery.CreatedAt,
		&bakery.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return bakery, nil
}
