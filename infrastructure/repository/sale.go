package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
)

const (
	salesTable = "sales"
)

type SaleRepository interface {
	Insert(sale *domain.Sale) error
	GetByDateRange(ownerID int, from, to time.Time) ([]*domain.Sale, error)
	ListByOwner(ownerID int) ([]*domain.Sale, error)
	CountByOwner(ownerID int) (int, error)
	CountPending(ownerID int) (int, error)
	AcknowledgePending(settledBefore time.Time, limit int) (int64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Insert(sale *domain.Sale) error {
	itemsJSON, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("erro ao serializar itens da venda para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(salesTable).
		Columns("id", "bakery_id", "bakery_name", "bakery_phone", "items", "total_amount", "status", "created_by", "created_at").
		Values(
			sale.ID,
			sale.BakeryID,
			sale.BakeryName,
			sale.BakeryPhone,
			itemsJSON,
			sale.TotalAmount,
			sale.Status,
			sale.CreatedBy,
			sale.CreatedAt,
		).
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

func (r *saleRepository) GetByDateRange(ownerID int, from, to time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id, bakery_id, bakery_name, bakery_phone, items, total_amount, status, created_by, created_at").
		From(salesTable).
		Where(squirrel.Eq{"created_by": ownerID}).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.LtOrEq{"created_at": to}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *saleRepository) ListByOwner(ownerID int) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id, bakery_id, bakery_name, bakery_phone, items, total_amount, status, created_by, created_at").
		From(salesTable).
		Where(squirrel.Eq{"created_by": ownerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *saleRepository) CountByOwner(ownerID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		Where(squirrel.Eq{"created_by": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

func (r *saleRepository) CountPending(ownerID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		Where(squirrel.Eq{"created_by": ownerID, "status": domain.SaleStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas pendentes: %w", err)
	}

	return count, nil
}

// AcknowledgePending confirma vendas pendentes criadas antes do instante
// informado, limitado ao tamanho do lote. É o único caminho que altera uma
// venda depois de persistida.
func (r *saleRepository) AcknowledgePending(settledBefore time.Time, limit int) (int64, error) {
	query, args, err := squirrel.
		Update(salesTable).
		Set("status", domain.SaleStatusSaved).
		Where(
			"id IN (SELECT id FROM sales WHERE status = ? AND created_at < ? ORDER BY created_at ASC LIMIT ?)",
			domain.SaleStatusPending,
			settledBefore,
			limit,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *saleRepository) querySales(query string, args ...interface{}) ([]*domain.Sale, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var itemsJSON []byte

	err := rows.Scan(
		&sale.ID,
		&sale.BakeryID,
		&sale.BakeryName,
		&sale.BakeryPhone,
		&itemsJSON,
		&sale.TotalAmount,
		&sale.Status,
		&sale.CreatedBy,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if itemsJSON != nil {
		items := make([]domain.SaleItem, 0)
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de itens: %w", err)
		}
		sale.Items = items
	}

	return sale, nil
}
