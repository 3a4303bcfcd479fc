package selling

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

// SaleReader expõe o histórico de vendas já registradas.
type SaleReader interface {
	ListSales(ctx context.Context, ownerID int) ([]*domain.Sale, error)
	ListSalesByRange(ctx context.Context, ownerID int, from, to time.Time) ([]*domain.Sale, error)
}

type Reader struct {
	saleRepo repository.SaleRepository
}

func NewReader(saleRepo repository.SaleRepository) *Reader {
	return &Reader{
		saleRepo: saleRepo,
	}
}

func (r *Reader) ListSales(ctx context.Context, ownerID int) ([]*domain.Sale, error) {
	sales, err := r.saleRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}

	return sales, nil
}

// ListSalesByRange lista as vendas do intervalo [from, to] com as datas
// inclusivas nas duas pontas.
func (r *Reader) ListSalesByRange(ctx context.Context, ownerID int, from, to time.Time) ([]*domain.Sale, error) {
	sales, err := r.saleRepo.GetByDateRange(ownerID, utils.StartOfDay(from), utils.EndOfDay(to))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas por período: %w", err)
	}

	return sales, nil
}
