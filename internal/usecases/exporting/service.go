package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

// ErrEmptyExport sinaliza exportação sem nenhuma venda: vira no-op para o
// chamador em vez de produzir um arquivo vazio.
var ErrEmptyExport = errors.New("no sales data to export")

// Cabeçalho fixo: uma linha de dados por item de venda
var csvHeader = []string{
	"sale_id",
	"bakery_name",
	"bakery_phone",
	"date_iso",
	"item_name",
	"qty",
	"unit_price",
	"amount",
	"total_amount",
	"status",
}

// Exporter achata coleções de vendas em CSV portátil.
type Exporter interface {
	ExportRange(ctx context.Context, ownerID int, from, to time.Time) ([]byte, string, error)
	ExportAll(ctx context.Context, ownerID int) ([]byte, string, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewService cria uma nova instância do serviço de exportação
func NewService(saleRepo repository.SaleRepository) *Service {
	return &Service{
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

// ExportRange exporta as vendas da janela [from 00:00, to 23:59:59] e devolve
// o conteúdo com o nome de arquivo sales_<from>_to_<to>.csv.
func (s *Service) ExportRange(ctx context.Context, ownerID int, from, to time.Time) ([]byte, string, error) {
	sales, err := s.saleRepo.GetByDateRange(ownerID, utils.StartOfDay(from), utils.EndOfDay(to))
	if err != nil {
		return nil, "", fmt.Errorf("erro ao buscar vendas para exportação: %w", err)
	}

	content, err := ToCSV(sales)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf(
		"sales_%s_to_%s.csv",
		from.Format(time.DateOnly),
		to.Format(time.DateOnly),
	)

	return content, filename, nil
}

// ExportAll exporta o histórico completo do operador com o nome de arquivo
// all_sales_<data>.csv.
func (s *Service) ExportAll(ctx context.Context, ownerID int) ([]byte, string, error) {
	sales, err := s.saleRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao buscar vendas para exportação: %w", err)
	}

	content, err := ToCSV(sales)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("all_sales_%s.csv", s.now().Format(time.DateOnly))

	return content, filename, nil
}

// ToCSV achata a coleção em uma linha por (venda, item). encoding/csv aplica
// aspas RFC 4180 quando nome ou telefone embutem vírgula ou quebra de linha.
func ToCSV(sales []*domain.Sale) ([]byte, error) {
	if len(sales) == 0 {
		return nil, ErrEmptyExport
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, sale := range sales {
		for _, item := range sale.Items {
			row := []string{
				sale.ID,
				sale.BakeryName,
				sale.BakeryPhone,
				sale.CreatedAt.Format(time.RFC3339),
				item.Name,
				strconv.Itoa(item.Qty),
				item.UnitPrice.String(),
				item.Amount.String(),
				sale.TotalAmount.String(),
				string(sale.Status),
			}

			if err := writer.Write(row); err != nil {
				return nil, fmt.Errorf("erro ao escrever linha do CSV: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o CSV: %w", err)
	}

	return buffer.Bytes(), nil
}
