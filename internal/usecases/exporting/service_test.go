package exporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var exportNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

func exportSale() *domain.Sale {
	return &domain.Sale{
		ID:          "SALE001",
		BakeryID:    "BKR001",
		BakeryName:  "Padaria Central",
		BakeryPhone: "11 91234-5678",
		Items: []domain.SaleItem{
			{
				ItemID:    "ITM001",
				Name:      "Pão Francês",
				Qty:       10,
				UnitPrice: decimal.RequireFromString("0.75"),
				Amount:    decimal.RequireFromString("7.5"),
			},
			{
				ItemID:    "ITM002",
				Name:      "Bolo de Fubá",
				Qty:       1,
				UnitPrice: decimal.RequireFromString("20"),
				Amount:    decimal.RequireFromString("20"),
			},
		},
		TotalAmount: decimal.RequireFromString("27.5"),
		Status:      domain.SaleStatusSaved,
		CreatedAt:   time.Date(2026, 3, 8, 9, 30, 0, 0, time.Local),
	}
}

func TestToCSV(t *testing.T) {
	t.Run("uma linha de dados por item de venda", func(t *testing.T) {
		content, err := ToCSV([]*domain.Sale{exportSale()})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 3)

		assert.Equal(t,
			"sale_id,bakery_name,bakery_phone,date_iso,item_name,qty,unit_price,amount,total_amount,status",
			lines[0],
		)

		dateISO := exportSale().CreatedAt.Format(time.RFC3339)
		assert.Equal(t,
			"SALE001,Padaria Central,11 91234-5678,"+dateISO+",Pão Francês,10,0.75,7.5,27.5,saved",
			lines[1],
		)
		assert.Equal(t,
			"SALE001,Padaria Central,11 91234-5678,"+dateISO+",Bolo de Fubá,1,20,20,27.5,saved",
			lines[2],
		)
	})

	t.Run("vírgula no nome da padaria sai entre aspas", func(t *testing.T) {
		sale := exportSale()
		sale.BakeryName = "Pães, Doces & Cia"

		content, err := ToCSV([]*domain.Sale{sale})
		require.NoError(t, err)

		assert.Contains(t, string(content), `"Pães, Doces & Cia"`)
	})

	t.Run("sem vendas devolve ErrEmptyExport", func(t *testing.T) {
		_, err := ToCSV(nil)
		assert.ErrorIs(t, err, ErrEmptyExport)
	})
}

func TestService_ExportRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{saleRepo: mockSaleRepo, now: func() time.Time { return exportNow }}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)

	mockSaleRepo.EXPECT().
		GetByDateRange(42, utils.StartOfDay(from), utils.EndOfDay(to)).
		Return([]*domain.Sale{exportSale()}, nil)

	content, filename, err := service.ExportRange(context.Background(), 42, from, to)
	require.NoError(t, err)

	assert.Equal(t, "sales_2026-03-01_to_2026-03-08.csv", filename)
	assert.NotEmpty(t, content)
}

func TestService_ExportRange_emptyWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{saleRepo: mockSaleRepo, now: func() time.Time { return exportNow }}

	mockSaleRepo.EXPECT().
		GetByDateRange(42, gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{}, nil)

	_, _, err := service.ExportRange(context.Background(), 42,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local),
	)
	assert.ErrorIs(t, err, ErrEmptyExport)
}

func TestService_ExportAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := &Service{saleRepo: mockSaleRepo, now: func() time.Time { return exportNow }}

	mockSaleRepo.EXPECT().ListByOwner(42).Return([]*domain.Sale{exportSale()}, nil)

	content, filename, err := service.ExportAll(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "all_sales_2026-03-10.csv", filename)
	assert.NotEmpty(t, content)
}
