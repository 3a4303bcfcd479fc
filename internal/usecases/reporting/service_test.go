package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var aggregateNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

func saleAt(createdAt time.Time, total string, items ...domain.SaleItem) *domain.Sale {
	return &domain.Sale{
		ID:          "SALE-" + createdAt.Format("0102-150405"),
		BakeryID:    "BKR001",
		BakeryName:  "Padaria Central",
		Items:       items,
		TotalAmount: decimal.RequireFromString(total),
		Status:      domain.SaleStatusSaved,
		CreatedAt:   createdAt,
	}
}

func item(name string, qty int) domain.SaleItem {
	return domain.SaleItem{
		ItemID:    "ITM-" + name,
		Name:      name,
		Qty:       qty,
		UnitPrice: decimal.RequireFromString("1.00"),
		Amount:    decimal.NewFromInt(int64(qty)),
	}
}

func TestAggregate_emptyInput(t *testing.T) {
	report := Aggregate(nil, aggregateNow)

	assert.True(t, report.TodayRevenue.Equal(decimal.Zero))
	assert.Zero(t, report.TodayQuantity)
	assert.Empty(t, report.DailyRevenue)
	assert.Empty(t, report.TopItems)
}

func TestAggregate_isDeterministic(t *testing.T) {
	sales := []*domain.Sale{
		saleAt(aggregateNow.Add(-30*time.Minute), "50.00", item("Sonho", 3)),
		saleAt(aggregateNow.AddDate(0, 0, -1), "100.00", item("Bolo", 2)),
	}

	first := Aggregate(sales, aggregateNow)
	second := Aggregate(sales, aggregateNow)

	assert.Equal(t, first, second)
}

func TestAggregate_todayWindow(t *testing.T) {
	sales := []*domain.Sale{
		// Ontem: fora das métricas de hoje
		saleAt(aggregateNow.AddDate(0, 0, -1), "100.00", item("Bolo", 2)),
		// Hoje de manhã
		saleAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local), "30.00", item("Sonho", 4)),
		// Hoje, pouco antes de agora
		saleAt(aggregateNow.Add(-5*time.Minute), "20.00", item("Pão", 10)),
	}

	report := Aggregate(sales, aggregateNow)

	assert.True(t, report.TodayRevenue.Equal(decimal.RequireFromString("50.00")),
		"esperado 50.00, obtido %s", report.TodayRevenue.String())
	assert.Equal(t, 14, report.TodayQuantity)
}

func TestAggregate_dailyBuckets(t *testing.T) {
	day1 := time.Date(2026, 3, 8, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	sales := []*domain.Sale{
		saleAt(day1, "100.00", item("Bolo", 1)),
		saleAt(day1.Add(4*time.Hour), "50.00", item("Sonho", 1)),
		saleAt(day2, "70.00", item("Pão", 1)),
	}

	report := Aggregate(sales, aggregateNow)

	require.Len(t, report.DailyRevenue, 2)
	assert.Equal(t, "Mar 08", report.DailyRevenue[0].Date)
	assert.True(t, report.DailyRevenue[0].Revenue.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, "Mar 09", report.DailyRevenue[1].Date)
	assert.True(t, report.DailyRevenue[1].Revenue.Equal(decimal.RequireFromString("70.00")))
}

func TestAggregate_topItems(t *testing.T) {
	t.Run("soma quantidades pelo nome e ordena decrescente", func(t *testing.T) {
		sales := []*domain.Sale{
			saleAt(aggregateNow.AddDate(0, 0, -2), "10.00", item("Sonho", 2), item("Bolo", 5)),
			saleAt(aggregateNow.AddDate(0, 0, -1), "10.00", item("Sonho", 4)),
		}

		report := Aggregate(sales, aggregateNow)

		require.Len(t, report.TopItems, 2)
		assert.Equal(t, domain.TopItem{Name: "Sonho", Quantity: 6}, report.TopItems[0])
		assert.Equal(t, domain.TopItem{Name: "Bolo", Quantity: 5}, report.TopItems[1])
	})

	t.Run("empates preservam a ordem de primeira ocorrência", func(t *testing.T) {
		sales := []*domain.Sale{
			saleAt(aggregateNow.AddDate(0, 0, -1), "10.00",
				item("A", 3), item("B", 3), item("C", 3)),
		}

		report := Aggregate(sales, aggregateNow)

		require.Len(t, report.TopItems, 3)
		assert.Equal(t, "A", report.TopItems[0].Name)
		assert.Equal(t, "B", report.TopItems[1].Name)
		assert.Equal(t, "C", report.TopItems[2].Name)
	})

	t.Run("corta a lista em cinco itens", func(t *testing.T) {
		sales := []*domain.Sale{
			saleAt(aggregateNow.AddDate(0, 0, -1), "10.00",
				item("A", 9), item("B", 8), item("C", 7), item("D", 6),
				item("E", 5), item("F", 4), item("G", 3)),
		}

		report := Aggregate(sales, aggregateNow)

		require.Len(t, report.TopItems, 5)
		assert.Equal(t, "E", report.TopItems[4].Name)
	})
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	mockItemRepo := mocks.NewMockItemRepository(ctrl)

	service := &Service{
		saleRepo:   mockSaleRepo,
		bakeryRepo: mockBakeryRepo,
		itemRepo:   mockItemRepo,
		now:        func() time.Time { return aggregateNow },
	}

	mockBakeryRepo.EXPECT().CountByOwner(7).Return(12, nil)
	mockItemRepo.EXPECT().CountByOwner(7).Return(34, nil)
	mockSaleRepo.EXPECT().CountByOwner(7).Return(250, nil)
	mockSaleRepo.EXPECT().
		GetByDateRange(7, gomock.Any(), aggregateNow).
		Return([]*domain.Sale{
			saleAt(aggregateNow.Add(-time.Hour), "75.50", item("Bolo", 1)),
			saleAt(aggregateNow.Add(-2*time.Hour), "24.50", item("Pão", 5)),
		}, nil)

	overview, err := service.Overview(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 12, overview.Bakeries)
	assert.Equal(t, 34, overview.Items)
	assert.Equal(t, 250, overview.TotalSales)
	assert.True(t, overview.TodayRevenue.Equal(decimal.RequireFromString("100.00")))
}

func TestService_Overview_propagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	mockItemRepo := mocks.NewMockItemRepository(ctrl)

	service := &Service{
		saleRepo:   mockSaleRepo,
		bakeryRepo: mockBakeryRepo,
		itemRepo:   mockItemRepo,
		now:        func() time.Time { return aggregateNow },
	}

	mockBakeryRepo.EXPECT().CountByOwner(7).Return(0, assert.AnError)
	mockItemRepo.EXPECT().CountByOwner(7).Return(34, nil)
	mockSaleRepo.EXPECT().CountByOwner(7).Return(250, nil)
	mockSaleRepo.EXPECT().GetByDateRange(7, gomock.Any(), aggregateNow).Return(nil, nil)

	_, err := service.Overview(context.Background(), 7)
	assert.Error(t, err)
}

func TestService_Report_sortsBeforeAggregating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		saleRepo: mockSaleRepo,
		now:      func() time.Time { return aggregateNow },
	}

	windowStart := aggregateNow.AddDate(0, 0, -7)

	// Repositório devolve em ordem decrescente; os buckets devem sair em
	// ordem cronológica
	mockSaleRepo.EXPECT().
		GetByDateRange(7, windowStart, aggregateNow).
		Return([]*domain.Sale{
			saleAt(time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local), "70.00", item("Pão", 1)),
			saleAt(time.Date(2026, 3, 8, 10, 0, 0, 0, time.Local), "100.00", item("Bolo", 1)),
		}, nil)

	report, err := service.Report(context.Background(), 7, windowStart)
	require.NoError(t, err)

	require.Len(t, report.DailyRevenue, 2)
	assert.Equal(t, "Mar 08", report.DailyRevenue[0].Date)
	assert.Equal(t, "Mar 09", report.DailyRevenue[1].Date)
}
