package selling

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

const testOwnerID = 42

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

func newTestService(saleRepo *mocks.MockSaleRepository, bakeryRepo *mocks.MockBakeryRepository) *Service {
	return &Service{
		saleRepo:   saleRepo,
		bakeryRepo: bakeryRepo,
		now:        func() time.Time { return testNow },
	}
}

func testCart() *domain.Cart {
	return &domain.Cart{
		BakeryID: "BKR001",
		Lines: []domain.CartLine{
			{
				ItemID:    "ITM001",
				Name:      "Bolo de Fubá",
				Qty:       2,
				UnitPrice: decimal.RequireFromString("20.00"),
				Amount:    decimal.RequireFromString("40.00"),
			},
			{
				ItemID:    "ITM002",
				Name:      "Torta de Limão",
				Qty:       1,
				UnitPrice: decimal.RequireFromString("40.00"),
				Amount:    decimal.RequireFromString("40.00"),
			},
		},
	}
}

func testBakery() *domain.Bakery {
	return &domain.Bakery{
		ID:    "BKR001",
		Name:  "Padaria Central",
		Phone: "11999990001",
	}
}

func TestService_Commit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	service := newTestService(mockSaleRepo, mockBakeryRepo)

	cart := testCart()

	var persisted *domain.Sale
	mockBakeryRepo.EXPECT().
		GetByID("BKR001", testOwnerID).
		Return(testBakery(), nil)
	mockSaleRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) error {
			persisted = sale
			return nil
		})
	mockBakeryRepo.EXPECT().
		TouchLastUsed("BKR001", testOwnerID, testNow).
		Return(nil)

	saleID, err := service.Commit(context.Background(), testOwnerID, cart)
	require.NoError(t, err)
	assert.NotEmpty(t, saleID)

	require.NotNil(t, persisted)
	assert.Equal(t, saleID, persisted.ID)
	assert.Equal(t, domain.SaleStatusPending, persisted.Status)
	assert.Equal(t, "Padaria Central", persisted.BakeryName)
	assert.Equal(t, "11999990001", persisted.BakeryPhone)
	assert.Equal(t, testOwnerID, persisted.CreatedBy)
	assert.Equal(t, testNow, persisted.CreatedAt)
	require.Len(t, persisted.Items, 2)
	assert.True(t, persisted.TotalAmount.Equal(decimal.RequireFromString("80.00")))

	// Carrinho consumido: um segundo commit do mesmo carrinho falha nas
	// pré-condições
	assert.Empty(t, cart.BakeryID)
	assert.Empty(t, cart.Lines)

	_, err = service.Commit(context.Background(), testOwnerID, cart)
	assert.ErrorIs(t, err, ErrIncompleteSale)
}

func TestService_Commit_preconditions(t *testing.T) {
	tests := []struct {
		name string
		cart *domain.Cart
	}{
		{
			name: "carrinho nulo",
			cart: nil,
		},
		{
			name: "carrinho sem padaria",
			cart: &domain.Cart{Lines: testCart().Lines},
		},
		{
			name: "carrinho sem itens",
			cart: &domain.Cart{BakeryID: "BKR001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma expectativa configurada: falha de pré-condição não pode
			// tocar os repositórios
			mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
			mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
			service := newTestService(mockSaleRepo, mockBakeryRepo)

			_, err := service.Commit(context.Background(), testOwnerID, tt.cart)
			assert.ErrorIs(t, err, ErrIncompleteSale)
		})
	}
}

func TestService_Commit_bakeryNotResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	service := newTestService(mockSaleRepo, mockBakeryRepo)

	mockBakeryRepo.EXPECT().
		GetByID("BKR001", testOwnerID).
		Return(nil, nil)

	_, err := service.Commit(context.Background(), testOwnerID, testCart())
	assert.ErrorIs(t, err, ErrIncompleteSale)
}

func TestService_Commit_totalMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	service := newTestService(mockSaleRepo, mockBakeryRepo)

	mockBakeryRepo.EXPECT().
		GetByID("BKR001", testOwnerID).
		Return(testBakery(), nil)

	cart := testCart()
	cart.Lines[0].Amount = decimal.RequireFromString("99.99")

	_, err := service.Commit(context.Background(), testOwnerID, cart)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestService_Commit_recencyFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	service := newTestService(mockSaleRepo, mockBakeryRepo)

	mockBakeryRepo.EXPECT().
		GetByID("BKR001", testOwnerID).
		Return(testBakery(), nil)
	mockSaleRepo.EXPECT().
		Insert(gomock.Any()).
		Return(nil)
	mockBakeryRepo.EXPECT().
		TouchLastUsed("BKR001", testOwnerID, testNow).
		Return(assert.AnError)

	saleID, err := service.Commit(context.Background(), testOwnerID, testCart())
	require.NoError(t, err)
	assert.NotEmpty(t, saleID)
}

func TestService_CommitHistorical(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	service := newTestService(mockSaleRepo, mockBakeryRepo)

	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)

	var persisted *domain.Sale
	mockBakeryRepo.EXPECT().
		GetByID("BKR001", testOwnerID).
		Return(testBakery(), nil)
	mockSaleRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) error {
			persisted = sale
			return nil
		})
	// A recência da padaria usa o relógio atual mesmo em vendas retroativas
	mockBakeryRepo.EXPECT().
		TouchLastUsed("BKR001", testOwnerID, testNow).
		Return(nil)

	_, err := service.CommitHistorical(context.Background(), testOwnerID, testCart(), date)
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, domain.SaleStatusSaved, persisted.Status)
	assert.Equal(t, time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local), persisted.CreatedAt)
}

func TestService_CommitHistorical_futureDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockBakeryRepo := mocks.NewMockBakeryRepository(ctrl)
	service := newTestService(mockSaleRepo, mockBakeryRepo)

	cart := testCart()
	future := testNow.AddDate(0, 0, 1)

	_, err := service.CommitHistorical(context.Background(), testOwnerID, cart, future)
	assert.ErrorIs(t, err, ErrFutureDate)

	// Carrinho intacto após a rejeição
	assert.Equal(t, "BKR001", cart.BakeryID)
	assert.Len(t, cart.Lines, 2)
}
