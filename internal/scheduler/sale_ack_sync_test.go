package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

type stubConnectivity struct {
	online bool
}

func (s *stubConnectivity) Online() bool { return s.online }

func newAckTestService(saleRepo *mocks.MockSaleRepository, online bool) *SaleAckSyncService {
	return &SaleAckSyncService{
		config: SaleAckSyncConfig{
			CronSchedule:       "*/2 * * * *",
			SettleDelaySeconds: 120,
			BatchSize:          500,
			SyncEnabled:        true,
		},
		saleRepo:     saleRepo,
		connectivity: &stubConnectivity{online: online},
	}
}

func TestSaleAckSyncService_acknowledgePendingSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newAckTestService(mockSaleRepo, true)

	before := time.Now()

	mockSaleRepo.EXPECT().
		AcknowledgePending(gomock.Any(), 500).
		DoAndReturn(func(settledBefore time.Time, batchSize int) (int64, error) {
			// O corte precisa recuar SettleDelaySeconds em relação ao início
			// da varredura
			expected := time.Now().Add(-120 * time.Second)
			assert.WithinDuration(t, expected, settledBefore, 5*time.Second)
			return 3, nil
		})

	service.acknowledgePendingSales()

	assert.False(t, service.lastSyncStartedAt.Before(before))
	assert.False(t, service.lastSyncCompletedAt.Before(service.lastSyncStartedAt))
	assert.False(t, service.syncRunning)
}

func TestSaleAckSyncService_acknowledgePendingSales_offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa no repositório: offline adia a varredura sem tocar
	// no banco
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newAckTestService(mockSaleRepo, false)

	service.acknowledgePendingSales()

	assert.True(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestSaleAckSyncService_acknowledgePendingSales_skipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newAckTestService(mockSaleRepo, true)

	service.syncRunning = true
	service.acknowledgePendingSales()

	// A varredura sobreposta não pode derrubar a flag de quem está rodando
	assert.True(t, service.syncRunning)
}

func TestSaleAckSyncService_acknowledgePendingSales_repositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := newAckTestService(mockSaleRepo, true)

	mockSaleRepo.EXPECT().
		AcknowledgePending(gomock.Any(), 500).
		Return(int64(0), assert.AnError)

	service.acknowledgePendingSales()

	// Erro encerra a rodada sem marcar conclusão e libera a próxima
	assert.True(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestSaleAckSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newAckTestService(mocks.NewMockSaleRepository(ctrl), true)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/2 * * * *", status["sync_cron"])
	assert.Equal(t, 120, status["settle_delay_seconds"])
	assert.Equal(t, 500, status["batch_size"])
}
