package syncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/connectivity"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

// fakeSource grava o listener inscrito para o teste disparar transições
type fakeSource struct {
	online   bool
	listener connectivity.Listener
}

func (f *fakeSource) Online() bool { return f.online }

func (f *fakeSource) Subscribe(listener connectivity.Listener) {
	f.listener = listener
	listener(f.online)
}

func TestTracker_followsConnectivityTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := &fakeSource{online: true}
	tracker := NewTracker(mocks.NewMockSaleRepository(ctrl), source)

	require.NotNil(t, source.listener)
	assert.True(t, tracker.Online())

	source.listener(false)
	assert.False(t, tracker.Online())

	source.listener(true)
	assert.True(t, tracker.Online())
}

func TestTracker_Status(t *testing.T) {
	t.Run("online exibe o rótulo fixo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().CountPending(42).Return(3, nil)

		tracker := NewTracker(mockSaleRepo, &fakeSource{online: true})

		status, err := tracker.Status(42)
		require.NoError(t, err)

		assert.True(t, status.Online)
		assert.Equal(t, 3, status.Pending)
		assert.Equal(t, "online", status.Label)
	})

	t.Run("offline exibe a contagem de não sincronizadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().CountPending(42).Return(5, nil)

		tracker := NewTracker(mockSaleRepo, &fakeSource{online: false})

		status, err := tracker.Status(42)
		require.NoError(t, err)

		assert.False(t, status.Online)
		assert.Equal(t, "offline • 5 unsynced", status.Label)
	})

	t.Run("reconexão não zera a contagem de pendentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		// A contagem vem sempre do repositório: só o reconhecimento remoto a
		// reduz, nunca a transição de conectividade
		mockSaleRepo.EXPECT().CountPending(42).Return(7, nil).Times(2)

		source := &fakeSource{online: false}
		tracker := NewTracker(mockSaleRepo, source)

		before, err := tracker.Status(42)
		require.NoError(t, err)
		assert.Equal(t, 7, before.Pending)

		source.listener(true)

		after, err := tracker.Status(42)
		require.NoError(t, err)
		assert.Equal(t, 7, after.Pending)
		assert.True(t, after.Online)
		assert.Equal(t, "online", after.Label)
	})

	t.Run("erro do repositório é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().CountPending(42).Return(0, assert.AnError)

		tracker := NewTracker(mockSaleRepo, &fakeSource{online: true})

		_, err := tracker.Status(42)
		assert.Error(t, err)
	})
}
