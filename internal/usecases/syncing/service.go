package syncing

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/connectivity"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
)

// ConnectivitySource é a assinatura de transições online/offline consumida
// pelo rastreador. O rastreador só lê o último booleano; quem é dono do ciclo
// de vida da sonda é a infraestrutura.
type ConnectivitySource interface {
	Online() bool
	Subscribe(listener connectivity.Listener)
}

// SyncStatus é o indicador exibido ao operador.
type SyncStatus struct {
	Online  bool   `json:"online"`
	Pending int    `json:"pending"`
	Label   string `json:"label"`
}

// StatusTracker observa a conectividade e conta vendas aguardando
// reconhecimento remoto.
type StatusTracker interface {
	Status(ownerID int) (*SyncStatus, error)
	Online() bool
}

type Tracker struct {
	saleRepo repository.SaleRepository

	mu     sync.RWMutex
	online bool
}

// NewTracker cria o rastreador e o inscreve na fonte de conectividade.
func NewTracker(saleRepo repository.SaleRepository, source ConnectivitySource) *Tracker {
	tracker := &Tracker{
		saleRepo: saleRepo,
	}

	source.Subscribe(tracker.onTransition)

	return tracker
}

// onTransition registra o novo estado. Voltar a ficar online não zera a
// contagem de pendentes: ela só diminui quando o reconhecimento remoto vira
// o status das vendas para saved.
func (t *Tracker) onTransition(online bool) {
	t.mu.Lock()
	t.online = online
	t.mu.Unlock()

	logrus.WithField("online", online).Info("Transição de conectividade observada")
}

// Online retorna o último estado de conectividade observado.
func (t *Tracker) Online() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.online
}

// Status monta o indicador do operador: "online" quando conectado, ou o modo
// degradado com a contagem de vendas não sincronizadas.
func (t *Tracker) Status(ownerID int) (*SyncStatus, error) {
	pending, err := t.saleRepo.CountPending(ownerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar vendas pendentes: %w", err)
	}

	online := t.Online()

	label := "online"
	if !online {
		label = fmt.Sprintf("offline • %d unsynced", pending)
	}

	return &SyncStatus{
		Online:  online,
		Pending: pending,
		Label:   label,
	}, nil
}
