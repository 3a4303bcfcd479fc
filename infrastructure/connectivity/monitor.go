package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-ledger-api/internal/config"
)

// Pinger abstrai a sonda de alcance do armazenamento remoto.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Listener recebe transições de conectividade (true = online).
type Listener func(online bool)

// Monitor sonda o armazenamento remoto em intervalo fixo e publica transições
// online/offline para os assinantes. O núcleo de vendas só lê o último estado;
// o ciclo de vida da assinatura é responsabilidade do monitor.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration

	mu        sync.RWMutex
	online    bool
	listeners []Listener
}

func NewMonitor(pinger Pinger, cfg config.Connectivity) *Monitor {
	return &Monitor{
		pinger:   pinger,
		interval: time.Duration(cfg.ProbeIntervalSeconds) * time.Second,
		timeout:  time.Duration(cfg.ProbeTimeoutSeconds) * time.Second,
	}
}

// Start executa uma sonda imediata e depois sonda em intervalo fixo até o
// contexto ser cancelado.
func (m *Monitor) Start(ctx context.Context) {
	m.probe(ctx)

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logrus.Info("Parando monitor de conectividade")
				return
			case <-ticker.C:
				m.probe(ctx)
			}
		}
	}()
}

// Online retorna o último estado observado da conexão com o armazenamento.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Subscribe registra um listener e entrega imediatamente o estado atual.
func (m *Monitor) Subscribe(listener Listener) {
	m.mu.Lock()
	m.listeners = append(m.listeners, listener)
	current := m.online
	m.mu.Unlock()

	listener(current)
}

func (m *Monitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.pinger.Ping(probeCtx)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "sonda de conectividade falhou")).
			Debug("Armazenamento remoto inacessível")
	}

	m.setOnline(err == nil)
}

func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	if !changed {
		return
	}

	if online {
		logrus.Info("Conectividade restabelecida com o armazenamento remoto")
	} else {
		logrus.Warn("Conectividade perdida com o armazenamento remoto")
	}

	for _, listener := range listeners {
		listener(online)
	}
}
