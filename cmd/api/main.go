package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/connectivity"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
	"github.com/vfg2006/bakery-ledger-api/internal/api"
	"github.com/vfg2006/bakery-ledger-api/internal/config"
	"github.com/vfg2006/bakery-ledger-api/internal/scheduler"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/selling"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	bakeryRepo := repository.NewBakeryRepository(pgConn)
	itemRepo := repository.NewItemRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)

	// Monitor de conectividade com o armazenamento remoto
	monitor := connectivity.NewMonitor(pgConn, cfg.Connectivity)
	monitor.Start(ctx)

	authenticator := authenticating.NewService(userRepo, cfg)
	catalogService := cataloging.NewService(bakeryRepo, itemRepo)
	committer := selling.NewService(saleRepo, bakeryRepo)
	saleReader := selling.NewReader(saleRepo)
	reporter := reporting.NewService(saleRepo, bakeryRepo, itemRepo)
	exporter := exporting.NewService(saleRepo)
	syncTracker := syncing.NewTracker(saleRepo, monitor)

	// Varredura que reconhece vendas pendentes já assentadas
	saleAckSyncService := scheduler.NewSaleAckSyncService(saleRepo, monitor, cfg)

	if err := saleAckSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconhecimento de vendas")
	} else {
		logrus.Info("Agendador de reconhecimento de vendas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		catalogService,
		committer,
		saleReader,
		reporter,
		exporter,
		syncTracker,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
