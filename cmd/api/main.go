package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/api"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/scheduler"
	"github.com/vfg2006/revenue-engine/internal/usecases/analyzing"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/internal/usecases/pricing"
	"github.com/vfg2006/revenue-engine/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(log.Options{
		Level:      cfg.App.LogLevel,
		Format:     cfg.App.LogFormat,
		Output:     cfg.App.LogOutput,
		MaxAgeDays: cfg.App.LogMaxAgeDays,
	})
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	rules, err := config.LoadPricingRules(cfg.Pricing.RulesFile, cfg.Pricing)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar regras de preço")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	categoryRepo := repository.NewRoomCategoryRepository(pgConn)
	bookingRepo := repository.NewBookingRepository(pgConn)
	competitorRepo := repository.NewCompetitorRateRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn)
	priceRepo := repository.NewPriceRepository(pgConn)
	clientRepo := repository.NewAPIClientRepository(pgConn)

	authenticator := authenticating.NewService(clientRepo, cfg)
	forecaster := forecasting.NewService(categoryRepo, bookingRepo, competitorRepo, eventRepo, forecastRepo, cfg.Forecasting)
	pricer := pricing.NewService(categoryRepo, competitorRepo, eventRepo, forecastRepo, priceRepo, forecaster, rules, cfg)
	analyzer := analyzing.NewService(categoryRepo, bookingRepo, forecastRepo, forecaster, cfg.Forecasting.UseModel)

	repricingSyncService := scheduler.NewRepricingSyncService(categoryRepo, forecaster, pricer, cfg)
	accuracySyncService := scheduler.NewAccuracySyncService(categoryRepo, analyzer, cfg)

	if err := repricingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reprecificação")
	} else {
		logrus.Info("Agendador de reprecificação iniciado com sucesso")
	}

	if err := accuracySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de acurácia")
	} else {
		logrus.Info("Agendador de acurácia iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		authenticator,
		forecaster,
		pricer,
		analyzer,
		repricingSyncService,
		accuracySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
