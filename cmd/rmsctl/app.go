package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-engine/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/scheduler"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/internal/usecases/pricing"
	"github.com/vfg2006/revenue-engine/pkg/log"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

// app agrupa a configuração, a conexão e os serviços usados pelos comandos
type app struct {
	cfg        *config.Config
	conn       *postgres.Connection
	categories repository.RoomCategoryRepository
	clients    repository.APIClientRepository
	forecaster forecasting.Forecaster
	pricer     pricing.Pricer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(log.Options{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stderr",
	})

	rules, err := config.LoadPricingRules(cfg.Pricing.RulesFile, cfg.Pricing)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar regras de preço: %w", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	categoryRepo := repository.NewRoomCategoryRepository(conn)
	competitorRepo := repository.NewCompetitorRateRepository(conn)
	eventRepo := repository.NewEventRepository(conn)
	forecastRepo := repository.NewForecastRepository(conn)

	forecaster := forecasting.NewService(
		categoryRepo,
		repository.NewBookingRepository(conn),
		competitorRepo,
		eventRepo,
		forecastRepo,
		cfg.Forecasting,
	)

	pricer := pricing.NewService(
		categoryRepo,
		competitorRepo,
		eventRepo,
		forecastRepo,
		repository.NewPriceRepository(conn),
		forecaster,
		rules,
		cfg,
	)

	return &app{
		cfg:        cfg,
		conn:       conn,
		categories: categoryRepo,
		clients:    repository.NewAPIClientRepository(conn),
		forecaster: forecaster,
		pricer:     pricer,
	}, nil
}

func (a *app) repricingSync() *scheduler.RepricingSyncService {
	return scheduler.NewRepricingSyncService(a.categories, a.forecaster, a.pricer, a.cfg)
}

func (a *app) Close() {
	a.conn.Close()
}

// categoryDateFlags registra --category e --date, comuns a forecast e price
func categoryDateFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "Categoria de quarto")
	cmd.Flags().String("date", "", "Data alvo (YYYY-MM-DD), padrão amanhã")
	_ = cmd.MarkFlagRequired("category")
}

func readCategoryDate(cmd *cobra.Command, now time.Time) (string, time.Time, error) {
	category, _ := cmd.Flags().GetString("category")
	rawDate, _ := cmd.Flags().GetString("date")

	if rawDate == "" {
		return category, utils.DateOnly(now).AddDate(0, 0, 1), nil
	}

	date, err := utils.ParseDate(rawDate)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("data inválida %q: %w", rawDate, err)
	}

	return category, *date, nil
}

func printJSON(cmd *cobra.Command, value any) {
	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(value))
}
