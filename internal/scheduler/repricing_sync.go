package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/internal/usecases/pricing"
	"github.com/vfg2006/revenue-engine/pkg/utils"
)

// RepricingSyncConfig representa a configuração do agendador de reprecificação
type RepricingSyncConfig struct {
	CronSchedule      string
	DaysAhead         int
	MaxConcurrentJobs int
	SyncEnabled       bool
	UseModel          bool
	Channel           string
}

// RepricingRun resume uma execução de reprecificação
type RepricingRun struct {
	RunID       string            `json:"run_id"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Categories  int               `json:"categories"`
	Records     int               `json:"records"`
	Failures    map[string]string `json:"failures,omitempty"`
	// Misconfigured lista as categorias que só voltam a ser precificadas após correção do cadastro
	Misconfigured []string `json:"misconfigured,omitempty"`
}

// RepricingSyncService recalcula previsões e preços de todas as categorias
type RepricingSyncService struct {
	scheduler    *gocron.Scheduler
	config       RepricingSyncConfig
	categoryRepo repository.RoomCategoryRepository
	forecaster   forecasting.Forecaster
	pricer       pricing.Pricer
	syncRunning  bool
	syncMutex    sync.Mutex
	lastRun      *RepricingRun
	now          func() time.Time
}

// NewRepricingSyncService cria uma nova instância do serviço de reprecificação
func NewRepricingSyncService(
	categoryRepo repository.RoomCategoryRepository,
	forecaster forecasting.Forecaster,
	pricer pricing.Pricer,
	appConfig *config.Config,
) *RepricingSyncService {
	syncConfig := RepricingSyncConfig{
		CronSchedule:      appConfig.RepricingSync.CronSchedule,
		DaysAhead:         appConfig.RepricingSync.DaysAhead,
		MaxConcurrentJobs: appConfig.RepricingSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.RepricingSync.Enabled,
		UseModel:          appConfig.Forecasting.UseModel,
		Channel:           appConfig.Pricing.DefaultChannel,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"days_ahead":          syncConfig.DaysAhead,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reprecificação carregada")

	return &RepricingSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		categoryRepo: categoryRepo,
		forecaster:   forecaster,
		pricer:       pricer,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *RepricingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reprecificação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reprecificação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			logrus.WithError(err).Warn("Reprecificação agendada não executada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reprecificação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reprecificação")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RepricingSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *RepricingSyncService) finish(run *RepricingRun) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	if run != nil {
		s.lastRun = run
	}
}

// RunOnce executa uma reprecificação completa e aguarda o término
func (s *RepricingSyncService) RunOnce(ctx context.Context) (*RepricingRun, error) {
	if !s.tryStart() {
		logrus.Info("Reprecificação já em andamento, ignorando")
		return nil, ErrSyncAlreadyRunning
	}

	run, err := s.run(ctx)
	s.finish(run)

	return run, err
}

// TriggerManualSync inicia manualmente uma reprecificação em segundo plano
func (s *RepricingSyncService) TriggerManualSync() error {
	if !s.tryStart() {
		logrus.Info("Reprecificação já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando reprecificação manual")
	go func() {
		run, err := s.run(context.Background())
		if err != nil {
			logrus.WithError(err).Error("Erro na reprecificação manual")
		}
		s.finish(run)
	}()

	return nil
}

func (s *RepricingSyncService) run(ctx context.Context) (*RepricingRun, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	today := utils.DateOnly(s.now())
	run := &RepricingRun{
		RunID:     runID,
		StartedAt: s.now(),
		StartDate: today,
		EndDate:   today.AddDate(0, 0, s.config.DaysAhead),
		Failures:  map[string]string{},
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias para reprecificação: %w", err)
	}

	if len(categories) == 0 {
		logrus.Info("Nenhuma categoria encontrada para reprecificação")
		run.CompletedAt = s.now()
		return run, nil
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"categories": len(categories),
		"start_date": run.StartDate.Format(time.DateOnly),
		"end_date":   run.EndDate.Format(time.DateOnly),
	}).Info("Iniciando reprecificação de todas as categorias")

	s.processCategories(ctx, run, categories)

	run.Categories = len(categories)
	run.CompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": run.CompletedAt.Sub(run.StartedAt).String(),
		"records":  run.Records,
		"failures": len(run.Failures),
	}).Info("Reprecificação concluída")

	return run, nil
}

// processCategories processa as categorias em paralelo, limitado por MaxConcurrentJobs
func (s *RepricingSyncService) processCategories(ctx context.Context, run *RepricingRun, categories []*domain.RoomCategory) {
	workers := s.config.MaxConcurrentJobs
	if workers <= 0 {
		workers = 1
	}

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var resultMutex sync.Mutex

	for _, category := range categories {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(category *domain.RoomCategory) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			records, err := s.processCategory(ctx, category.Name, run)

			resultMutex.Lock()
			defer resultMutex.Unlock()

			if err != nil {
				logger := logrus.WithFields(logrus.Fields{
					"run_id":   run.RunID,
					"category": category.Name,
					"error":    err.Error(),
				})
				if domain.IsConfigurationError(err) {
					logger.Warn("Categoria com cadastro inválido, reprecificação ignorada")
					run.Misconfigured = append(run.Misconfigured, category.Name)
				} else {
					logger.Error("Erro ao reprecificar categoria")
				}
				run.Failures[category.Name] = err.Error()
				return
			}
			run.Records += records
		}(category)
	}

	wg.Wait()
}

// processCategory grava a previsão de cada data e publica os preços do intervalo
func (s *RepricingSyncService) processCategory(ctx context.Context, category string, run *RepricingRun) (int, error) {
	for _, date := range utils.DateRange(run.StartDate, run.EndDate) {
		if _, err := s.forecaster.ForecastAndStore(ctx, category, date, s.config.UseModel); err != nil {
			return 0, fmt.Errorf("previsão de %s: %w", date.Format(time.DateOnly), err)
		}
	}

	quotes, err := s.pricer.PriceRange(ctx, category, run.StartDate, run.EndDate, nil)
	if err != nil {
		return 0, fmt.Errorf("precificação: %w", err)
	}

	records, err := s.pricer.Record(ctx, quotes, s.config.Channel, domain.SourceScheduler, run.RunID)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   run.RunID,
		"category": category,
		"records":  len(records),
	}).Info("Categoria reprecificada")

	return len(records), nil
}

// GetStatus retorna o status atual do agendador
func (s *RepricingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":        s.config.SyncEnabled,
		"sync_cron":           s.config.CronSchedule,
		"sync_days_ahead":     s.config.DaysAhead,
		"sync_max_concurrent": s.config.MaxConcurrentJobs,
		"sync_running":        s.syncRunning,
		"last_run":            s.lastRun,
	}
}
