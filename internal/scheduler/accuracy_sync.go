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
	"github.com/vfg2006/revenue-engine/internal/usecases/analyzing"
	"github.com/vfg2006/revenue-engine/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

// AccuracyRun resume uma avaliação diária de acurácia
type AccuracyRun struct {
	Date             time.Time                `json:"date"`
	StartedAt        time.Time                `json:"started_at"`
	CompletedAt      time.Time                `json:"completed_at"`
	Reports          []*domain.AccuracyReport `json:"reports"`
	Evaluated        int                      `json:"evaluated"`
	MeanAccuracy     float64                  `json:"mean_accuracy_score"`
	FailedCategories []string                 `json:"failed_categories,omitempty"`
}

// AccuracySyncService avalia diariamente a previsão do dia anterior de cada categoria
type AccuracySyncService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
	categoryRepo repository.RoomCategoryRepository
	analyzer     analyzing.Analyzer
	syncRunning  bool
	syncMutex    sync.Mutex
	lastRun      *AccuracyRun
	now          func() time.Time
}

func NewAccuracySyncService(
	categoryRepo repository.RoomCategoryRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *AccuracySyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.AccuracySync.CronSchedule,
		"sync_enabled":  appConfig.AccuracySync.Enabled,
	}).Info("Configuração do agendador de acurácia carregada")

	return &AccuracySyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.AccuracySync.CronSchedule,
		enabled:      appConfig.AccuracySync.Enabled,
		categoryRepo: categoryRepo,
		analyzer:     analyzer,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *AccuracySyncService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Avaliação de acurácia desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			logrus.WithError(err).Warn("Avaliação de acurácia não executada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar avaliação de acurácia: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de acurácia")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AccuracySyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *AccuracySyncService) finish(run *AccuracyRun) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	if run != nil {
		s.lastRun = run
	}
}

// RunOnce avalia o dia anterior para todas as categorias
func (s *AccuracySyncService) RunOnce(ctx context.Context) (*AccuracyRun, error) {
	if !s.tryStart() {
		return nil, ErrSyncAlreadyRunning
	}

	run, err := s.run(ctx)
	s.finish(run)

	return run, err
}

// TriggerManualSync inicia manualmente uma avaliação em segundo plano
func (s *AccuracySyncService) TriggerManualSync() error {
	if !s.tryStart() {
		logrus.Info("Avaliação de acurácia já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	go func() {
		run, err := s.run(context.Background())
		if err != nil {
			logrus.WithError(err).Error("Erro na avaliação manual de acurácia")
		}
		s.finish(run)
	}()

	return nil
}

func (s *AccuracySyncService) run(ctx context.Context) (*AccuracyRun, error) {
	run := &AccuracyRun{
		Date:      utils.DateOnly(s.now()).AddDate(0, 0, -1),
		StartedAt: s.now(),
		Reports:   make([]*domain.AccuracyReport, 0),
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias para avaliação de acurácia: %w", err)
	}

	scores := make([]float64, 0, len(categories))
	for _, category := range categories {
		report, err := s.analyzer.Accuracy(ctx, category.Name, run.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"category": category.Name,
				"date":     run.Date.Format(time.DateOnly),
				"error":    err.Error(),
			}).Error("Erro ao avaliar acurácia da categoria")
			run.FailedCategories = append(run.FailedCategories, category.Name)
			continue
		}

		run.Reports = append(run.Reports, report)
		if !report.Available {
			logrus.WithFields(logrus.Fields{
				"category": category.Name,
				"date":     run.Date.Format(time.DateOnly),
			}).Info("Nenhuma previsão armazenada para avaliar")
			continue
		}

		scores = append(scores, report.AccuracyScore)
		logrus.WithFields(logrus.Fields{
			"category":         category.Name,
			"date":             run.Date.Format(time.DateOnly),
			"predicted_demand": report.PredictedDemand,
			"actual_occupancy": report.ActualOccupancy,
			"accuracy_score":   report.AccuracyScore,
		}).Info("Acurácia da previsão avaliada")
	}

	run.Evaluated = len(scores)
	if len(scores) > 0 {
		run.MeanAccuracy = stat.Mean(scores, nil)
	}
	run.CompletedAt = s.now()

	return run, nil
}

// GetStatus retorna o status atual do agendador
func (s *AccuracySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled": s.enabled,
		"sync_cron":    s.cronSchedule,
		"sync_running": s.syncRunning,
	}

	if s.lastRun != nil {
		status["last_run_date"] = s.lastRun.Date
		status["last_run_completed_at"] = s.lastRun.CompletedAt
		status["last_mean_accuracy_score"] = s.lastRun.MeanAccuracy
		status["last_evaluated_categories"] = s.lastRun.Evaluated
	}

	return status
}
