package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/internal/api/handler"
	"github.com/vfg2006/revenue-engine/internal/api/handler/router"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/scheduler"
	"github.com/vfg2006/revenue-engine/internal/usecases/analyzing"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/internal/usecases/pricing"
	"github.com/vfg2006/revenue-engine/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	config *config.Config,
	db handler.Pinger,
	authenticator authenticating.Authenticator,
	forecaster forecasting.Forecaster,
	pricer pricing.Pricer,
	analyzer analyzing.Analyzer,
	repricingSyncService *scheduler.RepricingSyncService,
	accuracySyncService *scheduler.AccuracySyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		Repricing: repricingSyncService,
		Accuracy:  accuracySyncService,
	}

	defaults := handler.Defaults{
		LookbackDays: config.Forecasting.LookbackDays,
		UseModel:     config.Forecasting.UseModel,
		SummaryDays:  config.Pricing.SummaryDays,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Forecasting(forecaster, defaults)...),
		router.WithRoutes(handler.Pricing(pricer, defaults)...),
		router.WithRoutes(handler.Analysis(analyzer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
	logrus.WithField("routes", rt.Routes()).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsOrigins),
		middleware.RateLimit(config.RateLimit),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	return srv, nil
}

// Run atende requisições até receber SIGINT/SIGTERM, o ctx ser cancelado
// ou o listener falhar. Em seguida desliga o servidor respeitando o timeout.
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			logrus.WithError(err).Error("Servidor parou de aceitar conexões")
			return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Sinal de término recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

// Shutdown encerra o servidor HTTP aguardando as requisições em andamento
func (s Server) Shutdown(ctx context.Context) error {
	logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Desligando servidor HTTP")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Requisições não finalizaram dentro do timeout")
		return fmt.Errorf("shutdown: %w", err)
	}

	logrus.Info("Servidor desligado; agendadores param com o contexto da aplicação")
	return nil
}
