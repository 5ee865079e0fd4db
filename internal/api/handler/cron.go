package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/internal/scheduler"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRepricing = "repricing"
	CronJobTypeAccuracy  = "accuracy"
	CronJobTypeAll       = "all"
)

// SyncJob é uma rotina agendada que também pode ser disparada manualmente
type SyncJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	Repricing SyncJob
	Accuracy  SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := map[string]SyncJob{}
	if s.Repricing != nil {
		jobs[CronJobTypeRepricing] = s.Repricing
	}
	if s.Accuracy != nil {
		jobs[CronJobTypeAccuracy] = s.Accuracy
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		if cronType == CronJobTypeAll {
			started := map[string]bool{}
			for name, job := range jobs {
				err := job.TriggerManualSync()
				if err != nil && !errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
					handleServiceError(w, r, err)
					return
				}
				started[name] = err == nil
			}

			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Cron jobs disparadas",
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, ok := jobs[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: repricing, accuracy, all", nil)
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
