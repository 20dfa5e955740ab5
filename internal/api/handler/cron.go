package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/pkg/apiErrors"
)

const (
	CronJobTypeIngestion = "ingestion"
	CronJobTypeAll       = "all"
)

// Syncer é a sincronização agendada que pode ser disparada manualmente
type Syncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices associa cada tipo de cron job ao seu serviço
type CronJobServices map[string]Syncer

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		service, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeIngestion, nil)
			return
		}
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Serviço de sincronização não disponível", nil)
			return
		}

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncConflict, "Sincronização já em andamento", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de uma cron job, ou de todas com o tipo "all"
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType != CronJobTypeAll {
			service, ok := services[cronType]
			if !ok || service == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cron job não encontrada", nil)
				return
			}
			writeJSON(w, http.StatusOK, service.GetStatus())
			return
		}

		status := make(map[string]any, len(services))
		for name, service := range services {
			if service != nil {
				status[name] = service.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}
