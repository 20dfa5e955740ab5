package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/decision-report-api/internal/usecases/reporting"
	"github.com/vfg2006/decision-report-api/pkg/apiErrors"
)

func GetReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do relatório é obrigatório", nil)
			return
		}

		report, err := service.GetReport(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar relatório")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// ListReports lista os relatórios mais recentes (?limit=)
func ListReports(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'limit' deve ser um inteiro positivo", nil)
				return
			}
			limit = v
		}

		reports, err := service.ListReports(r.Context(), limit)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar relatórios")
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}
