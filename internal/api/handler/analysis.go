package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/decision-report-api/internal/domain"
	"github.com/vfg2006/decision-report-api/internal/usecases/reporting"
	"github.com/vfg2006/decision-report-api/pkg/apiErrors"
)

const emptyAnalysisMessage = "Nenhum dado de receita carregado. Envie uma planilha ou adicione arquivos ao diretório de dados."

type AnalysisResponse struct {
	*domain.FinancialAnalysis
	Message string `json:"message,omitempty"`
}

// GetAnalysis retorna a visão financeira dos registros carregados
func GetAnalysis(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, err := service.Analysis(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar análise financeira")
			return
		}

		response := AnalysisResponse{FinancialAnalysis: analysis}
		if analysis.IsEmpty() {
			response.Message = emptyAnalysisMessage
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// GetInvestmentScenarios projeta o capital informado (?capital=&risky=&stable=)
func GetInvestmentScenarios(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var req reporting.ScenarioRequest
		capital, err := strconv.ParseFloat(query.Get("capital"), 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro 'capital' numérico é obrigatório", nil)
			return
		}
		req.Capital = capital

		fractions := []struct {
			name string
			dst  **float64
		}{
			{"risky", &req.RiskyFraction},
			{"stable", &req.StableFraction},
		}
		for _, f := range fractions {
			raw := query.Get(f.name)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro '"+f.name+"' deve ser numérico",
					map[string]any{"param": f.name})
				return
			}
			*f.dst = &v
		}

		scenarios, err := service.Scenarios(req)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular cenários de investimento")
			return
		}

		writeJSON(w, http.StatusOK, scenarios)
	}
}

// SimulateConsorcio calcula o plano e a comparação entre prazos
func SimulateConsorcio(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reporting.PlanRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		simulation, err := service.SimulatePlan(req)
		if err != nil {
			writeServiceError(w, err, "Erro ao simular consórcio")
			return
		}

		writeJSON(w, http.StatusOK, simulation)
	}
}

func AssessConsorcioRisk(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reporting.RiskRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.AssessRisk(req)
		if err != nil {
			writeServiceError(w, err, "Erro ao avaliar risco")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// Decide gera o relatório de decisão comprar x vender
func Decide(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := reporting.DecisionRequest{Persist: true}
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		report, err := service.Decide(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar relatório de decisão")
			return
		}

		status := http.StatusOK
		if req.Persist {
			status = http.StatusCreated
		}
		writeJSON(w, status, report)
	}
}

// GetPolicy expõe as constantes de negócio usadas nos cálculos
func GetPolicy(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Policy())
	}
}
