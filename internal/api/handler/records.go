package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/internal/domain"
	"github.com/vfg2006/decision-report-api/internal/usecases/ingesting"
	"github.com/vfg2006/decision-report-api/pkg/apiErrors"
	"github.com/vfg2006/decision-report-api/pkg/utils"
)

type SourceSummary struct {
	Source       string  `json:"source"`
	Records      int     `json:"records"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RecordsResponse struct {
	Total   int                    `json:"total"`
	Sources []SourceSummary        `json:"sources"`
	Records []domain.RevenueRecord `json:"records"`
}

// ListDataFiles lista os arquivos disponíveis no diretório de dados
func ListDataFiles(service ingesting.IngestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := service.ListFiles()
		if err != nil {
			writeServiceError(w, err, "Erro ao listar arquivos de dados")
			return
		}

		writeJSON(w, http.StatusOK, files)
	}
}

// UploadRecords recebe uma planilha via multipart (campo "file") e a ingere
func UploadRecords(service ingesting.IngestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' é obrigatório", nil)
			return
		}
		defer file.Close()

		result, err := service.SaveUpload(r.Context(), header.Filename, file)
		if err != nil {
			writeServiceError(w, err, "Erro ao processar arquivo enviado")
			return
		}

		logrus.WithFields(logrus.Fields{
			"file":     header.Filename,
			"batch_id": result.BatchID,
			"records":  result.Records,
		}).Info("Arquivo enviado ingerido")

		writeJSON(w, http.StatusCreated, result)
	}
}

// ListRecords retorna os registros carregados, opcionalmente filtrados por período (from/to em AAAA-MM-DD)
func ListRecords(service ingesting.IngestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		from, err := utils.ParseDate(query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'from' deve estar no formato AAAA-MM-DD", nil)
			return
		}
		to, err := utils.ParseDate(query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'to' deve estar no formato AAAA-MM-DD", nil)
			return
		}

		records, err := service.ListRecords(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar registros de receita")
			return
		}

		writeJSON(w, http.StatusOK, summarizeRecords(filterRecords(records, from, to, query.Get("source"))))
	}
}

func filterRecords(records []domain.RevenueRecord, from, to *time.Time, source string) []domain.RevenueRecord {
	filtered := make([]domain.RevenueRecord, 0, len(records))
	for _, rec := range records {
		if !from.IsZero() && rec.Timestamp.Before(*from) {
			continue
		}
		// "to" inclui o dia inteiro
		if !to.IsZero() && !rec.Timestamp.Before(to.AddDate(0, 0, 1)) {
			continue
		}
		if source != "" && rec.Source != source {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func summarizeRecords(records []domain.RevenueRecord) RecordsResponse {
	bySource := make(map[string]*SourceSummary)
	for _, rec := range records {
		summary, ok := bySource[rec.Source]
		if !ok {
			summary = &SourceSummary{Source: rec.Source}
			bySource[rec.Source] = summary
		}
		summary.Records++
		summary.TotalRevenue += rec.Amount
	}

	sources := make([]SourceSummary, 0, len(bySource))
	for _, summary := range bySource {
		summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
		sources = append(sources, *summary)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Source < sources[j].Source })

	return RecordsResponse{
		Total:   len(records),
		Sources: sources,
		Records: records,
	}
}
