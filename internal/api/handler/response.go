package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/internal/usecases/ingesting"
	"github.com/vfg2006/decision-report-api/internal/usecases/reporting"
	"github.com/vfg2006/decision-report-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxBodyBytes   = 1 << 20
	maxUploadBytes = 32 << 20
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeJSON lê o corpo da requisição. Corpo vazio mantém os valores padrão de v.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return errors.Wrap(err, "decoding request body")
}

// writeServiceError traduz os erros dos casos de uso em respostas padronizadas
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var validation *reporting.ValidationError
	switch {
	case errors.As(err, &validation):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validation.Error(), map[string]string{
			"field": validation.Field,
		})
	case errors.Is(err, reporting.ErrInvalidInput):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, reporting.ErrNoRecords):
		apiErrors.WriteError(w, apiErrors.ErrNoData, "Nenhum dado de receita carregado", nil)
	case errors.Is(err, reporting.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Relatório não encontrado", nil)
	case errors.Is(err, ingesting.ErrUnsupportedFile):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedFile, "Tipo de arquivo não suportado", nil)
	case errors.Is(err, ingesting.ErrInvalidFileName):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Nome de arquivo inválido", nil)
	case errors.Is(err, ingesting.ErrFileNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
