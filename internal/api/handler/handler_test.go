package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/decision-report-api/infrastructure/ingestion"
	"github.com/vfg2006/decision-report-api/infrastructure/repository"
	"github.com/vfg2006/decision-report-api/internal/api/handler/router"
	"github.com/vfg2006/decision-report-api/internal/config"
	"github.com/vfg2006/decision-report-api/internal/domain"
	"github.com/vfg2006/decision-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/decision-report-api/internal/usecases/ingesting"
	"github.com/vfg2006/decision-report-api/internal/usecases/reporting"
	"github.com/vfg2006/decision-report-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const sampleCSV = "Data;Receita\n15/01/2023;1.000,00\n20/02/2023;2.500,50\n15/01/2024;3.000,00\nsem data;10\n"

type fakeSyncer struct {
	busy      bool
	triggered int
}

func (f *fakeSyncer) TriggerManualSync() bool {
	if f.busy {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.busy}
}

type testAPI struct {
	handler http.Handler
	syncer  *fakeSyncer
}

func newTestAPI(t *testing.T) *testAPI {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	records := repository.NewMemoryRevenueRecordRepository()
	reports := repository.NewMemoryReportRepository()
	loader := ingestion.NewLoader(ingestion.DefaultColumnMatcher(), nil, nil)

	auth := authenticating.NewService(config.Auth{
		Secret:       "segredo",
		Email:        "operador@empresa.com",
		PasswordHash: string(hash),
		TokenTTL:     time.Hour,
	})
	ingestionService := ingesting.NewService(loader, records, t.TempDir())
	reportingService := reporting.NewService(records, reports, domain.DefaultPolicy())
	syncer := &fakeSyncer{}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(auth)...),
		router.WithRoutes(Records(ingestionService)...),
		router.WithRoutes(Analysis(reportingService)...),
		router.WithRoutes(Reports(reportingService)...),
		router.WithRoutes(CronJobs(CronJobServices{CronJobTypeIngestion: syncer})...),
	)

	return &testAPI{handler: rt, syncer: syncer}
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) upload(t *testing.T, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/records/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthcheck(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[map[string]any](t, rec)["status"])
}

func TestLogin(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "Credenciais válidas", body: `{"email":"operador@empresa.com","password":"senha-forte"}`, wantStatus: http.StatusOK},
		{name: "Senha errada", body: `{"email":"operador@empresa.com","password":"x"}`, wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "Corpo inválido", body: `{"email":`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
		{name: "Campos ausentes", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, http.MethodPost, "/v1/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeBody[apiErrors.APIError](t, rec).Code)
				return
			}
			assert.NotEmpty(t, decodeBody[map[string]string](t, rec)["token"])
		})
	}
}

func TestFluxoCompleto_UploadAnaliseDecisaoRelatorio(t *testing.T) {
	a := newTestAPI(t)

	rec := a.upload(t, "vendas.csv", sampleCSV)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decodeBody[domain.IngestionResult](t, rec)
	assert.Equal(t, 3, result.Records)
	require.Len(t, result.Files, 1)
	assert.Equal(t, 1, result.Files[0].DroppedRows)

	rec = a.do(t, http.MethodGet, "/v1/files", "")
	require.Equal(t, http.StatusOK, rec.Code)
	files := decodeBody[[]domain.DataFile](t, rec)
	require.Len(t, files, 1)
	assert.Equal(t, "vendas.csv", files[0].Name)

	rec = a.do(t, http.MethodGet, "/v1/records", "")
	require.Equal(t, http.StatusOK, rec.Code)
	records := decodeBody[RecordsResponse](t, rec)
	assert.Equal(t, 3, records.Total)
	require.Len(t, records.Sources, 1)
	assert.Equal(t, 6500.5, records.Sources[0].TotalRevenue)

	rec = a.do(t, http.MethodGet, "/v1/records?from=2024-01-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[RecordsResponse](t, rec).Total)

	rec = a.do(t, http.MethodGet, "/v1/analysis", "")
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := decodeBody[map[string]any](t, rec)
	assert.InDelta(t, 6500.5, analysis["total_revenue"], 1e-9)
	assert.NotContains(t, analysis, "message")

	rec = a.do(t, http.MethodPost, "/v1/decision", `{"target_price": 100000, "liquid_capital": 50000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	report := decodeBody[domain.DecisionReport](t, rec)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 3, report.RecordCount)
	assert.NotEmpty(t, report.Decision.Reasoning)

	rec = a.do(t, http.MethodGet, "/v1/reports/"+report.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.Decision.Recommendation, decodeBody[domain.DecisionReport](t, rec).Decision.Recommendation)

	rec = a.do(t, http.MethodGet, "/v1/reports?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summaries := decodeBody[[]domain.ReportSummary](t, rec)
	require.Len(t, summaries, 1)
	assert.Equal(t, report.ID, summaries[0].ID)
}

func TestUploadRecords_Erros(t *testing.T) {
	a := newTestAPI(t)

	rec := a.upload(t, "notas.txt", "qualquer coisa")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = a.upload(t, "sem_colunas.csv", "Cliente;Cidade\nAna;Recife\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeBody[apiErrors.APIError](t, rec).Code)

	rec = a.do(t, http.MethodPost, "/v1/records/upload", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnalysis_SemDados(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/v1/analysis", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, emptyAnalysisMessage, body["message"])
	assert.Equal(t, []any{}, body["yearly_summaries"])
}

func TestGetInvestmentScenarios(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "Capital informado", query: "?capital=1000000", wantStatus: http.StatusOK},
		{name: "Frações informadas", query: "?capital=1000000&risky=0.5&stable=0.5", wantStatus: http.StatusOK},
		{name: "Sem capital", query: "", wantStatus: http.StatusBadRequest},
		{name: "Fração inválida", query: "?capital=1000&risky=2", wantStatus: http.StatusBadRequest},
		{name: "Fração não numérica", query: "?capital=1000&stable=abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, http.MethodGet, "/v1/investments/scenarios"+tt.query, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, decodeBody[[]domain.InvestmentScenario](t, rec), 4)
			}
		})
	}
}

func TestGetInvestmentScenarios_FracoesInvalidas(t *testing.T) {
	a := newTestAPI(t)

	// com os dois parâmetros malformados, o primeiro na ordem (risky) é sempre o reportado
	for i := 0; i < 20; i++ {
		rec := a.do(t, http.MethodGet, "/v1/investments/scenarios?capital=1000&risky=x&stable=y", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeBody[apiErrors.APIError](t, rec)
		assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
		assert.Equal(t, map[string]any{"param": "risky"}, apiErr.Details)
	}
}

func TestGetPolicy(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/v1/policy", "")

	require.Equal(t, http.StatusOK, rec.Code)
	policy := decodeBody[domain.Policy](t, rec)
	assert.Equal(t, domain.DefaultPolicy(), policy)
}

func TestSimulateConsorcio(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/v1/consorcio/simulate",
		`{"target_price":1000000,"face_value":1000000,"upfront_payment":200000,"duration_years":10,"annual_admin_fee_rate":1.5,"compare_terms":[10,20]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sim := decodeBody[reporting.PlanSimulation](t, rec)
	assert.Equal(t, 120, sim.Plan.NumberOfInstallments)
	assert.Len(t, sim.Comparison, 2)

	rec = a.do(t, http.MethodPost, "/v1/consorcio/simulate", `{"face_value":1000000,"duration_years":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeBody[apiErrors.APIError](t, rec)
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, map[string]any{"field": "duration_years"}, apiErr.Details)
}

func TestAssessConsorcioRisk(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/v1/consorcio/risk",
		`{"plan":{"target_price":1000000,"face_value":1000000,"duration_years":10},"offered_price":1000000}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[map[string]any](t, rec)
	assessment := body["assessment"].(map[string]any)
	assert.Equal(t, "LOW", assessment["tier"])
	assert.Nil(t, assessment["capital_coverage_ratio"])
}

func TestDecide_SemRegistros(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/v1/decision", `{"target_price": 100000}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apiErrors.ErrNoData, decodeBody[apiErrors.APIError](t, rec).Code)
}

func TestGetReport_NaoEncontrado(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/v1/reports/inexistente", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCronJobs(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/v1/cron/ingestion/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, a.syncer.triggered)

	a.syncer.busy = true
	rec = a.do(t, http.MethodPost, "/v1/cron/ingestion/run", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(t, http.MethodPost, "/v1/cron/outra/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(t, http.MethodGet, "/v1/cron/all/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[map[string]map[string]any](t, rec)
	assert.Equal(t, true, status[CronJobTypeIngestion]["sync_running"])

	rec = a.do(t, http.MethodGet, "/v1/cron/ingestion/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/v1/cron/outra/status", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
