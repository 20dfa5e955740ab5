package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/infrastructure/repository"
	"github.com/vfg2006/decision-report-api/internal/domain"
	"github.com/vfg2006/decision-report-api/internal/usecases/analyzing"
	"github.com/vfg2006/decision-report-api/pkg/utils"
)

const defaultListLimit = 20

type ReportingService interface {
	Analysis(ctx context.Context) (*domain.FinancialAnalysis, error)
	Scenarios(req ScenarioRequest) ([]domain.InvestmentScenario, error)
	SimulatePlan(req PlanRequest) (*PlanSimulation, error)
	AssessRisk(req RiskRequest) (*RiskResult, error)
	Decide(ctx context.Context, req DecisionRequest) (*domain.DecisionReport, error)
	GetReport(ctx context.Context, id string) (*domain.DecisionReport, error)
	ListReports(ctx context.Context, limit int) ([]domain.ReportSummary, error)
	Policy() domain.Policy
}

type Service struct {
	records repository.RevenueRecordRepository
	reports repository.ReportRepository
	policy  domain.Policy
	now     func() time.Time
}

func NewService(records repository.RevenueRecordRepository, reports repository.ReportRepository, policy domain.Policy) *Service {
	return &Service{
		records: records,
		reports: reports,
		policy:  policy,
		now:     time.Now,
	}
}

// Policy retorna as constantes de negócio em uso
func (s *Service) Policy() domain.Policy {
	return s.policy
}

func (s *Service) Analysis(ctx context.Context) (*domain.FinancialAnalysis, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar registros de receita: %w", err)
	}

	analysis := analyzing.AnalyzeWindow(records, s.policy.TrendWindow)
	return &analysis, nil
}

// Scenarios projeta o capital nas taxas da política. Frações omitidas usam a divisão padrão.
func (s *Service) Scenarios(req ScenarioRequest) ([]domain.InvestmentScenario, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	risky := s.policy.RiskyAssetFraction
	if req.RiskyFraction != nil {
		risky = *req.RiskyFraction
	}
	stable := s.policy.StableAssetFraction
	if req.StableFraction != nil {
		stable = *req.StableFraction
	}

	return analyzing.Scenarios(s.policy, req.Capital, risky, stable), nil
}

func (s *Service) SimulatePlan(req PlanRequest) (*PlanSimulation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	terms := req.CompareTerms
	if len(terms) == 0 {
		terms = DefaultTerms
	}

	return &PlanSimulation{
		Plan:       analyzing.ComputePlan(req.InstallmentPlanParams),
		Comparison: analyzing.CompareTerms(req.InstallmentPlanParams, terms),
	}, nil
}

func (s *Service) AssessRisk(req RiskRequest) (*RiskResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	result := s.assess(req)
	return &result, nil
}

func (s *Service) assess(req RiskRequest) RiskResult {
	plan := analyzing.ComputePlan(req.Plan)
	assessment := analyzing.AssessRisk(s.policy, domain.RiskInput{
		TargetPrice:            req.Plan.TargetPrice,
		OfferedPrice:           req.OfferedPrice,
		LiquidCash:             req.LiquidCash,
		IlliquidHoldings:       req.IlliquidHoldings,
		VolatileHoldings:       req.VolatileHoldings,
		Plan:                   plan,
		UpfrontPayment:         req.Plan.UpfrontPayment,
		RecurringOffsetIncome:  req.RecurringOffsetIncome,
		RecurringExtraIncome:   req.RecurringExtraIncome,
		ReferenceMonthlyIncome: req.ReferenceMonthlyIncome,
	})
	return RiskResult{Plan: plan, Assessment: assessment}
}

// Decide roda a análise completa sobre os registros carregados e, se pedido, persiste o relatório.
func (s *Service) Decide(ctx context.Context, req DecisionRequest) (*domain.DecisionReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar registros de receita: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	analysis := analyzing.AnalyzeWindow(records, s.policy.TrendWindow)
	decision := analyzing.Decide(s.policy, domain.DecisionInput{
		Analysis:          analysis,
		TargetPrice:       req.TargetPrice,
		LiquidCapital:     req.LiquidCapital,
		PlanDurationYears: req.PlanDurationYears,
		PlanAnnualRate:    req.PlanAnnualRate,
	})

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do relatório: %w", err)
	}

	report := &domain.DecisionReport{
		ID:          id,
		CreatedAt:   s.now().UTC(),
		RecordCount: len(records),
		Analysis:    analysis,
		Scenarios: analyzing.Scenarios(s.policy, decision.SellScenario.TotalCapital,
			s.policy.RiskyAssetFraction, s.policy.StableAssetFraction),
		Decision: decision,
	}
	if req.Risk != nil {
		risk := s.assess(*req.Risk)
		report.Risk = &risk.Assessment
	}

	if req.Persist {
		if err := s.reports.Save(ctx, report); err != nil {
			return nil, fmt.Errorf("erro ao salvar relatório: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"report_id":      report.ID,
		"records":        report.RecordCount,
		"recommendation": decision.Recommendation,
		"persisted":      req.Persist,
	}).Info("reporting: decision report generated")

	return report, nil
}

func (s *Service) GetReport(ctx context.Context, id string) (*domain.DecisionReport, error) {
	report, err := s.reports.GetByID(ctx, id)
	if errors.Is(err, repository.ErrReportNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório %s: %w", id, err)
	}
	return report, nil
}

func (s *Service) ListReports(ctx context.Context, limit int) ([]domain.ReportSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.reports.ListRecent(ctx, limit)
}
