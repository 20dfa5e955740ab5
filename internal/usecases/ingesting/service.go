package ingesting

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/infrastructure/repository"
	"github.com/vfg2006/decision-report-api/internal/domain"
	"github.com/vfg2006/decision-report-api/pkg/utils"
)

// FileLoader lê arquivos de receita do diretório de dados
type FileLoader interface {
	ListFiles(dir string) ([]domain.DataFile, error)
	LoadFile(ctx context.Context, path string) ([]domain.RevenueRecord, domain.FileReport)
	Accepts(name string) bool
}

type IngestionService interface {
	NewBatchID() (string, error)
	ListFiles() ([]domain.DataFile, error)
	IngestFile(ctx context.Context, name, batchID string) (domain.FileReport, error)
	PruneMissing(ctx context.Context, present []domain.DataFile) (int, error)
	SaveUpload(ctx context.Context, name string, content io.Reader) (*domain.IngestionResult, error)
	ListRecords(ctx context.Context) ([]domain.RevenueRecord, error)
}

type Service struct {
	loader  FileLoader
	repo    repository.RevenueRecordRepository
	dataDir string
	now     func() time.Time
}

func NewService(loader FileLoader, repo repository.RevenueRecordRepository, dataDir string) *Service {
	return &Service{
		loader:  loader,
		repo:    repo,
		dataDir: dataDir,
		now:     time.Now,
	}
}

func (s *Service) NewBatchID() (string, error) {
	return utils.GenerateID()
}

func (s *Service) ListFiles() ([]domain.DataFile, error) {
	if _, err := os.Stat(s.dataDir); os.IsNotExist(err) {
		return []domain.DataFile{}, nil
	}
	return s.loader.ListFiles(s.dataDir)
}

// IngestFile carrega um arquivo do diretório de dados e substitui os registros da sua origem.
// Se o arquivo falhar, os registros anteriores da origem são mantidos.
func (s *Service) IngestFile(ctx context.Context, name, batchID string) (domain.FileReport, error) {
	records, report := s.loader.LoadFile(ctx, filepath.Join(s.dataDir, name))
	if report.Error != "" {
		return report, fmt.Errorf("%w: %s", ErrFileNotLoaded, report.Error)
	}

	for i := range records {
		id, err := utils.GenerateID()
		if err != nil {
			return report, fmt.Errorf("generating record id: %w", err)
		}
		records[i].ID = id
	}

	if err := s.repo.ReplaceSource(ctx, name, batchID, records); err != nil {
		return report, fmt.Errorf("replacing records of %s: %w", name, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":         name,
		"batch_id":     batchID,
		"records":      report.Records,
		"dropped_rows": report.DroppedRows,
	}).Info("ingesting: file ingested")

	return report, nil
}

// PruneMissing remove os registros de origens que não estão mais no diretório
func (s *Service) PruneMissing(ctx context.Context, present []domain.DataFile) (int, error) {
	counts, err := s.repo.CountBySource(ctx)
	if err != nil {
		return 0, err
	}

	keep := make(map[string]struct{}, len(present))
	for _, f := range present {
		keep[f.Name] = struct{}{}
	}

	removed := 0
	for source := range counts {
		if _, ok := keep[source]; ok {
			continue
		}
		if err := s.repo.ReplaceSource(ctx, source, "", nil); err != nil {
			return removed, err
		}
		removed++
		logrus.WithField("source", source).Info("ingesting: source removed from data directory")
	}
	return removed, nil
}

// SaveUpload grava o arquivo enviado no diretório de dados e o ingere
func (s *Service) SaveUpload(ctx context.Context, name string, content io.Reader) (*domain.IngestionResult, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) || strings.HasPrefix(name, "~$") {
		return nil, ErrInvalidFileName
	}
	if !s.loader.Accepts(name) {
		return nil, ErrUnsupportedFile
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("writing upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dataDir, name)); err != nil {
		return nil, fmt.Errorf("storing upload: %w", err)
	}

	batchID, err := s.NewBatchID()
	if err != nil {
		return nil, err
	}

	result := &domain.IngestionResult{BatchID: batchID, StartedAt: s.now()}
	report, err := s.IngestFile(ctx, name, batchID)
	result.Files = []domain.FileReport{report}
	result.Records = report.Records
	result.FinishedAt = s.now()

	return result, err
}

func (s *Service) ListRecords(ctx context.Context) ([]domain.RevenueRecord, error) {
	return s.repo.ListAll(ctx)
}
