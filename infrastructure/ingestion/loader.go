package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

var DefaultExtensions = []string{".xlsx", ".xlsm", ".csv"}

// Batch reúne os registros lidos de um conjunto de arquivos, por arquivo de origem
type Batch struct {
	Records map[string][]domain.RevenueRecord
	Reports []domain.FileReport
}

// All retorna todos os registros do lote ordenados por data
func (b *Batch) All() []domain.RevenueRecord {
	sources := make([]string, 0, len(b.Records))
	for source := range b.Records {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	var all []domain.RevenueRecord
	for _, source := range sources {
		all = append(all, b.Records[source]...)
	}
	sortByTimestamp(all)
	return all
}

type Loader struct {
	matcher    ColumnMatcher
	readers    map[string]Reader
	extensions []string
}

func NewLoader(matcher ColumnMatcher, passwords, extensions []string) *Loader {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	xlsx := XLSXReader{Passwords: passwords}
	return &Loader{
		matcher: matcher,
		readers: map[string]Reader{
			".xlsx": xlsx,
			".xlsm": xlsx,
			".csv":  CSVReader{},
		},
		extensions: normalizeExtensions(extensions),
	}
}

// Accepts informa se o nome (ou extensão) é de um tipo de arquivo suportado
func (l *Loader) Accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range l.extensions {
		if ext == allowed {
			_, ok := l.readers[ext]
			return ok
		}
	}
	return false
}

// ListFiles lista os arquivos suportados do diretório, ignorando arquivos temporários do Excel
func (l *Loader) ListFiles(dir string) ([]domain.DataFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	files := []domain.DataFile{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") || !l.Accepts(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"error": err.Error(),
			}).Warn("ingestion: failed to stat file")
			continue
		}

		files = append(files, domain.DataFile{
			Name:       name,
			Extension:  strings.ToLower(filepath.Ext(name)),
			Size:       info.Size(),
			ModifiedAt: info.ModTime().UTC(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// LoadFile lê um arquivo. Um arquivo sem nenhuma aba reconhecida é um erro.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]domain.RevenueRecord, domain.FileReport) {
	name := filepath.Base(path)
	report := domain.FileReport{Name: name}

	reader, ok := l.readers[strings.ToLower(filepath.Ext(name))]
	if !ok || !l.Accepts(name) {
		report.Error = (&FileError{File: name, Err: ErrUnsupportedExtension}).Error()
		return nil, report
	}

	tables, err := reader.Read(ctx, path)
	if err != nil {
		report.Error = (&FileError{File: name, Err: err}).Error()
		return nil, report
	}

	var records []domain.RevenueRecord
	for _, table := range tables {
		extracted, dropped, err := Extract(l.matcher, table)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"sheet": table.Name,
			}).Debug("ingestion: sheet skipped, columns not found")
			continue
		}
		report.Tables++
		report.DroppedRows += dropped
		records = append(records, extracted...)
	}

	if report.Tables == 0 {
		report.Error = (&FileError{File: name, Err: ErrColumnsNotFound}).Error()
		return nil, report
	}

	for i := range records {
		records[i].Source = name
	}
	sortByTimestamp(records)
	report.Records = len(records)

	return records, report
}

// LoadDir lê todos os arquivos suportados do diretório. Falhas de um arquivo
// ficam registradas no relatório e não interrompem os demais.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Batch, error) {
	files, err := l.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Records: make(map[string][]domain.RevenueRecord)}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, report := l.LoadFile(ctx, filepath.Join(dir, file.Name))
		batch.Reports = append(batch.Reports, report)
		if report.Error != "" {
			logrus.WithFields(logrus.Fields{
				"file":  file.Name,
				"error": report.Error,
			}).Warn("ingestion: failed to load file")
			continue
		}
		batch.Records[file.Name] = records

		logrus.WithFields(logrus.Fields{
			"file":         file.Name,
			"records":      report.Records,
			"dropped_rows": report.DroppedRows,
		}).Info("ingestion: file loaded")
	}

	return batch, nil
}

func sortByTimestamp(records []domain.RevenueRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
}

func normalizeExtensions(extensions []string) []string {
	result := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		result = append(result, ext)
	}
	return result
}
