package ingestion

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// XLSXReader lê pastas de trabalho do Excel. Arquivos protegidos são abertos
// tentando as senhas configuradas em ordem, depois de uma tentativa sem senha.
type XLSXReader struct {
	Passwords []string
}

func (r XLSXReader) Read(ctx context.Context, path string) ([]Table, error) {
	f, err := r.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tables []Table
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, errors.Wrapf(err, "reading sheet %q", sheet)
		}
		tables = append(tables, Table{Name: sheet, Rows: rows})
	}

	return tables, nil
}

func (r XLSXReader) open(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err == nil {
		return f, nil
	}
	if len(r.Passwords) == 0 {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	for i, password := range r.Passwords {
		f, err = excelize.OpenFile(path, excelize.Options{Password: password})
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"file":     path,
				"attempts": i + 1,
			}).Debug("ingestion: workbook unlocked with configured password")
			return f, nil
		}
	}

	return nil, errors.Wrapf(ErrWorkbookLocked, "opening %s: %v", path, err)
}
