package ingestion

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrColumnsNotFound      = errors.New("date or revenue column not found")
	ErrWorkbookLocked       = errors.New("workbook could not be opened with any configured password")
)

// FileError identifica o arquivo que falhou durante a ingestão
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("ingestion: %s: %v", e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
