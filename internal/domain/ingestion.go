package domain

import "time"

// DataFile descreve um arquivo disponível no diretório de dados
type DataFile struct {
	Name       string    `json:"name"`
	Extension  string    `json:"extension"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// FileReport resume a ingestão de um arquivo
type FileReport struct {
	Name        string `json:"name"`
	Tables      int    `json:"tables"`
	Records     int    `json:"records"`
	DroppedRows int    `json:"dropped_rows"`
	Error       string `json:"error,omitempty"`
}

// IngestionResult é o resultado de uma carga completa
type IngestionResult struct {
	BatchID    string       `json:"batch_id"`
	Records    int          `json:"records"`
	Files      []FileReport `json:"files"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}
