package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/decision-report-api/internal/config"
	"github.com/vfg2006/decision-report-api/internal/domain"
	"github.com/vfg2006/decision-report-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, cfg config.IngestionSync) (*IngestionSyncService, *mocks.MockIngestionService) {
	ctrl := gomock.NewController(t)
	ingestion := mocks.NewMockIngestionService(ctrl)
	return NewIngestionSyncService(ingestion, &config.Config{IngestionSync: cfg}), ingestion
}

func TestIngestionSyncService_Sync(t *testing.T) {
	files := []domain.DataFile{
		{Name: "2022.xlsx", Extension: ".xlsx"},
		{Name: "2023.csv", Extension: ".csv"},
		{Name: "quebrado.xlsx", Extension: ".xlsx"},
	}

	tests := []struct {
		name     string
		setup    func(m *mocks.MockIngestionService)
		wantErr  bool
		validate func(t *testing.T, result *domain.IngestionResult)
	}{
		{
			name: "Ingere todos os arquivos com o mesmo lote",
			setup: func(m *mocks.MockIngestionService) {
				m.EXPECT().ListFiles().Return(files, nil)
				m.EXPECT().NewBatchID().Return("lote1", nil)
				m.EXPECT().IngestFile(gomock.Any(), "2022.xlsx", "lote1").
					Return(domain.FileReport{Name: "2022.xlsx", Tables: 1, Records: 12}, nil)
				m.EXPECT().IngestFile(gomock.Any(), "2023.csv", "lote1").
					Return(domain.FileReport{Name: "2023.csv", Tables: 1, Records: 10, DroppedRows: 2}, nil)
				m.EXPECT().IngestFile(gomock.Any(), "quebrado.xlsx", "lote1").
					Return(domain.FileReport{}, errors.New("arquivo corrompido"))
				m.EXPECT().PruneMissing(gomock.Any(), files).Return(1, nil)
			},
			validate: func(t *testing.T, result *domain.IngestionResult) {
				assert.Equal(t, "lote1", result.BatchID)
				assert.Equal(t, 22, result.Records)
				require.Len(t, result.Files, 3)
				assert.Equal(t, "2022.xlsx", result.Files[0].Name)
				assert.Equal(t, 2, result.Files[1].DroppedRows)
				assert.Equal(t, "quebrado.xlsx", result.Files[2].Name)
				assert.Equal(t, "arquivo corrompido", result.Files[2].Error)
				assert.False(t, result.FinishedAt.Before(result.StartedAt))
			},
		},
		{
			name: "Diretório vazio ainda remove origens ausentes",
			setup: func(m *mocks.MockIngestionService) {
				m.EXPECT().ListFiles().Return([]domain.DataFile{}, nil)
				m.EXPECT().NewBatchID().Return("lote2", nil)
				m.EXPECT().PruneMissing(gomock.Any(), []domain.DataFile{}).Return(2, nil)
			},
			validate: func(t *testing.T, result *domain.IngestionResult) {
				assert.Empty(t, result.Files)
				assert.Zero(t, result.Records)
			},
		},
		{
			name: "Falha ao listar arquivos",
			setup: func(m *mocks.MockIngestionService) {
				m.EXPECT().ListFiles().Return(nil, errors.New("permissão negada"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestSyncService(t, config.IngestionSync{MaxConcurrentJobs: 2})
			tt.setup(m)

			result, err := s.Sync(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, s.GetStatus()["sync_running"].(bool))
				return
			}
			require.NoError(t, err)
			tt.validate(t, result)

			status := s.GetStatus()
			assert.False(t, status["sync_running"].(bool))
			assert.Equal(t, result.BatchID, status["last_batch_id"])
		})
	}
}

func TestIngestionSyncService_SyncEmAndamento(t *testing.T) {
	s, _ := newTestSyncService(t, config.IngestionSync{})
	s.syncRunning = true

	_, err := s.Sync(context.Background())

	assert.ErrorIs(t, err, ErrSyncRunning)
	assert.False(t, s.TriggerManualSync())
}

func TestIngestionSyncService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		s, _ := newTestSyncService(t, config.IngestionSync{CronSchedule: "0 3 * * *"})

		require.NoError(t, s.Start(context.Background()))
		assert.Empty(t, s.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		s, _ := newTestSyncService(t, config.IngestionSync{CronSchedule: "todo dia", Enabled: true})

		err := s.Start(context.Background())
		assert.Error(t, err)
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		s, _ := newTestSyncService(t, config.IngestionSync{CronSchedule: "0 3 * * *", Enabled: true})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, s.Start(ctx))
		assert.Len(t, s.scheduler.Jobs(), 1)
	})
}

func TestNewIngestionSyncService_ConcorrenciaMinima(t *testing.T) {
	s, _ := newTestSyncService(t, config.IngestionSync{MaxConcurrentJobs: 0})
	assert.Equal(t, 1, s.config.MaxConcurrentJobs)
}
