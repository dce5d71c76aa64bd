package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/ads-report-engine/internal/domain"
)

// LiveFetcher é a estratégia live: materializa os registros percorrendo a
// hierarquia Conta → Campanhas → Anúncios direto na API do Meta
type LiveFetcher interface {
	FetchRecords(ctx context.Context, accountIDs []string, startDate, endDate time.Time) ([]*domain.MetricRecord, error)
}

// MirrorFetcher é a estratégia mirror: uma consulta única sobre o espelho
// relacional, com filtros e ordenação já empurrados para o SQL
type MirrorFetcher interface {
	FetchRecords(ctx context.Context, spec *domain.ReportSpec, startDate, endDate time.Time) ([]*domain.MetricRecord, error)
}

// Reporter é o contrato do motor exposto às camadas de UI, exportação e
// agendamento
type Reporter interface {
	RunReport(ctx context.Context, spec *domain.ReportSpec) (*domain.ReportResult, error)
}
