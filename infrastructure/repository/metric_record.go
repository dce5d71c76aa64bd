package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-engine/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-engine/internal/domain"
)

// MetricRecordRepository implementa a estratégia mirror do relatório: uma única
// consulta parametrizada sobre o espelho relacional pré-sincronizado
// (ads ⋈ ad_sets ⋈ campaigns ⋈ accounts ⋈ ad_metrics), com as cláusulas de
// filtro e a view da spec empurradas para o WHERE e a ordenação para o
// ORDER BY. Os predicados SQL vêm do mesmo vocabulário de cláusulas usado pela
// avaliação em memória, então as duas estratégias aceitam e rejeitam os mesmos
// registros.
type MetricRecordRepository interface {
	FetchRecords(ctx context.Context, spec *domain.ReportSpec, startDate, endDate time.Time) ([]*domain.MetricRecord, error)
}

type metricRecordRepository struct {
	conn *postgres.Connection
}

func NewMetricRecordRepository(conn *postgres.Connection) MetricRecordRepository {
	return &metricRecordRepository{
		conn: conn,
	}
}

var recordColumns = []string{
	"a.id", "a.name", "a.status", "a.creative_format",
	"s.id", "s.name", "s.status",
	"s.age_min", "s.age_max", "s.genders", "s.device_platforms", "s.placements", "s.countries",
	"s.interest_count", "s.custom_audience_count", "s.lookalike_audience_count",
	"c.id", "c.name", "c.status", "c.objective",
	"acc.id", "acc.name",
	"m.spend", "m.impressions", "m.reach", "m.clicks",
	"m.ctr", "m.cpc", "m.cpm", "m.roas", "m.actions",
}

func (r *metricRecordRepository) FetchRecords(ctx context.Context, spec *domain.ReportSpec, startDate, endDate time.Time) ([]*domain.MetricRecord, error) {
	builder := squirrel.
		Select(recordColumns...).
		From("ads a").
		Join("ad_sets s ON s.id = a.ad_set_id").
		Join("campaigns c ON c.id = s.campaign_id").
		Join("accounts acc ON acc.id = c.account_id").
		Join("ad_metrics m ON m.ad_id = a.id").
		Where(squirrel.Eq{"m.date_start": startDate.Format(time.DateOnly)}).
		Where(squirrel.Eq{"m.date_stop": endDate.Format(time.DateOnly)})

	if len(spec.AccountIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"acc.id": spec.AccountIDs})
	}

	// View customizada e filtros avançados: mesmos predicados da avaliação em
	// memória, compilados para SQL. AND implícito entre todos.
	if view, ok := domain.ViewByName(spec.CustomView); ok {
		builder = builder.Where(view.Clause.SQL)
	}
	for _, clause := range spec.FilterClauses() {
		builder = builder.Where(clause.SQL)
	}

	sortKey := domain.SortKeyByName(spec.SortBy)
	// a.id como desempate para resultado determinístico entre execuções
	builder = builder.OrderBy(sortKey.OrderBy, "a.id ASC")

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		// Falha na consulta é fatal para a invocação: nunca devolver um
		// resultado vazio com cara de sucesso
		return nil, fmt.Errorf("erro ao executar a query do espelho: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.MetricRecord, 0)
	for rows.Next() {
		record, err := scanMetricRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear metric record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func scanMetricRecord(rows *sql.Rows) (*domain.MetricRecord, error) {
	record := &domain.MetricRecord{}

	var (
		adStatus, adSetStatus, campaignStatus string
		creativeFormat, objective             sql.NullString
		genders, devicePlatforms              pq.StringArray
		placements, countries                 pq.StringArray
		actionsJSON                           []byte
	)

	err := rows.Scan(
		&record.AdID,
		&record.AdName,
		&adStatus,
		&creativeFormat,
		&record.AdSetID,
		&record.AdSetName,
		&adSetStatus,
		&record.Targeting.AgeMin,
		&record.Targeting.AgeMax,
		&genders,
		&devicePlatforms,
		&placements,
		&countries,
		&record.Targeting.InterestCount,
		&record.Targeting.CustomAudienceCount,
		&record.Targeting.LookalikeAudienceCount,
		&record.CampaignID,
		&record.CampaignName,
		&campaignStatus,
		&objective,
		&record.AccountID,
		&record.AccountName,
		&record.Metrics.Spend,
		&record.Metrics.Impressions,
		&record.Metrics.Reach,
		&record.Metrics.Clicks,
		&record.Metrics.CTR,
		&record.Metrics.CPC,
		&record.Metrics.CPM,
		&record.Metrics.ROAS,
		&actionsJSON,
	)
	if err != nil {
		return nil, err
	}

	record.AdStatus = domain.ParseEntityStatus(adStatus)
	record.AdSetStatus = domain.ParseEntityStatus(adSetStatus)
	record.CampaignStatus = domain.ParseEntityStatus(campaignStatus)
	record.CreativeFormat = creativeFormat.String
	record.Objective = objective.String
	record.Targeting.Genders = genders
	record.Targeting.DevicePlatforms = devicePlatforms
	record.Targeting.Placements = placements
	record.Targeting.Countries = countries

	if len(actionsJSON) > 0 {
		actions := make(map[string]float64)
		if err := json.Unmarshal(actionsJSON, &actions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de actions: %w", err)
		}
		record.Metrics.Actions = actions
	}

	record.NormalizeAncestors()
	return record, nil
}
