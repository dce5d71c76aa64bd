package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-report-engine/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-engine/internal/domain"
)

// MirrorRepository grava no espelho relacional a hierarquia e o snapshot de
// métricas produzidos pelo fetch hierárquico. Um novo sync da mesma janela
// substitui o snapshot anterior, nunca o incrementa.
type MirrorRepository interface {
	UpsertRecords(ctx context.Context, records []*domain.MetricRecord, startDate, endDate time.Time) error
}

type mirrorRepository struct {
	conn *postgres.Connection
}

func NewMirrorRepository(conn *postgres.Connection) MirrorRepository {
	return &mirrorRepository{
		conn: conn,
	}
}

func (r *mirrorRepository) UpsertRecords(ctx context.Context, records []*domain.MetricRecord, startDate, endDate time.Time) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			if err := upsertAncestors(ctx, tx, record); err != nil {
				return err
			}
			if err := upsertMetrics(ctx, tx, record, startDate, endDate); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertAncestors(ctx context.Context, tx *sql.Tx, record *domain.MetricRecord) error {
	account := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "name", "last_synced_at").
		Values(record.AccountID, record.AccountName, time.Now()).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				last_synced_at = EXCLUDED.last_synced_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	campaign := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "account_id", "name", "status", "objective").
		Values(record.CampaignID, record.AccountID, record.CampaignName, string(record.CampaignStatus), strings.ToUpper(record.Objective)).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				objective = EXCLUDED.objective
		`).
		PlaceholderFormat(squirrel.Dollar)

	adSet := squirrel.StatementBuilder.
		Insert("ad_sets").
		Columns(
			"id", "campaign_id", "name", "status",
			"age_min", "age_max", "genders", "device_platforms", "placements", "countries",
			"interest_count", "custom_audience_count", "lookalike_audience_count",
		).
		Values(
			record.AdSetID, record.CampaignID, record.AdSetName, string(record.AdSetStatus),
			record.Targeting.AgeMin, record.Targeting.AgeMax,
			pq.Array(normalizeLower(record.Targeting.Genders)),
			pq.Array(normalizeLower(record.Targeting.DevicePlatforms)),
			pq.Array(normalizeLower(record.Targeting.Placements)),
			pq.Array(normalizeUpper(record.Targeting.Countries)),
			record.Targeting.InterestCount, record.Targeting.CustomAudienceCount, record.Targeting.LookalikeAudienceCount,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				age_min = EXCLUDED.age_min,
				age_max = EXCLUDED.age_max,
				genders = EXCLUDED.genders,
				device_platforms = EXCLUDED.device_platforms,
				placements = EXCLUDED.placements,
				countries = EXCLUDED.countries,
				interest_count = EXCLUDED.interest_count,
				custom_audience_count = EXCLUDED.custom_audience_count,
				lookalike_audience_count = EXCLUDED.lookalike_audience_count
		`).
		PlaceholderFormat(squirrel.Dollar)

	ad := squirrel.StatementBuilder.
		Insert("ads").
		Columns("id", "ad_set_id", "name", "status", "creative_format").
		Values(record.AdID, record.AdSetID, record.AdName, string(record.AdStatus), strings.ToUpper(record.CreativeFormat)).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				creative_format = EXCLUDED.creative_format
		`).
		PlaceholderFormat(squirrel.Dollar)

	for _, builder := range []squirrel.InsertBuilder{account, campaign, adSet, ad} {
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao executar upsert do espelho: %w", err)
		}
	}

	return nil
}

func upsertMetrics(ctx context.Context, tx *sql.Tx, record *domain.MetricRecord, startDate, endDate time.Time) error {
	var actionsJSON []byte
	var err error

	if record.Metrics.Actions != nil {
		actionsJSON, err = json.Marshal(record.Metrics.Actions)
		if err != nil {
			return fmt.Errorf("erro ao serializar actions para JSON: %w", err)
		}
	}

	builder := squirrel.StatementBuilder.
		Insert("ad_metrics").
		Columns(
			"ad_id", "date_start", "date_stop",
			"spend", "impressions", "reach", "clicks",
			"ctr", "cpc", "cpm", "roas", "actions",
		).
		Values(
			record.AdID,
			startDate.Format(time.DateOnly),
			endDate.Format(time.DateOnly),
			record.Metrics.Spend, record.Metrics.Impressions, record.Metrics.Reach, record.Metrics.Clicks,
			record.Metrics.CTR, record.Metrics.CPC, record.Metrics.CPM, record.Metrics.ROAS,
			actionsJSON,
		).
		Suffix(`
			ON CONFLICT (ad_id, date_start, date_stop) DO UPDATE SET
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				reach = EXCLUDED.reach,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				cpc = EXCLUDED.cpc,
				cpm = EXCLUDED.cpm,
				roas = EXCLUDED.roas,
				actions = EXCLUDED.actions,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar upsert de métricas: %w", err)
	}

	return nil
}

// O espelho armazena placements e device_platforms em minúsculas e países,
// formato de criativo e objetivo em maiúsculas; os predicados SQL, que comparam
// com igualdade exata, normalizam o operando da mesma forma.
func normalizeLower(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func normalizeUpper(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToUpper(v)
	}
	return out
}
