package reporting

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-engine/internal/domain"
)

// As duas estratégias compilam o mesmo vocabulário de cláusulas: Matches avalia
// em memória e SQL vira WHERE/ORDER BY no espelho. Este arquivo verifica a
// equivalência de fato, avaliando os fragmentos SQL gerados com um oráculo que
// modela a linha do espelho (a forma normalizada que o sync grava) e comparando
// o conjunto aceito com o do pipeline em memória para uma grade de specs
// gerada com semente fixa.

// mirrorRow expõe os valores de um registro como o sync os grava: arrays de
// segmentação em minúsculas, países, formato de criativo e objetivo em
// maiúsculas.
type mirrorRow struct {
	record *domain.MetricRecord
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func upperAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToUpper(v)
	}
	return out
}

func (m mirrorRow) array(t *testing.T, column string) []string {
	t.Helper()
	switch column {
	case "s.placements":
		return lowerAll(m.record.Targeting.Placements)
	case "s.device_platforms":
		return lowerAll(m.record.Targeting.DevicePlatforms)
	case "s.countries":
		return upperAll(m.record.Targeting.Countries)
	}
	t.Fatalf("coluna de array desconhecida no oráculo: %s", column)
	return nil
}

func (m mirrorRow) compare(t *testing.T, column, op string, arg interface{}) bool {
	t.Helper()

	switch column {
	case "a.creative_format":
		require.Equal(t, "=", op)
		return strings.ToUpper(m.record.CreativeFormat) == arg.(string)
	case "c.objective":
		require.Equal(t, "=", op)
		return strings.ToUpper(m.record.Objective) == arg.(string)
	}

	var value float64
	switch column {
	case "s.age_min":
		value = float64(m.record.Targeting.AgeMin)
	case "s.age_max":
		value = float64(m.record.Targeting.AgeMax)
	case "m.ctr":
		value = m.record.Metrics.CTR
	case "m.roas":
		value = m.record.Metrics.ROAS
	case "m.spend":
		value = m.record.Metrics.Spend
	default:
		t.Fatalf("coluna desconhecida no oráculo: %s", column)
	}

	operand := toFloat(t, arg)
	switch op {
	case "=":
		return value == operand
	case ">":
		return value > operand
	case ">=":
		return value >= operand
	case "<":
		return value < operand
	case "<=":
		return value <= operand
	}
	t.Fatalf("operador desconhecido no oráculo: %s", op)
	return false
}

func toFloat(t *testing.T, v interface{}) float64 {
	t.Helper()
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	t.Fatalf("operando numérico inesperado no oráculo: %T", v)
	return 0
}

var (
	comparisonPattern   = regexp.MustCompile(`^([a-z_.]+) (=|>=|<=|>|<) \?$`)
	arrayParamPattern   = regexp.MustCompile(`^([a-z_.]+) @> ARRAY\[\?\]::text\[\]$`)
	arrayLiteralPattern = regexp.MustCompile(`^([a-z_.]+) @> ARRAY\['([A-Za-z_]+)'\]::text\[\]$`)
)

// sqlAccepts compila a cláusula para SQL e avalia o fragmento gerado contra a
// linha do espelho. A gramática dos fragmentos é fechada: comparações simples,
// continência de array e a conjunção de ambos.
func sqlAccepts(t *testing.T, clause squirrel.Sqlizer, record *domain.MetricRecord) bool {
	t.Helper()

	query, args, err := clause.ToSql()
	require.NoError(t, err)

	query = strings.TrimSpace(query)
	if strings.HasPrefix(query, "(") && strings.HasSuffix(query, ")") {
		query = query[1 : len(query)-1]
	}

	row := mirrorRow{record: record}
	argIndex := 0
	nextArg := func() interface{} {
		require.Less(t, argIndex, len(args))
		arg := args[argIndex]
		argIndex++
		return arg
	}

	for _, atom := range strings.Split(query, " AND ") {
		atom = strings.TrimSpace(atom)
		var accepted bool
		switch {
		case atom == "FALSE":
			accepted = false
		case arrayParamPattern.MatchString(atom):
			m := arrayParamPattern.FindStringSubmatch(atom)
			accepted = containsString(row.array(t, m[1]), nextArg().(string))
		case arrayLiteralPattern.MatchString(atom):
			m := arrayLiteralPattern.FindStringSubmatch(atom)
			accepted = containsString(row.array(t, m[1]), m[2])
		case comparisonPattern.MatchString(atom):
			m := comparisonPattern.FindStringSubmatch(atom)
			accepted = row.compare(t, m[1], m[2], nextArg())
		default:
			t.Fatalf("fragmento SQL não reconhecido pelo oráculo: %q", atom)
		}
		if !accepted {
			return false
		}
	}
	return true
}

// Postgres compara elementos de array com igualdade exata, sem colação de caixa
func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// sqlOrder ordena como o espelho ordenaria: a expressão do ORDER BY avaliada de
// forma independente da extração em memória da SortKey, com a.id como desempate
func sqlOrder(t *testing.T, records []*domain.MetricRecord, key domain.SortKey) []*domain.MetricRecord {
	t.Helper()

	parts := strings.Fields(key.OrderBy)
	require.Len(t, parts, 2)
	column, direction := parts[0], parts[1]

	numericColumns := map[string]func(*domain.MetricRecord) float64{
		"m.spend":       func(r *domain.MetricRecord) float64 { return r.Metrics.Spend },
		"m.roas":        func(r *domain.MetricRecord) float64 { return r.Metrics.ROAS },
		"m.ctr":         func(r *domain.MetricRecord) float64 { return r.Metrics.CTR },
		"m.cpc":         func(r *domain.MetricRecord) float64 { return r.Metrics.CPC },
		"m.impressions": func(r *domain.MetricRecord) float64 { return float64(r.Metrics.Impressions) },
		"m.reach":       func(r *domain.MetricRecord) float64 { return float64(r.Metrics.Reach) },
		"m.clicks":      func(r *domain.MetricRecord) float64 { return float64(r.Metrics.Clicks) },
	}
	textColumns := map[string]func(*domain.MetricRecord) string{
		"LOWER(acc.name)": func(r *domain.MetricRecord) string { return strings.ToLower(r.AccountName) },
		"LOWER(c.name)":   func(r *domain.MetricRecord) string { return strings.ToLower(r.CampaignName) },
		"LOWER(a.name)":   func(r *domain.MetricRecord) string { return strings.ToLower(r.AdName) },
	}

	sorted := make([]*domain.MetricRecord, len(records))
	copy(sorted, records)

	if value, ok := numericColumns[column]; ok {
		require.Equal(t, "DESC", direction)
		sort.SliceStable(sorted, func(i, j int) bool {
			if value(sorted[i]) != value(sorted[j]) {
				return value(sorted[i]) > value(sorted[j])
			}
			return sorted[i].AdID < sorted[j].AdID
		})
		return sorted
	}

	value, ok := textColumns[column]
	require.True(t, ok, "expressão de ORDER BY desconhecida no oráculo: %s", column)
	require.Equal(t, "ASC", direction)
	sort.SliceStable(sorted, func(i, j int) bool {
		if value(sorted[i]) != value(sorted[j]) {
			return value(sorted[i]) < value(sorted[j])
		}
		return sorted[i].AdID < sorted[j].AdID
	})
	return sorted
}

func distinctSortValues(records []*domain.MetricRecord, key domain.SortKey) bool {
	seen := make(map[string]bool)
	for _, r := range records {
		var v string
		if key.Numeric {
			v = fmt.Sprintf("%.6f", key.Value(r))
		} else {
			v = key.Text(r)
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Fixture da equivalência: o cenário compartilhado mais dois registros com
// valores fora de caixa na origem, que o sync normaliza ao gravar.
func equivalenceRecords() []*domain.MetricRecord {
	return append(sampleRecords(),
		&domain.MetricRecord{
			AdID: "ad_lower_pk", AdName: "Video minúsculas", AdStatus: domain.StatusActive,
			CreativeFormat: "video",
			CampaignID:     "c4", CampaignName: "Teste criativo", Objective: "outcome_sales",
			AccountID: "acc2", AccountName: "Conta B",
			Targeting: domain.Targeting{
				AgeMin: 45, AgeMax: 54,
				DevicePlatforms: []string{"Mobile"},
				Placements:      []string{"Instagram"},
				Countries:       []string{"pk"},
			},
			Metrics: domain.AdMetrics{Spend: 320, CTR: 2.2, ROAS: 3.1, Clicks: 75},
		},
		&domain.MetricRecord{
			AdID: "ad_senior_us", AdName: "Carrossel sênior", AdStatus: domain.StatusPaused,
			CreativeFormat: "CAROUSEL",
			CampaignID:     "c5", CampaignName: "Leads", Objective: "OUTCOME_LEADS",
			AccountID: "acc3", AccountName: "Conta C",
			Targeting: domain.Targeting{
				AgeMin: 55, AgeMax: 65,
				DevicePlatforms: []string{"desktop"},
				Placements:      []string{"audience_network"},
				Countries:       []string{"US"},
			},
			Metrics: domain.AdMetrics{Spend: 80, CTR: 0.9, ROAS: 1.2, Clicks: 10},
		},
	)
}

func TestLiveAndMirrorAcceptTheSameRecords(t *testing.T) {
	rng := rand.New(rand.NewSource(20260831))

	pick := func(options []string) string {
		return options[rng.Intn(len(options))]
	}
	pickFloat := func(options []float64) *float64 {
		if rng.Intn(2) == 0 {
			return nil
		}
		v := options[rng.Intn(len(options))]
		return &v
	}

	views := []string{
		"", domain.ViewAll, domain.ViewTopPerformingQuarter,
		domain.ViewPakistanROAS, domain.ViewPakistanTargeting,
		domain.ViewVideoCTR2, domain.ViewVideoHighCTR,
		domain.ViewHighSpendLowROAS, domain.ViewMobileOptimized,
		"inexistente",
	}
	sortKeys := []string{
		"", "spend", "roas", "ctr", "cpc", "impressions", "reach", "clicks",
		"account_name", "campaign_name", "ad_name", "inexistente",
	}

	var nonEmpty, narrowed int

	for i := 0; i < 200; i++ {
		spec := domain.ReportSpec{
			CustomView:     pick(views),
			Platform:       pick([]string{"", "facebook", "instagram", "audience_network"}),
			Device:         pick([]string{"", "mobile", "desktop", "Mobile"}),
			Country:        pick([]string{"", "PK", "pk", "US", "br"}),
			AgeBracket:     pick([]string{"", "18-24", "25-34", "35-44", "45-54", "55+", "99+"}),
			Placement:      pick([]string{"", "instagram", "facebook", "audience_network"}),
			CreativeFormat: pick([]string{"", "VIDEO", "video", "IMAGE", "CAROUSEL"}),
			Objective:      pick([]string{"", "OUTCOME_SALES", "outcome_sales", "OUTCOME_LEADS"}),
			MinCTR:         pickFloat([]float64{1.0, 2.0, 2.5}),
			MinROAS:        pickFloat([]float64{0.5, 1.5, 3.0}),
			SortBy:         pick(sortKeys),
		}

		t.Run(fmt.Sprintf("spec_%03d", i), func(t *testing.T) {
			records := equivalenceRecords()

			// Caminho live: view, filtros e ordenação em memória
			live := SortRecords(ApplyFilters(ApplyView(records, spec.CustomView), spec.FilterClauses()), spec.SortBy)

			// Caminho mirror: os mesmos predicados compilados para SQL,
			// avaliados pelo oráculo sobre a linha normalizada
			mirror := make([]*domain.MetricRecord, 0, len(records))
			for _, record := range records {
				accepted := true
				if view, ok := domain.ViewByName(spec.CustomView); ok {
					accepted = sqlAccepts(t, view.Clause.SQL, record)
				}
				for _, clause := range spec.FilterClauses() {
					if !accepted {
						break
					}
					accepted = sqlAccepts(t, clause.SQL, record)
				}
				if accepted {
					mirror = append(mirror, record)
				}
			}

			assert.ElementsMatch(t, recordIDs(live), recordIDs(mirror),
				"as duas estratégias aceitaram conjuntos diferentes para %+v", spec)

			// Ordem só é comparável sem empate na chave: o desempate do live é
			// a ordem de entrada e o do mirror é a.id
			key := domain.SortKeyByName(spec.SortBy)
			if distinctSortValues(mirror, key) {
				ordered := sqlOrder(t, mirror, key)
				assert.Equal(t, recordIDs(live), recordIDs(ordered),
					"as duas estratégias ordenaram diferente para %+v", spec)
			}

			if len(live) > 0 {
				nonEmpty++
			}
			if len(live) < len(records) {
				narrowed++
			}
		})
	}

	// A grade precisa exercitar os dois lados da aceitação
	assert.Positive(t, nonEmpty)
	assert.Positive(t, narrowed)
}
