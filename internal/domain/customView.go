package domain

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Nomes das views customizadas. Os limiares são parte do contrato de cada view
// e não são ajustáveis na chamada.
const (
	ViewAll                  = "all"
	ViewTopPerformingQuarter = "top_performing_quarter"
	ViewPakistanROAS         = "pakistan_roas"
	ViewPakistanTargeting    = "pakistan_targeting"
	ViewVideoCTR2            = "video_ctr_2"
	ViewVideoHighCTR         = "video_high_ctr"
	ViewHighSpendLowROAS     = "high_spend_low_roas"
	ViewMobileOptimized      = "mobile_optimized"
)

// CustomView é uma lente analítica nomeada: um predicado fixo sobre métricas,
// formato do criativo e segmentação, com a mesma dupla compilação das cláusulas
// de filtro (memória + SQL).
type CustomView struct {
	Name   string
	Clause FilterClause
}

var customViews = map[string]CustomView{
	ViewTopPerformingQuarter: {
		Name: ViewTopPerformingQuarter,
		Clause: FilterClause{
			Dimension: "custom_view",
			Matches: func(r *MetricRecord) bool {
				return r.Metrics.ROAS > 2.0 && r.Metrics.Spend > 100
			},
			SQL: squirrel.And{
				squirrel.Gt{colROAS: 2.0},
				squirrel.Gt{colSpend: 100.0},
			},
		},
	},
	ViewPakistanROAS: {
		Name: ViewPakistanROAS,
		Clause: FilterClause{
			Dimension: "custom_view",
			Matches: func(r *MetricRecord) bool {
				return containsFold(r.Targeting.Countries, "PK") && r.Metrics.ROAS > 0
			},
			SQL: squirrel.And{
				squirrel.Expr(colCountries+" @> ARRAY['PK']::text[]"),
				squirrel.Gt{colROAS: 0.0},
			},
		},
	},
	ViewVideoCTR2: {
		Name: ViewVideoCTR2,
		Clause: FilterClause{
			Dimension: "custom_view",
			Matches: func(r *MetricRecord) bool {
				return strings.EqualFold(r.CreativeFormat, "VIDEO") && r.Metrics.CTR > 2.0
			},
			SQL: squirrel.And{
				squirrel.Eq{colCreativeFormat: "VIDEO"},
				squirrel.Gt{colCTR: 2.0},
			},
		},
	},
	ViewHighSpendLowROAS: {
		Name: ViewHighSpendLowROAS,
		Clause: FilterClause{
			Dimension: "custom_view",
			Matches: func(r *MetricRecord) bool {
				return r.Metrics.Spend > 500 && r.Metrics.ROAS < 1.5
			},
			SQL: squirrel.And{
				squirrel.Gt{colSpend: 500.0},
				squirrel.Lt{colROAS: 1.5},
			},
		},
	},
	ViewMobileOptimized: {
		Name: ViewMobileOptimized,
		Clause: FilterClause{
			Dimension: "custom_view",
			Matches: func(r *MetricRecord) bool {
				return containsFold(r.Targeting.DevicePlatforms, "mobile") && r.Metrics.CTR > 1.5
			},
			SQL: squirrel.And{
				squirrel.Expr(colDevicePlatforms+" @> ARRAY['mobile']::text[]"),
				squirrel.Gt{colCTR: 1.5},
			},
		},
	},
}

// Aliases históricos mantidos por compatibilidade com specs salvas.
var viewAliases = map[string]string{
	ViewPakistanTargeting: ViewPakistanROAS,
	ViewVideoHighCTR:      ViewVideoCTR2,
}

// ViewByName resolve o nome de uma view customizada. Nomes desconhecidos (e o
// nome "all") retornam ok=false e são tratados como identidade pelo pipeline,
// preservando compatibilidade quando novas views são adicionadas.
func ViewByName(name string) (CustomView, bool) {
	if alias, ok := viewAliases[name]; ok {
		name = alias
	}
	view, ok := customViews[name]
	return view, ok
}

// ViewNames lista o vocabulário de views aceito, incluindo a identidade "all"
func ViewNames() []string {
	return []string{
		ViewAll,
		ViewTopPerformingQuarter,
		ViewPakistanROAS,
		ViewVideoCTR2,
		ViewHighSpendLowROAS,
		ViewMobileOptimized,
	}
}
