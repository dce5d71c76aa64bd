package domain

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Colunas do espelho relacional usadas na compilação dos predicados.
// O espelho armazena placements e device_platforms em minúsculas e países
// em maiúsculas; os operandos são normalizados da mesma forma nos dois lados.
const (
	colPlacements      = "s.placements"
	colDevicePlatforms = "s.device_platforms"
	colCountries       = "s.countries"
	colAgeMin          = "s.age_min"
	colAgeMax          = "s.age_max"
	colCreativeFormat  = "a.creative_format"
	colObjective       = "c.objective"
	colCTR             = "m.ctr"
	colROAS            = "m.roas"
	colSpend           = "m.spend"
)

// FilterClause é um predicado de uma dimensão do filtro avançado, descrito uma
// única vez e compilado para as duas estratégias: avaliação em memória sobre o
// MetricRecord (Matches) e fragmento de WHERE para o espelho relacional (SQL).
// Manter as duas expressões lado a lado elimina a deriva entre os caminhos
// live e mirror.
type FilterClause struct {
	Dimension string
	Matches   func(*MetricRecord) bool
	SQL       squirrel.Sqlizer
}

// matchNothing é o predicado para valores de filtro não reconhecidos: a
// cláusula não casa com registro algum em vez de gerar erro.
var matchNothing = FilterClause{
	Matches: func(*MetricRecord) bool { return false },
	SQL:     squirrel.Expr("FALSE"),
}

func platformClause(platform string) FilterClause {
	p := strings.ToLower(platform)
	return FilterClause{
		Dimension: "platform",
		Matches: func(r *MetricRecord) bool {
			return containsFold(r.Targeting.Placements, p)
		},
		SQL: squirrel.Expr(colPlacements+" @> ARRAY[?]::text[]", p),
	}
}

func deviceClause(device string) FilterClause {
	d := strings.ToLower(device)
	return FilterClause{
		Dimension: "device",
		Matches: func(r *MetricRecord) bool {
			return containsFold(r.Targeting.DevicePlatforms, d)
		},
		SQL: squirrel.Expr(colDevicePlatforms+" @> ARRAY[?]::text[]", d),
	}
}

func countryClause(country string) FilterClause {
	c := strings.ToUpper(country)
	return FilterClause{
		Dimension: "country",
		Matches: func(r *MetricRecord) bool {
			return containsFold(r.Targeting.Countries, c)
		},
		SQL: squirrel.Expr(colCountries+" @> ARRAY[?]::text[]", c),
	}
}

func ageBracketClause(bracket string) FilterClause {
	band, ok := ageBrackets[bracket]
	if !ok {
		c := matchNothing
		c.Dimension = "age_bracket"
		return c
	}
	return FilterClause{
		Dimension: "age_bracket",
		// Interseção de intervalos: a faixa [20,30] casa com "25-34" e
		// com "18-24", mas não com "35-44".
		Matches: func(r *MetricRecord) bool {
			return r.Targeting.AgeMin <= band.Max && r.Targeting.AgeMax >= band.Min
		},
		SQL: squirrel.And{
			squirrel.LtOrEq{colAgeMin: band.Max},
			squirrel.GtOrEq{colAgeMax: band.Min},
		},
	}
}

func placementClause(placement string) FilterClause {
	p := strings.ToLower(placement)
	return FilterClause{
		Dimension: "placement",
		Matches: func(r *MetricRecord) bool {
			return containsFold(r.Targeting.Placements, p)
		},
		SQL: squirrel.Expr(colPlacements+" @> ARRAY[?]::text[]", p),
	}
}

func creativeFormatClause(format string) FilterClause {
	f := strings.ToUpper(format)
	return FilterClause{
		Dimension: "creative_format",
		Matches: func(r *MetricRecord) bool {
			return strings.EqualFold(r.CreativeFormat, f)
		},
		SQL: squirrel.Eq{colCreativeFormat: f},
	}
}

func objectiveClause(objective string) FilterClause {
	o := strings.ToUpper(objective)
	return FilterClause{
		Dimension: "objective",
		Matches: func(r *MetricRecord) bool {
			return strings.EqualFold(r.Objective, o)
		},
		SQL: squirrel.Eq{colObjective: o},
	}
}

func minCTRClause(floor float64) FilterClause {
	return FilterClause{
		Dimension: "min_ctr",
		Matches: func(r *MetricRecord) bool {
			return r.Metrics.CTR >= floor
		},
		SQL: squirrel.GtOrEq{colCTR: floor},
	}
}

func minROASClause(floor float64) FilterClause {
	return FilterClause{
		Dimension: "min_roas",
		Matches: func(r *MetricRecord) bool {
			return r.Metrics.ROAS >= floor
		},
		SQL: squirrel.GtOrEq{colROAS: floor},
	}
}

// FilterClauses compila as cláusulas presentes na spec. Cláusulas ausentes não
// impõem restrição; as presentes combinam por AND e são comutativas entre si.
func (s *ReportSpec) FilterClauses() []FilterClause {
	clauses := make([]FilterClause, 0, 9)

	if s.Platform != "" {
		clauses = append(clauses, platformClause(s.Platform))
	}
	if s.Device != "" {
		clauses = append(clauses, deviceClause(s.Device))
	}
	if s.Country != "" {
		clauses = append(clauses, countryClause(s.Country))
	}
	if s.AgeBracket != "" {
		clauses = append(clauses, ageBracketClause(s.AgeBracket))
	}
	if s.Placement != "" {
		clauses = append(clauses, placementClause(s.Placement))
	}
	if s.CreativeFormat != "" {
		clauses = append(clauses, creativeFormatClause(s.CreativeFormat))
	}
	if s.Objective != "" {
		clauses = append(clauses, objectiveClause(s.Objective))
	}
	if s.MinCTR != nil {
		clauses = append(clauses, minCTRClause(*s.MinCTR))
	}
	if s.MinROAS != nil {
		clauses = append(clauses, minROASClause(*s.MinROAS))
	}

	return clauses
}
