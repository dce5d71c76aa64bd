package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Os predicados são descritos uma vez e compilados duas vezes; estes testes
// cobrem o lado SQL, enquanto os testes do pipeline cobrem o lado em memória.
func TestFilterClauseSQL(t *testing.T) {
	minCTR := 2.0
	minROAS := 1.5

	tests := []struct {
		name         string
		spec         ReportSpec
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:         "plataforma normalizada para minúsculas",
			spec:         ReportSpec{Platform: "Facebook"},
			expectedSQL:  "s.placements @> ARRAY[?]::text[]",
			expectedArgs: []interface{}{"facebook"},
		},
		{
			name:         "device normalizado para minúsculas",
			spec:         ReportSpec{Device: "MOBILE"},
			expectedSQL:  "s.device_platforms @> ARRAY[?]::text[]",
			expectedArgs: []interface{}{"mobile"},
		},
		{
			name:         "país normalizado para maiúsculas",
			spec:         ReportSpec{Country: "pk"},
			expectedSQL:  "s.countries @> ARRAY[?]::text[]",
			expectedArgs: []interface{}{"PK"},
		},
		{
			name:         "faixa etária vira interseção de intervalos",
			spec:         ReportSpec{AgeBracket: "25-34"},
			expectedSQL:  "(s.age_min <= ? AND s.age_max >= ?)",
			expectedArgs: []interface{}{34, 25},
		},
		{
			name:         "faixa 55+ tem teto aberto",
			spec:         ReportSpec{AgeBracket: "55+"},
			expectedSQL:  "(s.age_min <= ? AND s.age_max >= ?)",
			expectedArgs: []interface{}{120, 55},
		},
		{
			name:        "faixa etária desconhecida não casa com nada",
			spec:        ReportSpec{AgeBracket: "10-17"},
			expectedSQL: "FALSE",
		},
		{
			name:         "formato de criativo normalizado para maiúsculas",
			spec:         ReportSpec{CreativeFormat: "video"},
			expectedSQL:  "a.creative_format = ?",
			expectedArgs: []interface{}{"VIDEO"},
		},
		{
			name:         "piso de CTR é inclusivo",
			spec:         ReportSpec{MinCTR: &minCTR},
			expectedSQL:  "m.ctr >= ?",
			expectedArgs: []interface{}{2.0},
		},
		{
			name:         "piso de ROAS é inclusivo",
			spec:         ReportSpec{MinROAS: &minROAS},
			expectedSQL:  "m.roas >= ?",
			expectedArgs: []interface{}{1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses := tt.spec.FilterClauses()
			require.Len(t, clauses, 1)

			sql, args, err := clauses[0].SQL.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, sql)
			if tt.expectedArgs != nil {
				assert.Equal(t, tt.expectedArgs, args)
			}
		})
	}
}

func TestFilterClausesEmptySpec(t *testing.T) {
	spec := ReportSpec{}
	assert.Empty(t, spec.FilterClauses())
}

func TestViewByName(t *testing.T) {
	tests := []struct {
		name     string
		view     string
		found    bool
		resolved string
	}{
		{"view conhecida", ViewTopPerformingQuarter, true, ViewTopPerformingQuarter},
		{"alias pakistan_targeting", ViewPakistanTargeting, true, ViewPakistanROAS},
		{"alias video_high_ctr", ViewVideoHighCTR, true, ViewVideoCTR2},
		{"all é identidade, não view", ViewAll, false, ""},
		{"nome vazio", "", false, ""},
		{"nome desconhecido", "foo", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, ok := ViewByName(tt.view)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.resolved, view.Name)
			}
		})
	}
}

func TestCustomViewSQL(t *testing.T) {
	view, ok := ViewByName(ViewHighSpendLowROAS)
	require.True(t, ok)

	sql, args, err := view.Clause.SQL.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "(m.spend > ? AND m.roas < ?)", sql)
	assert.Equal(t, []interface{}{500.0, 1.5}, args)
}
