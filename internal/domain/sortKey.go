package domain

import "strings"

// SortKey descreve uma chave de ordenação do relatório com as duas compilações:
// extração de valor para a ordenação estável em memória e expressão ORDER BY
// para o espelho relacional. Chaves numéricas ordenam de forma decrescente com
// valor ausente tratado como zero; chaves textuais ordenam de forma crescente
// sem diferenciar maiúsculas de minúsculas.
type SortKey struct {
	Name    string
	Numeric bool
	Value   func(*MetricRecord) float64
	Text    func(*MetricRecord) string
	OrderBy string
}

const DefaultSortKey = "spend"

var sortKeys = map[string]SortKey{
	"spend": {
		Name: "spend", Numeric: true,
		Value:   func(r *MetricRecord) float64 { return r.Metrics.Spend },
		OrderBy: "m.spend DESC",
	},
	"roas": {
		Name: "roas", Numeric: true,
		Value:   func(r *MetricRecord) float64 { return r.Metrics.ROAS },
		OrderBy: "m.roas DESC",
	},
	"ctr": {
		Name: "ctr", Numeric: true,
		Value:   func(r *MetricRecord) float64 { return r.Metrics.CTR },
		OrderBy: "m.ctr DESC",
	},
	"cpc": {
		Name: "cpc", Numeric: true,
		Value:   func(r *MetricRecord) float64 { return r.Metrics.CPC },
		OrderBy: "m.cpc DESC",
	},
	"impressions": {
		Name: "impressions", Numeric: true,
		Value:   func(r *MetricRecord) float64 { return float64(r.Metrics.Impressions) },
		OrderBy: "m.impressions DESC",
	},
	"reach": {
		Name: "reach", Numeric: true,
		Value:   func(r *MetricRecord) float64 { return float64(r.Metrics.Reach) },
		OrderBy: "m.reach DESC",
	},
	"clicks": {
		Name: "clicks", Numeric: true,
		Value:   func(r *MetricRecord) float64 { return float64(r.Metrics.Clicks) },
		OrderBy: "m.clicks DESC",
	},
	"account_name": {
		Name:    "account_name",
		Text:    func(r *MetricRecord) string { return strings.ToLower(r.AccountName) },
		OrderBy: "LOWER(acc.name) ASC",
	},
	"campaign_name": {
		Name:    "campaign_name",
		Text:    func(r *MetricRecord) string { return strings.ToLower(r.CampaignName) },
		OrderBy: "LOWER(c.name) ASC",
	},
	"ad_name": {
		Name:    "ad_name",
		Text:    func(r *MetricRecord) string { return strings.ToLower(r.AdName) },
		OrderBy: "LOWER(a.name) ASC",
	},
}

// SortKeyByName resolve a chave de ordenação da spec; nomes vazios ou
// desconhecidos caem na chave padrão (spend decrescente).
func SortKeyByName(name string) SortKey {
	if key, ok := sortKeys[name]; ok {
		return key
	}
	return sortKeys[DefaultSortKey]
}

// SortKeyNames lista o vocabulário de chaves de ordenação aceito
func SortKeyNames() []string {
	return []string{
		"spend", "roas", "ctr", "cpc", "impressions", "reach", "clicks",
		"account_name", "campaign_name", "ad_name",
	}
}
