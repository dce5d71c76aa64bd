package domain

// Summary representa as estatísticas de roll-up calculadas sobre o conjunto
// final de registros do relatório. AvgROAS e AvgCTR são médias aritméticas
// restritas a valores estritamente positivos — registro sem dado não entra no
// denominador.
type Summary struct {
	TotalRecords      int     `json:"total_records"`
	TotalSpend        float64 `json:"total_spend"`
	DistinctAccounts  int     `json:"distinct_accounts"`
	DistinctCampaigns int     `json:"distinct_campaigns"`
	ActiveRecords     int     `json:"active_records"`
	AvgROAS           float64 `json:"avg_roas"`
	AvgCTR            float64 `json:"avg_ctr"`
}

// ReportResult é o resultado tipado exposto aos colaboradores externos
// (renderização, exportação, agendamento): registros ordenados mais o resumo.
type ReportResult struct {
	Records []*MetricRecord `json:"records"`
	Summary Summary         `json:"summary"`
}
