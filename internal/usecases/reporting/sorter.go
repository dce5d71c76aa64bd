package reporting

import (
	"sort"

	"github.com/vfg2006/ads-report-engine/internal/domain"
	"github.com/vfg2006/ads-report-engine/pkg/utils"
)

// SortRecords ordena os registros pela chave informada. Chaves numéricas em
// ordem decrescente com valor ausente valendo zero; chaves textuais em ordem
// crescente sem diferenciar caixa. A ordenação é estável: empates preservam a
// ordem de entrada, o que torna a operação idempotente.
func SortRecords(records []*domain.MetricRecord, keyName string) []*domain.MetricRecord {
	key := domain.SortKeyByName(keyName)

	sorted := make([]*domain.MetricRecord, len(records))
	copy(sorted, records)

	if key.Numeric {
		sort.SliceStable(sorted, func(i, j int) bool {
			return key.Value(sorted[i]) > key.Value(sorted[j])
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return key.Text(sorted[i]) < key.Text(sorted[j])
		})
	}

	return sorted
}

// Summarize calcula o roll-up do conjunto final de registros. As médias de
// ROAS e CTR consideram apenas valores estritamente positivos: registro sem
// dado fica fora do denominador em vez de contribuir com zero.
func Summarize(records []*domain.MetricRecord) domain.Summary {
	summary := domain.Summary{
		TotalRecords: len(records),
	}

	accounts := make(map[string]struct{})
	campaigns := make(map[string]struct{})

	var (
		roasSum float64
		roasN   int
		ctrSum  float64
		ctrN    int
	)

	for _, record := range records {
		summary.TotalSpend += record.Metrics.Spend
		accounts[record.AccountID] = struct{}{}
		campaigns[record.CampaignID] = struct{}{}

		if record.AdStatus == domain.StatusActive {
			summary.ActiveRecords++
		}

		if record.Metrics.ROAS > 0 {
			roasSum += record.Metrics.ROAS
			roasN++
		}
		if record.Metrics.CTR > 0 {
			ctrSum += record.Metrics.CTR
			ctrN++
		}
	}

	summary.DistinctAccounts = len(accounts)
	summary.DistinctCampaigns = len(campaigns)
	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)

	if roasN > 0 {
		summary.AvgROAS = utils.RoundWithTwoDecimalPlace(roasSum / float64(roasN))
	}
	if ctrN > 0 {
		summary.AvgCTR = utils.RoundWithTwoDecimalPlace(ctrSum / float64(ctrN))
	}

	return summary
}
