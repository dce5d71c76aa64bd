package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-engine/internal/domain"
)

// ApplyView filtra os registros pela view customizada nomeada. Nome
// desconhecido (incluindo "all") é identidade, não erro: specs salvas antes da
// adição de uma view nova continuam válidas.
func ApplyView(records []*domain.MetricRecord, viewName string) []*domain.MetricRecord {
	view, ok := domain.ViewByName(viewName)
	if !ok {
		if viewName != "" && viewName != domain.ViewAll {
			logrus.WithField("view", viewName).Debug("reporting: view desconhecida, aplicando identidade")
		}
		return records
	}

	filtered := make([]*domain.MetricRecord, 0, len(records))
	for _, record := range records {
		if view.Clause.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// ApplyFilters aplica as cláusulas do filtro avançado em conjunção. As
// cláusulas são independentes entre si e comutativas: qualquer permutação
// produz o mesmo conjunto sobrevivente.
func ApplyFilters(records []*domain.MetricRecord, clauses []domain.FilterClause) []*domain.MetricRecord {
	if len(clauses) == 0 {
		return records
	}

	filtered := make([]*domain.MetricRecord, 0, len(records))
	for _, record := range records {
		if matchesAll(record, clauses) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func matchesAll(record *domain.MetricRecord, clauses []domain.FilterClause) bool {
	for _, clause := range clauses {
		if !clause.Matches(record) {
			return false
		}
	}
	return true
}
