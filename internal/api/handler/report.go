package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-engine/internal/domain"
	"github.com/vfg2006/ads-report-engine/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-engine/pkg/apiErrors"
	"github.com/vfg2006/ads-report-engine/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunReport executa o pipeline de relatório para a spec enviada no corpo
func RunReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var spec domain.ReportSpec
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			logger.WithError(err).Warn("reports: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"source": spec.Source,
			"view":   spec.CustomView,
			"sort":   spec.SortBy,
		}).Info("reports: executando relatório")

		result, err := service.RunReport(r.Context(), &spec)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("reports: falha ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "falha ao codificar resposta", nil)
		}
	})
}

func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	var apiErr *metadomain.APIError

	switch {
	case errors.Is(err, reporting.ErrInvalidSpec):
		logger.WithError(err).Warn("reports: especificação inválida")
		apiErrors.WriteError(w, apiErrors.ErrInvalidReportSpec, err.Error(), nil)
	case errors.As(err, &apiErr):
		logger.WithError(err).Error("reports: erro da API do Meta")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, apiErr.Details.Message, nil)
	default:
		logger.WithError(err).Error("reports: falha ao executar relatório")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	}
}

// ReportVocabulary expõe o vocabulário aceito pela spec: views, chaves de
// ordenação e faixas etárias. É contrato versionado junto com a spec.
func ReportVocabulary() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string][]string{
			"views":        domain.ViewNames(),
			"sort_keys":    domain.SortKeyNames(),
			"age_brackets": domain.AgeBrackets(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: falha ao codificar vocabulário")
		}
	})
}
