package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-engine/infrastructure/repository"
	"github.com/vfg2006/ads-report-engine/pkg/apiErrors"
	"github.com/vfg2006/ads-report-engine/pkg/log"
)

// AdAccountList lista as contas de anúncios conhecidas pelo espelho
func AdAccountList(repo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts, err := repo.ListAccounts(r.Context())
		if err != nil {
			logger.WithError(err).Error("accounts: falha ao listar contas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao listar contas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("accounts: falha ao codificar resposta")
		}
	})
}
