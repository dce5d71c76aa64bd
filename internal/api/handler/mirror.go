package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-engine/internal/scheduler"
	"github.com/vfg2006/ads-report-engine/pkg/apiErrors"
	"github.com/vfg2006/ads-report-engine/pkg/log"
)

// RunMirrorSync dispara manualmente uma sincronização do espelho relacional.
// A execução segue em background; a resposta indica apenas o aceite.
func RunMirrorSync(service *scheduler.MirrorSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if running, ok := service.Status()["running"].(bool); ok && running {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "sincronização já em andamento", nil)
			return
		}

		logger.Info("mirror: sincronização manual disparada")

		// Desvinculado do contexto da requisição: o sync continua após a resposta
		go func() {
			if err := service.RunSync(context.Background()); err != nil {
				logrus.WithError(err).Error("mirror: erro na sincronização manual")
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"status": "started"})
	})
}

// MirrorSyncStatus expõe o estado do agendador de sincronização
func MirrorSyncStatus(service *scheduler.MirrorSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("mirror: falha ao codificar status")
		}
	})
}
