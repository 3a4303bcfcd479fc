package handler

import (
	"net/http"

	"github.com/vfg2006/bakery-ledger-api/internal/usecases/syncing"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/log"
	"github.com/vfg2006/bakery-ledger-api/pkg/middleware"
)

// GetSyncStatus devolve o indicador de sincronização do operador: estado da
// conectividade com o armazenamento remoto e vendas ainda não reconhecidas.
func GetSyncStatus(service syncing.StatusTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		status, err := service.Status(claims.UserID)
		if err != nil {
			logger.WithError(err).Error("sync: failed to build sync status")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar status de sincronização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}
