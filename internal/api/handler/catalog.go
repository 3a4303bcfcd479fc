package handler

import (
	"net/http"

	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/log"
	"github.com/vfg2006/bakery-ledger-api/pkg/middleware"
)

type CatalogResponse struct {
	Bakeries []*domain.Bakery `json:"bakeries"`
	Items    []*domain.Item   `json:"items"`
}

// GetCatalog retorna a visão combinada de padarias e itens usada para montar
// uma venda.
func GetCatalog(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		snapshot, err := service.Snapshot(r.Context(), claims.UserID)
		if err != nil {
			logger.WithError(err).Error("catalog: failed to load catalog snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar o catálogo", nil)
			return
		}

		logger.WithFields(log.Fields{
			"bakeries": len(snapshot.Bakeries),
			"items":    len(snapshot.Items),
		}).Debug("catalog: snapshot loaded")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CatalogResponse{
			Bakeries: snapshot.Bakeries,
			Items:    snapshot.Items,
		}); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
		}
	})
}
