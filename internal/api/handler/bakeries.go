package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/log"
	"github.com/vfg2006/bakery-ledger-api/pkg/middleware"
)

func ListBakeries(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		bakeries, err := service.ListBakeries(claims.UserID)
		if err != nil {
			logger.WithError(err).Error("bakeries: failed to list bakeries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar padarias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bakeries)
	})
}

// CreateBakery cadastra uma padaria. Telefone repetido não duplica: a padaria
// existente é devolvida com status 200.
func CreateBakery(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var input cataloging.BakeryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		bakery, created, err := service.CreateBakery(claims.UserID, input)
		if err != nil {
			handleCatalogError(w, logger, err, "Erro ao criar padaria")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}

		logger.WithFields(log.Fields{
			"bakery_id": bakery.ID,
			"created":   created,
		}).Info("bakeries: bakery upserted")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(bakery)
	})
}

func UpdateBakery(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da padaria não fornecido", nil)
			return
		}

		var input cataloging.BakeryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		bakery, err := service.UpdateBakery(claims.UserID, id, input)
		if err != nil {
			handleCatalogError(w, logger, err, "Erro ao atualizar padaria")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bakery)
	})
}

func DeleteBakery(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da padaria não fornecido", nil)
			return
		}

		if err := service.DeleteBakery(claims.UserID, id); err != nil {
			handleCatalogError(w, logger, err, "Erro ao remover padaria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// handleCatalogError mapeia erros do catálogo para a resposta padronizada
func handleCatalogError(w http.ResponseWriter, logger log.Logger, err error, fallback string) {
	switch {
	case cataloging.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, cataloging.ErrBakeryNotFound), errors.Is(err, cataloging.ErrItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	default:
		logger.WithError(err).Error("catalog: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
