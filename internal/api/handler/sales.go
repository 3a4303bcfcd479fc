package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/selling"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/log"
	"github.com/vfg2006/bakery-ledger-api/pkg/middleware"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

type HistoricalSaleRequest struct {
	CartRequest
	Date string `json:"date"`
}

type CommitSaleResponse struct {
	SaleID string            `json:"sale_id"`
	Status domain.SaleStatus `json:"status"`
}

// CommitSale registra uma venda ao vivo. Ela nasce como pending e só vira
// saved quando o reconhecimento remoto a confirma.
func CommitSale(catalogService cataloging.CatalogService, committer selling.Committer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cart, err := buildCart(r.Context(), catalogService, claims.UserID, req)
		if err != nil {
			handleSellingError(w, logger, err)
			return
		}

		saleID, err := committer.Commit(r.Context(), claims.UserID, cart)
		if err != nil {
			handleSellingError(w, logger, err)
			return
		}

		logger.WithField("sale_id", saleID).Info("sales: sale committed")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CommitSaleResponse{
			SaleID: saleID,
			Status: domain.SaleStatusPending,
		})
	})
}

// CommitHistoricalSale registra uma venda retroativa, datada ao meio-dia do
// dia informado e já reconhecida como saved.
func CommitHistoricalSale(catalogService cataloging.CatalogService, committer selling.Committer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req HistoricalSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida", nil)
			return
		}

		cart, err := buildCart(r.Context(), catalogService, claims.UserID, req.CartRequest)
		if err != nil {
			handleSellingError(w, logger, err)
			return
		}

		saleID, err := committer.CommitHistorical(r.Context(), claims.UserID, cart, *date)
		if err != nil {
			handleSellingError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"sale_id": saleID,
			"date":    date.Format(time.DateOnly),
		}).Info("sales: historical sale committed")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CommitSaleResponse{
			SaleID: saleID,
			Status: domain.SaleStatusSaved,
		})
	})
}

// ListSales devolve o histórico de vendas do operador, opcionalmente limitado
// ao intervalo from/to (datas inclusivas).
func ListSales(service selling.SaleReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")

		var sales []*domain.Sale
		var err error

		if fromStr == "" && toStr == "" {
			sales, err = service.ListSales(r.Context(), claims.UserID)
		} else {
			from, parseErr := utils.ParseDate(fromStr)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from inválido", nil)
				return
			}

			to, parseErr := utils.ParseDate(toStr)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to inválido", nil)
				return
			}

			sales, err = service.ListSalesByRange(r.Context(), claims.UserID, *from, *to)
		}

		if err != nil {
			logger.WithError(err).Error("sales: failed to list sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sales)
	})
}
