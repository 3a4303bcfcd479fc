package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/selling"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/log"
	"github.com/vfg2006/bakery-ledger-api/pkg/middleware"
)

type CartLineRequest struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

type CartRequest struct {
	BakeryID string            `json:"bakery_id"`
	Lines    []CartLineRequest `json:"lines"`
}

type CartQuoteResponse struct {
	BakeryID string            `json:"bakery_id"`
	Lines    []domain.CartLine `json:"lines"`
	Total    decimal.Decimal   `json:"total"`
}

// QuoteCart monta o carrinho contra o catálogo atual e devolve as linhas com
// preços congelados, sem registrar venda.
func QuoteCart(catalogService cataloging.CatalogService) http.Handler {
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

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CartQuoteResponse{
			BakeryID: cart.BakeryID,
			Lines:    cart.Lines,
			Total:    cart.Total(),
		})
	})
}

// buildCart valida a requisição contra a visão atual do catálogo e devolve o
// carrinho pronto para commit.
func buildCart(ctx context.Context, catalogService cataloging.CatalogService, ownerID int, req CartRequest) (*domain.Cart, error) {
	snapshot, err := catalogService.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	builder := selling.NewCartBuilder(snapshot)

	if req.BakeryID != "" {
		if err := builder.SetBakery(req.BakeryID); err != nil {
			return nil, err
		}
	}

	for _, line := range req.Lines {
		if err := builder.AddLine(line.ItemID, line.Qty); err != nil {
			return nil, err
		}
	}

	return builder.Cart(), nil
}

// handleSellingError mapeia erros do fluxo de venda para a resposta padronizada
func handleSellingError(w http.ResponseWriter, logger log.Logger, err error) {
	var sellingErr *selling.SellingError
	if errors.As(err, &sellingErr) {
		apiErrors.WriteError(w, sellingErr.Code, sellingErr.Error(), nil)
		return
	}

	switch {
	case selling.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCartLine, err.Error(), nil)

	case errors.Is(err, selling.ErrIncompleteSale), errors.Is(err, selling.ErrCartConsumed):
		apiErrors.WriteError(w, apiErrors.ErrIncompleteSale, err.Error(), nil)

	case errors.Is(err, selling.ErrTotalMismatch):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCartLine, err.Error(), nil)

	default:
		logger.WithError(err).Error("sales: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
	}
}
