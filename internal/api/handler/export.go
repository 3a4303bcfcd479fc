package handler

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/log"
	"github.com/vfg2006/bakery-ledger-api/pkg/middleware"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

// ExportSales gera o CSV das vendas do intervalo from/to e o devolve como
// anexo para download.
func ExportSales(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if r.URL.Query().Get("from") == "" || r.URL.Query().Get("to") == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros from e to são obrigatórios", nil)
			return
		}

		from, err := utils.ParseDate(r.URL.Query().Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from inválido", nil)
			return
		}

		to, err := utils.ParseDate(r.URL.Query().Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to inválido", nil)
			return
		}

		payload, filename, err := service.ExportRange(r.Context(), claims.UserID, *from, *to)
		if err != nil {
			handleExportError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"filename": filename,
			"bytes":    len(payload),
		}).Info("export: range export generated")

		writeCSVAttachment(w, payload, filename)
	})
}

// ExportAllSales gera o CSV de todo o histórico do operador.
func ExportAllSales(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		payload, filename, err := service.ExportAll(r.Context(), claims.UserID)
		if err != nil {
			handleExportError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"filename": filename,
			"bytes":    len(payload),
		}).Info("export: full export generated")

		writeCSVAttachment(w, payload, filename)
	})
}

func writeCSVAttachment(w http.ResponseWriter, payload []byte, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(payload)
}

func handleExportError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, exporting.ErrEmptyExport) {
		apiErrors.WriteError(w, apiErrors.ErrEmptyExport, "Nenhuma venda no período para exportar", nil)
		return
	}

	logger.WithError(err).Error("export: failed to generate export")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar exportação", nil)
}
