package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/bakery-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/log"
	"github.com/vfg2006/bakery-ledger-api/pkg/middleware"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

const defaultAnalyticsWindowDays = 7

// GetAnalytics devolve o relatório agregado da janela dos últimos N dias
// (query param days, padrão 7).
func GetAnalytics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		days := defaultAnalyticsWindowDays
		if daysStr := r.URL.Query().Get("days"); daysStr != "" {
			parsed, err := strconv.Atoi(daysStr)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
				return
			}
			days = parsed
		}

		windowStart := utils.StartOfDay(time.Now().AddDate(0, 0, -(days - 1)))

		report, err := service.Report(r.Context(), claims.UserID, windowStart)
		if err != nil {
			logger.WithError(err).Error("analytics: failed to build report")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"days":      days,
			"buckets":   len(report.DailyRevenue),
			"top_items": len(report.TopItems),
		}).Debug("analytics: report built")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// GetOverview devolve os contadores do painel inicial.
func GetOverview(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		overview, err := service.Overview(r.Context(), claims.UserID)
		if err != nil {
			logger.WithError(err).Error("overview: failed to build overview")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar visão geral", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	})
}
