package handler

import (
	"net/http"

	"github.com/vfg2006/bakery-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/selling"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Catalog(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/catalog",
			Method:  http.MethodGet,
			Handler: GetCatalog(service),
		},
	}
}

func Bakeries(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/bakeries",
			Method:  http.MethodGet,
			Handler: ListBakeries(service),
		},
		{
			Path:    "/v1/bakeries",
			Method:  http.MethodPost,
			Handler: CreateBakery(service),
		},
		{
			Path:    "/v1/bakeries/:id",
			Method:  http.MethodPut,
			Handler: UpdateBakery(service),
		},
		{
			Path:    "/v1/bakeries/:id",
			Method:  http.MethodDelete,
			Handler: DeleteBakery(service),
		},
	}
}

func Items(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/items",
			Method:  http.MethodGet,
			Handler: ListItems(service),
		},
		{
			Path:    "/v1/items",
			Method:  http.MethodPost,
			Handler: CreateItem(service),
		},
		{
			Path:    "/v1/items/:id",
			Method:  http.MethodPut,
			Handler: UpdateItem(service),
		},
		{
			Path:    "/v1/items/:id",
			Method:  http.MethodDelete,
			Handler: DeleteItem(service),
		},
	}
}

func Sales(catalogService cataloging.CatalogService, committer selling.Committer, reader selling.SaleReader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/carts/quote",
			Method:  http.MethodPost,
			Handler: QuoteCart(catalogService),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CommitSale(catalogService, committer),
		},
		{
			Path:    "/v1/sales/historical",
			Method:  http.MethodPost,
			Handler: CommitHistoricalSale(catalogService, committer),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(reader),
		},
	}
}

func Analytics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics",
			Method:  http.MethodGet,
			Handler: GetAnalytics(service),
		},
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
	}
}

func Exports(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/export",
			Method:  http.MethodGet,
			Handler: ExportSales(service),
		},
		{
			Path:    "/v1/sales/export/all",
			Method:  http.MethodGet,
			Handler: ExportAllSales(service),
		},
	}
}

func SyncStatus(service syncing.StatusTracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}
