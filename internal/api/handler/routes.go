package handler

import (
	"net/http"

	"github.com/revoa-app/support-api/internal/api/handler/router"
	"github.com/revoa-app/support-api/internal/usecases/billing"
	"github.com/revoa-app/support-api/internal/usecases/settings"
	"github.com/revoa-app/support-api/internal/usecases/supporting"
	"github.com/revoa-app/support-api/internal/usecases/syncing"
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

func AdAccountSync(service syncing.AccountSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccounts/:id/sync",
			Method:  http.MethodPost,
			Handler: SyncAdAccount(service),
		},
	}
}

func AdAccountReads(service syncing.AccountReader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/adAccounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
		{
			Path:    "/v1/entities/:entity_id/metrics",
			Method:  http.MethodGet,
			Handler: GetEntityMetrics(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Orders(service supporting.OrderSupporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:id/orders/:order_id",
			Method:  http.MethodGet,
			Handler: GetOrder(service),
		},
		{
			Path:    "/v1/stores/:id/orders/:order_id/cancel",
			Method:  http.MethodPost,
			Handler: CancelOrder(service),
		},
		{
			Path:    "/v1/stores/:id/orders/:order_id/refund",
			Method:  http.MethodPost,
			Handler: RefundOrder(service),
		},
		{
			Path:    "/v1/stores/:id/orders/:order_id/shipping-address",
			Method:  http.MethodPut,
			Handler: UpdateShippingAddress(service),
		},
	}
}

func EmailTemplates(service settings.StoreSettingsManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:id/email-templates",
			Method:  http.MethodGet,
			Handler: ListEmailTemplates(service),
		},
		{
			Path:    "/v1/stores/:id/email-templates",
			Method:  http.MethodPost,
			Handler: CreateEmailTemplate(service),
		},
		{
			Path:    "/v1/email-templates/:template_id",
			Method:  http.MethodPut,
			Handler: UpdateEmailTemplate(service),
		},
		{
			Path:    "/v1/email-templates/:template_id",
			Method:  http.MethodDelete,
			Handler: DeleteEmailTemplate(service),
		},
	}
}

func CapiSettings(service settings.StoreSettingsManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:id/capi-settings",
			Method:  http.MethodGet,
			Handler: GetCapiSettings(service),
		},
		{
			Path:    "/v1/stores/:id/capi-settings",
			Method:  http.MethodPut,
			Handler: SaveCapiSettings(service),
		},
	}
}

func Billing(service billing.CheckoutManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/billing/checkout-session",
			Method:  http.MethodPost,
			Handler: CreateCheckoutSession(service),
		},
	}
}
