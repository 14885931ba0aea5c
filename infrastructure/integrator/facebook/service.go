package facebook

import (
	"strconv"
	"time"

	fbdomain "github.com/revoa-app/support-api/infrastructure/integrator/facebook/domain"
	"github.com/revoa-app/support-api/infrastructure/integrator/facebook/fbclient"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/revoa-app/support-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Tipos de ação da Graph API que contam como conversão de compra
var purchaseActionTypes = map[string]bool{
	"purchase":                             true,
	"omni_purchase":                        true,
	"offsite_conversion.fb_pixel_purchase": true,
}

type FacebookIntegrator struct {
	cfg    *config.Config
	Client fbclient.Client
}

func New(cfg *config.Config, client fbclient.Client) *FacebookIntegrator {
	return &FacebookIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetcherFor devolve uma função de busca de métricas vinculada ao token de
// acesso informado, pronta para ser injetada no fluxo de final sync.
func (s *FacebookIntegrator) FetcherFor(accessToken string) domain.MetricsFetcher {
	return func(platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
		return s.GetEntityMetrics(accessToken, platformEntityID, startDate, endDate)
	}
}

// GetEntityMetrics busca as métricas diárias de uma entidade na Graph API e
// converte cada linha para o modelo interno, recalculando as métricas derivadas.
func (s *FacebookIntegrator) GetEntityMetrics(accessToken, platformEntityID string, startDate, endDate time.Time) ([]*domain.EntityMetric, error) {
	insights, err := s.Client.GetEntityInsights(accessToken, platformEntityID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": platformEntityID,
			"error":     err.Error(),
		}).Error("insights: failed to get entity insights from API")
		return nil, err
	}

	metrics := make([]*domain.EntityMetric, 0, len(insights))
	for i := range insights {
		metric := FactoryEntityMetric(&insights[i], platformEntityID)
		if metric == nil {
			continue
		}
		metrics = append(metrics, metric)
	}

	logrus.WithFields(logrus.Fields{
		"entity_id":     platformEntityID,
		"metrics_count": len(metrics),
	}).Debug("insights: successfully retrieved entity metrics")

	return metrics, nil
}

// GetCampaigns lista as campanhas de uma conta de anúncios
func (s *FacebookIntegrator) GetCampaigns(accessToken, accountExternalID string) ([]fbdomain.Campaign, error) {
	campaigns, err := s.Client.GetCampaignsByAccountID(accessToken, accountExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("insights: failed to get campaigns for ad account")
		return nil, err
	}

	return campaigns, nil
}

// FactoryEntityMetric converte uma linha de insight da Graph API para o
// modelo interno. Retorna nil quando a linha não tem data válida.
func FactoryEntityMetric(insight *fbdomain.EntityInsight, platformEntityID string) *domain.EntityMetric {
	date, err := time.Parse(time.DateOnly, insight.DateStart)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":  platformEntityID,
			"date_start": insight.DateStart,
		}).Warn("insights: linha de insight sem data válida, ignorando")
		return nil
	}

	metric := &domain.EntityMetric{
		EntityID:        platformEntityID,
		Date:            date,
		Impressions:     parseInt(insight.Impressions),
		Clicks:          parseInt(insight.Clicks),
		Reach:           parseInt(insight.Reach),
		Spend:           utils.RoundWithTwoDecimalPlace(parseFloat(insight.Spend)),
		Conversions:     sumActions(insight.Actions),
		ConversionValue: utils.RoundWithTwoDecimalPlace(sumActionValues(insight.ActionValues)),
	}

	metric.ComputeDerived()

	return metric
}

func sumActions(actions []fbdomain.Action) float64 {
	total := 0.0
	for _, action := range actions {
		if purchaseActionTypes[action.ActionType] {
			total += parseFloat(action.Value)
		}
	}
	return total
}

func sumActionValues(actionValues []fbdomain.Action) float64 {
	total := 0.0
	for _, action := range actionValues {
		if purchaseActionTypes[action.ActionType] {
			total += parseFloat(action.Value)
		}
	}
	return total
}

func parseInt(value string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("insights: error converting value to int")
		return 0
	}

	return parsed
}

func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("insights: error converting value to float")
		return 0
	}

	return parsed
}
