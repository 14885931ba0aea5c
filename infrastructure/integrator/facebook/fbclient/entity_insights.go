package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	fbdomain "github.com/revoa-app/support-api/infrastructure/integrator/facebook/domain"
	"github.com/sirupsen/logrus"
)

type ResponseEntityInsights struct {
	Data   []fbdomain.EntityInsight `json:"data"`
	Paging fbdomain.Paging          `json:"paging"`
}

// GetEntityInsights busca as métricas diárias de uma entidade (campanha,
// conjunto ou anúncio) no intervalo informado, seguindo paging.next até
// esgotar as páginas. time_increment=1 garante uma linha por dia.
func (c *FacebookClient) GetEntityInsights(accessToken, platformEntityID string, startDate, endDate time.Time) ([]fbdomain.EntityInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Facebook.URL, platformEntityID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "impressions,clicks,spend,reach,actions,action_values")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("limit", fmt.Sprintf("%d", defaultPageLimit))
	params.Add("access_token", accessToken)

	nextURL := baseURL + "?" + params.Encode()

	insights := make([]fbdomain.EntityInsight, 0)
	for nextURL != "" {
		body, err := c.doRequest(nextURL)
		if err != nil {
			return nil, err
		}

		var response ResponseEntityInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		insights = append(insights, response.Data...)

		// paging.next já carrega o token e os parâmetros originais
		nextURL = response.Paging.Next
	}

	return insights, nil
}
