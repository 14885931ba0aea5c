package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	fbdomain "github.com/revoa-app/support-api/infrastructure/integrator/facebook/domain"
	"github.com/sirupsen/logrus"
)

type ResponseCampaigns struct {
	Data   []fbdomain.Campaign `json:"data"`
	Paging fbdomain.Paging     `json:"paging"`
}

// GetCampaignsByAccountID lista as campanhas de uma conta de anúncios,
// seguindo paging.next até esgotar as páginas.
func (c *FacebookClient) GetCampaignsByAccountID(accessToken, accountExternalID string) ([]fbdomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Facebook.URL, accountExternalID)

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("limit", fmt.Sprintf("%d", defaultPageLimit))
	params.Add("access_token", accessToken)

	nextURL := baseURL + "?" + params.Encode()

	campaigns := make([]fbdomain.Campaign, 0)
	for nextURL != "" {
		body, err := c.doRequest(nextURL)
		if err != nil {
			return nil, err
		}

		var response ResponseCampaigns
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)

		nextURL = response.Paging.Next
	}

	return campaigns, nil
}
