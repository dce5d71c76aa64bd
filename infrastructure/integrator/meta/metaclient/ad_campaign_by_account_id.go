package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetCampaignsByAccountID busca as campanhas de uma conta, seguindo o cursor
// de paginação até esgotar as páginas
func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	campaigns := make([]metadomain.Campaign, 0)
	after := ""

	for {
		params := url.Values{}
		params.Add("fields", "id,name,status,objective")
		params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageSize))
		params.Add("access_token", c.Cfg.Meta.AccessToken)
		if after != "" {
			params.Add("after", after)
		}

		body, err := c.get(ctx, baseURL+"?"+params.Encode())
		if err != nil {
			return nil, err
		}

		var response ResponseAdCampaign
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, &metadomain.TransportError{
				URL: baseURL,
				Err: fmt.Errorf("erro ao decodificar JSON: %w", err),
			}
		}

		if response.Data == nil {
			return nil, &metadomain.TransportError{
				URL: baseURL,
				Err: fmt.Errorf("resposta sem campo data"),
			}
		}

		campaigns = append(campaigns, response.Data...)

		if response.Paging.Cursors.After == "" || response.Paging.Next == "" {
			break
		}
		after = response.Paging.Cursors.After
	}

	return campaigns, nil
}
