package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetAdsByCampaignID busca os anúncios de uma campanha com os sub-objetos de
// conjunto (segmentação), criativo e insights da janela de datas informada
func (c *MetaClient) GetAdsByCampaignID(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]metadomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, campaignID)

	timeRange := fmt.Sprintf(
		`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)

	fields := "id,name,status," +
		"adset{id,name,status,targeting}," +
		"creative{id,object_type}," +
		fmt.Sprintf("insights.time_range(%s){spend,impressions,reach,clicks,ctr,cpc,cpm,actions,purchase_roas}", timeRange)

	ads := make([]metadomain.Ad, 0)
	after := ""

	for {
		params := url.Values{}
		params.Add("fields", fields)
		params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageSize))
		params.Add("access_token", c.Cfg.Meta.AccessToken)
		if after != "" {
			params.Add("after", after)
		}

		body, err := c.get(ctx, baseURL+"?"+params.Encode())
		if err != nil {
			return nil, err
		}

		var response ResponseAds
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

		ads = append(ads, response.Data...)

		if response.Paging.Cursors.After == "" || response.Paging.Next == "" {
			break
		}
		after = response.Paging.Cursors.After
	}

	return ads, nil
}
