package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/domain"
)

// GetAdAccountByID busca o nome e o ID de uma conta de anúncios
func (c *MetaClient) GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/act_%s", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.get(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var account metadomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, &metadomain.TransportError{
			URL: baseURL,
			Err: fmt.Errorf("erro ao decodificar JSON: %w", err),
		}
	}

	return &account, nil
}
