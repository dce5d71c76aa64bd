package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-engine/internal/config"
)

type Client interface {
	GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	GetCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetAdsByCampaignID(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]metadomain.Ad, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			// Timeout fixo por chamada: uma requisição travada atrasa apenas a
			// contribuição da própria campanha
			Timeout: cfg.Meta.RequestTimeout,
		},
	}
}

// get executa uma requisição GET na Graph API e devolve o corpo bruto.
// Falhas de rede e corpos não decodificáveis viram TransportError; payloads de
// erro bem-formados da API viram APIError.
func (c *MetaClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &metadomain.TransportError{URL: url, Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &metadomain.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &metadomain.TransportError{URL: url, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			logrus.WithFields(logrus.Fields{
				"code":    errResp.Error.Code,
				"type":    errResp.Error.Type,
				"message": errResp.Error.Message,
			}).Warn("meta: API retornou erro")
			return nil, &metadomain.APIError{Details: errResp.Error}
		}
		return nil, &metadomain.TransportError{
			URL: url,
			Err: fmt.Errorf("status inesperado: %s", resp.Status),
		}
	}

	return body, nil
}
