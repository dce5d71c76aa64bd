package meta

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-engine/internal/config"
	"github.com/vfg2006/ads-report-engine/internal/domain"
)

// MetaIntegrator implementa a estratégia live do relatório: percorre a
// hierarquia Conta → Campanhas → Anúncios na Graph API e materializa a lista
// achatada de MetricRecords com o contexto ancestral carimbado em cada um.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchRecords busca os registros de todas as contas informadas. Falhas por
// conta ou por campanha geram contribuição vazia e não abortam as demais:
// resultado parcial é preferível a falha total. Não há retry nesta camada.
func (s *MetaIntegrator) FetchRecords(ctx context.Context, accountIDs []string, startDate, endDate time.Time) ([]*domain.MetricRecord, error) {
	records := make([]*domain.MetricRecord, 0)

	for _, accountID := range accountIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		accountRecords := s.fetchAccountRecords(ctx, accountID, startDate, endDate)
		records = append(records, accountRecords...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *MetaIntegrator) fetchAccountRecords(ctx context.Context, accountID string, startDate, endDate time.Time) []*domain.MetricRecord {
	account, err := s.Client.GetAdAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("meta: erro ao buscar dados da conta, usando sentinela")
		account = &metadomain.AdAccount{ID: accountID}
	}

	campaigns, err := s.Client.GetCampaignsByAccountID(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: erro ao buscar campanhas da conta, contribuição vazia")
		return nil
	}

	// Fan-out por campanha com pool limitado: as buscas são independentes e o
	// limite respeita o rate limit implícito da API. Cada busca é cancelável
	// individualmente via contexto.
	maxConcurrent := s.cfg.Meta.MaxConcurrentFetches
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	sem := make(chan struct{}, maxConcurrent)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		records []*domain.MetricRecord
	)

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(campaign metadomain.Campaign) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			ads, err := s.Client.GetAdsByCampaignID(ctx, campaign.ID, startDate, endDate)
			if err != nil {
				// Contribuição vazia para esta campanha; as demais seguem
				logrus.WithFields(logrus.Fields{
					"account_id":  accountID,
					"campaign_id": campaign.ID,
					"error":       err.Error(),
				}).Warn("meta: erro ao buscar anúncios da campanha, contribuição vazia")
				return
			}

			campaignRecords := make([]*domain.MetricRecord, 0, len(ads))
			for i := range ads {
				campaignRecords = append(campaignRecords, flattenAd(account, campaign, &ads[i]))
			}

			mu.Lock()
			records = append(records, campaignRecords...)
			mu.Unlock()
		}(campaign)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(campaigns),
		"records":    len(records),
	}).Debug("meta: fetch hierárquico da conta concluído")

	return records
}

// flattenAd monta o MetricRecord achatado a partir do anúncio e do contexto
// ancestral já buscado
func flattenAd(account *metadomain.AdAccount, campaign metadomain.Campaign, ad *metadomain.Ad) *domain.MetricRecord {
	record := &domain.MetricRecord{
		AdID:     ad.ID,
		AdName:   ad.Name,
		AdStatus: domain.ParseEntityStatus(ad.Status),

		CampaignID:     campaign.ID,
		CampaignName:   campaign.Name,
		CampaignStatus: domain.ParseEntityStatus(campaign.Status),
		Objective:      campaign.Objective,

		AccountID:   account.ID,
		AccountName: account.Name,
	}

	if ad.Creative != nil {
		record.CreativeFormat = ad.Creative.ObjectType
	}

	if ad.AdSet != nil {
		record.AdSetID = ad.AdSet.ID
		record.AdSetName = ad.AdSet.Name
		record.AdSetStatus = domain.ParseEntityStatus(ad.AdSet.Status)

		if t := ad.AdSet.Targeting; t != nil {
			record.Targeting = domain.Targeting{
				AgeMin:                 t.AgeMin,
				AgeMax:                 t.AgeMax,
				Genders:                convertGenders(t.Genders),
				DevicePlatforms:        t.DevicePlatforms,
				Placements:             t.PublisherPlatforms,
				InterestCount:          len(t.Interests),
				CustomAudienceCount:    len(t.CustomAudiences),
				LookalikeAudienceCount: len(t.LookalikeAudiences),
			}
			if t.GeoLocations != nil {
				record.Targeting.Countries = t.GeoLocations.Countries
			}
		}
	}

	if ad.Insights != nil && len(ad.Insights.Data) > 0 {
		insight := &ad.Insights.Data[0]
		record.Metrics = domain.AdMetrics{
			Spend:       insight.GetSpend(),
			Impressions: insight.GetImpressions(),
			Reach:       insight.GetReach(),
			Clicks:      insight.GetClicks(),
			CTR:         insight.GetCTR(),
			CPC:         insight.GetCPC(),
			CPM:         insight.GetCPM(),
			ROAS:        insight.GetROAS(),
			Actions:     insight.GetActions(),
		}
	}

	record.NormalizeAncestors()
	return record
}

// Na Graph API o gênero vem como inteiro: 1 = masculino, 2 = feminino
func convertGenders(genders []int) []string {
	if len(genders) == 0 {
		return nil
	}

	converted := make([]string, 0, len(genders))
	for _, g := range genders {
		switch g {
		case 1:
			converted = append(converted, "male")
		case 2:
			converted = append(converted, "female")
		default:
			converted = append(converted, "unknown")
		}
	}
	return converted
}
