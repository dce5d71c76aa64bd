package meta

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-engine/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-report-engine/internal/config"
	"github.com/vfg2006/ads-report-engine/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{MaxConcurrentFetches: 2},
	}
}

func testWindow() (time.Time, time.Time) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	return start, end
}

func videoAd(id, name string) metadomain.Ad {
	return metadomain.Ad{
		ID:     id,
		Name:   name,
		Status: "ACTIVE",
		AdSet: &metadomain.AdSet{
			ID:     "as_" + id,
			Name:   "Conjunto " + name,
			Status: "ACTIVE",
			Targeting: &metadomain.Targeting{
				AgeMin:             18,
				AgeMax:             34,
				Genders:            []int{1, 2},
				DevicePlatforms:    []string{"mobile"},
				PublisherPlatforms: []string{"facebook"},
				GeoLocations:       &metadomain.GeoLocations{Countries: []string{"PK"}},
			},
		},
		Creative: &metadomain.Creative{ID: "cr_" + id, ObjectType: "VIDEO"},
		Insights: &metadomain.InsightList{
			Data: []metadomain.AdInsight{
				{
					Spend:       "120.50",
					Impressions: "1000",
					Clicks:      "45",
					CTR:         "4.5",
					PurchaseROAS: []metadomain.Action{
						{ActionType: "omni_purchase", Value: "2.8"},
					},
				},
			},
		},
	}
}

func TestFetchRecordsPartialCampaignFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	start, end := testWindow()

	mockClient.EXPECT().
		GetAdAccountByID(gomock.Any(), "act_1").
		Return(&metadomain.AdAccount{ID: "act_1", Name: "Conta A"}, nil)

	mockClient.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), "act_1").
		Return([]metadomain.Campaign{
			{ID: "c1", Name: "Campanha 1", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
			{ID: "c2", Name: "Campanha 2", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
			{ID: "c3", Name: "Campanha 3", Status: "PAUSED", Objective: "OUTCOME_TRAFFIC"},
		}, nil)

	mockClient.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c1", start, end).
		Return([]metadomain.Ad{videoAd("ad1", "Um")}, nil)

	// Timeout em uma campanha gera contribuição vazia, não aborta as demais
	mockClient.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c2", start, end).
		Return(nil, &metadomain.TransportError{URL: "https://graph.facebook.com/c2/ads", Err: context.DeadlineExceeded})

	mockClient.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c3", start, end).
		Return([]metadomain.Ad{videoAd("ad3", "Três")}, nil)

	records, err := integrator.FetchRecords(context.Background(), []string{"act_1"}, start, end)

	assert.NoError(t, err)
	assert.Len(t, records, 2)

	ids := make(map[string]bool)
	for _, r := range records {
		ids[r.AdID] = true
		assert.Equal(t, "act_1", r.AccountID)
		assert.Equal(t, "Conta A", r.AccountName)
	}
	assert.True(t, ids["ad1"])
	assert.True(t, ids["ad3"])
}

func TestFetchRecordsAccountCampaignsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	start, end := testWindow()

	// Conta 1 falha na listagem de campanhas: contribuição vazia
	mockClient.EXPECT().
		GetAdAccountByID(gomock.Any(), "act_1").
		Return(&metadomain.AdAccount{ID: "act_1", Name: "Conta A"}, nil)
	mockClient.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), "act_1").
		Return(nil, &metadomain.APIError{Details: metadomain.ErrorDetails{Message: "rate limit"}})

	// Conta 2 segue normalmente
	mockClient.EXPECT().
		GetAdAccountByID(gomock.Any(), "act_2").
		Return(&metadomain.AdAccount{ID: "act_2", Name: "Conta B"}, nil)
	mockClient.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), "act_2").
		Return([]metadomain.Campaign{{ID: "c9", Name: "Campanha 9", Status: "ACTIVE"}}, nil)
	mockClient.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c9", start, end).
		Return([]metadomain.Ad{videoAd("ad9", "Nove")}, nil)

	records, err := integrator.FetchRecords(context.Background(), []string{"act_1", "act_2"}, start, end)

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "ad9", records[0].AdID)
	assert.Equal(t, "act_2", records[0].AccountID)
}

func TestFetchRecordsAccountSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	start, end := testWindow()

	// Falha ao buscar os dados da conta não bloqueia o fetch: o nome cai na
	// sentinela e o ID vem do parâmetro
	mockClient.EXPECT().
		GetAdAccountByID(gomock.Any(), "act_1").
		Return(nil, &metadomain.TransportError{URL: "https://graph.facebook.com/act_1", Err: context.DeadlineExceeded})
	mockClient.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), "act_1").
		Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha 1", Status: "ACTIVE"}}, nil)
	mockClient.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c1", start, end).
		Return([]metadomain.Ad{videoAd("ad1", "Um")}, nil)

	records, err := integrator.FetchRecords(context.Background(), []string{"act_1"}, start, end)

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "act_1", records[0].AccountID)
	assert.Equal(t, domain.UnknownAccountName, records[0].AccountName)
}

func TestFlattenAd(t *testing.T) {
	account := &metadomain.AdAccount{ID: "act_1", Name: "Conta A"}
	campaign := metadomain.Campaign{ID: "c1", Name: "Campanha 1", Status: "ACTIVE", Objective: "OUTCOME_SALES"}
	ad := videoAd("ad1", "Um")

	record := flattenAd(account, campaign, &ad)

	assert.Equal(t, "ad1", record.AdID)
	assert.Equal(t, domain.StatusActive, record.AdStatus)
	assert.Equal(t, "VIDEO", record.CreativeFormat)
	assert.Equal(t, "c1", record.CampaignID)
	assert.Equal(t, "OUTCOME_SALES", record.Objective)
	assert.Equal(t, "Conta A", record.AccountName)

	assert.Equal(t, 18, record.Targeting.AgeMin)
	assert.Equal(t, 34, record.Targeting.AgeMax)
	assert.Equal(t, []string{"male", "female"}, record.Targeting.Genders)
	assert.Equal(t, []string{"facebook"}, record.Targeting.Placements)
	assert.Equal(t, []string{"PK"}, record.Targeting.Countries)

	assert.Equal(t, 120.50, record.Metrics.Spend)
	assert.Equal(t, 1000, record.Metrics.Impressions)
	assert.Equal(t, 45, record.Metrics.Clicks)
	assert.Equal(t, 4.5, record.Metrics.CTR)
	assert.Equal(t, 2.8, record.Metrics.ROAS)
}

func TestFlattenAdWithoutOptionalBlocks(t *testing.T) {
	account := &metadomain.AdAccount{ID: "act_1"}
	campaign := metadomain.Campaign{ID: "c1"}
	ad := metadomain.Ad{ID: "ad1"}

	record := flattenAd(account, campaign, &ad)

	// Ancestrais sem nome caem nas sentinelas; métricas ausentes ficam zeradas
	assert.Equal(t, domain.UnknownAccountName, record.AccountName)
	assert.Equal(t, domain.UnknownCampaignName, record.CampaignName)
	assert.Equal(t, domain.UnknownAdSetName, record.AdSetName)
	assert.Equal(t, domain.UnknownAdName, record.AdName)
	assert.Equal(t, domain.StatusUnknown, record.AdStatus)
	assert.Equal(t, 0.0, record.Metrics.Spend)
}
