package domain

import "strings"

// EntityStatus representa o status de ciclo de vida de uma entidade do Meta
type EntityStatus string

const (
	StatusActive   EntityStatus = "ACTIVE"
	StatusPaused   EntityStatus = "PAUSED"
	StatusDeleted  EntityStatus = "DELETED"
	StatusArchived EntityStatus = "ARCHIVED"
	StatusUnknown  EntityStatus = "UNKNOWN"
)

// ParseEntityStatus converte o status retornado pela API para o enum interno
func ParseEntityStatus(s string) EntityStatus {
	switch EntityStatus(s) {
	case StatusActive, StatusPaused, StatusDeleted, StatusArchived:
		return EntityStatus(s)
	default:
		return StatusUnknown
	}
}

// Targeting representa a segmentação configurada no conjunto de anúncios
type Targeting struct {
	AgeMin                 int      `json:"age_min"`
	AgeMax                 int      `json:"age_max"`
	Genders                []string `json:"genders,omitempty"`
	DevicePlatforms        []string `json:"device_platforms,omitempty"`
	Placements             []string `json:"placements,omitempty"`
	Countries              []string `json:"countries,omitempty"`
	InterestCount          int      `json:"interest_count,omitempty"`
	CustomAudienceCount    int      `json:"custom_audience_count,omitempty"`
	LookalikeAudienceCount int      `json:"lookalike_audience_count,omitempty"`
}

// AdMetrics representa o snapshot de métricas de um anúncio para uma janela de datas.
// Valores zero indicam ausência de dado; a média de ROAS/CTR no resumo considera
// apenas valores estritamente positivos justamente para não misturar "sem dado"
// com "zero medido".
type AdMetrics struct {
	Spend       float64            `json:"spend"`
	Impressions int                `json:"impressions"`
	Reach       int                `json:"reach"`
	Clicks      int                `json:"clicks"`
	CTR         float64            `json:"ctr"`
	CPC         float64            `json:"cpc"`
	CPM         float64            `json:"cpm"`
	ROAS        float64            `json:"roas"`
	Actions     map[string]float64 `json:"actions,omitempty"`
}

// MetricRecord é a unidade de trabalho do motor de relatórios: o join achatado
// de um anúncio com seus ancestrais (conjunto, campanha e conta) e um snapshot
// de métricas. É imutável após a construção.
type MetricRecord struct {
	AdID           string       `json:"ad_id"`
	AdName         string       `json:"ad_name"`
	AdStatus       EntityStatus `json:"ad_status"`
	CreativeFormat string       `json:"creative_format,omitempty"`

	AdSetID     string       `json:"ad_set_id"`
	AdSetName   string       `json:"ad_set_name"`
	AdSetStatus EntityStatus `json:"ad_set_status"`

	CampaignID     string       `json:"campaign_id"`
	CampaignName   string       `json:"campaign_name"`
	CampaignStatus EntityStatus `json:"campaign_status"`
	Objective      string       `json:"objective,omitempty"`

	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`

	Targeting Targeting `json:"targeting"`
	Metrics   AdMetrics `json:"metrics"`
}

// Sentinelas usadas quando a origem omite nome ou ID de um ancestral.
// O agregador nunca pode quebrar por dado ancestral parcial.
const (
	UnknownAccountName  = "Unknown Account"
	UnknownCampaignName = "Unknown Campaign"
	UnknownAdSetName    = "Unknown AdSet"
	UnknownAdName       = "Unknown Ad"
)

// NormalizeAncestors preenche identificadores e nomes ancestrais ausentes com
// sentinelas, garantindo a invariante de que todo MetricRecord carrega contexto
// ancestral não nulo.
func (r *MetricRecord) NormalizeAncestors() {
	if r.AccountName == "" {
		r.AccountName = UnknownAccountName
	}
	if r.CampaignName == "" {
		r.CampaignName = UnknownCampaignName
	}
	if r.AdSetName == "" {
		r.AdSetName = UnknownAdSetName
	}
	if r.AdName == "" {
		r.AdName = UnknownAdName
	}
	if r.AdStatus == "" {
		r.AdStatus = StatusUnknown
	}
	if r.AdSetStatus == "" {
		r.AdSetStatus = StatusUnknown
	}
	if r.CampaignStatus == "" {
		r.CampaignStatus = StatusUnknown
	}
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
