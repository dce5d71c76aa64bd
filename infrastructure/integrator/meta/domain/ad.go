package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Ad representa um anúncio retornado pela Graph API com os sub-objetos
// aninhados de conjunto (com segmentação), criativo e insights.
type Ad struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Status   string       `json:"status"`
	AdSet    *AdSet       `json:"adset,omitempty"`
	Creative *Creative    `json:"creative,omitempty"`
	Insights *InsightList `json:"insights,omitempty"`
}

type AdSet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Targeting *Targeting `json:"targeting,omitempty"`
}

type Targeting struct {
	AgeMin             int           `json:"age_min"`
	AgeMax             int           `json:"age_max"`
	Genders            []int         `json:"genders,omitempty"`
	DevicePlatforms    []string      `json:"device_platforms,omitempty"`
	PublisherPlatforms []string      `json:"publisher_platforms,omitempty"`
	GeoLocations       *GeoLocations `json:"geo_locations,omitempty"`
	Interests          []IDName      `json:"interests,omitempty"`
	CustomAudiences    []IDName      `json:"custom_audiences,omitempty"`
	LookalikeAudiences []IDName      `json:"lookalike_audiences,omitempty"`
}

type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
}

type IDName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Creative struct {
	ID         string `json:"id"`
	ObjectType string `json:"object_type"`
}

// InsightList é o envelope {data: [...]} dos insights aninhados do anúncio
type InsightList struct {
	Data []AdInsight `json:"data"`
}

// AdInsight representa uma linha de métricas da Graph API. Os campos numéricos
// chegam como strings e são convertidos na montagem do registro.
type AdInsight struct {
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Clicks       string   `json:"clicks"`
	CTR          string   `json:"ctr"`
	CPC          string   `json:"cpc"`
	CPM          string   `json:"cpm"`
	Actions      []Action `json:"actions,omitempty"`
	PurchaseROAS []Action `json:"purchase_roas,omitempty"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// GetROAS extrai o retorno sobre investimento em anúncios do breakdown
// purchase_roas; ausência vale zero.
func (i *AdInsight) GetROAS() float64 {
	for _, action := range i.PurchaseROAS {
		if action.ActionType == "omni_purchase" || action.ActionType == "purchase" {
			return parseFloat(action.Value, "purchase_roas")
		}
	}
	return 0
}

// GetActions converte o breakdown de ações para um mapa tipo de ação -> valor
func (i *AdInsight) GetActions() map[string]float64 {
	if len(i.Actions) == 0 {
		return nil
	}

	actions := make(map[string]float64, len(i.Actions))
	for _, action := range i.Actions {
		actions[action.ActionType] = parseFloat(action.Value, action.ActionType)
	}
	return actions
}

func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("insights: erro ao converter valor numérico")
		return 0
	}
	return f
}

func parseInt(value, field string) int {
	if value == "" {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("insights: erro ao converter valor inteiro")
		return 0
	}
	return n
}

// Getters numéricos usados na montagem do MetricRecord
func (i *AdInsight) GetSpend() float64    { return parseFloat(i.Spend, "spend") }
func (i *AdInsight) GetImpressions() int  { return parseInt(i.Impressions, "impressions") }
func (i *AdInsight) GetReach() int        { return parseInt(i.Reach, "reach") }
func (i *AdInsight) GetClicks() int       { return parseInt(i.Clicks, "clicks") }
func (i *AdInsight) GetCTR() float64      { return parseFloat(i.CTR, "ctr") }
func (i *AdInsight) GetCPC() float64      { return parseFloat(i.CPC, "cpc") }
func (i *AdInsight) GetCPM() float64      { return parseFloat(i.CPM, "cpm") }
