package domain

import (
	"fmt"
	"time"
)

// DataSource indica a estratégia de obtenção dos registros do relatório
type DataSource string

const (
	// SourceLive busca os dados diretamente na API do Meta
	SourceLive DataSource = "live"
	// SourceMirror consulta o espelho relacional sincronizado localmente
	SourceMirror DataSource = "mirror"
)

// Presets de janela de datas aceitos pelo ReportSpec
const (
	PresetToday       = "today"
	PresetYesterday   = "yesterday"
	PresetLast7Days   = "last_7d"
	PresetLast30Days  = "last_30d"
	PresetThisMonth   = "this_month"
	PresetLastMonth   = "last_month"
	PresetThisQuarter = "this_quarter"
)

// ReportSpec é a especificação declarativa de um relatório: fonte, janela de
// datas, view customizada, filtros avançados e chave de ordenação. É o único
// contrato serializado do motor — campos ausentes significam "sem restrição"
// e a adição de novos campos não pode mudar o significado de specs antigas.
type ReportSpec struct {
	Source     DataSource `json:"source"`
	AccountIDs []string   `json:"account_ids,omitempty"`

	DatePreset string `json:"date_preset,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`

	CustomView string `json:"custom_view,omitempty"`

	Platform       string   `json:"platform,omitempty"`
	Device         string   `json:"device,omitempty"`
	Country        string   `json:"country,omitempty"`
	AgeBracket     string   `json:"age_bracket,omitempty"`
	Placement      string   `json:"placement,omitempty"`
	CreativeFormat string   `json:"creative_format,omitempty"`
	Objective      string   `json:"objective,omitempty"`
	MinCTR         *float64 `json:"min_ctr,omitempty"`
	MinROAS        *float64 `json:"min_roas,omitempty"`

	SortBy string `json:"sort_by,omitempty"`
}

// DateWindow resolve o preset ou as datas explícitas da spec para um intervalo
// fechado [start, end]. Datas explícitas têm precedência sobre o preset.
func (s *ReportSpec) DateWindow(now time.Time) (time.Time, time.Time, error) {
	if s.StartDate != "" || s.EndDate != "" {
		start, err := time.Parse(time.DateOnly, s.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("data inicial inválida %q: %w", s.StartDate, err)
		}
		end, err := time.Parse(time.DateOnly, s.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("data final inválida %q: %w", s.EndDate, err)
		}
		if start.After(end) {
			return time.Time{}, time.Time{}, fmt.Errorf("a data inicial não pode ser posterior à data final")
		}
		return start, end, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch s.DatePreset {
	case PresetToday, "":
		return today, today, nil
	case PresetYesterday:
		y := today.AddDate(0, 0, -1)
		return y, y, nil
	case PresetLast7Days:
		return today.AddDate(0, 0, -6), today, nil
	case PresetLast30Days:
		return today.AddDate(0, 0, -29), today, nil
	case PresetThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), today, nil
	case PresetLastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfThis.AddDate(0, -1, 0), firstOfThis.AddDate(0, 0, -1), nil
	case PresetThisQuarter:
		quarterMonth := time.Month(((int(now.Month())-1)/3)*3 + 1)
		return time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location()), today, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("preset de datas desconhecido: %q", s.DatePreset)
	}
}

// ageBracket é uma das cinco faixas etárias fixas do filtro avançado.
// O casamento com a segmentação do registro é por interseção de intervalos,
// não por continência.
type ageBracket struct {
	Min int
	Max int
}

var ageBrackets = map[string]ageBracket{
	"18-24": {18, 24},
	"25-34": {25, 34},
	"35-44": {35, 44},
	"45-54": {45, 54},
	"55+":   {55, 120},
}

// AgeBrackets lista as faixas etárias aceitas pelo filtro avançado
func AgeBrackets() []string {
	return []string{"18-24", "25-34", "35-44", "45-54", "55+"}
}
