package domain

import (
	"time"
)

// EntityMetric é o desempenho diário de uma entidade de anúncio. A tupla
// (EntityType, EntityID, Date) é única no banco: gravações repetidas do mesmo
// dia sobrescrevem em vez de duplicar.
type EntityMetric struct {
	EntityID        string     `json:"entity_id"`
	EntityType      EntityType `json:"entity_type"`
	Date            time.Time  `json:"date"`
	Impressions     int64      `json:"impressions"`
	Clicks          int64      `json:"clicks"`
	Spend           float64    `json:"spend"`
	Reach           int64      `json:"reach"`
	Conversions     float64    `json:"conversions"`
	ConversionValue float64    `json:"conversion_value"`
	CPC             float64    `json:"cpc"`
	CPM             float64    `json:"cpm"`
	CTR             float64    `json:"ctr"`
	ROAS            float64    `json:"roas"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ComputeDerived recalcula as métricas derivadas a partir dos contadores
// brutos. Divisões por zero resultam em zero, nunca em NaN.
func (m *EntityMetric) ComputeDerived() {
	m.CPC = 0
	m.CPM = 0
	m.CTR = 0
	m.ROAS = 0

	if m.Clicks > 0 {
		m.CPC = m.Spend / float64(m.Clicks)
	}

	if m.Impressions > 0 {
		m.CPM = (m.Spend / float64(m.Impressions)) * 1000
		m.CTR = (float64(m.Clicks) / float64(m.Impressions)) * 100
	}

	if m.Spend > 0 {
		m.ROAS = m.ConversionValue / m.Spend
	}
}
