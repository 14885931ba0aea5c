package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntityMetricComputeDerived(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		metric   EntityMetric
		expected EntityMetric
	}{
		{
			name: "ROAS é conversion_value dividido por spend",
			metric: EntityMetric{
				EntityID:        "987",
				EntityType:      EntityTypeAd,
				Date:            day,
				Impressions:     1000,
				Clicks:          50,
				Spend:           10,
				ConversionValue: 20,
			},
			expected: EntityMetric{CPC: 0.2, CPM: 10, CTR: 5, ROAS: 2.0},
		},
		{
			name: "Spend zero resulta em ROAS zero, nunca NaN",
			metric: EntityMetric{
				EntityID:        "987",
				EntityType:      EntityTypeAd,
				Date:            day.AddDate(0, 0, 1),
				Spend:           0,
				ConversionValue: 0,
			},
			expected: EntityMetric{CPC: 0, CPM: 0, CTR: 0, ROAS: 0},
		},
		{
			name: "Spend sem conversões resulta em ROAS zero",
			metric: EntityMetric{
				EntityID:        "987",
				EntityType:      EntityTypeAd,
				Date:            day.AddDate(0, 0, 2),
				Impressions:     200,
				Clicks:          10,
				Spend:           5,
				ConversionValue: 0,
			},
			expected: EntityMetric{CPC: 0.5, CPM: 25, CTR: 5, ROAS: 0},
		},
		{
			name: "Recalcular sobrescreve valores derivados anteriores",
			metric: EntityMetric{
				EntityID:   "987",
				EntityType: EntityTypeAd,
				Date:       day,
				CPC:        9,
				CPM:        9,
				CTR:        9,
				ROAS:       9,
			},
			expected: EntityMetric{CPC: 0, CPM: 0, CTR: 0, ROAS: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.metric.ComputeDerived()

			assert.InDelta(t, tt.expected.CPC, tt.metric.CPC, 0.0001)
			assert.InDelta(t, tt.expected.CPM, tt.metric.CPM, 0.0001)
			assert.InDelta(t, tt.expected.CTR, tt.metric.CTR, 0.0001)
			assert.InDelta(t, tt.expected.ROAS, tt.metric.ROAS, 0.0001)
		})
	}
}

func TestPlatformCredentialIsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		credential PlatformCredential
		expected   bool
	}{
		{
			name:       "Credencial com expiração futura é válida",
			credential: PlatformCredential{ExpiresAt: now.Add(24 * time.Hour)},
			expected:   false,
		},
		{
			name:       "Credencial expirada é inutilizável",
			credential: PlatformCredential{ExpiresAt: now.Add(-time.Minute)},
			expected:   true,
		},
		{
			name:       "Credencial sem expiração nunca expira",
			credential: PlatformCredential{},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.credential.IsExpired(now))
		})
	}
}
