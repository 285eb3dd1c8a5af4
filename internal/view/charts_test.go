package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartSetAttachReplaces(t *testing.T) {
	cs := NewChartSet()

	first := ChartPayload{Kind: "line", Labels: []string{"2026-08-01"}}
	second := ChartPayload{Kind: "line", Labels: []string{"2026-08-01", "2026-08-02"}}

	cs.Attach("riskTrend", first)
	cs.Attach("riskTrend", second)

	got, ok := cs.Get("riskTrend")
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Len(t, cs.Slots(), 1)
}

func TestChartSetSlotOrder(t *testing.T) {
	cs := NewChartSet()
	cs.Attach("riskTrend", ChartPayload{Kind: "line"})
	cs.Attach("riskDistribution", ChartPayload{Kind: "doughnut"})
	cs.Attach("riskTrend", ChartPayload{Kind: "line", Labels: []string{"x"}})

	assert.Equal(t, []string{"riskTrend", "riskDistribution"}, cs.Slots())
}

func TestChartSetMissingSlot(t *testing.T) {
	cs := NewChartSet()
	_, ok := cs.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, cs.Payloads())
}
