package handlers

import (
	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/constants"
)

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// globalTrendChart is the admin trend line: average risk and fraud
// probability per day.
func globalTrendChart(days []models.TrendDay) view.ChartPayload {
	labels := make([]string, 0, len(days))
	risk := make([]float64, 0, len(days))
	fraud := make([]float64, 0, len(days))
	for _, d := range days {
		labels = append(labels, d.Date)
		risk = append(risk, d.AvgRisk)
		fraud = append(fraud, d.AvgFraudProbability)
	}
	return view.ChartPayload{
		Kind:   "line",
		Labels: labels,
		Series: []view.ChartSeries{
			{Label: "Avg Risk Score", Values: risk},
			{Label: "Avg Fraud Probability", Values: fraud},
		},
	}
}

// volumeChart is the analytics bar of transactions per day.
func volumeChart(days []models.TrendDay) view.ChartPayload {
	labels := make([]string, 0, len(days))
	counts := make([]float64, 0, len(days))
	for _, d := range days {
		labels = append(labels, d.Date)
		counts = append(counts, float64(d.TotalTxns))
	}
	return view.ChartPayload{
		Kind:   "bar",
		Labels: labels,
		Series: []view.ChartSeries{
			{Label: "Transaction Volume", Values: counts},
		},
	}
}

// fraudTrendChart pairs the fraud probability with the high-risk event count
// per day.
func fraudTrendChart(days []models.TrendDay) view.ChartPayload {
	labels := make([]string, 0, len(days))
	fraud := make([]float64, 0, len(days))
	events := make([]float64, 0, len(days))
	for _, d := range days {
		labels = append(labels, d.Date)
		fraud = append(fraud, d.AvgFraudProbability)
		events = append(events, float64(d.HighRiskEvents))
	}
	return view.ChartPayload{
		Kind:   "line",
		Labels: labels,
		Series: []view.ChartSeries{
			{Label: "Avg Fraud Probability", Values: fraud},
			{Label: "High Risk Events", Values: events},
		},
	}
}

// trustTrendChart is the per-user trend line: average risk against trust.
func trustTrendChart(days []models.TrendDay) view.ChartPayload {
	labels := make([]string, 0, len(days))
	risk := make([]float64, 0, len(days))
	trust := make([]float64, 0, len(days))
	for _, d := range days {
		labels = append(labels, d.Date)
		risk = append(risk, d.AvgRisk)
		trust = append(trust, deref(d.TrustScore))
	}
	return view.ChartPayload{
		Kind:   "line",
		Labels: labels,
		Series: []view.ChartSeries{
			{Label: "Avg Risk", Values: risk},
			{Label: "Trust Score", Values: trust},
		},
	}
}

// distributionChart is the overview doughnut of trend days per risk bucket.
func distributionChart(dist map[constants.RiskLevel]int) view.ChartPayload {
	return view.ChartPayload{
		Kind:   "doughnut",
		Labels: []string{"Low", "Medium", "High", "Critical"},
		Series: []view.ChartSeries{{
			Label: "Days",
			Values: []float64{
				float64(dist[constants.RiskLow]),
				float64(dist[constants.RiskMedium]),
				float64(dist[constants.RiskHigh]),
				float64(dist[constants.RiskCritical]),
			},
		}},
	}
}

// hotspotView is one map marker, precolored and presized for the shell's map
// runtime.
type hotspotView struct {
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Label         string  `json:"label"`
	Color         string  `json:"color"`
	Radius        float64 `json:"radius"`
	TxnCount      int     `json:"txn_count"`
	AvgRisk       float64 `json:"avg_risk"`
	HighRiskCount int     `json:"high_risk_count"`
}

func hotspotViews(points []models.HotspotPoint) []hotspotView {
	out := make([]hotspotView, 0, len(points))
	for _, p := range points {
		out = append(out, hotspotView{
			Lat:           p.Lat,
			Lon:           p.Lon,
			Label:         p.Label(),
			Color:         view.HotspotColor(p.AvgRisk),
			Radius:        view.HotspotRadius(p.TxnCount),
			TxnCount:      p.TxnCount,
			AvgRisk:       p.AvgRisk,
			HighRiskCount: p.HighRiskCount,
		})
	}
	return out
}
