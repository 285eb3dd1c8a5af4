package models

// TrendDay is one day of aggregated risk metrics, either global
// (admin risk-trend endpoint) or per-user (me/risk-trend, intel trend_30d).
type TrendDay struct {
	Date                string   `json:"date"`
	AvgRisk             float64  `json:"avg_risk"`
	AvgFraudProbability float64  `json:"avg_fraud_probability"`
	TrustScore          *float64 `json:"trust_score"`
	TotalTxns           int      `json:"total_txns"`
	HighRiskEvents      int      `json:"high_risk_events"`
}

// TrendResponse is the envelope of the risk-trend endpoints.
type TrendResponse struct {
	Success bool       `json:"success"`
	Days    []TrendDay `json:"days"`
}

// HotspotPoint is one geographic risk aggregation point.
type HotspotPoint struct {
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	TxnCount      int     `json:"txn_count"`
	AvgRisk       float64 `json:"avg_risk"`
	HighRiskCount int     `json:"high_risk_count"`
}

// Label returns the display name of the hotspot: city when known, country
// otherwise.
func (p HotspotPoint) Label() string {
	if p.City != "" {
		return p.City
	}
	return p.Country
}

// GeoResponse is the envelope of GET /api/admin/geo-hotspots.
type GeoResponse struct {
	Success bool           `json:"success"`
	Points  []HotspotPoint `json:"points"`
}
