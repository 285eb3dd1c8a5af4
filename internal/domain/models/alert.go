package models

// Alert is a risk alert raised by the backend for a user.
type Alert struct {
	AlertID        string   `json:"alert_id"`
	UserID         string   `json:"user_id"`
	RiskLevel      string   `json:"risk_level"`
	FinalRiskScore *float64 `json:"final_risk_score"`
	Status         string   `json:"status"`
	CreatedAt      FlexTime `json:"created_at"`
}

// IsOpen reports whether the alert can still be resolved.
func (a Alert) IsOpen() bool { return a.Status == "open" }

// ResolveAlertRequest is the PATCH body for alert resolution.
type ResolveAlertRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// AlertsResponse is the envelope of GET /api/transactions/me/alerts.
type AlertsResponse struct {
	Success bool    `json:"success"`
	Alerts  []Alert `json:"alerts"`
}
