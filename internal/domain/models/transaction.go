package models

// Transaction is one scored transaction as returned by history and intel
// endpoints.
type Transaction struct {
	TxnID            string   `json:"txn_id"`
	Amount           *float64 `json:"amount"`
	Currency         string   `json:"currency"`
	Channel          string   `json:"channel"`
	TxnType          string   `json:"txn_type"`
	MerchantType     string   `json:"merchant_type"`
	RiskLevel        string   `json:"risk_level"`
	FinalRiskScore   *float64 `json:"final_risk_score"`
	FraudProbability *float64 `json:"fraud_probability"`
	Timestamp        FlexTime `json:"timestamp"`
}

// HistoryResponse is the envelope of GET /api/transactions/me/history.
type HistoryResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
}

// AmountStats and RiskStats are sub-objects of the behavioural profile.
type AmountStats struct {
	Avg *float64 `json:"avg"`
}

type RiskStats struct {
	AvgRiskScore     *float64 `json:"avg_risk_score"`
	HighRiskTxnCount int      `json:"high_risk_txn_count"`
	TotalTxnCount    int      `json:"total_txn_count"`
}

// RiskProfile is the backend-maintained behavioural profile of a user. The
// trust score in it is computed upstream and only displayed here.
type RiskProfile struct {
	TrustScore  *float64    `json:"trust_score"`
	AmountStats AmountStats `json:"amount_stats"`
	RiskStats   RiskStats   `json:"risk_stats"`
}

// SummaryResponse is the envelope of GET /api/transactions/me/summary.
type SummaryResponse struct {
	Success bool         `json:"success"`
	Profile *RiskProfile `json:"profile"`
	Balance *float64     `json:"balance"`
}

// Location is the optional geographic sub-object of a submitted transaction.
// When present, unset members are explicit nulls; the backend distinguishes
// an absent object from one with null fields.
type Location struct {
	City    *string  `json:"city"`
	Country *string  `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// Device is the optional device sub-object of a submitted transaction.
type Device struct {
	DeviceType *string `json:"device_type"`
	OS         *string `json:"os"`
}

// NewTransaction is the POST /api/transaction/new payload. Location and
// Device are omitted entirely unless at least one constituent field was
// supplied.
type NewTransaction struct {
	UserID       string    `json:"user_id"`
	Amount       float64   `json:"amount"`
	Channel      string    `json:"channel"`
	Currency     string    `json:"currency"`
	MerchantType *string   `json:"merchant_type"`
	Timestamp    string    `json:"timestamp"`
	TxnType      string    `json:"txn_type"`
	Location     *Location `json:"location,omitempty"`
	Device       *Device   `json:"device,omitempty"`
}

// MLScores is the scoring block of a transaction submission response.
type MLScores struct {
	FinalRiskScore   *float64 `json:"final_risk_score"`
	FraudProbability *float64 `json:"fraud_probability"`
	AnomalyScore     *float64 `json:"anomaly_score"`
	TrustScore       *float64 `json:"trust_score"`
	RiskLevel        string   `json:"risk_level"`
}

// ScoreResult is the envelope of POST /api/transaction/new.
type ScoreResult struct {
	Success        bool         `json:"success"`
	Message        string       `json:"message"`
	TxnID          string       `json:"txn_id"`
	MLScores       MLScores     `json:"ml_scores"`
	UpdatedProfile *RiskProfile `json:"updated_profile"`
	RiskAlertID    string       `json:"risk_alert_id"`
}
