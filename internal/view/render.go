package view

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/fraudlens/console/internal/domain/models"
)

const dash = "—"

// Renderer turns backend data into HTML table bodies and panels that the
// shell script swaps into the page. Every fragment renders something for
// every input: empty collections produce exactly one placeholder row, nil
// numerics render as a dash or zero, and unknown enum values fall back to
// default badge classes.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses the fragment templates. Parsing happens once at
// startup; a template error here is a programming error.
func NewRenderer() *Renderer {
	return &Renderer{t: template.Must(template.New("fragments").Parse(fragmentTemplates))}
}

func (r *Renderer) render(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// placeholderRow is the single row shown for an empty collection.
func placeholderRow(colspan int, text string) template.HTML {
	return template.HTML(fmt.Sprintf(`<tr><td colspan="%d" class="loading">%s</td></tr>`,
		colspan, template.HTMLEscapeString(text)))
}

// userRow is the precomputed view model for one user listing row.
type userRow struct {
	Code        string
	Name        string
	Email       string
	Role        string
	RoleBadge   string
	Status      string
	StatusBadge string
	Created     string
	IntelKey    string
}

type usersTableData struct {
	Admins []userRow
	Others []userRow
}

func newUserRow(u models.User) userRow {
	roleBadge := "badge-low"
	if u.Role == "admin" {
		roleBadge = "badge-high"
	}
	created := dash
	if !u.CreatedAt.IsZero() {
		created = u.CreatedAt.Format("Jan 2, 2006")
	}
	return userRow{
		Code:        orDash(u.UserCode),
		Name:        orDash(u.Name),
		Email:       u.Email,
		Role:        u.Role,
		RoleBadge:   roleBadge,
		Status:      u.Status,
		StatusBadge: StatusBadgeClass(u.Status),
		Created:     created,
		IntelKey:    u.IntelKey(),
	}
}

// UsersTable renders the admin user listing grouped with admins first.
func (r *Renderer) UsersTable(users []models.User) (template.HTML, error) {
	if len(users) == 0 {
		return placeholderRow(7, "No users found"), nil
	}
	var data usersTableData
	for _, u := range users {
		if u.Role == "admin" {
			data.Admins = append(data.Admins, newUserRow(u))
		} else {
			data.Others = append(data.Others, newUserRow(u))
		}
	}
	return r.render("users_table", data)
}

type alertRow struct {
	AlertID     string
	UserID      string
	RiskLevel   string
	RiskBadge   string
	Score       string
	Status      string
	StatusBadge string
	Created     string
	Open        bool
}

func newAlertRow(a models.Alert) alertRow {
	level := a.RiskLevel
	if level == "" {
		level = "low"
	}
	status := a.Status
	if status == "" {
		status = "open"
	}
	return alertRow{
		AlertID:     orDash(a.AlertID),
		UserID:      orDash(a.UserID),
		RiskLevel:   level,
		RiskBadge:   RiskBadgeClass(level),
		Score:       score1(a.FinalRiskScore),
		Status:      status,
		StatusBadge: StatusBadgeClass(status),
		Created:     flexDateTime(a.CreatedAt),
		Open:        a.IsOpen(),
	}
}

// AlertsTable renders the admin alert queue. Open alerts get a Resolve
// button; anything else shows a static resolved marker.
func (r *Renderer) AlertsTable(alerts []models.Alert) (template.HTML, error) {
	if len(alerts) == 0 {
		return placeholderRow(7, "No alerts found"), nil
	}
	rows := make([]alertRow, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, newAlertRow(a))
	}
	return r.render("alerts_table", rows)
}

type txnRow struct {
	TxnID     string
	Type      string
	Amount    string
	Channel   string
	RiskLevel string
	RiskBadge string
	When      string
}

func newTxnRow(t models.Transaction) txnRow {
	level := t.RiskLevel
	if level == "" {
		level = "low"
	}
	typ := strings.ToLower(t.TxnType)
	if typ == "" {
		typ = "withdraw"
	}
	return txnRow{
		TxnID:     orDash(t.TxnID),
		Type:      capitalize(typ),
		Amount:    money(t.Amount),
		Channel:   orDash(t.Channel),
		RiskLevel: level,
		RiskBadge: RiskBadgeClass(level),
		When:      flexDateTime(t.Timestamp),
	}
}

// RecentTransactions renders the end-user transaction history table body.
func (r *Renderer) RecentTransactions(txns []models.Transaction) (template.HTML, error) {
	if len(txns) == 0 {
		return placeholderRow(6, "No transactions yet"), nil
	}
	rows := make([]txnRow, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, newTxnRow(t))
	}
	return r.render("recent_txns", rows)
}

// RecentAlerts renders the end-user alert table body.
func (r *Renderer) RecentAlerts(alerts []models.Alert) (template.HTML, error) {
	if len(alerts) == 0 {
		return placeholderRow(5, "No alerts yet"), nil
	}
	rows := make([]alertRow, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, newAlertRow(a))
	}
	return r.render("recent_alerts", rows)
}

type resultCardData struct {
	RiskScore  string
	RiskLevel  string
	RiskColor  string
	FraudProb  string
	Anomaly    string
	TrustScore string
}

// ResultCard renders the scoring result shown after a transaction submission.
func (r *Renderer) ResultCard(result *models.ScoreResult) (template.HTML, error) {
	scores := models.MLScores{}
	if result != nil {
		scores = result.MLScores
	}
	level := scores.RiskLevel
	if level == "" {
		level = "low"
	}
	return r.render("result_card", resultCardData{
		RiskScore:  score1OrZero(scores.FinalRiskScore),
		RiskLevel:  level,
		RiskColor:  RiskLevelColor(level),
		FraudProb:  score1OrZero(scores.FraudProbability),
		Anomaly:    score1OrZero(scores.AnomalyScore),
		TrustScore: score1OrZero(scores.TrustScore),
	})
}

type intelProfileData struct {
	HasProfile bool
	TrustScore string
	TrustColor string
	AvgAmount  string
	AvgRisk    string
	HighRisk   int
	TotalTxns  int
}

type intelSectionList struct {
	ID        string
	RiskColor string
	Status    string
	Badge     string
	Lines     []string
}

type intelAnalysisData struct {
	HasAny        bool
	Behaviour     *models.BehaviourSummary
	Speculation   *models.SpeculationSummary
	SpecScore     string
	Investigation *models.InvestigationSummary
	RatingBadge   string
}

type intelPanelsData struct {
	Profile      intelProfileData
	Analysis     intelAnalysisData
	Transactions []intelSectionList
	Alerts       []intelSectionList
}

// IntelPanels renders the intelligence page panels from one intel report.
// Absent sections render their own placeholder text so a partial report
// still produces a complete page.
func (r *Renderer) IntelPanels(report *models.IntelReport) (template.HTML, error) {
	data := intelPanelsData{}

	if report.Profile != nil {
		p := report.Profile
		data.Profile = intelProfileData{
			HasProfile: true,
			TrustScore: score1Or(p.TrustScore, "N/A"),
			TrustColor: TrustColor(floatOrZero(p.TrustScore)),
			AvgAmount:  "₹" + score2OrZero(p.AmountStats.Avg),
			AvgRisk:    score2OrZero(p.RiskStats.AvgRiskScore),
			HighRisk:   p.RiskStats.HighRiskTxnCount,
			TotalTxns:  p.RiskStats.TotalTxnCount,
		}
	}

	if b, ok := report.Summary.DecodeBehaviour(); ok {
		data.Analysis.Behaviour = &b
		data.Analysis.HasAny = true
	}
	if sp, ok := report.Summary.DecodeSpeculation(); ok {
		data.Analysis.Speculation = &sp
		data.Analysis.SpecScore = "N/A"
		if sp.HasScore {
			data.Analysis.SpecScore = trimFloat(sp.Score)
		}
		data.Analysis.HasAny = true
	}
	if inv, ok := report.Summary.DecodeInvestigation(); ok {
		data.Analysis.Investigation = &inv
		data.Analysis.RatingBadge = RiskBadgeClass(inv.RiskRating)
		data.Analysis.HasAny = true
	}

	for _, t := range capTen(report.RecentTransactions) {
		data.Transactions = append(data.Transactions, intelSectionList{
			ID:        t.TxnID,
			RiskColor: RiskLevelColor(t.RiskLevel),
			Status:    t.RiskLevel,
			Badge:     RiskBadgeClass(t.RiskLevel),
			Lines: []string{
				fmt.Sprintf("Amount: ₹%s %s", score2OrZero(t.Amount), t.Currency),
				fmt.Sprintf("Risk: %s | Fraud Prob: %s", score1(t.FinalRiskScore), score1(t.FraudProbability)),
				flexDateTime(t.Timestamp),
			},
		})
	}

	for _, a := range capTen(report.Alerts) {
		data.Alerts = append(data.Alerts, intelSectionList{
			ID:        a.AlertID,
			RiskColor: RiskLevelColor(a.RiskLevel),
			Status:    a.Status,
			Badge:     StatusBadgeClass(a.Status),
			Lines: []string{
				"Risk Level: " + a.RiskLevel,
				"Score: " + score1(a.FinalRiskScore),
				flexDateTime(a.CreatedAt),
			},
		})
	}

	return r.render("intel_panels", data)
}

func capTen[T any](items []T) []T {
	if len(items) > 10 {
		return items[:10]
	}
	return items
}

// Formatting helpers. Nil pointers never panic: identity fields render as a
// dash, scores as zero.

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orDash(s string) string {
	if s == "" {
		return dash
	}
	return s
}

func money(v *float64) string {
	if v == nil {
		return dash
	}
	return fmt.Sprintf("₹%.2f", *v)
}

func score1(v *float64) string {
	if v == nil {
		return dash
	}
	return fmt.Sprintf("%.1f", *v)
}

func score1Or(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprintf("%.1f", *v)
}

func score1OrZero(v *float64) string {
	if v == nil {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", *v)
}

func score2OrZero(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", *v)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}

func flexDateTime(t models.FlexTime) string {
	if t.IsZero() {
		return dash
	}
	return t.Format("Jan 2, 2006 15:04")
}

const fragmentTemplates = `
{{define "user_row"}}
<tr>
    <td>{{.Code}}</td>
    <td>{{.Name}}</td>
    <td>{{.Email}}</td>
    <td><span class="badge-status {{.RoleBadge}}">{{.Role}}</span></td>
    <td><span class="badge-status {{.StatusBadge}}">{{.Status}}</span></td>
    <td>{{.Created}}</td>
    <td><button class="btn-action btn-view" data-intel-key="{{.IntelKey}}">View Intel</button></td>
</tr>
{{end}}

{{define "users_table"}}
{{- if .Admins}}
<tr class="users-section-row"><td colspan="7">Admins</td></tr>
{{- range .Admins}}{{template "user_row" .}}{{end}}
{{- end}}
{{- if .Others}}
<tr class="users-section-row"><td colspan="7">Users</td></tr>
{{- range .Others}}{{template "user_row" .}}{{end}}
{{- end}}
{{end}}

{{define "alerts_table"}}
{{- range .}}
<tr>
    <td>{{.AlertID}}</td>
    <td>{{.UserID}}</td>
    <td><span class="badge-status {{.RiskBadge}}">{{.RiskLevel}}</span></td>
    <td>{{.Score}}</td>
    <td><span class="badge-status {{.StatusBadge}}">{{.Status}}</span></td>
    <td>{{.Created}}</td>
    <td>
        {{- if .Open}}
        <button class="btn-action btn-resolve" data-alert-id="{{.AlertID}}">Resolve</button>
        {{- else}}
        <span class="resolved-marker">Resolved</span>
        {{- end}}
    </td>
</tr>
{{- end}}
{{end}}

{{define "recent_txns"}}
{{- range .}}
<tr>
    <td>{{.TxnID}}</td>
    <td><span class="txn-type">{{.Type}}</span></td>
    <td>{{.Amount}}</td>
    <td>{{.Channel}}</td>
    <td><span class="badge-status {{.RiskBadge}}">{{.RiskLevel}}</span></td>
    <td>{{.When}}</td>
</tr>
{{- end}}
{{end}}

{{define "recent_alerts"}}
{{- range .}}
<tr>
    <td>{{.AlertID}}</td>
    <td><span class="badge-status {{.RiskBadge}}">{{.RiskLevel}}</span></td>
    <td>{{.Score}}</td>
    <td><span class="badge-status {{.StatusBadge}}">{{.Status}}</span></td>
    <td>{{.Created}}</td>
</tr>
{{- end}}
{{end}}

{{define "result_card"}}
<div class="result-grid">
    <div class="result-headline" style="border-color: {{.RiskColor}};">
        <h3 style="color: {{.RiskColor}};">{{.RiskScore}}</h3>
        <p class="result-caption">Risk Score</p>
        <p><span class="result-level" style="background: {{.RiskColor}};">{{.RiskLevel}}</span></p>
    </div>
    <div class="result-metrics">
        <div class="result-metric"><p class="metric-label">Fraud Probability</p><p class="metric-value">{{.FraudProb}}%</p></div>
        <div class="result-metric"><p class="metric-label">Anomaly Score</p><p class="metric-value">{{.Anomaly}}</p></div>
        <div class="result-metric"><p class="metric-label">Trust Score</p><p class="metric-value">{{.TrustScore}}</p></div>
    </div>
</div>
{{end}}

{{define "intel_panels"}}
<div id="intelProfile" class="intel-panel">
{{- if .Profile.HasProfile}}
    <div class="profile-grid">
        <div class="profile-stat"><span class="stat-label">Trust Score</span><span class="stat-value" style="color: {{.Profile.TrustColor}}">{{.Profile.TrustScore}}</span></div>
        <div class="profile-stat"><span class="stat-label">Avg Amount</span><span class="stat-value">{{.Profile.AvgAmount}}</span></div>
        <div class="profile-stat"><span class="stat-label">Avg Risk</span><span class="stat-value">{{.Profile.AvgRisk}}</span></div>
        <div class="profile-stat"><span class="stat-label">High Risk Txns</span><span class="stat-value">{{.Profile.HighRisk}}</span></div>
        <div class="profile-stat"><span class="stat-label">Total Transactions</span><span class="stat-value">{{.Profile.TotalTxns}}</span></div>
    </div>
{{- else}}
    <p class="panel-empty">No profile data available</p>
{{- end}}
</div>
<div id="intelAiAnalysis" class="intel-panel">
{{- if .Analysis.HasAny}}
    {{- with .Analysis.Behaviour}}
    <div class="ai-section">
        <h5 class="ai-heading ai-behaviour">Behavior Analysis</h5>
        <p><strong>Verdict:</strong> {{.Verdict}}</p>
        <p class="ai-body">{{.Summary}}</p>
        {{- if .KeyPatterns}}
        <ul>{{range .KeyPatterns}}<li>{{.}}</li>{{end}}</ul>
        {{- end}}
    </div>
    {{- end}}
    {{- with .Analysis.Speculation}}
    <div class="ai-section">
        <h5 class="ai-heading ai-speculation">Speculation Score</h5>
        <p class="ai-score">{{$.Analysis.SpecScore}}/100</p>
        <p class="ai-body">{{.Explanation}}</p>
        {{- if .Indicators}}
        <ul>{{range .Indicators}}<li>{{.}}</li>{{end}}</ul>
        {{- end}}
    </div>
    {{- end}}
    {{- with .Analysis.Investigation}}
    <div class="ai-section">
        <h5 class="ai-heading ai-investigation">Investigation Case File</h5>
        <p class="ai-body">{{.ExecutiveSummary}}</p>
        <p><strong>Risk Rating:</strong> <span class="badge-status {{$.Analysis.RatingBadge}}">{{.RiskRating}}</span></p>
        <p><strong>Recommended Action:</strong> {{.RecommendedAction}}</p>
    </div>
    {{- end}}
{{- else}}
    <p class="panel-empty">No AI analysis available</p>
{{- end}}
</div>
<div id="intelTransactions" class="intel-panel">
{{- if .Transactions}}
    <div class="intel-list">
    {{- range .Transactions}}
        <div class="intel-item" style="border-left-color: {{.RiskColor}};">
            <div class="intel-item-head"><span class="intel-item-id">{{.ID}}</span><span class="badge-status {{.Badge}}">{{.Status}}</span></div>
            <div class="intel-item-body">{{range .Lines}}<p>{{.}}</p>{{end}}</div>
        </div>
    {{- end}}
    </div>
{{- else}}
    <p class="panel-empty">No recent transactions</p>
{{- end}}
</div>
<div id="intelAlerts" class="intel-panel">
{{- if .Alerts}}
    <div class="intel-list">
    {{- range .Alerts}}
        <div class="intel-item" style="border-left-color: {{.RiskColor}};">
            <div class="intel-item-head"><span class="intel-item-id">{{.ID}}</span><span class="badge-status {{.Badge}}">{{.Status}}</span></div>
            <div class="intel-item-body">{{range .Lines}}<p>{{.}}</p>{{end}}</div>
        </div>
    {{- end}}
    </div>
{{- else}}
    <p class="panel-empty">No recent alerts</p>
{{- end}}
</div>
{{end}}
`
