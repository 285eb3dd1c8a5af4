package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraudlens/console/internal/application/dto"
	"github.com/fraudlens/console/internal/application/service"
	"github.com/fraudlens/console/internal/infrastructure/monitoring"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/internal/interfaces/http/ui"
	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
)

// AccountHandler serves the end-user console shell and its endpoints.
type AccountHandler struct {
	account      service.AccountService
	renderer     *view.Renderer
	sessions     session.Store
	metrics      *monitoring.Metrics
	cookieSecure bool
}

// NewAccountHandler builds the end-user endpoints.
func NewAccountHandler(account service.AccountService, renderer *view.Renderer,
	sessions session.Store, metrics *monitoring.Metrics, cookieSecure bool) *AccountHandler {
	return &AccountHandler{
		account:      account,
		renderer:     renderer,
		sessions:     sessions,
		metrics:      metrics,
		cookieSecure: cookieSecure,
	}
}

func (h *AccountHandler) fail(c *gin.Context, page string, err error) {
	h.metrics.RecordPageLoad(page, "error")
	if errors.IsUnauthorized(err) {
		if sess := SessionFrom(c); sess != nil {
			_ = h.sessions.Delete(c.Request.Context(), sess.ID)
		}
		clearSessionCookie(c, h.cookieSecure)
	}
	dto.SendError(c, err)
}

// Shell serves the account page shell. A ?page= deep link resolves through
// the page registry; unknown ids land on the dashboard.
func (h *AccountHandler) Shell(c *gin.Context) {
	active := view.NewAccountPages().Activate(constants.PageID(c.Query("page")))
	c.Data(http.StatusOK, "text/html; charset=utf-8", ui.WithInitialPage(ui.AccountPage, active.ID))
}

// profileView is the stats slice of the dashboard response.
type profileView struct {
	TrustScore   float64 `json:"trust_score"`
	TrustColor   string  `json:"trust_color"`
	AvgAmount    float64 `json:"avg_amount"`
	AvgRisk      float64 `json:"avg_risk"`
	HighRiskTxns int     `json:"high_risk_txns"`
	TotalTxns    int     `json:"total_txns"`
}

// Dashboard backs the combined dashboard load: profile stats, balance, the
// trend chart and the two recent-activity tables. Sections that failed
// upstream arrive as placeholders; only a summary failure carries a notice.
func (h *AccountHandler) Dashboard(c *gin.Context) {
	sess := SessionFrom(c)

	data, err := h.account.Dashboard(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, "dashboard", err)
		return
	}

	txnHTML, err := h.renderer.RecentTransactions(data.Transactions)
	if err != nil {
		h.fail(c, "dashboard", err)
		return
	}
	alertHTML, err := h.renderer.RecentAlerts(data.Alerts)
	if err != nil {
		h.fail(c, "dashboard", err)
		return
	}

	var profile *profileView
	if data.Profile != nil {
		trust := clamp(deref(data.Profile.TrustScore), 0, 100)
		profile = &profileView{
			TrustScore:   trust,
			TrustColor:   view.TrustColor(trust),
			AvgAmount:    deref(data.Profile.AmountStats.Avg),
			AvgRisk:      deref(data.Profile.RiskStats.AvgRiskScore),
			HighRiskTxns: data.Profile.RiskStats.HighRiskTxnCount,
			TotalTxns:    data.Profile.RiskStats.TotalTxnCount,
		}
	}

	charts := view.NewChartSet()
	if len(data.TrendDays) > 0 {
		charts.Attach("riskTrend", trustTrendChart(data.TrendDays))
	}

	h.metrics.RecordPageLoad("dashboard", "ok")
	dto.SendSuccess(c, gin.H{
		"profile": profile,
		"balance": data.Balance,
		"charts":  charts.Payloads(),
		"html": gin.H{
			"transactions": txnHTML,
			"alerts":       alertHTML,
		},
	}, data.Notices...)
}

// SubmitTransaction scores a new transaction and returns the result card.
func (h *AccountHandler) SubmitTransaction(c *gin.Context) {
	sess := SessionFrom(c)

	var input service.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		dto.SendError(c, errors.Validation("Invalid transaction form"))
		return
	}

	result, err := h.account.SubmitTransaction(c.Request.Context(), sess.Token, sess.User.UserID, input)
	if err != nil {
		h.fail(c, "new-transaction", err)
		return
	}

	html, err := h.renderer.ResultCard(result)
	if err != nil {
		h.fail(c, "new-transaction", err)
		return
	}

	h.metrics.RecordPageLoad("new-transaction", "ok")
	dto.SendSuccess(c, gin.H{
		"html":   html,
		"txn_id": result.TxnID,
		"scores": result.MLScores,
	}, view.SuccessNotice("Transaction processed successfully!"))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
