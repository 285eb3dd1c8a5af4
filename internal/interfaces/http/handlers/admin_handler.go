package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fraudlens/console/internal/application/dto"
	"github.com/fraudlens/console/internal/application/service"
	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/infrastructure/monitoring"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/internal/interfaces/http/ui"
	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
)

// AdminHandler serves the admin console shell and its fragments.
type AdminHandler struct {
	admin        service.AdminService
	auth         service.AuthService
	renderer     *view.Renderer
	sessions     session.Store
	metrics      *monitoring.Metrics
	cookieSecure bool
}

// NewAdminHandler builds the admin endpoints.
func NewAdminHandler(admin service.AdminService, auth service.AuthService, renderer *view.Renderer,
	sessions session.Store, metrics *monitoring.Metrics, cookieSecure bool) *AdminHandler {
	return &AdminHandler{
		admin:        admin,
		auth:         auth,
		renderer:     renderer,
		sessions:     sessions,
		metrics:      metrics,
		cookieSecure: cookieSecure,
	}
}

// fail sends the error envelope. A terminal auth failure also tears the
// session down so the next page request lands on login instead of looping.
func (h *AdminHandler) fail(c *gin.Context, page string, err error) {
	h.metrics.RecordPageLoad(page, "error")
	if errors.IsUnauthorized(err) {
		if sess := SessionFrom(c); sess != nil {
			_ = h.sessions.Delete(c.Request.Context(), sess.ID)
		}
		clearSessionCookie(c, h.cookieSecure)
	}
	dto.SendError(c, err)
}

// Shell serves the admin page shell. A ?page= deep link resolves through the
// page registry; unknown ids land on the overview.
func (h *AdminHandler) Shell(c *gin.Context) {
	active := view.NewAdminPages().Activate(constants.PageID(c.Query("page")))
	c.Data(http.StatusOK, "text/html; charset=utf-8", ui.WithInitialPage(ui.AdminPage, active.ID))
}

// Overview backs the overview page: headline stats plus the trend and
// distribution charts.
func (h *AdminHandler) Overview(c *gin.Context) {
	sess := SessionFrom(c)
	data, err := h.admin.Overview(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, "overview", err)
		return
	}

	charts := view.NewChartSet()
	if len(data.TrendDays) > 0 {
		charts.Attach("riskTrend", globalTrendChart(data.TrendDays))
		charts.Attach("riskDistribution", distributionChart(data.Distribution))
	}

	h.metrics.RecordPageLoad("overview", "ok")
	dto.SendSuccess(c, gin.H{
		"total_users":    data.TotalUsers,
		"open_alerts":    data.OpenAlerts,
		"txns_today":     data.TxnsToday,
		"avg_risk_today": data.AvgRiskToday,
		"charts":         charts.Payloads(),
	}, data.Notices...)
}

// Users backs the user listing, with optional backend search via ?q=.
func (h *AdminHandler) Users(c *gin.Context) {
	sess := SessionFrom(c)
	users, err := h.admin.Users(c.Request.Context(), sess.Token, c.Query("q"))
	if err != nil {
		h.fail(c, "users", err)
		return
	}

	html, err := h.renderer.UsersTable(users)
	if err != nil {
		h.fail(c, "users", err)
		return
	}

	h.metrics.RecordPageLoad("users", "ok")
	dto.SendSuccess(c, dto.FragmentResult{HTML: html})
}

// Analytics backs the analytics page: hotspot markers plus the global trend,
// transaction volume and fraud trend charts for the requested window.
func (h *AdminHandler) Analytics(c *gin.Context) {
	sess := SessionFrom(c)
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	data, err := h.admin.Analytics(c.Request.Context(), sess.Token, days)
	if err != nil {
		h.fail(c, "analytics", err)
		return
	}

	charts := view.NewChartSet()
	if len(data.TrendDays) > 0 {
		charts.Attach("globalTrend", globalTrendChart(data.TrendDays))
		charts.Attach("volume", volumeChart(data.TrendDays))
		charts.Attach("fraudTrend", fraudTrendChart(data.TrendDays))
	}

	h.metrics.RecordPageLoad("analytics", "ok")
	dto.SendSuccess(c, gin.H{
		"points": hotspotViews(data.Points),
		"charts": charts.Payloads(),
	}, data.Notices...)
}

// Alerts backs the alert queue, filtered by ?status=.
func (h *AdminHandler) Alerts(c *gin.Context) {
	sess := SessionFrom(c)
	alerts, err := h.admin.Alerts(c.Request.Context(), sess.Token, c.DefaultQuery("status", "all"))
	if err != nil {
		h.fail(c, "alerts", err)
		return
	}

	html, err := h.renderer.AlertsTable(alerts)
	if err != nil {
		h.fail(c, "alerts", err)
		return
	}

	open := 0
	for _, a := range alerts {
		if a.IsOpen() {
			open++
		}
	}

	h.metrics.RecordPageLoad("alerts", "ok")
	dto.SendSuccess(c, gin.H{
		"html":       html,
		"open_count": open,
	})
}

// ResolveAlert updates one alert from the resolve modal.
func (h *AdminHandler) ResolveAlert(c *gin.Context) {
	sess := SessionFrom(c)

	var req models.ResolveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.Validation("Status is required"))
		return
	}

	if err := h.admin.ResolveAlert(c.Request.Context(), sess.Token, c.Param("id"), req); err != nil {
		h.fail(c, "alerts", err)
		return
	}
	dto.SendSuccess(c, gin.H{}, view.SuccessNotice("Alert resolved successfully"))
}

// Intel runs an intelligence lookup and returns the rendered panels plus the
// per-user trend chart.
func (h *AdminHandler) Intel(c *gin.Context) {
	sess := SessionFrom(c)

	var req models.IntelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.Validation("Please enter a User ID"))
		return
	}

	report, err := h.admin.Intel(c.Request.Context(), sess.Token, req.UserID)
	if err != nil {
		h.fail(c, "intelligence", err)
		return
	}

	html, err := h.renderer.IntelPanels(report)
	if err != nil {
		h.fail(c, "intelligence", err)
		return
	}

	charts := view.NewChartSet()
	if len(report.Trend30D) > 0 {
		charts.Attach("intelRisk", trustTrendChart(report.Trend30D))
	}

	h.metrics.RecordPageLoad("intelligence", "ok")
	dto.SendSuccess(c, dto.FragmentResult{HTML: html, Charts: charts.Payloads()})
}

// CreateUser registers a user from the admin form.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	sess := SessionFrom(c)

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.Validation("Name, email and password are required"))
		return
	}

	result, err := h.auth.CreateUser(c.Request.Context(), sess.Token, req)
	if err != nil {
		h.fail(c, "users", err)
		return
	}

	name := result.Name
	if name == "" {
		name = result.Email
	}
	code := result.UserCode
	if code == "" {
		code = "user"
	}
	dto.SendSuccess(c, result,
		view.SuccessNotice(fmt.Sprintf("User %s (%s) created successfully", name, code)))
}
