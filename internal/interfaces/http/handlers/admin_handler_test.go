package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/fraudlens/console/internal/application/dto"
	"github.com/fraudlens/console/internal/application/service"
	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
)

func f64(v float64) *float64 { return &v }

func TestOverviewFragment(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Overview", mock.Anything, sess.Token).Return(&service.OverviewData{
		TotalUsers:   42,
		OpenAlerts:   3,
		TxnsToday:    17,
		AvgRiskToday: 31.5,
		TrendDays: []models.TrendDay{
			{Date: "2026-08-29", AvgRisk: 30, AvgFraudProbability: 0.2},
			{Date: "2026-08-30", AvgRisk: 33, AvgFraudProbability: 0.25},
		},
		Distribution: map[constants.RiskLevel]int{
			constants.RiskLow: 20, constants.RiskMedium: 15,
			constants.RiskHigh: 5, constants.RiskCritical: 2,
		},
	}, nil)

	w := env.do(http.MethodGet, "/admin/fragments/overview", "", withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.EqualValues(t, 42, gjson.Get(body, "data.total_users").Int())
	assert.EqualValues(t, 3, gjson.Get(body, "data.open_alerts").Int())
	assert.InDelta(t, 31.5, gjson.Get(body, "data.avg_risk_today").Float(), 0.001)
	assert.True(t, gjson.Get(body, "data.charts.riskTrend").Exists())
	assert.True(t, gjson.Get(body, "data.charts.riskDistribution").Exists())
}

func TestOverviewWithoutTrendOmitsCharts(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Overview", mock.Anything, sess.Token).Return(&service.OverviewData{
		TotalUsers: 10,
	}, nil)

	w := env.do(http.MethodGet, "/admin/fragments/overview", "", withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, gjson.Get(w.Body.String(), "data.charts.riskTrend").Exists())
}

func TestTerminal401TearsDownSession(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Overview", mock.Anything, sess.Token).Return(nil, errors.ErrUnauthorized)

	w := env.do(http.MethodGet, "/admin/fragments/overview", "", withCookie(sess), asFragment())

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)

	_, err := env.store.Get(context.Background(), sess.ID)
	assert.True(t, errors.IsUnauthorized(err))
}

func TestUsersFragmentPassesQuery(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Users", mock.Anything, sess.Token, "asha").Return([]models.User{
		{UserID: "u-1", UserCode: "CU-100", Name: "Asha R", Email: "asha@example.com",
			Role: "user", Status: "active"},
	}, nil)

	w := env.do(http.MethodGet, "/admin/fragments/users?q=asha", "", withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	html := gjson.Get(w.Body.String(), "data.html").String()
	assert.Contains(t, html, "Asha R")
	assert.Contains(t, html, `data-intel-key="CU-100"`)
	env.admin.AssertExpectations(t)
}

func TestAlertsFragmentCountsOpen(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Alerts", mock.Anything, sess.Token, "open").Return([]models.Alert{
		{AlertID: "al-1", UserID: "u-1", RiskLevel: "high", FinalRiskScore: f64(82.1), Status: "open"},
		{AlertID: "al-2", UserID: "u-2", RiskLevel: "medium", FinalRiskScore: f64(55.0), Status: "closed"},
	}, nil)

	w := env.do(http.MethodGet, "/admin/fragments/alerts?status=open", "", withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.EqualValues(t, 1, gjson.Get(body, "data.open_count").Int())
	assert.Contains(t, gjson.Get(body, "data.html").String(), `data-alert-id="al-1"`)
}

func TestAnalyticsFragmentDefaultsDays(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Analytics", mock.Anything, sess.Token, 30).Return(&service.AnalyticsData{
		Points: []models.HotspotPoint{
			{Lat: 19.07, Lon: 72.87, City: "Mumbai", TxnCount: 120, AvgRisk: 74.0, HighRiskCount: 9},
		},
	}, nil)

	w := env.do(http.MethodGet, "/admin/fragments/analytics", "", withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "Mumbai", gjson.Get(body, "data.points.0.label").String())
	assert.Equal(t, "#ef4444", gjson.Get(body, "data.points.0.color").String())
	env.admin.AssertExpectations(t)
}

func TestAnalyticsFragmentTrendCharts(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Analytics", mock.Anything, sess.Token, 7).Return(&service.AnalyticsData{
		TrendDays: []models.TrendDay{
			{Date: "2026-08-29", AvgRisk: 30, AvgFraudProbability: 0.22, TotalTxns: 140, HighRiskEvents: 4},
			{Date: "2026-08-30", AvgRisk: 33, AvgFraudProbability: 0.31, TotalTxns: 95, HighRiskEvents: 7},
		},
	}, nil)

	w := env.do(http.MethodGet, "/admin/fragments/analytics?days=7", "", withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.True(t, gjson.Get(body, "data.charts.globalTrend").Exists())

	assert.Equal(t, "bar", gjson.Get(body, "data.charts.volume.kind").String())
	assert.Equal(t, "Transaction Volume",
		gjson.Get(body, "data.charts.volume.series.0.label").String())
	assert.EqualValues(t, 140, gjson.Get(body, "data.charts.volume.series.0.values.0").Int())
	assert.EqualValues(t, 95, gjson.Get(body, "data.charts.volume.series.0.values.1").Int())

	assert.Equal(t, "line", gjson.Get(body, "data.charts.fraudTrend.kind").String())
	assert.Equal(t, "Avg Fraud Probability",
		gjson.Get(body, "data.charts.fraudTrend.series.0.label").String())
	assert.Equal(t, "High Risk Events",
		gjson.Get(body, "data.charts.fraudTrend.series.1.label").String())
	assert.EqualValues(t, 7, gjson.Get(body, "data.charts.fraudTrend.series.1.values.1").Int())
}

func TestAnalyticsWithoutTrendOmitsTrendCharts(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Analytics", mock.Anything, sess.Token, 30).Return(&service.AnalyticsData{
		Points: []models.HotspotPoint{{Lat: 19.07, Lon: 72.87, City: "Mumbai"}},
	}, nil)

	w := env.do(http.MethodGet, "/admin/fragments/analytics", "", withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.False(t, gjson.Get(body, "data.charts.volume").Exists())
	assert.False(t, gjson.Get(body, "data.charts.fraudTrend").Exists())
}

func TestResolveAlert(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("ResolveAlert", mock.Anything, sess.Token, "al-9",
		models.ResolveAlertRequest{Status: "closed", Note: "reviewed"}).Return(nil)

	w := env.do(http.MethodPatch, "/admin/alerts/al-9",
		`{"status":"closed","note":"reviewed"}`, withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alert resolved successfully",
		gjson.Get(w.Body.String(), "notices.0.message").String())
	env.admin.AssertExpectations(t)
}

func TestIntelFragment(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.admin.On("Intel", mock.Anything, sess.Token, "CU-100").Return(&models.IntelReport{
		Success: true,
		Profile: &models.RiskProfile{TrustScore: f64(71.0)},
		Trend30D: []models.TrendDay{
			{Date: "2026-08-30", AvgRisk: 28.0, TrustScore: f64(71.0)},
		},
	}, nil)

	w := env.do(http.MethodPost, "/admin/intel", `{"user_id":"CU-100"}`, withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotEmpty(t, gjson.Get(body, "data.html").String())
	assert.True(t, gjson.Get(body, "data.charts.intelRisk").Exists())
}

func TestShellDeepLink(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")

	w := env.do(http.MethodGet, "/admin?page=users", "", withCookie(sess))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-initial-page="users"`)

	w = env.do(http.MethodGet, "/admin?page=bogus", "", withCookie(sess))
	assert.Contains(t, w.Body.String(), `data-initial-page="overview"`)
}

func TestCreateUserNotice(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.auth.On("CreateUser", mock.Anything, sess.Token,
		service.CreateUserRequest{Name: "Ravi", Email: "ravi@example.com", Password: "secret12", Role: "user"}).
		Return(&dto.CreateUserResult{Name: "Ravi", Email: "ravi@example.com", UserCode: "CU-101"}, nil)

	w := env.do(http.MethodPost, "/admin/users",
		`{"name":"Ravi","email":"ravi@example.com","password":"secret12","role":"user"}`,
		withCookie(sess), asFragment())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User Ravi (CU-101) created successfully",
		gjson.Get(w.Body.String(), "notices.0.message").String())
}
