package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

func newAdminFixture() (*mockGateway, AdminService) {
	gw := &mockGateway{}
	return gw, NewAdminService(gw, 30*time.Second, logger.NewNopLogger())
}

func stubUsers(gw *mockGateway, path string, users []models.User, err error) {
	gw.On("Get", mock.Anything, "tok", path, mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(3).(*[]models.User)) = users
		}).Return(err)
}

func stubAlerts(gw *mockGateway, alerts []models.Alert, err error) {
	gw.On("Get", mock.Anything, "tok", "/api/admin/alerts", mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(3).(*[]models.Alert)) = alerts
		}).Return(err)
}

func stubTrend(gw *mockGateway, path string, trend models.TrendResponse, err error) {
	gw.On("Get", mock.Anything, "tok", path, mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(3).(*models.TrendResponse)) = trend
		}).Return(err)
}

func TestOverviewAggregates(t *testing.T) {
	gw, svc := newAdminFixture()

	stubUsers(gw, "/api/admin/users?limit=1000", []models.User{{UserID: "1"}, {UserID: "2"}, {UserID: "3"}}, nil)
	stubAlerts(gw, []models.Alert{
		{AlertID: "a1", Status: "open"},
		{AlertID: "a2", Status: "closed"},
		{AlertID: "a3", Status: "open"},
	}, nil)
	stubTrend(gw, "/api/admin/risk-trend-global?days=30", models.TrendResponse{
		Success: true,
		Days: []models.TrendDay{
			{Date: "2026-08-27", AvgRisk: 20, TotalTxns: 40},
			{Date: "2026-08-28", AvgRisk: 50, TotalTxns: 55},
			{Date: "2026-08-29", AvgRisk: 70, TotalTxns: 61},
			{Date: "2026-08-30", AvgRisk: 90, TotalTxns: 12},
		},
	}, nil)

	data, err := svc.Overview(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 3, data.TotalUsers)
	assert.Equal(t, 2, data.OpenAlerts)
	assert.Equal(t, 12, data.TxnsToday)
	assert.Equal(t, float64(90), data.AvgRiskToday)
	assert.Len(t, data.TrendDays, 4)
	assert.Equal(t, 1, data.Distribution[constants.RiskLow])
	assert.Equal(t, 1, data.Distribution[constants.RiskMedium])
	assert.Equal(t, 1, data.Distribution[constants.RiskHigh])
	assert.Equal(t, 1, data.Distribution[constants.RiskCritical])
	assert.Empty(t, data.Notices)
}

func TestOverviewDegradesSections(t *testing.T) {
	gw, svc := newAdminFixture()

	stubUsers(gw, "/api/admin/users?limit=1000", nil, errors.ErrUpstream)
	stubAlerts(gw, []models.Alert{{AlertID: "a1", Status: "open"}}, nil)
	stubTrend(gw, "/api/admin/risk-trend-global?days=30", models.TrendResponse{}, errors.ErrUpstream)

	data, err := svc.Overview(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 0, data.TotalUsers)
	assert.Equal(t, 1, data.OpenAlerts)
	assert.Empty(t, data.TrendDays)
	assert.Len(t, data.Notices, 2)
}

func TestOverviewUnauthorizedAborts(t *testing.T) {
	gw, svc := newAdminFixture()

	stubUsers(gw, "/api/admin/users?limit=1000", nil, errors.ErrUnauthorized)
	stubAlerts(gw, nil, nil)
	stubTrend(gw, "/api/admin/risk-trend-global?days=30", models.TrendResponse{Success: true}, nil)

	_, err := svc.Overview(context.Background(), "tok")
	assert.True(t, errors.IsUnauthorized(err))
}

func TestUsersEndpointSelection(t *testing.T) {
	gw, svc := newAdminFixture()
	stubUsers(gw, "/api/admin/users?limit=100", []models.User{{UserID: "1"}}, nil)
	stubUsers(gw, "/api/admin/users?q=asha+r", []models.User{{UserID: "2"}}, nil)

	users, err := svc.Users(context.Background(), "tok", "")
	require.NoError(t, err)
	assert.Equal(t, "1", users[0].UserID)

	users, err = svc.Users(context.Background(), "tok", " asha r ")
	require.NoError(t, err)
	assert.Equal(t, "2", users[0].UserID)
}

func TestAlertsFilter(t *testing.T) {
	gw, svc := newAdminFixture()
	stubAlerts(gw, []models.Alert{
		{AlertID: "a1", Status: "open"},
		{AlertID: "a2", Status: "closed"},
	}, nil)

	all, err := svc.Alerts(context.Background(), "tok", "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := svc.Alerts(context.Background(), "tok", "open")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "a1", open[0].AlertID)

	none, err := svc.Alerts(context.Background(), "tok", "escalated")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestResolveAlert(t *testing.T) {
	gw, svc := newAdminFixture()
	gw.On("Patch", mock.Anything, "tok", "/api/admin/alerts/AL-77", mock.Anything, nil).Return(nil)

	err := svc.ResolveAlert(context.Background(), "tok", "AL-77", models.ResolveAlertRequest{
		Status: "closed", Note: "false positive",
	})
	require.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestResolveAlertValidation(t *testing.T) {
	gw, svc := newAdminFixture()

	err := svc.ResolveAlert(context.Background(), "tok", "", models.ResolveAlertRequest{Status: "closed"})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	err = svc.ResolveAlert(context.Background(), "tok", "AL-1", models.ResolveAlertRequest{Status: "dismissed"})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	gw.AssertNotCalled(t, "Patch")
}

func TestIntelValidatesKey(t *testing.T) {
	gw, svc := newAdminFixture()

	_, err := svc.Intel(context.Background(), "tok", "   ")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	gw.AssertNotCalled(t, "Post")
}

func TestIntelBusinessFailure(t *testing.T) {
	gw, svc := newAdminFixture()
	gw.On("Post", mock.Anything, "tok", "/api/agent/intel", models.IntelRequest{UserID: "USR001"}, mock.Anything).
		Run(func(args mock.Arguments) {
			report := args.Get(4).(*models.IntelReport)
			report.Success = false
			report.Message = "user not found"
		}).Return(nil)

	_, err := svc.Intel(context.Background(), "tok", "USR001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func TestIntelSuccess(t *testing.T) {
	gw, svc := newAdminFixture()
	gw.On("Post", mock.Anything, "tok", "/api/agent/intel", models.IntelRequest{UserID: "USR001"}, mock.Anything).
		Run(func(args mock.Arguments) {
			report := args.Get(4).(*models.IntelReport)
			report.Success = true
			report.Profile = &models.RiskProfile{TrustScore: f64(77)}
		}).Return(nil)

	report, err := svc.Intel(context.Background(), "tok", "USR001")
	require.NoError(t, err)
	assert.Equal(t, float64(77), *report.Profile.TrustScore)
}

func TestAnalyticsCachesFullLoads(t *testing.T) {
	gw, svc := newAdminFixture()

	gw.On("Get", mock.Anything, "tok", "/api/admin/geo-hotspots?days=30", mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(3).(*models.GeoResponse)) = models.GeoResponse{
				Success: true,
				Points:  []models.HotspotPoint{{City: "Pune", AvgRisk: 55, TxnCount: 10}},
			}
		}).Return(nil).Once()
	stubTrend(gw, "/api/admin/risk-trend-global?days=30", models.TrendResponse{
		Success: true,
		Days:    []models.TrendDay{{Date: "2026-08-30", AvgRisk: 41}},
	}, nil)

	first, err := svc.Analytics(context.Background(), "tok", 30)
	require.NoError(t, err)
	require.Len(t, first.Points, 1)

	// Second load within the TTL is served from cache; the Once() stub above
	// would fail the mock if the gateway were hit again.
	second, err := svc.Analytics(context.Background(), "tok", 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	gw.AssertExpectations(t)
}

func TestAnalyticsPartialFailureNotCached(t *testing.T) {
	gw, svc := newAdminFixture()

	gw.On("Get", mock.Anything, "tok", "/api/admin/geo-hotspots?days=7", mock.Anything).Return(errors.ErrUpstream)
	stubTrend(gw, "/api/admin/risk-trend-global?days=7", models.TrendResponse{
		Success: true,
		Days:    []models.TrendDay{{Date: "2026-08-30", AvgRisk: 41}},
	}, nil)

	data, err := svc.Analytics(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Empty(t, data.Points)
	assert.Len(t, data.TrendDays, 1)
	assert.Len(t, data.Notices, 1)

	// Degraded responses are refetched next time.
	_, err = svc.Analytics(context.Background(), "tok", 7)
	require.NoError(t, err)
	gw.AssertNumberOfCalls(t, "Get", 4)
}
