package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

// OverviewData is everything the admin overview page shows: headline stats,
// the 30-day trend and its risk distribution. Sections that failed to load
// report a notice and render zeroed.
type OverviewData struct {
	TotalUsers   int                         `json:"total_users"`
	OpenAlerts   int                         `json:"open_alerts"`
	TxnsToday    int                         `json:"txns_today"`
	AvgRiskToday float64                     `json:"avg_risk_today"`
	TrendDays    []models.TrendDay           `json:"trend_days"`
	Distribution map[constants.RiskLevel]int `json:"distribution"`
	Notices      []view.Notice               `json:"notices,omitempty"`
}

// AnalyticsData is the geo hotspot map plus the global trend. The two load
// independently; either can be missing.
type AnalyticsData struct {
	Points    []models.HotspotPoint `json:"points"`
	TrendDays []models.TrendDay     `json:"trend_days"`
	Notices   []view.Notice         `json:"notices,omitempty"`
}

// AdminService drives the admin console pages.
type AdminService interface {
	Overview(ctx context.Context, token string) (*OverviewData, error)
	Users(ctx context.Context, token, query string) ([]models.User, error)
	Analytics(ctx context.Context, token string, days int) (*AnalyticsData, error)
	Alerts(ctx context.Context, token, filter string) ([]models.Alert, error)
	ResolveAlert(ctx context.Context, token, alertID string, req models.ResolveAlertRequest) error
	Intel(ctx context.Context, token, userKey string) (*models.IntelReport, error)
}

type adminService struct {
	gateway Gateway
	cache   *gocache.Cache
	log     logger.Logger
}

// NewAdminService wires the admin page flows. Analytics responses are cached
// for analyticsTTL since the backend aggregations behind them are expensive.
func NewAdminService(gateway Gateway, analyticsTTL time.Duration, log logger.Logger) AdminService {
	return &adminService{
		gateway: gateway,
		cache:   gocache.New(analyticsTTL, 5*time.Minute),
		log:     log,
	}
}

// Overview loads the three overview resources concurrently. A terminal auth
// failure on any of them aborts the whole page; any other per-section failure
// degrades that section and leaves a notice.
func (s *adminService) Overview(ctx context.Context, token string) (*OverviewData, error) {
	data := &OverviewData{Distribution: map[constants.RiskLevel]int{}}

	var (
		users  []models.User
		alerts []models.Alert
		trend  models.TrendResponse

		usersErr  error
		alertsErr error
		trendErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		usersErr = s.gateway.Get(gctx, token, "/api/admin/users?limit=1000", &users)
		return terminalOnly(usersErr)
	})
	g.Go(func() error {
		alertsErr = s.gateway.Get(gctx, token, "/api/admin/alerts", &alerts)
		return terminalOnly(alertsErr)
	})
	g.Go(func() error {
		trendErr = s.gateway.Get(gctx, token, "/api/admin/risk-trend-global?days=30", &trend)
		return terminalOnly(trendErr)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if usersErr != nil {
		data.Notices = append(data.Notices, view.WarningNotice("User count unavailable"))
	}
	data.TotalUsers = len(users)

	if alertsErr != nil {
		data.Notices = append(data.Notices, view.WarningNotice("Alert stats unavailable"))
	}
	for _, a := range alerts {
		if a.IsOpen() {
			data.OpenAlerts++
		}
	}

	if trendErr != nil {
		s.log.Warn(ctx, "overview trend unavailable", logger.Fields{"error": trendErr.Error()})
		data.Notices = append(data.Notices, view.ErrorNotice("Risk trend unavailable"))
		return data, nil
	}
	if trend.Success && len(trend.Days) > 0 {
		data.TrendDays = trend.Days
		today := trend.Days[len(trend.Days)-1]
		data.TxnsToday = today.TotalTxns
		data.AvgRiskToday = today.AvgRisk
		for _, day := range trend.Days {
			data.Distribution[view.RiskBucket(day.AvgRisk)]++
		}
	}
	return data, nil
}

// Users lists users. A non-empty query switches to backend search; otherwise
// the first 100 users are listed.
func (s *adminService) Users(ctx context.Context, token, query string) ([]models.User, error) {
	endpoint := "/api/admin/users?limit=100"
	if q := strings.TrimSpace(query); q != "" {
		endpoint = "/api/admin/users?q=" + url.QueryEscape(q)
	}
	var users []models.User
	if err := s.gateway.Get(ctx, token, endpoint, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Analytics loads hotspots and the global trend for the given window,
// serving repeats from cache. Either half may fail without taking down the
// other.
func (s *adminService) Analytics(ctx context.Context, token string, days int) (*AnalyticsData, error) {
	if days <= 0 {
		days = 30
	}

	cacheKey := fmt.Sprintf("analytics:%d", days)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if data, ok := cached.(*AnalyticsData); ok {
			return data, nil
		}
	}

	data := &AnalyticsData{}

	var (
		geo   models.GeoResponse
		trend models.TrendResponse

		geoErr   error
		trendErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		geoErr = s.gateway.Get(gctx, token, fmt.Sprintf("/api/admin/geo-hotspots?days=%d", days), &geo)
		return terminalOnly(geoErr)
	})
	g.Go(func() error {
		trendErr = s.gateway.Get(gctx, token, fmt.Sprintf("/api/admin/risk-trend-global?days=%d", days), &trend)
		return terminalOnly(trendErr)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if geoErr != nil {
		data.Notices = append(data.Notices, view.WarningNotice("Geographic data unavailable"))
	} else if geo.Success {
		data.Points = geo.Points
	}

	if trendErr != nil {
		data.Notices = append(data.Notices, view.WarningNotice("Risk trend unavailable"))
	} else if trend.Success {
		data.TrendDays = trend.Days
	}

	// Only fully loaded pages are worth caching.
	if geoErr == nil && trendErr == nil {
		s.cache.SetDefault(cacheKey, data)
	}
	return data, nil
}

// Alerts returns the alert queue, filtered by status when filter is anything
// other than empty or "all".
func (s *adminService) Alerts(ctx context.Context, token, filter string) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := s.gateway.Get(ctx, token, "/api/admin/alerts", &alerts); err != nil {
		return nil, err
	}
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == "all" {
		return alerts, nil
	}
	filtered := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status == filter {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// ResolveAlert updates one alert's status with an optional note.
func (s *adminService) ResolveAlert(ctx context.Context, token, alertID string, req models.ResolveAlertRequest) error {
	if alertID == "" {
		return errors.Validation("Alert ID is required")
	}
	switch req.Status {
	case constants.AlertStatusOpen, constants.AlertStatusClosed:
	default:
		return errors.Validation("Status must be open or closed")
	}

	if err := s.gateway.Patch(ctx, token, "/api/admin/alerts/"+url.PathEscape(alertID), req, nil); err != nil {
		return err
	}
	s.log.Info(ctx, "alert resolved", logger.Fields{"alert_id": alertID, "status": req.Status})
	return nil
}

// Intel fetches the on-demand intelligence bundle for one user, identified
// by code, email or internal ID.
func (s *adminService) Intel(ctx context.Context, token, userKey string) (*models.IntelReport, error) {
	userKey = strings.TrimSpace(userKey)
	if userKey == "" {
		return nil, errors.Validation("Please enter a User ID")
	}

	var report models.IntelReport
	if err := s.gateway.Post(ctx, token, "/api/agent/intel", models.IntelRequest{UserID: userKey}, &report); err != nil {
		return nil, err
	}
	if !report.Success {
		msg := report.Message
		if msg == "" {
			msg = "Failed to fetch intelligence"
		}
		return nil, errors.Upstream(msg)
	}
	return &report, nil
}

// terminalOnly propagates only the errors that must abort a combined load;
// everything else degrades to a notice on the owning section.
func terminalOnly(err error) error {
	if errors.IsUnauthorized(err) {
		return err
	}
	return nil
}
