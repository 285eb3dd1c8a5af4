package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

// DashboardData is the combined end-user dashboard load. The summary is the
// primary resource; secondary sections that failed arrive empty without an
// error notice.
type DashboardData struct {
	Profile      *models.RiskProfile  `json:"profile"`
	Balance      *float64             `json:"balance"`
	TrendDays    []models.TrendDay    `json:"trend_days"`
	Transactions []models.Transaction `json:"transactions"`
	Alerts       []models.Alert       `json:"alerts"`
	Notices      []view.Notice        `json:"notices,omitempty"`
}

// TransactionInput is the new-transaction form as submitted by the shell.
// Optional numeric fields are pointers so absent and zero stay distinct.
type TransactionInput struct {
	Amount       float64  `json:"amount"`
	Channel      string   `json:"channel"`
	Currency     string   `json:"currency"`
	MerchantType string   `json:"merchant_type"`
	TxnType      string   `json:"txn_type"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	DeviceType   string   `json:"device_type"`
	DeviceOS     string   `json:"device_os"`
}

// AccountService drives the end-user pages.
type AccountService interface {
	Dashboard(ctx context.Context, token string) (*DashboardData, error)
	SubmitTransaction(ctx context.Context, token, userID string, input TransactionInput) (*models.ScoreResult, error)
}

type accountService struct {
	gateway Gateway
	log     logger.Logger
}

// NewAccountService wires the end-user page flows.
func NewAccountService(gateway Gateway, log logger.Logger) AccountService {
	return &accountService{gateway: gateway, log: log}
}

// Dashboard fetches summary, trend, history and alerts concurrently. Only a
// summary failure raises an error notice; the page renders whatever loaded.
// A terminal auth failure anywhere aborts the load.
func (s *accountService) Dashboard(ctx context.Context, token string) (*DashboardData, error) {
	data := &DashboardData{}

	var (
		summary models.SummaryResponse
		trend   models.TrendResponse
		history models.HistoryResponse
		alerts  models.AlertsResponse

		summaryErr error
		trendErr   error
		historyErr error
		alertsErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summaryErr = s.gateway.Get(gctx, token, "/api/transactions/me/summary", &summary)
		return terminalOnly(summaryErr)
	})
	g.Go(func() error {
		trendErr = s.gateway.Get(gctx, token, "/api/transactions/me/risk-trend", &trend)
		return terminalOnly(trendErr)
	})
	g.Go(func() error {
		historyErr = s.gateway.Get(gctx, token, "/api/transactions/me/history?limit=10", &history)
		return terminalOnly(historyErr)
	})
	g.Go(func() error {
		alertsErr = s.gateway.Get(gctx, token, "/api/transactions/me/alerts?limit=10", &alerts)
		return terminalOnly(alertsErr)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if summaryErr != nil || !summary.Success {
		s.log.Warn(ctx, "dashboard summary unavailable")
		data.Notices = append(data.Notices, view.ErrorNotice("Failed to load dashboard summary"))
	} else {
		data.Profile = summary.Profile
		data.Balance = summary.Balance
	}

	if trendErr == nil && trend.Success {
		data.TrendDays = trend.Days
	}
	if historyErr == nil && history.Success {
		data.Transactions = history.Transactions
	}
	if alertsErr == nil && alerts.Success {
		data.Alerts = alerts.Alerts
	}
	return data, nil
}

// SubmitTransaction validates the form, assembles the scoring payload and
// submits it. The optional location and device objects are included only
// when at least one of their fields was supplied; inside an included object,
// unset members are explicit nulls.
func (s *accountService) SubmitTransaction(ctx context.Context, token, userID string, input TransactionInput) (*models.ScoreResult, error) {
	if input.Amount <= 0 {
		return nil, errors.Validation("Amount must be greater than zero")
	}
	input.Channel = strings.TrimSpace(input.Channel)
	if input.Channel == "" {
		return nil, errors.Validation("Channel is required")
	}

	txnType := strings.ToUpper(strings.TrimSpace(input.TxnType))
	if txnType == "" {
		txnType = constants.DefaultTxnType
	}
	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	payload := models.NewTransaction{
		UserID:       userID,
		Amount:       input.Amount,
		Channel:      input.Channel,
		Currency:     currency,
		MerchantType: optString(input.MerchantType),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		TxnType:      txnType,
	}

	if input.City != "" || input.Country != "" || input.Lat != nil || input.Lon != nil {
		country := input.Country
		if country == "" {
			country = constants.DefaultCountry
		}
		payload.Location = &models.Location{
			City:    optString(input.City),
			Country: &country,
			Lat:     input.Lat,
			Lon:     input.Lon,
		}
	}

	if input.DeviceType != "" || input.DeviceOS != "" {
		payload.Device = &models.Device{
			DeviceType: optString(input.DeviceType),
			OS:         optString(input.DeviceOS),
		}
	}

	var result models.ScoreResult
	if err := s.gateway.Post(ctx, token, "/api/transaction/new", payload, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, errors.Upstream("Transaction failed: " + msg)
	}

	s.log.Info(ctx, "transaction scored", logger.Fields{
		"txn_id":     result.TxnID,
		"risk_level": result.MLScores.RiskLevel,
	})
	return &result, nil
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
