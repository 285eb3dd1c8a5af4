package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fraudlens/console/internal/application/dto"
	"github.com/fraudlens/console/internal/application/service"
	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/constants"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*session.Session, string, error) {
	args := m.Called(ctx, email, password)
	sess, _ := args.Get(0).(*session.Session)
	return sess, args.String(1), args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockAuthService) CreateUser(ctx context.Context, token string, req service.CreateUserRequest) (*dto.CreateUserResult, error) {
	args := m.Called(ctx, token, req)
	result, _ := args.Get(0).(*dto.CreateUserResult)
	return result, args.Error(1)
}

type mockAdminService struct{ mock.Mock }

func (m *mockAdminService) Overview(ctx context.Context, token string) (*service.OverviewData, error) {
	args := m.Called(ctx, token)
	data, _ := args.Get(0).(*service.OverviewData)
	return data, args.Error(1)
}

func (m *mockAdminService) Users(ctx context.Context, token, query string) ([]models.User, error) {
	args := m.Called(ctx, token, query)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockAdminService) Analytics(ctx context.Context, token string, days int) (*service.AnalyticsData, error) {
	args := m.Called(ctx, token, days)
	data, _ := args.Get(0).(*service.AnalyticsData)
	return data, args.Error(1)
}

func (m *mockAdminService) Alerts(ctx context.Context, token, filter string) ([]models.Alert, error) {
	args := m.Called(ctx, token, filter)
	alerts, _ := args.Get(0).([]models.Alert)
	return alerts, args.Error(1)
}

func (m *mockAdminService) ResolveAlert(ctx context.Context, token, alertID string, req models.ResolveAlertRequest) error {
	return m.Called(ctx, token, alertID, req).Error(0)
}

func (m *mockAdminService) Intel(ctx context.Context, token, userKey string) (*models.IntelReport, error) {
	args := m.Called(ctx, token, userKey)
	report, _ := args.Get(0).(*models.IntelReport)
	return report, args.Error(1)
}

type mockAccountService struct{ mock.Mock }

func (m *mockAccountService) Dashboard(ctx context.Context, token string) (*service.DashboardData, error) {
	args := m.Called(ctx, token)
	data, _ := args.Get(0).(*service.DashboardData)
	return data, args.Error(1)
}

func (m *mockAccountService) SubmitTransaction(ctx context.Context, token, userID string, input service.TransactionInput) (*models.ScoreResult, error) {
	args := m.Called(ctx, token, userID, input)
	result, _ := args.Get(0).(*models.ScoreResult)
	return result, args.Error(1)
}

// testEnv is an engine with the production route table wired onto mocks and a
// real in-memory session store.
type testEnv struct {
	engine  *gin.Engine
	store   session.Store
	auth    *mockAuthService
	admin   *mockAdminService
	account *mockAccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		store:   session.NewMemoryStore(time.Hour, nil),
		auth:    &mockAuthService{},
		admin:   &mockAdminService{},
		account: &mockAccountService{},
	}

	renderer := view.NewRenderer()
	authHandler := NewAuthHandler(env.auth, env.store, false)
	adminHandler := NewAdminHandler(env.admin, env.auth, renderer, env.store, nil, false)
	accountHandler := NewAccountHandler(env.account, renderer, env.store, nil, false)

	env.engine = gin.New()
	env.engine.GET("/", authHandler.Home)
	env.engine.GET("/login", authHandler.LoginPage)
	env.engine.POST("/auth/login", authHandler.Login)
	env.engine.POST("/auth/logout", authHandler.Logout)

	admin := env.engine.Group("/admin")
	admin.Use(SessionGuard(env.store), RequireAdmin())
	{
		admin.GET("", adminHandler.Shell)
		admin.GET("/fragments/overview", adminHandler.Overview)
		admin.GET("/fragments/users", adminHandler.Users)
		admin.GET("/fragments/analytics", adminHandler.Analytics)
		admin.GET("/fragments/alerts", adminHandler.Alerts)
		admin.POST("/users", adminHandler.CreateUser)
		admin.POST("/intel", adminHandler.Intel)
		admin.PATCH("/alerts/:id", adminHandler.ResolveAlert)
	}

	account := env.engine.Group("/")
	account.Use(SessionGuard(env.store))
	{
		account.GET("/dashboard", accountHandler.Shell)
		account.GET("/dashboard/fragments/overview", accountHandler.Dashboard)
		account.POST("/transactions", accountHandler.SubmitTransaction)
	}

	return env
}

// openSession mints a session in the store and returns it.
func (env *testEnv) openSession(t *testing.T, role string) *session.Session {
	t.Helper()
	sess, err := env.store.Create(context.Background(), "token-"+role, models.SessionUser{
		UserID: "u-" + role,
		Email:  role + "@example.com",
		Role:   role,
	})
	require.NoError(t, err)
	return sess
}

type reqOption func(*http.Request)

func withCookie(sess *session.Session) reqOption {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: sess.ID})
	}
}

func asFragment() reqOption {
	return func(r *http.Request) {
		r.Header.Set(constants.HeaderFragment, "1")
	}
}

// do runs one request through the engine. Bodies are sent as JSON.
func (env *testEnv) do(method, target, body string, opts ...reqOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	return w
}
