package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

func newAuthFixture() (*mockGateway, session.Store, AuthService) {
	gw := &mockGateway{}
	sessions := session.NewMemoryStore(time.Hour, nil)
	return gw, sessions, NewAuthService(gw, sessions, logger.NewNopLogger())
}

func TestLoginAdminRedirect(t *testing.T) {
	gw, sessions, svc := newAuthFixture()
	gw.On("Login", mock.Anything, "root@example.com", "pw").Return(&models.LoginResponse{
		AccessToken: "tok-123",
		User:        models.SessionUser{UserID: "a1", Email: "root@example.com", Role: "admin"},
	}, nil)

	sess, redirect, err := svc.Login(context.Background(), "root@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/admin", redirect)
	assert.Equal(t, "tok-123", sess.Token)

	stored, err := sessions.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "a1", stored.User.UserID)
}

func TestLoginUserRedirect(t *testing.T) {
	gw, _, svc := newAuthFixture()
	gw.On("Login", mock.Anything, "asha@example.com", "pw").Return(&models.LoginResponse{
		AccessToken: "tok-456",
		User:        models.SessionUser{UserID: "u1", Email: "asha@example.com", Role: "user"},
	}, nil)

	_, redirect, err := svc.Login(context.Background(), "asha@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", redirect)
}

func TestLoginMissingFields(t *testing.T) {
	gw, _, svc := newAuthFixture()

	_, _, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, _, err = svc.Login(context.Background(), "a@b.com", "")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	gw.AssertNotCalled(t, "Login")
}

func TestLoginRejectedCredentials(t *testing.T) {
	gw, _, svc := newAuthFixture()
	gw.On("Login", mock.Anything, "asha@example.com", "bad").Return(&models.LoginResponse{
		Detail: "Incorrect email or password",
	}, nil)

	_, _, err := svc.Login(context.Background(), "asha@example.com", "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Incorrect email or password")
}

func TestLoginUpstreamErrorPropagates(t *testing.T) {
	gw, _, svc := newAuthFixture()
	gw.On("Login", mock.Anything, "asha@example.com", "pw").Return(nil, errors.ErrUpstream)

	_, _, err := svc.Login(context.Background(), "asha@example.com", "pw")
	assert.ErrorIs(t, err, errors.ErrUpstream)
}

func TestLogout(t *testing.T) {
	gw, sessions, svc := newAuthFixture()
	gw.On("Login", mock.Anything, "asha@example.com", "pw").Return(&models.LoginResponse{
		AccessToken: "tok",
		User:        models.SessionUser{UserID: "u1", Role: "user"},
	}, nil)

	sess, _, err := svc.Login(context.Background(), "asha@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))
	_, err = sessions.Get(context.Background(), sess.ID)
	assert.True(t, errors.IsUnauthorized(err))
}

func TestCreateUserValidation(t *testing.T) {
	_, _, svc := newAuthFixture()

	_, err := svc.CreateUser(context.Background(), "tok", CreateUserRequest{Email: "x@y.com", Password: "pw"})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = svc.CreateUser(context.Background(), "tok", CreateUserRequest{Name: "X", Email: "x@y.com"})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestCreateUserDefaultsRole(t *testing.T) {
	gw, _, svc := newAuthFixture()
	gw.On("Post", mock.Anything, "tok", "/auth/register", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			req := args.Get(3).(CreateUserRequest)
			assert.Equal(t, "user", req.Role)
			resp := args.Get(4).(*models.RegisterResponse)
			resp.Name = "Mira"
			resp.Email = "mira@example.com"
			resp.UserCode = "USR042"
		}).Return(nil)

	result, err := svc.CreateUser(context.Background(), "tok", CreateUserRequest{
		Name: "Mira", Email: "mira@example.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "USR042", result.UserCode)
}

func TestCreateUserBusinessRefusal(t *testing.T) {
	gw, _, svc := newAuthFixture()
	gw.On("Post", mock.Anything, "tok", "/auth/register", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(4).(*models.RegisterResponse).Detail = "Email already registered"
		}).Return(nil)

	_, err := svc.CreateUser(context.Background(), "tok", CreateUserRequest{
		Name: "Mira", Email: "mira@example.com", Password: "pw", Role: "admin",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Email already registered")
}
