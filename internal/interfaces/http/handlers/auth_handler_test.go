package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
)

func sessionCookie(t *testing.T, w interface{ Result() *http.Response }) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLoginIssuesCookieAndRedirect(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "admin")
	env.auth.On("Login", mock.Anything, "admin@example.com", "hunter2").
		Return(sess, "/admin", nil)

	w := env.do(http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"hunter2"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/admin", gjson.Get(w.Body.String(), "data.redirect").String())

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, sess.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)
	env.auth.AssertExpectations(t)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/login", `{"email": 5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginSurfacesCredentialRejection(t *testing.T) {
	env := newTestEnv(t)
	env.auth.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return(nil, "", errors.Validation("Incorrect email or password"))

	w := env.do(http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Incorrect email or password",
		gjson.Get(w.Body.String(), "error.message").String())
	assert.Nil(t, sessionCookie(t, w))
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	sess := env.openSession(t, "user")
	env.auth.On("Logout", mock.Anything, sess.ID).Return(nil)

	w := env.do(http.MethodPost, "/auth/logout", "", withCookie(sess))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", gjson.Get(w.Body.String(), "data.redirect").String())

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	env.auth.AssertExpectations(t)
}

func TestLogoutWithoutCookieStillSucceeds(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	env.auth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

func TestLoginPageRedirectsLiveSessions(t *testing.T) {
	env := newTestEnv(t)

	admin := env.openSession(t, "admin")
	w := env.do(http.MethodGet, "/login", "", withCookie(admin))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	user := env.openSession(t, "user")
	w = env.do(http.MethodGet, "/login", "", withCookie(user))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestLoginPageServesShellWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/login", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "loginForm")
}

func TestHomeRoutesByRole(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	admin := env.openSession(t, "admin")
	w = env.do(http.MethodGet, "/", "", withCookie(admin))
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	user := env.openSession(t, "user")
	w = env.do(http.MethodGet, "/", "", withCookie(user))
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}
