package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraudlens/console/internal/application/dto"
	"github.com/fraudlens/console/internal/application/service"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/internal/interfaces/http/ui"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
)

// AuthHandler serves the login page and the sign-in/sign-out endpoints.
type AuthHandler struct {
	auth         service.AuthService
	sessions     session.Store
	cookieSecure bool
}

// NewAuthHandler builds the auth endpoints.
func NewAuthHandler(auth service.AuthService, sessions session.Store, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookieSecure: cookieSecure}
}

// LoginPage serves the login shell. A browser that already holds a live
// session is sent straight to its console.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if id, err := c.Cookie(constants.SessionCookie); err == nil {
		if sess, err := h.sessions.Get(c.Request.Context(), id); err == nil {
			target := "/dashboard"
			if sess.IsAdmin() {
				target = "/admin"
			}
			c.Redirect(http.StatusFound, target)
			return
		}
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(ui.LoginPage))
}

// Home routes / to the right console for the session, or to login.
func (h *AuthHandler) Home(c *gin.Context) {
	id, _ := c.Cookie(constants.SessionCookie)
	sess, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if sess.IsAdmin() {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session cookie and tells the shell where
// to navigate.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.SendError(c, errors.Validation("Email and password are required"))
		return
	}

	sess, redirect, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.SendError(c, err)
		return
	}

	setSessionCookie(c, sess, h.cookieSecure)
	dto.SendSuccess(c, dto.LoginResult{Redirect: redirect})
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(constants.SessionCookie); err == nil {
		_ = h.auth.Logout(c.Request.Context(), id)
	}
	clearSessionCookie(c, h.cookieSecure)
	dto.SendSuccess(c, dto.LoginResult{Redirect: "/login"})
}
