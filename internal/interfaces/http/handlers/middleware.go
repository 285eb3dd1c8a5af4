// Package handlers implements the console's HTTP surface: the page shells,
// the fragment endpoints backing them, and the guard middleware in between.
package handlers

import (
	"context"
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fraudlens/console/internal/application/dto"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

// RequestIDMiddleware assigns each request a correlation ID, carried in the
// context and echoed in the X-Request-ID response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// LoggingMiddleware logs completed requests.
func LoggingMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info(c.Request.Context(), "request processed", logger.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"client_ip": c.ClientIP(),
		})
	}
}

// RecoveryMiddleware turns panics into internal-error envelopes.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(c.Request.Context(), "panic recovered", goerrors.New("panic"), logger.Fields{"panic": r})
				dto.SendError(c, errors.ErrInternal)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// isFragmentRequest reports whether the request came from the shell script
// rather than a browser navigation. Fragment requests get JSON failures; page
// requests get redirects.
func isFragmentRequest(c *gin.Context) bool {
	return c.GetHeader(constants.HeaderFragment) != ""
}

// SessionGuard resolves the session cookie and attaches the session to the
// request context. Requests without a live session are bounced to the login
// page, or answered 401 when they came from the shell script.
func SessionGuard(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(constants.SessionCookie)
		sess, err := sessions.Get(c.Request.Context(), id)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		ctx := context.WithValue(c.Request.Context(), constants.ContextKeySession, sess)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin allows only admin sessions through. Non-admins are sent to
// their own dashboard rather than the login page; their session is fine,
// just not privileged.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			rejectUnauthenticated(c)
			return
		}
		if !sess.IsAdmin() {
			if isFragmentRequest(c) {
				dto.SendError(c, errors.ErrForbidden)
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFrom returns the guarded session, or nil outside guarded routes.
func SessionFrom(c *gin.Context) *session.Session {
	sess, _ := c.Request.Context().Value(constants.ContextKeySession).(*session.Session)
	return sess
}

func rejectUnauthenticated(c *gin.Context) {
	if isFragmentRequest(c) {
		dto.SendError(c, errors.ErrUnauthorized)
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
