package service

import (
	"context"
	"strings"

	"github.com/fraudlens/console/internal/application/dto"
	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

// AuthService handles console sign-in, sign-out and admin user creation.
type AuthService interface {
	// Login exchanges credentials for a session and returns the shell path
	// the browser should land on for the user's role.
	Login(ctx context.Context, email, password string) (*session.Session, string, error)

	// Logout destroys the session. Unknown IDs are ignored.
	Logout(ctx context.Context, sessionID string) error

	// CreateUser registers a new user through the backend on behalf of an
	// admin. A backend business refusal surfaces as a validation error.
	CreateUser(ctx context.Context, token string, req CreateUserRequest) (*dto.CreateUserResult, error)
}

// CreateUserRequest is the admin create-user form input.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authService struct {
	gateway  Gateway
	sessions session.Store
	log      logger.Logger
}

// NewAuthService wires the auth flows.
func NewAuthService(gateway Gateway, sessions session.Store, log logger.Logger) AuthService {
	return &authService{gateway: gateway, sessions: sessions, log: log}
}

func (s *authService) Login(ctx context.Context, email, password string) (*session.Session, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", errors.Validation("Email and password are required")
	}

	login, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if login.AccessToken == "" {
		detail := login.Detail
		if detail == "" {
			detail = "Invalid credentials. Please try again."
		}
		return nil, "", errors.Validation(detail)
	}

	sess, err := s.sessions.Create(ctx, login.AccessToken, login.User)
	if err != nil {
		return nil, "", err
	}

	redirect := "/dashboard"
	if sess.IsAdmin() {
		redirect = "/admin"
	}

	s.log.Info(ctx, "user signed in", logger.Fields{
		"user_id": login.User.UserID,
		"role":    login.User.Role,
	})
	return sess, redirect, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *authService) CreateUser(ctx context.Context, token string, req CreateUserRequest) (*dto.CreateUserResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, errors.Validation("Name, email and password are required")
	}
	if req.Role == "" {
		req.Role = "user"
	}

	var resp models.RegisterResponse
	if err := s.gateway.Post(ctx, token, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	// The backend reports duplicate emails and similar refusals as a detail
	// message on a 2xx response.
	if resp.Detail != "" {
		return nil, errors.Validation(resp.Detail)
	}

	s.log.Info(ctx, "user created", logger.Fields{"email": req.Email, "role": req.Role})
	return &dto.CreateUserResult{Name: resp.Name, Email: resp.Email, UserCode: resp.UserCode}, nil
}
