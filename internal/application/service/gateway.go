// Package service implements the console's application flows on top of the
// risk backend gateway: authentication, the admin console pages, and the
// end-user account pages.
package service

import (
	"context"

	"github.com/fraudlens/console/internal/domain/models"
)

// Gateway is the slice of the risk backend client the services consume.
// Satisfied by riskapi.Client.
type Gateway interface {
	Get(ctx context.Context, token, path string, out interface{}) error
	Post(ctx context.Context, token, path string, body, out interface{}) error
	Patch(ctx context.Context, token, path string, body, out interface{}) error
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}
