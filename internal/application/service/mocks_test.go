package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fraudlens/console/internal/domain/models"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Get(ctx context.Context, token, path string, out interface{}) error {
	args := m.Called(ctx, token, path, out)
	return args.Error(0)
}

func (m *mockGateway) Post(ctx context.Context, token, path string, body, out interface{}) error {
	args := m.Called(ctx, token, path, body, out)
	return args.Error(0)
}

func (m *mockGateway) Patch(ctx context.Context, token, path string, body, out interface{}) error {
	args := m.Called(ctx, token, path, body, out)
	return args.Error(0)
}

func (m *mockGateway) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func f64(v float64) *float64 { return &v }
