package mocks

import (
	"context"

	"github.com/pageza/recipes/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockSeeder is a mock implementation of the development seeder
type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) Seed(ctx context.Context, clearExisting bool) (*types.SeedResult, error) {
	args := m.Called(ctx, clearExisting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SeedResult), args.Error(1)
}

func (m *MockSeeder) Status(ctx context.Context) (*types.DatabaseStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DatabaseStatus), args.Error(1)
}
