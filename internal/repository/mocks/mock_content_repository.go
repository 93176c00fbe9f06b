package mocks

import (
	"context"

	"portfolioapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Get(ctx context.Context) (*model.SiteContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteContent), args.Error(1)
}

func (m *MockContentRepository) Save(ctx context.Context, content *model.SiteContent) (*model.SiteContent, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteContent), args.Error(1)
}
