package mocks

import (
	"context"
	"io"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Get(ctx context.Context) (*model.SiteContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteContent), args.Error(1)
}

func (m *MockContentService) UpdateFlags(ctx context.Context, in service.UpdateContentFlagsInput) (*model.SiteContent, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteContent), args.Error(1)
}

func (m *MockContentService) UploadSlot(ctx context.Context, slotType string, file io.Reader, fileName string) (*service.SlotUploadResult, error) {
	args := m.Called(ctx, slotType, file, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SlotUploadResult), args.Error(1)
}

func (m *MockContentService) DeleteSlot(ctx context.Context, slotType string) (string, error) {
	args := m.Called(ctx, slotType)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) ServeSlot(ctx context.Context, slotType string, download bool) (*service.FileResponse, error) {
	args := m.Called(ctx, slotType, download)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileResponse), args.Error(1)
}
