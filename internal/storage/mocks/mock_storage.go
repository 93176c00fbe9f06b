package mocks

import (
	"context"
	"io"

	"portfolioapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Store(ctx context.Context, r io.Reader, originalFilename string) (storage.StoredFile, error) {
	args := m.Called(ctx, r, originalFilename)
	if f, ok := args.Get(0).(func(context.Context, io.Reader, string) storage.StoredFile); ok {
		return f(ctx, r, originalFilename), args.Error(1)
	}
	return args.Get(0).(storage.StoredFile), args.Error(1)
}

func (m *MockFileStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	args := m.Called(ctx, storedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Exists(ctx context.Context, storedName string) (bool, error) {
	args := m.Called(ctx, storedName)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileStore) Remove(ctx context.Context, storedName string) (storage.RemoveResult, error) {
	args := m.Called(ctx, storedName)
	return args.Get(0).(storage.RemoveResult), args.Error(1)
}
