package service

import (
	"context"

	"github.com/phrazzld/trelloyes-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockStore mocks the store.Store interface. Unless a test overrides the
// return value, the TxFn is not invoked.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) View(ctx context.Context, fn store.TxFn) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, fn store.TxFn) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
