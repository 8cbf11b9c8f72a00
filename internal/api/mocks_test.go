package api

import (
	"context"

	"github.com/phrazzld/trelloyes-api/internal/domain"
)

type mockCardService struct {
	createFn func(ctx context.Context, title, content string) (*domain.Card, string, error)
	listFn   func(ctx context.Context) ([]domain.Card, error)
	getFn    func(ctx context.Context, id string) (*domain.Card, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockCardService) CreateCard(ctx context.Context, title, content string) (*domain.Card, string, error) {
	return m.createFn(ctx, title, content)
}

func (m *mockCardService) ListCards(ctx context.Context) ([]domain.Card, error) {
	return m.listFn(ctx)
}

func (m *mockCardService) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	return m.getFn(ctx, id)
}

func (m *mockCardService) DeleteCard(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockListService struct {
	createFn func(ctx context.Context, header string, cardIDs []string) (*domain.List, string, error)
	listFn   func(ctx context.Context) ([]domain.List, error)
	getFn    func(ctx context.Context, id string) (*domain.List, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockListService) CreateList(ctx context.Context, header string, cardIDs []string) (*domain.List, string, error) {
	return m.createFn(ctx, header, cardIDs)
}

func (m *mockListService) ListLists(ctx context.Context) ([]domain.List, error) {
	return m.listFn(ctx)
}

func (m *mockListService) GetList(ctx context.Context, id string) (*domain.List, error) {
	return m.getFn(ctx, id)
}

func (m *mockListService) DeleteList(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
