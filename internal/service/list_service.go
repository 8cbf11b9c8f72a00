package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/trelloyes-api/internal/domain"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/store"
)

// ListService provides list-related operations
type ListService interface {
	// CreateList validates the header and every referenced card id, then
	// stores the list. Nothing is stored when any check fails.
	CreateList(ctx context.Context, header string, cardIDs []string) (*domain.List, string, error)

	// ListLists returns every list in insertion order.
	ListLists(ctx context.Context) ([]domain.List, error)

	// GetList retrieves a list by its ID
	GetList(ctx context.Context, listID string) (*domain.List, error)

	// DeleteList removes a list. Cards are not affected.
	DeleteList(ctx context.Context, listID string) error
}

// listServiceImpl implements the ListService interface
type listServiceImpl struct {
	store   store.Store
	locator Locator
	logger  *slog.Logger
}

// NewListService creates a new ListService
// It returns an error if any of the required dependencies are nil.
func NewListService(s store.Store, locator Locator, logger *slog.Logger) (ListService, error) {
	if s == nil {
		return nil, domain.NewValidationError("store", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &listServiceImpl{
		store:   s,
		locator: locator,
		logger:  logger,
	}, nil
}

// CreateList implements ListService.CreateList
func (s *listServiceImpl) CreateList(
	ctx context.Context,
	header string,
	cardIDs []string,
) (*domain.List, string, error) {
	log := logger.ForComponent(ctx, s.logger, "list_service")

	list, err := domain.NewList(header, cardIDs)
	if err != nil {
		log.Error("invalid list", slog.String("error", err.Error()))
		return nil, "", err
	}

	// Reference checks and the append share one transaction, so a card
	// deleted concurrently cannot slip between them.
	err = store.RunInTransaction(ctx, s.store, func(ctx context.Context, tx store.Tx) error {
		var missing []string
		seen := make(map[string]bool, len(list.CardIDs))
		for _, id := range list.CardIDs {
			if _, err := tx.FindCard(id); err != nil {
				if !store.IsNotFoundError(err) {
					return err
				}
				log.Error("card referenced by list not found", slog.String("card_id", id))
				if !seen[id] {
					seen[id] = true
					missing = append(missing, id)
				}
			}
		}
		if len(missing) > 0 {
			return domain.NewUnknownCardsError(missing)
		}

		return tx.AppendList(*list)
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, "", verr
		}
		if store.IsDuplicateError(err) {
			log.Error("generated list id already stored", slog.String("list_id", list.ID))
		} else {
			log.Error("failed to store list",
				slog.String("error", err.Error()),
				slog.String("list_id", list.ID))
		}
		return nil, "", NewListServiceError("create_list", "failed to save list", err)
	}

	log.Info("list created",
		slog.String("list_id", list.ID),
		slog.Int("card_count", len(list.CardIDs)))
	return list, s.locator.List(list.ID), nil
}

// ListLists implements ListService.ListLists
func (s *listServiceImpl) ListLists(ctx context.Context) ([]domain.List, error) {
	var lists []domain.List
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		lists = tx.ListLists()
		return nil
	})
	if err != nil {
		return nil, NewListServiceError("list_lists", "failed to read lists", err)
	}
	return lists, nil
}

// GetList implements ListService.GetList
func (s *listServiceImpl) GetList(ctx context.Context, listID string) (*domain.List, error) {
	log := logger.ForComponent(ctx, s.logger, "list_service")

	var list domain.List
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		list, err = tx.FindList(listID)
		return err
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Error("list not found", slog.String("list_id", listID))
			return nil, store.ErrListNotFound
		}
		log.Error("failed to retrieve list",
			slog.String("error", err.Error()),
			slog.String("list_id", listID))
		return nil, NewListServiceError("get_list", "failed to retrieve list", err)
	}

	return &list, nil
}

// DeleteList implements ListService.DeleteList
func (s *listServiceImpl) DeleteList(ctx context.Context, listID string) error {
	log := logger.ForComponent(ctx, s.logger, "list_service")

	err := store.RunInTransaction(ctx, s.store, func(ctx context.Context, tx store.Tx) error {
		if !tx.RemoveList(listID) {
			return store.ErrListNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			log.Error("list not found", slog.String("list_id", listID))
			return store.ErrListNotFound
		}
		log.Error("failed to delete list",
			slog.String("error", err.Error()),
			slog.String("list_id", listID))
		return NewListServiceError("delete_list", "failed to delete list", err)
	}

	log.Info("list deleted", slog.String("list_id", listID))
	return nil
}
