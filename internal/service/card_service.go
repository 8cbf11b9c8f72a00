package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/trelloyes-api/internal/domain"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/store"
)

// CardService provides card-related operations
type CardService interface {
	// CreateCard validates and stores a new card. It returns the card and its
	// canonical URL.
	CreateCard(ctx context.Context, title, content string) (*domain.Card, string, error)

	// ListCards returns every card in insertion order.
	ListCards(ctx context.Context) ([]domain.Card, error)

	// GetCard retrieves a card by its ID
	GetCard(ctx context.Context, cardID string) (*domain.Card, error)

	// DeleteCard removes a card and strips its id from every list that
	// references it, as one atomic step.
	DeleteCard(ctx context.Context, cardID string) error
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	store   store.Store
	locator Locator
	logger  *slog.Logger
}

// NewCardService creates a new CardService
// It returns an error if any of the required dependencies are nil.
func NewCardService(s store.Store, locator Locator, logger *slog.Logger) (CardService, error) {
	if s == nil {
		return nil, domain.NewValidationError("store", "cannot be nil", domain.ErrValidation)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		store:   s,
		locator: locator,
		logger:  logger,
	}, nil
}

// CreateCard implements CardService.CreateCard
func (s *cardServiceImpl) CreateCard(
	ctx context.Context,
	title, content string,
) (*domain.Card, string, error) {
	log := logger.ForComponent(ctx, s.logger, "card_service")

	card, err := domain.NewCard(title, content)
	if err != nil {
		log.Error("invalid card", slog.String("error", err.Error()))
		return nil, "", err
	}

	err = store.RunInTransaction(ctx, s.store, func(ctx context.Context, tx store.Tx) error {
		return tx.AppendCard(*card)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Error("generated card id already stored", slog.String("card_id", card.ID))
		} else {
			log.Error("failed to store card",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID))
		}
		return nil, "", NewCardServiceError("create_card", "failed to save card", err)
	}

	log.Info("card created", slog.String("card_id", card.ID))
	return card, s.locator.Card(card.ID), nil
}

// ListCards implements CardService.ListCards
func (s *cardServiceImpl) ListCards(ctx context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		cards = tx.ListCards()
		return nil
	})
	if err != nil {
		return nil, NewCardServiceError("list_cards", "failed to read cards", err)
	}
	return cards, nil
}

// GetCard implements CardService.GetCard
func (s *cardServiceImpl) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	log := logger.ForComponent(ctx, s.logger, "card_service")

	var card domain.Card
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		card, err = tx.FindCard(cardID)
		return err
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Error("card not found", slog.String("card_id", cardID))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to retrieve card",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID))
		return nil, NewCardServiceError("get_card", "failed to retrieve card", err)
	}

	return &card, nil
}

// DeleteCard implements CardService.DeleteCard
func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID string) error {
	log := logger.ForComponent(ctx, s.logger, "card_service")

	var updatedLists int
	err := store.RunInTransaction(ctx, s.store, func(ctx context.Context, tx store.Tx) error {
		if _, err := tx.FindCard(cardID); err != nil {
			return err
		}

		// Cascade first so no list ever points at a missing card
		for _, list := range tx.ListLists() {
			cleaned, removed := list.WithoutCard(cardID)
			if !removed {
				continue
			}
			if err := tx.ReplaceList(cleaned); err != nil {
				return err
			}
			updatedLists++
		}

		if !tx.RemoveCard(cardID) {
			return store.ErrCardNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			log.Error("card not found", slog.String("card_id", cardID))
			return store.ErrCardNotFound
		}
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID))
		return NewCardServiceError("delete_card", "failed to delete card", err)
	}

	log.Info("card deleted",
		slog.String("card_id", cardID),
		slog.Int("lists_updated", updatedLists))
	return nil
}
