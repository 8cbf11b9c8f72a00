package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/trelloyes-api/internal/domain"
	"github.com/phrazzld/trelloyes-api/internal/store"
)

// Store implements store.Store by keeping cards and lists in slices guarded
// by a read/write mutex. Insertion order is preserved.
type Store struct {
	mu     sync.RWMutex
	cards  []domain.Card
	lists  []domain.List
	logger *slog.Logger
}

// Ensure Store implements store.Store interface
var _ store.Store = (*Store)(nil)

// NewStore creates an empty in-memory store.
// If logger is nil, a default logger will be used.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		cards:  make([]domain.Card, 0),
		lists:  make([]domain.List, 0),
		logger: logger.With(slog.String("component", "memory_store")),
	}
}

// View implements store.Store.View.
func (s *Store) View(ctx context.Context, fn store.TxFn) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrTransactionFailed, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, newTx(s.cards, s.lists))
}

// Update implements store.Store.Update. Changes are committed only when fn
// returns nil.
func (s *Store) Update(ctx context.Context, fn store.TxFn) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrTransactionFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newTx(s.cards, s.lists)
	if err := fn(ctx, tx); err != nil {
		return err
	}

	if tx.cardsOwned {
		s.cards = tx.cards
	}
	if tx.listsOwned {
		s.lists = tx.lists
	}

	s.logger.Debug("committed update",
		slog.Int("card_count", len(s.cards)),
		slog.Int("list_count", len(s.lists)))
	return nil
}

// Counts returns the current collection sizes.
func (s *Store) Counts() (cards, lists int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards), len(s.lists)
}
