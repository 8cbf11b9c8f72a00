package store

import (
	"context"
	"log/slog"

	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
)

// RunInTransaction executes fn inside a write transaction on s.
// If fn returns an error, nothing it did through tx is kept.
// Panics are logged and re-raised after the store has discarded the changes.
func RunInTransaction(ctx context.Context, s Store, fn TxFn) error {
	log := logger.FromContext(ctx)

	defer func() {
		if p := recover(); p != nil {
			log.Error("rolled back transaction after panic",
				slog.Any("panic", p))
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	if err := s.Update(ctx, fn); err != nil {
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	log.Debug("transaction committed successfully")
	return nil
}
