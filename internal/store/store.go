package store

import (
	"context"

	"github.com/phrazzld/trelloyes-api/internal/domain"
)

// Tx exposes the read and mutate primitives of the two collections.
// A Tx is only valid inside the TxFn it was passed to.
//
// Tx holds no validation logic: it is a container. Callers (the services)
// decide what is allowed and run compound operations inside a single Update so
// other requests never see an intermediate state.
type Tx interface {
	// ListCards returns every card in insertion order.
	ListCards() []domain.Card

	// FindCard returns the card with the given id or ErrCardNotFound.
	FindCard(id string) (domain.Card, error)

	// AppendCard adds a card at the end of the collection.
	// Returns ErrCardExists if the id is already taken.
	AppendCard(card domain.Card) error

	// RemoveCard deletes the card with the given id and reports whether it existed.
	// It does not touch lists; cascade is the caller's job.
	RemoveCard(id string) bool

	// ListLists returns every list in insertion order.
	ListLists() []domain.List

	// FindList returns the list with the given id or ErrListNotFound.
	FindList(id string) (domain.List, error)

	// AppendList adds a list at the end of the collection.
	// Returns ErrListExists if the id is already taken.
	AppendList(list domain.List) error

	// RemoveList deletes the list with the given id and reports whether it existed.
	RemoveList(id string) bool

	// ReplaceList overwrites the stored list with the same id, keeping its position.
	// Returns ErrListNotFound if no such list exists.
	ReplaceList(list domain.List) error
}

// TxFn is a function that executes within a store transaction.
// For Update, changes are committed if it returns nil and discarded otherwise.
type TxFn func(ctx context.Context, tx Tx) error

// Store is the sole owner of the card and list collections.
type Store interface {
	// View runs fn with read-only intent. Mutations made through tx inside
	// View are discarded.
	View(ctx context.Context, fn TxFn) error

	// Update runs fn exclusively. No other View or Update observes the
	// collections until fn returns.
	Update(ctx context.Context, fn TxFn) error
}
