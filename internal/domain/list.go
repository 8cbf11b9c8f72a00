package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// List is a named, ordered grouping of card references.
// CardIDs does not own the cards it points at; the same card id may appear in
// any number of lists.
type List struct {
	ID      string   `json:"id"      validate:"required"`
	Header  string   `json:"header"  validate:"required"`
	CardIDs []string `json:"cardIds" validate:"dive,required"`
}

// NewList creates a new List with a freshly generated id.
// A nil cardIDs slice is normalised to an empty one and the input slice is
// copied, so later changes by the caller do not leak into the list.
func NewList(header string, cardIDs []string) (*List, error) {
	ids := make([]string, len(cardIDs))
	copy(ids, cardIDs)

	list := &List{
		ID:      uuid.NewString(),
		Header:  header,
		CardIDs: ids,
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the List has valid data. It does not check that the
// referenced cards exist; that requires the card collection.
func (l *List) Validate() error {
	return validateEntity("list", l)
}

// WithoutCard returns a copy of the list with every occurrence of cardID
// removed from CardIDs. The order of the remaining ids is preserved.
// The second return value reports whether anything was removed.
func (l List) WithoutCard(cardID string) (List, bool) {
	kept := make([]string, 0, len(l.CardIDs))
	for _, id := range l.CardIDs {
		if id != cardID {
			kept = append(kept, id)
		}
	}
	removed := len(kept) != len(l.CardIDs)
	l.CardIDs = kept
	return l, removed
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	ids := make([]string, len(l.CardIDs))
	copy(ids, l.CardIDs)
	l.CardIDs = ids
	return l
}

// NewUnknownCardsError builds the validation error returned when a list
// references card ids that do not exist.
func NewUnknownCardsError(missing []string) *ValidationError {
	return NewValidationError(
		"cardIds",
		fmt.Sprintf("card ids not found: %s", strings.Join(missing, ", ")),
		ErrUnknownCardReference,
	)
}
