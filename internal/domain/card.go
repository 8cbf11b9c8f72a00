package domain

import (
	"github.com/google/uuid"
)

// Card is an atomic unit of content with a title and a body.
// Cards are immutable once created; they can only be deleted.
type Card struct {
	ID      string `json:"id"      validate:"required"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// NewCard creates a new Card with a freshly generated id.
// Title is checked before content.
func NewCard(title, content string) (*Card, error) {
	card := &Card{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	return validateEntity("card", c)
}
