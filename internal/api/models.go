package api

import "github.com/phrazzld/trelloyes-api/internal/domain"

// CreateCardRequest is the body of POST /card.
type CreateCardRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateListRequest is the body of POST /list. CardIDs may be omitted.
type CreateListRequest struct {
	Header  string   `json:"header"`
	CardIDs []string `json:"cardIds"`
}

// CardResponse is the wire form of a card.
type CardResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListResponse is the wire form of a list. CardIDs is never null.
type ListResponse struct {
	ID      string   `json:"id"`
	Header  string   `json:"header"`
	CardIDs []string `json:"cardIds"`
}

func cardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:      card.ID,
		Title:   card.Title,
		Content: card.Content,
	}
}

func cardsToResponse(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, cardToResponse(&cards[i]))
	}
	return out
}

func listToResponse(list *domain.List) ListResponse {
	ids := list.CardIDs
	if ids == nil {
		ids = []string{}
	}
	return ListResponse{
		ID:      list.ID,
		Header:  list.Header,
		CardIDs: ids,
	}
}

func listsToResponse(lists []domain.List) []ListResponse {
	out := make([]ListResponse, 0, len(lists))
	for i := range lists {
		out = append(out, listToResponse(&lists[i]))
	}
	return out
}
