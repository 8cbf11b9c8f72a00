package memory

import (
	"github.com/phrazzld/trelloyes-api/internal/domain"
	"github.com/phrazzld/trelloyes-api/internal/store"
)

// tx is a copy-on-write view over the committed slices. The first mutation of
// a collection copies it; until then reads go straight to the shared backing
// array, which is never written in place.
type tx struct {
	cards      []domain.Card
	lists      []domain.List
	cardsOwned bool
	listsOwned bool
}

var _ store.Tx = (*tx)(nil)

func newTx(cards []domain.Card, lists []domain.List) *tx {
	return &tx{cards: cards, lists: lists}
}

func (t *tx) ownCards() {
	if t.cardsOwned {
		return
	}
	cards := make([]domain.Card, len(t.cards), len(t.cards)+1)
	copy(cards, t.cards)
	t.cards = cards
	t.cardsOwned = true
}

func (t *tx) ownLists() {
	if t.listsOwned {
		return
	}
	lists := make([]domain.List, len(t.lists), len(t.lists)+1)
	copy(lists, t.lists)
	t.lists = lists
	t.listsOwned = true
}

func (t *tx) cardIndex(id string) int {
	for i := range t.cards {
		if t.cards[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *tx) listIndex(id string) int {
	for i := range t.lists {
		if t.lists[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *tx) ListCards() []domain.Card {
	cards := make([]domain.Card, len(t.cards))
	copy(cards, t.cards)
	return cards
}

func (t *tx) FindCard(id string) (domain.Card, error) {
	i := t.cardIndex(id)
	if i < 0 {
		return domain.Card{}, store.ErrCardNotFound
	}
	return t.cards[i], nil
}

func (t *tx) AppendCard(card domain.Card) error {
	if t.cardIndex(card.ID) >= 0 {
		return store.NewStoreError("card", "append", "id "+card.ID+" already stored", store.ErrCardExists)
	}
	t.ownCards()
	t.cards = append(t.cards, card)
	return nil
}

func (t *tx) RemoveCard(id string) bool {
	i := t.cardIndex(id)
	if i < 0 {
		return false
	}
	t.ownCards()
	t.cards = append(t.cards[:i], t.cards[i+1:]...)
	return true
}

func (t *tx) ListLists() []domain.List {
	lists := make([]domain.List, len(t.lists))
	for i := range t.lists {
		lists[i] = t.lists[i].Clone()
	}
	return lists
}

func (t *tx) FindList(id string) (domain.List, error) {
	i := t.listIndex(id)
	if i < 0 {
		return domain.List{}, store.ErrListNotFound
	}
	return t.lists[i].Clone(), nil
}

func (t *tx) AppendList(list domain.List) error {
	if t.listIndex(list.ID) >= 0 {
		return store.NewStoreError("list", "append", "id "+list.ID+" already stored", store.ErrListExists)
	}
	t.ownLists()
	t.lists = append(t.lists, list.Clone())
	return nil
}

func (t *tx) RemoveList(id string) bool {
	i := t.listIndex(id)
	if i < 0 {
		return false
	}
	t.ownLists()
	t.lists = append(t.lists[:i], t.lists[i+1:]...)
	return true
}

func (t *tx) ReplaceList(list domain.List) error {
	i := t.listIndex(list.ID)
	if i < 0 {
		return store.NewStoreError("list", "replace", "id "+list.ID+" not stored", store.ErrListNotFound)
	}
	t.ownLists()
	t.lists[i] = list.Clone()
	return nil
}
