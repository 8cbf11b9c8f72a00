package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/platform/memory"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8000"

type testServices struct {
	store  *memory.Store
	cards  CardService
	lists  ListService
	logBuf *logger.TestLogBuffer
}

// newTestServices wires both services to one fresh in-memory store.
func newTestServices(t *testing.T) *testServices {
	t.Helper()

	log, logBuf := logger.GetTestLogger(t)
	s := memory.NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
	locator := NewLocator(testBaseURL)

	cards, err := NewCardService(s, locator, log)
	require.NoError(t, err)
	lists, err := NewListService(s, locator, log)
	require.NoError(t, err)

	return &testServices{store: s, cards: cards, lists: lists, logBuf: logBuf}
}

func (ts *testServices) mustCreateCard(t *testing.T, title, content string) string {
	t.Helper()
	card, _, err := ts.cards.CreateCard(context.Background(), title, content)
	require.NoError(t, err)
	return card.ID
}

func (ts *testServices) mustCreateList(t *testing.T, header string, cardIDs ...string) string {
	t.Helper()
	list, _, err := ts.lists.CreateList(context.Background(), header, cardIDs)
	require.NoError(t, err)
	return list.ID
}
