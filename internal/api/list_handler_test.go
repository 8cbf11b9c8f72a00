package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/trelloyes-api/internal/domain"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/service"
	"github.com/phrazzld/trelloyes-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listRouter(svc service.ListService) http.Handler {
	h := NewListHandler(svc, discardLogger(), false)
	r := chi.NewRouter()
	r.Get("/list", h.ListLists)
	r.Post("/list", h.CreateList)
	r.Get("/list/{id}", h.GetList)
	r.Delete("/list/{id}", h.DeleteList)
	return r
}

func TestNewListHandler_NilLogger(t *testing.T) {
	assert.Panics(t, func() { NewListHandler(&mockListService{}, nil, false) })
}

func TestListHandler_CreateList(t *testing.T) {
	t.Run("returns full list", func(t *testing.T) {
		var gotIDs []string
		svc := &mockListService{
			createFn: func(ctx context.Context, header string, cardIDs []string) (*domain.List, string, error) {
				gotIDs = cardIDs
				return &domain.List{ID: "l1", Header: header, CardIDs: cardIDs}, "http://localhost:8000/list/l1", nil
			},
		}

		w := serve(listRouter(svc), http.MethodPost, "/list", `{"header":"Today","cardIds":["b","a"]}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://localhost:8000/list/l1", w.Header().Get("Location"))
		assert.JSONEq(t, `{"id":"l1","header":"Today","cardIds":["b","a"]}`, w.Body.String())
		assert.Equal(t, []string{"b", "a"}, gotIDs)
	})

	t.Run("nil card ids render as empty array", func(t *testing.T) {
		svc := &mockListService{
			createFn: func(ctx context.Context, header string, cardIDs []string) (*domain.List, string, error) {
				assert.Nil(t, cardIDs)
				return &domain.List{ID: "l1", Header: header}, "loc", nil
			},
		}

		w := serve(listRouter(svc), http.MethodPost, "/list", `{"header":"Empty"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"l1","header":"Empty","cardIds":[]}`, w.Body.String())
	})

	t.Run("unknown card ids", func(t *testing.T) {
		svc := &mockListService{
			createFn: func(ctx context.Context, header string, cardIDs []string) (*domain.List, string, error) {
				return nil, "", domain.NewUnknownCardsError([]string{"x", "y"})
			},
		}

		w := serve(listRouter(svc), http.MethodPost, "/list", `{"header":"Bad","cardIds":["x","y"]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid data, card ids not found: x, y"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		svc := &mockListService{
			createFn: func(ctx context.Context, header string, cardIDs []string) (*domain.List, string, error) {
				return nil, "", domain.NewValidationError("header", "list must have header", domain.ErrValidation)
			},
		}

		w := serve(listRouter(svc), http.MethodPost, "/list", `{"cardIds":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid data, list must have header"}`, w.Body.String())
	})

	t.Run("card ids of wrong type", func(t *testing.T) {
		w := serve(listRouter(&mockListService{}), http.MethodPost, "/list", `{"header":"H","cardIds":"a"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())
	})

	t.Run("trailing data logs at error level", func(t *testing.T) {
		testLogger, logBuf := logger.GetTestLogger(t)
		req := httptest.NewRequest(http.MethodPost, "/list", strings.NewReader(`{"header":"H"} {"header":"I"}`))
		req = req.WithContext(logger.WithLogger(req.Context(), testLogger))
		w := httptest.NewRecorder()

		listRouter(&mockListService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())

		entries := logBuf.EntriesWithMessage(t, "API error response")
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0]["level"])
		assert.Equal(t, "/list", entries[0]["path"])
	})
}

func TestListHandler_ReadAndDelete(t *testing.T) {
	svc := &mockListService{
		listFn: func(ctx context.Context) ([]domain.List, error) {
			return []domain.List{{ID: "l1", Header: "H", CardIDs: []string{}}}, nil
		},
		getFn: func(ctx context.Context, id string) (*domain.List, error) {
			if id == "l1" {
				return &domain.List{ID: "l1", Header: "H", CardIDs: []string{"c"}}, nil
			}
			return nil, store.ErrListNotFound
		},
		deleteFn: func(ctx context.Context, id string) error {
			if id == "l1" {
				return nil
			}
			return store.ErrListNotFound
		},
	}
	h := listRouter(svc)

	w := serve(h, http.MethodGet, "/list", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"l1","header":"H","cardIds":[]}]`, w.Body.String())

	w = serve(h, http.MethodGet, "/list/l1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"l1","header":"H","cardIds":["c"]}`, w.Body.String())

	w = serve(h, http.MethodGet, "/list/l2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"List Not Found"}`, w.Body.String())

	w = serve(h, http.MethodDelete, "/list/l1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(h, http.MethodDelete, "/list/l2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"List Not Found"}`, w.Body.String())
}
