package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory memo API speaking the server's envelope
type fakeAPI struct {
	mu         sync.Mutex
	memos      []domain.MemoResponse
	nextID     int
	listCalls  int
	failCreate bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/memos", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			f.listCalls++
			writeData(w, f.memos)
		case http.MethodPost:
			if f.failCreate {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req domain.MemoRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			f.nextID++
			memo := domain.MemoResponse{ID: f.nextID, Title: req.Title, Content: req.Content}
			f.memos = append([]domain.MemoResponse{memo}, f.memos...)
			writeData(w, memo)
		}
	})
	mux.HandleFunc("/api/memos/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Method == http.MethodDelete {
			if len(f.memos) == 0 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			f.memos = f.memos[1:]
			writeData(w, domain.DeleteMemoResponse{Message: "Memo deleted successfully"})
		}
	})
	return mux
}

func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func newTestCache(t *testing.T, api *fakeAPI) *ListCache {
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewListCache(New(Config{BaseURL: srv.URL, SessionToken: "token"}))
}

func TestMemos_ServesCachedValue(t *testing.T) {
	api := &fakeAPI{memos: []domain.MemoResponse{{ID: 1, Title: "a"}}}
	cache := newTestCache(t, api)
	ctx := context.Background()

	first, err := cache.Memos(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second read must come from the cache, not the network
	_, err = cache.Memos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCalls)
}

func TestCreate_RevalidatesList(t *testing.T) {
	api := &fakeAPI{}
	cache := newTestCache(t, api)
	ctx := context.Background()

	memos, err := cache.Memos(ctx)
	require.NoError(t, err)
	assert.Empty(t, memos)

	created, err := cache.Create(ctx, domain.MemoRequest{Title: "a", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	// The cached list reflects the mutation without another fetch
	listCallsAfterCreate := api.listCalls
	memos, err = cache.Memos(ctx)
	require.NoError(t, err)
	assert.Len(t, memos, 1)
	assert.Equal(t, listCallsAfterCreate, api.listCalls)
}

func TestCreate_FailureLeavesCacheIntact(t *testing.T) {
	api := &fakeAPI{memos: []domain.MemoResponse{{ID: 1, Title: "keep"}}}
	cache := newTestCache(t, api)
	ctx := context.Background()

	_, err := cache.Memos(ctx)
	require.NoError(t, err)

	api.failCreate = true
	_, err = cache.Create(ctx, domain.MemoRequest{Title: "", Content: ""})
	assert.ErrorIs(t, err, ErrValidation)

	memos, err := cache.Memos(ctx)
	require.NoError(t, err)
	require.Len(t, memos, 1)
	assert.Equal(t, "keep", memos[0].Title)
}

func TestDelete_RevalidatesToEmpty(t *testing.T) {
	api := &fakeAPI{memos: []domain.MemoResponse{{ID: 1, Title: "only"}}}
	cache := newTestCache(t, api)
	ctx := context.Background()

	_, err := cache.Memos(ctx)
	require.NoError(t, err)

	require.NoError(t, cache.Delete(ctx, 1))

	memos, err := cache.Memos(ctx)
	require.NoError(t, err)
	assert.Empty(t, memos)
}
