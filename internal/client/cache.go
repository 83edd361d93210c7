package client

import (
	"context"
	"sync"

	"github.com/memoday/memoday-backend/internal/domain"
)

// listEndpoint is the cache key for the memo list
const listEndpoint = "/api/memos"

// ListCache is a revalidate-on-mutation cache over the memo API, keyed
// by endpoint URL. Reads serve the last-known value; every successful
// mutation re-fetches the list. That re-fetch is the only consistency
// mechanism between mutations and the list view.
type ListCache struct {
	api *Client

	mu      sync.RWMutex
	entries map[string][]domain.MemoResponse
}

// NewListCache creates a ListCache over the given API client
func NewListCache(api *Client) *ListCache {
	return &ListCache{
		api:     api,
		entries: make(map[string][]domain.MemoResponse),
	}
}

// Memos returns the cached memo list, fetching on first use
func (c *ListCache) Memos(ctx context.Context) ([]domain.MemoResponse, error) {
	c.mu.RLock()
	cached, ok := c.entries[listEndpoint]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}
	return c.Revalidate(ctx)
}

// Revalidate re-fetches the memo list and replaces the cached entry
func (c *ListCache) Revalidate(ctx context.Context) ([]domain.MemoResponse, error) {
	memos, err := c.api.ListMemos(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[listEndpoint] = memos
	c.mu.Unlock()
	return memos, nil
}

// Create creates a memo and revalidates the list on success
func (c *ListCache) Create(ctx context.Context, req domain.MemoRequest) (*domain.MemoResponse, error) {
	memo, err := c.api.CreateMemo(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := c.Revalidate(ctx); err != nil {
		return nil, err
	}
	return memo, nil
}

// Update overwrites a memo and revalidates the list on success
func (c *ListCache) Update(ctx context.Context, id int, req domain.MemoRequest) (*domain.MemoResponse, error) {
	memo, err := c.api.UpdateMemo(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if _, err := c.Revalidate(ctx); err != nil {
		return nil, err
	}
	return memo, nil
}

// Delete removes a memo and revalidates the list on success
func (c *ListCache) Delete(ctx context.Context, id int) error {
	if err := c.api.DeleteMemo(ctx, id); err != nil {
		return err
	}
	_, err := c.Revalidate(ctx)
	return err
}
