package pricefeed

import (
	"fmt"
	"sync"
)

// ClientFactory manages feed clients per RPC URL
type ClientFactory struct {
	clients map[string]*FeedClient
	mu      sync.RWMutex
}

// NewClientFactory creates a new client factory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{
		clients: make(map[string]*FeedClient),
	}
}

// GetClient returns a feed client for the given RPC URL.
// If a client already exists for the URL, it returns the cached client.
func (f *ClientFactory) GetClient(rpcURL string) (*FeedClient, error) {
	f.mu.RLock()
	client, ok := f.clients[rpcURL]
	f.mu.RUnlock()
	if ok {
		return client, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double check
	if client, ok := f.clients[rpcURL]; ok {
		return client, nil
	}

	newClient, err := NewFeedClient(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed client: %w", err)
	}

	f.clients[rpcURL] = newClient
	return newClient, nil
}

// RegisterClient injects/overrides the cached client for a specific rpcURL.
// Useful for deterministic unit tests.
func (f *ClientFactory) RegisterClient(rpcURL string, client *FeedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[rpcURL] = client
}
